package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quizkeeper/internal/crypto"
	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/internal/server/storage"
	"github.com/iudanet/quizkeeper/pkg/api"
)

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users       map[string]*models.User // username -> User
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// mockTokenStorage is a mock implementation of TokenStorage for testing
type mockTokenStorage struct {
	tokens    map[string]*models.RefreshToken // tokenHash -> RefreshToken
	saveError error
}

func newMockTokenStorage() *mockTokenStorage {
	return &mockTokenStorage{tokens: make(map[string]*models.RefreshToken)}
}

func (m *mockTokenStorage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if m.saveError != nil {
		return m.saveError
	}
	m.tokens[token.TokenHash] = token
	return nil
}

func (m *mockTokenStorage) GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	token, ok := m.tokens[tokenHash]
	if !ok {
		return nil, storage.ErrTokenNotFound
	}
	return token, nil
}

func (m *mockTokenStorage) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	if _, ok := m.tokens[tokenHash]; !ok {
		return storage.ErrTokenNotFound
	}
	delete(m.tokens, tokenHash)
	return nil
}

func (m *mockTokenStorage) DeleteUserTokens(ctx context.Context, userID string) (int, error) {
	deleted := 0
	for hash, token := range m.tokens {
		if token.UserID == userID {
			delete(m.tokens, hash)
			deleted++
		}
	}
	return deleted, nil
}

func (m *mockTokenStorage) DeleteExpiredTokens(ctx context.Context) (int, error) {
	deleted := 0
	now := time.Now()
	for hash, token := range m.tokens {
		if now.After(token.ExpiresAt) {
			delete(m.tokens, hash)
			deleted++
		}
	}
	return deleted, nil
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:          []byte("test-secret"),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthHandler(users *mockUserStorage, tokens *mockTokenStorage) *AuthHandler {
	return NewAuthHandler(testLogger(), users, tokens, testJWTConfig())
}

// registerUser регистрирует пользователя через handler и возвращает его ID
func registerUser(t *testing.T, h *AuthHandler, username, password string) string {
	t.Helper()

	body, err := json.Marshal(api.RegisterRequest{Username: username, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.UserID
}

// loginUser выполняет вход и возвращает пару токенов
func loginUser(t *testing.T, h *AuthHandler, username, password string) api.TokenResponse {
	t.Helper()

	body, err := json.Marshal(api.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Register_Success(t *testing.T) {
	users := newMockUserStorage()
	h := newTestAuthHandler(users, newMockTokenStorage())

	userID := registerUser(t, h, "alice", "correct-horse-battery")

	assert.NotEmpty(t, userID)

	// Пароль сохранен как argon2id хеш, не в открытом виде
	stored := users.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)
	assert.NoError(t, crypto.VerifyPassword("correct-horse-battery", stored.PasswordHash))
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_InvalidUsername(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	body, err := json.Marshal(api.RegisterRequest{Username: "a!", Password: "long-enough-pass"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	body, err := json.Marshal(api.RegisterRequest{Username: "alice", Password: "short"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	registerUser(t, h, "alice", "correct-horse-battery")

	body, err := json.Marshal(api.RegisterRequest{Username: "alice", Password: "another-password"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	tokens := newMockTokenStorage()
	h := newTestAuthHandler(newMockUserStorage(), tokens)

	userID := registerUser(t, h, "alice", "correct-horse-battery")
	resp := loginUser(t, h, "alice", "correct-horse-battery")

	assert.Equal(t, userID, resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Positive(t, resp.ExpiresIn)

	// В хранилище лежит хеш refresh токена, не сам токен
	hash, err := crypto.HashToken(resp.RefreshToken)
	require.NoError(t, err)
	_, ok := tokens.tokens[hash]
	assert.True(t, ok)
	_, ok = tokens.tokens[resp.RefreshToken]
	assert.False(t, ok)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	registerUser(t, h, "alice", "correct-horse-battery")

	body, err := json.Marshal(api.LoginRequest{Username: "alice", Password: "wrong-password"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	body, err := json.Marshal(api.LoginRequest{Username: "nobody", Password: "some-password"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	// Несуществующий пользователь неотличим от неверного пароля
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_SaveTokenError(t *testing.T) {
	tokens := newMockTokenStorage()
	h := newTestAuthHandler(newMockUserStorage(), tokens)

	registerUser(t, h, "alice", "correct-horse-battery")

	tokens.saveError = assert.AnError

	body, err := json.Marshal(api.LoginRequest{Username: "alice", Password: "correct-horse-battery"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	tokens := newMockTokenStorage()
	h := newTestAuthHandler(newMockUserStorage(), tokens)

	registerUser(t, h, "alice", "correct-horse-battery")
	login := loginUser(t, h, "alice", "correct-horse-battery")

	body, err := json.Marshal(api.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, login.RefreshToken, resp.RefreshToken)

	// Старый refresh token отозван
	oldHash, err := crypto.HashToken(login.RefreshToken)
	require.NoError(t, err)
	_, ok := tokens.tokens[oldHash]
	assert.False(t, ok)
}

func TestAuthHandler_Refresh_UnknownToken(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	body, err := json.Marshal(api.RefreshRequest{RefreshToken: "never-issued"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Refresh_ExpiredToken(t *testing.T) {
	tokens := newMockTokenStorage()
	users := newMockUserStorage()
	h := newTestAuthHandler(users, tokens)

	userID := registerUser(t, h, "alice", "correct-horse-battery")

	refreshToken, err := crypto.GenerateRefreshToken()
	require.NoError(t, err)
	hash, err := crypto.HashToken(refreshToken)
	require.NoError(t, err)

	tokens.tokens[hash] = &models.RefreshToken{
		ID:        "token-1",
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	body, err := json.Marshal(api.RefreshRequest{RefreshToken: refreshToken})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Refresh_EmptyToken(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	body, err := json.Marshal(api.RefreshRequest{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	tokens := newMockTokenStorage()
	h := newTestAuthHandler(newMockUserStorage(), tokens)

	registerUser(t, h, "alice", "correct-horse-battery")
	login := loginUser(t, h, "alice", "correct-horse-battery")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, tokens.tokens)
}

func TestAuthHandler_Logout_MissingHeader(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout_InvalidToken(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage(), newMockTokenStorage())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresIn, err := GenerateAccessToken(cfg, "user-123", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(cfg.AccessTokenTTL.Seconds()), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateAccessToken(testJWTConfig(), "user-123", "alice")
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = []byte("different-secret")

	_, err = ValidateAccessToken(otherCfg, token)
	assert.Error(t, err)
}
