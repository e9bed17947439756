package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/quizkeeper/internal/crypto"
	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/internal/server/storage"
	"github.com/iudanet/quizkeeper/internal/validation"
	"github.com/iudanet/quizkeeper/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger       *slog.Logger
	userStorage  storage.UserStorage
	tokenStorage storage.TokenStorage
	jwtConfig    JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, tokenStorage storage.TokenStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		userStorage:  userStorage,
		tokenStorage: tokenStorage,
		jwtConfig:    jwtConfig,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация username
	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Валидация пароля
	if err := validation.ValidatePassword(req.Password); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Хешируем пароль (argon2id), сам пароль нигде не сохраняется
	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Сохраняем в БД
	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			h.sendError(w, "username already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", req.Username),
		slog.String("user_id", user.ID))

	resp := api.RegisterResponse{
		UserID:  user.ID,
		Message: "User registered successfully",
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация username
	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		h.sendError(w, "password is required", http.StatusBadRequest)
		return
	}

	// Получаем пользователя из БД
	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			h.sendError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Проверяем пароль против сохраненного argon2id хеша
	if err := crypto.VerifyPassword(req.Password, user.PasswordHash); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		h.sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	resp, err := h.issueTokens(r, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", req.Username),
		slog.String("user_id", user.ID))

	h.sendJSON(w, resp, http.StatusOK)
}

// Refresh обрабатывает POST /api/v1/auth/refresh
// Обмен refresh token на новую пару токенов (старый токен отзывается)
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode refresh request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.RefreshToken == "" {
		h.sendError(w, "refresh_token is required", http.StatusUnauthorized)
		return
	}

	// В БД хранится только SHA256 хеш токена
	tokenHash, err := crypto.HashToken(req.RefreshToken)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	storedToken, err := h.tokenStorage.GetRefreshToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.WarnContext(ctx, "refresh token not found")
			h.sendError(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Проверяем срок действия
	if time.Now().After(storedToken.ExpiresAt) {
		h.logger.WarnContext(ctx, "refresh token expired", slog.String("user_id", storedToken.UserID))
		h.sendError(w, "refresh token expired", http.StatusUnauthorized)
		return
	}

	// Получаем пользователя для генерации нового access token
	user, err := h.userStorage.GetUserByID(ctx, storedToken.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Ротация: старый refresh token удаляется до выдачи нового
	if err := h.tokenStorage.DeleteRefreshToken(ctx, tokenHash); err != nil {
		h.logger.WarnContext(ctx, "failed to delete old refresh token", slog.Any("error", err))
		// Продолжаем выполнение
	}

	resp, err := h.issueTokens(r, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed successfully", slog.String("user_id", user.ID))

	h.sendJSON(w, resp, http.StatusOK)
}

// Logout обрабатывает POST /api/v1/auth/logout
// Выход пользователя (отзыв всех refresh tokens)
// TODO сейчас выходит из всех устройств. надо сделать выход только с 1 например через ID устройства
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Извлекаем access token из Authorization header
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		h.sendError(w, "Authorization header is required", http.StatusUnauthorized)
		return
	}

	const bearerPrefix = "Bearer "
	if len(authHeader) < len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		h.sendError(w, "invalid Authorization header format", http.StatusUnauthorized)
		return
	}

	accessToken := authHeader[len(bearerPrefix):]
	if accessToken == "" {
		h.sendError(w, "access token is required", http.StatusUnauthorized)
		return
	}

	// Валидируем и парсим access token
	claims, err := ValidateAccessToken(h.jwtConfig, accessToken)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
		h.sendError(w, "invalid or expired access token", http.StatusUnauthorized)
		return
	}

	// Удаляем все refresh tokens пользователя
	deletedCount, err := h.tokenStorage.DeleteUserTokens(ctx, claims.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete user tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged out successfully",
		slog.String("user_id", claims.UserID),
		slog.Int("tokens_deleted", deletedCount))

	w.WriteHeader(http.StatusNoContent)
}

// issueTokens генерирует пару access/refresh токенов и сохраняет хеш
// refresh токена в БД
func (h *AuthHandler) issueTokens(r *http.Request, user *models.User) (*api.TokenResponse, error) {
	ctx := r.Context()

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	refreshToken, err := crypto.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	tokenHash, err := crypto.HashToken(refreshToken)
	if err != nil {
		return nil, err
	}

	token := &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(h.jwtConfig.RefreshTokenTTL),
		CreatedAt: time.Now(),
	}

	if err := h.tokenStorage.SaveRefreshToken(ctx, token); err != nil {
		return nil, err
	}

	return &api.TokenResponse{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}, nil
}

// sendJSON отправляет JSON ответ
func (h *AuthHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *AuthHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
