package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/internal/server/storage"
)

func newTestToken(userID, hash string, expiresAt time.Time) *models.RefreshToken {
	return &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: expiresAt.Truncate(time.Second),
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

func TestSaveAndGetRefreshToken(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser("alice")
	require.NoError(t, s.CreateUser(ctx, user))

	token := newTestToken(user.ID, "hash-1", time.Now().Add(time.Hour))
	require.NoError(t, s.SaveRefreshToken(ctx, token))

	loaded, err := s.GetRefreshToken(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.UserID)
	assert.Equal(t, token.ID, loaded.ID)
}

func TestGetRefreshToken_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetRefreshToken(context.Background(), "missing-hash")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestDeleteRefreshToken(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser("alice")
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(user.ID, "hash-1", time.Now().Add(time.Hour))))

	require.NoError(t, s.DeleteRefreshToken(ctx, "hash-1"))

	_, err := s.GetRefreshToken(ctx, "hash-1")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	// Повторное удаление — ошибка not found
	err = s.DeleteRefreshToken(ctx, "hash-1")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestDeleteUserTokens(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	alice := newTestUser("alice")
	bob := newTestUser("bob")
	require.NoError(t, s.CreateUser(ctx, alice))
	require.NoError(t, s.CreateUser(ctx, bob))

	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(alice.ID, "hash-1", time.Now().Add(time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(alice.ID, "hash-2", time.Now().Add(time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(bob.ID, "hash-3", time.Now().Add(time.Hour))))

	deleted, err := s.DeleteUserTokens(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Токены другого пользователя не тронуты
	_, err = s.GetRefreshToken(ctx, "hash-3")
	assert.NoError(t, err)
}

func TestDeleteExpiredTokens(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	user := newTestUser("alice")
	require.NoError(t, s.CreateUser(ctx, user))

	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(user.ID, "expired", time.Now().Add(-time.Hour))))
	require.NoError(t, s.SaveRefreshToken(ctx, newTestToken(user.ID, "valid", time.Now().Add(time.Hour))))

	deleted, err := s.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = s.GetRefreshToken(ctx, "expired")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
	_, err = s.GetRefreshToken(ctx, "valid")
	assert.NoError(t, err)
}
