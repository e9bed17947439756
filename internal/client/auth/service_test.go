package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quizkeeper/internal/client/storage"
)

func newMemAuthMock() *storage.AuthStorageMock {
	var stored *storage.AuthData

	mock := &storage.AuthStorageMock{
		SaveAuthFunc: func(ctx context.Context, data *storage.AuthData) error {
			c := *data
			stored = &c
			return nil
		},
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			if stored == nil {
				return nil, storage.ErrAuthNotFound
			}
			c := *stored
			return &c, nil
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			stored = nil
			return nil
		},
	}

	return mock
}

func validSession() *storage.AuthData {
	return &storage.AuthData{
		UserID:       "user-123",
		Username:     "student",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}
}

func TestSaveSessionAndGet(t *testing.T) {
	mock := newMemAuthMock()
	svc := NewService(mock)
	ctx := context.Background()

	require.NoError(t, svc.SaveSession(ctx, validSession()))

	session, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-123", session.UserID)
	assert.Equal(t, "student", session.Username)
}

func TestIsAuthenticated(t *testing.T) {
	mock := newMemAuthMock()
	svc := NewService(mock)
	ctx := context.Background()

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.SaveSession(ctx, validSession()))

	ok, err = svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAccessToken(t *testing.T) {
	mock := newMemAuthMock()
	svc := NewService(mock)
	ctx := context.Background()

	require.NoError(t, svc.SaveSession(ctx, validSession()))

	token, err := svc.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", token)
}

func TestAccessToken_NotAuthenticated(t *testing.T) {
	mock := newMemAuthMock()
	svc := NewService(mock)

	_, err := svc.AccessToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
}

func TestAccessToken_Expired(t *testing.T) {
	mock := newMemAuthMock()
	svc := NewService(mock)
	ctx := context.Background()

	session := validSession()
	session.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	require.NoError(t, svc.SaveSession(ctx, session))

	_, err := svc.AccessToken(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestUserID(t *testing.T) {
	mock := newMemAuthMock()
	svc := NewService(mock)
	ctx := context.Background()

	require.NoError(t, svc.SaveSession(ctx, validSession()))

	userID, err := svc.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestLogout(t *testing.T) {
	mock := newMemAuthMock()
	svc := NewService(mock)
	ctx := context.Background()

	require.NoError(t, svc.SaveSession(ctx, validSession()))
	require.NoError(t, svc.Logout(ctx))

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveSession_StorageFailure(t *testing.T) {
	mock := newMemAuthMock()
	mock.SaveAuthFunc = func(ctx context.Context, data *storage.AuthData) error {
		return errors.New("disk full")
	}
	svc := NewService(mock)

	err := svc.SaveSession(context.Background(), validSession())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save session")
}
