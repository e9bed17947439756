package storage

import "context"

// AuthData представляет сохраненную сессию пользователя
type AuthData struct {
	UserID       string `json:"user_id"`       // UUID пользователя
	Username     string `json:"username"`      // username пользователя
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // refresh token
	ExpiresAt    int64  `json:"expires_at"`    // unix-время истечения access token
}

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the client session
type AuthStorage interface {
	// SaveAuth stores or replaces session data
	SaveAuth(ctx context.Context, data *AuthData) error

	// GetAuth retrieves session data.
	// Returns ErrAuthNotFound if no session exists.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes session data (logout)
	DeleteAuth(ctx context.Context) error
}
