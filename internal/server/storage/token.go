package storage

import (
	"context"

	"github.com/iudanet/quizkeeper/internal/models"
)

// TokenStorage defines interface for refresh token persistence.
// В базе хранятся только SHA256-хеши токенов, сами токены не сохраняются.
type TokenStorage interface {
	// SaveRefreshToken stores a new refresh token record
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken retrieves refresh token record by token hash
	// Returns ErrTokenNotFound if token doesn't exist
	GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// DeleteRefreshToken deletes refresh token by token hash
	// Returns ErrTokenNotFound if token doesn't exist
	DeleteRefreshToken(ctx context.Context, tokenHash string) error

	// DeleteUserTokens deletes all refresh tokens for a user
	// Returns number of deleted tokens
	DeleteUserTokens(ctx context.Context, userID string) (int, error)

	// DeleteExpiredTokens removes all expired tokens
	// Returns number of deleted tokens
	DeleteExpiredTokens(ctx context.Context) (int, error)
}
