package storage

import (
	"context"

	"github.com/iudanet/quizkeeper/internal/models"
)

//go:generate moq -out status_mock.go . StatusStorage

// StatusStorage defines interface for persisting aggregated sync status
type StatusStorage interface {
	// SaveSyncStatus persists the recomputed sync status
	SaveSyncStatus(ctx context.Context, status *models.SyncStatus) error

	// GetSyncStatus retrieves the last persisted sync status.
	// Returns ErrStatusNotFound if no status has been persisted yet.
	GetSyncStatus(ctx context.Context) (*models.SyncStatus, error)
}
