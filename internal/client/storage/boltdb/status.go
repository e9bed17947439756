package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quizkeeper/internal/client/storage"
	"github.com/iudanet/quizkeeper/internal/models"
)

// SaveSyncStatus persists the recomputed sync status
func (s *Storage) SaveSyncStatus(ctx context.Context, status *models.SyncStatus) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStatus)
		if bucket == nil {
			return fmt.Errorf("status bucket not found")
		}

		data, err := json.Marshal(status)
		if err != nil {
			return fmt.Errorf("failed to marshal sync status: %w", err)
		}

		if err := bucket.Put(keyStatus, data); err != nil {
			return fmt.Errorf("failed to save sync status: %w", err)
		}

		return nil
	})

	if err != nil {
		return &storage.OpError{Op: "save sync status", Err: err}
	}

	return nil
}

// GetSyncStatus retrieves the last persisted sync status
func (s *Storage) GetSyncStatus(ctx context.Context) (*models.SyncStatus, error) {
	var status *models.SyncStatus

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStatus)
		if bucket == nil {
			return fmt.Errorf("status bucket not found")
		}

		data := bucket.Get(keyStatus)
		if data == nil {
			return storage.ErrStatusNotFound
		}

		status = &models.SyncStatus{}
		if err := json.Unmarshal(data, status); err != nil {
			return fmt.Errorf("failed to unmarshal sync status: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrStatusNotFound {
			return nil, err
		}
		return nil, &storage.OpError{Op: "get sync status", Err: err}
	}

	return status, nil
}
