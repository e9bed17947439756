package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quizkeeper/internal/client/storage"
	"github.com/iudanet/quizkeeper/internal/models"
)

// LoadQueue returns all persisted operations.
// Отсутствующая очередь — это пустая очередь, не ошибка.
func (s *Storage) LoadQueue(ctx context.Context) ([]*models.QueuedOperation, error) {
	var ops []*models.QueuedOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		data := bucket.Get(keyQueue)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &ops); err != nil {
			return fmt.Errorf("failed to unmarshal queue: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, &storage.OpError{Op: "load queue", Err: err}
	}

	if ops == nil {
		ops = []*models.QueuedOperation{}
	}

	return ops, nil
}

// SaveQueue replaces the persisted queue with the given operations
func (s *Storage) SaveQueue(ctx context.Context, ops []*models.QueuedOperation) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		data, err := json.Marshal(ops)
		if err != nil {
			return fmt.Errorf("failed to marshal queue: %w", err)
		}

		if err := bucket.Put(keyQueue, data); err != nil {
			return fmt.Errorf("failed to save queue: %w", err)
		}

		return nil
	})

	if err != nil {
		return &storage.OpError{Op: "save queue", Err: err}
	}

	return nil
}

// DeleteQueue removes the persisted queue entirely
func (s *Storage) DeleteQueue(ctx context.Context) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		return bucket.Delete(keyQueue)
	})

	if err != nil {
		return &storage.OpError{Op: "delete queue", Err: err}
	}

	return nil
}

// HasQueue reports whether a persisted queue exists
func (s *Storage) HasQueue(ctx context.Context) (bool, error) {
	var exists bool

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}
		exists = bucket.Get(keyQueue) != nil
		return nil
	})

	if err != nil {
		return false, &storage.OpError{Op: "check queue", Err: err}
	}

	return exists, nil
}
