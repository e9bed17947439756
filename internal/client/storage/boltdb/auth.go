package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quizkeeper/internal/client/storage"
)

// SaveAuth stores or replaces session data
func (s *Storage) SaveAuth(ctx context.Context, data *storage.AuthData) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		raw, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal auth data: %w", err)
		}

		if err := bucket.Put(keyAuth, raw); err != nil {
			return fmt.Errorf("failed to save auth data: %w", err)
		}

		return nil
	})

	if err != nil {
		return &storage.OpError{Op: "save auth", Err: err}
	}

	return nil
}

// GetAuth retrieves session data
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	var data *storage.AuthData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		raw := bucket.Get(keyAuth)
		if raw == nil {
			return storage.ErrAuthNotFound
		}

		data = &storage.AuthData{}
		if err := json.Unmarshal(raw, data); err != nil {
			return fmt.Errorf("failed to unmarshal auth data: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrAuthNotFound {
			return nil, err
		}
		return nil, &storage.OpError{Op: "get auth", Err: err}
	}

	return data, nil
}

// DeleteAuth removes session data (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}
		return bucket.Delete(keyAuth)
	})

	if err != nil {
		return &storage.OpError{Op: "delete auth", Err: err}
	}

	return nil
}
