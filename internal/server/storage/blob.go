package storage

import "context"

// BlobStorage defines interface for raw document bytes.
// Put по существующему пути перезаписывает содержимое: клиент выводит
// путь из ключа идемпотентности и повторяет выгрузку после сбоев.
type BlobStorage interface {
	// Put stores blob bytes at the given path, replacing existing content
	Put(ctx context.Context, path string, data []byte) error

	// Get retrieves blob bytes by path.
	// Returns ErrBlobNotFound if blob doesn't exist.
	Get(ctx context.Context, path string) ([]byte, error)

	// Delete removes a blob. Deleting an absent blob is a no-op.
	Delete(ctx context.Context, path string) error
}
