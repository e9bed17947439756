package storage

import (
	"context"

	"github.com/iudanet/quizkeeper/internal/models"
)

//go:generate moq -out queue_mock.go . QueueStorage

// QueueStorage defines interface for persisting the offline operation queue.
// Очередь хранится целиком как один JSON-массив: движок всегда выполняет
// load → mutate → save под своим mutex-ом, атомарность на уровне отдельных
// операций хранилища не требуется.
type QueueStorage interface {
	// LoadQueue returns all persisted operations.
	// Returns an empty slice if the queue has never been persisted.
	LoadQueue(ctx context.Context) ([]*models.QueuedOperation, error)

	// SaveQueue replaces the persisted queue with the given operations
	SaveQueue(ctx context.Context, ops []*models.QueuedOperation) error

	// DeleteQueue removes the persisted queue entirely.
	// Пустая очередь удаляется, а не хранится как пустой массив.
	DeleteQueue(ctx context.Context) error

	// HasQueue reports whether a persisted queue exists
	HasQueue(ctx context.Context) (bool, error)
}
