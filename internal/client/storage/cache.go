package storage

import (
	"context"

	"github.com/iudanet/quizkeeper/internal/models"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CacheStorage defines interface for the local entity cache.
// Записи ключуются по ID: повторная запись с тем же ID заменяет
// существующую, а не создает дубликат.
type CacheStorage interface {
	// SaveDocument stores or replaces a cached document
	SaveDocument(ctx context.Context, doc *models.Document) error

	// GetDocument retrieves a cached document by ID.
	// Returns ErrDocumentNotFound if document doesn't exist.
	GetDocument(ctx context.Context, id string) (*models.Document, error)

	// ListDocuments returns all cached documents for the user
	ListDocuments(ctx context.Context, userID string) ([]*models.Document, error)

	// DeleteDocument removes a cached document.
	// Idempotent: deleting an absent document is a no-op.
	DeleteDocument(ctx context.Context, id string) error

	// SaveQuiz stores or replaces a cached quiz with its questions
	SaveQuiz(ctx context.Context, quiz *models.Quiz) error

	// GetQuiz retrieves a cached quiz by ID.
	// Returns ErrQuizNotFound if quiz doesn't exist.
	GetQuiz(ctx context.Context, id string) (*models.Quiz, error)

	// ListQuizzes returns all cached quizzes for the user
	ListQuizzes(ctx context.Context, userID string) ([]*models.Quiz, error)

	// DeleteQuiz removes a cached quiz.
	// Idempotent: deleting an absent quiz is a no-op.
	DeleteQuiz(ctx context.Context, id string) error
}
