package storage

import (
	"context"

	"github.com/iudanet/quizkeeper/pkg/api"
)

// RecordStorage defines interface for the typed user collections.
// Все insert-ы выполняются как upsert по ID: клиент повторяет операции
// после сбоев, и повторная вставка той же записи не создает дубликатов.
type RecordStorage interface {
	// UpsertDocument stores or replaces a document record by ID
	UpsertDocument(ctx context.Context, doc *api.DocumentRecord) error

	// ListDocuments returns all document records owned by the user
	ListDocuments(ctx context.Context, userID string) ([]api.DocumentRecord, error)

	// UpsertQuiz stores or replaces a quiz record with its questions.
	// Вопросы заменяются целиком вместе с квизом в одной транзакции:
	// повтор после частичного сбоя не оставляет осиротевших вопросов.
	UpsertQuiz(ctx context.Context, quiz *api.QuizRecord) error

	// ListQuizzes returns all quiz records owned by the user, with questions
	ListQuizzes(ctx context.Context, userID string) ([]api.QuizRecord, error)

	// UpsertQuizResult stores or replaces a quiz result record by ID
	UpsertQuizResult(ctx context.Context, result *api.QuizResultRecord) error

	// ListQuizResults returns all quiz result records owned by the user
	ListQuizResults(ctx context.Context, userID string) ([]api.QuizResultRecord, error)
}
