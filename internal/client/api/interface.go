package api

import (
	"context"

	"github.com/iudanet/quizkeeper/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс удаленного хранилища: типизированные
// insert/select по коллекциям, выгрузка blob-ов и аутентификация.
// Движок очереди зависит только от этого интерфейса.
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// Refresh обменивает refresh token на новую пару токенов
	Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error)

	// InsertDocument вставляет (upsert по ID) запись документа
	InsertDocument(ctx context.Context, accessToken string, rec api.DocumentRecord) error

	// ListDocuments возвращает все документы текущего пользователя
	ListDocuments(ctx context.Context, accessToken string) ([]api.DocumentRecord, error)

	// InsertQuiz вставляет (upsert по ID) квиз вместе с вопросами
	InsertQuiz(ctx context.Context, accessToken string, rec api.QuizRecord) error

	// ListQuizzes возвращает все квизы текущего пользователя с вопросами
	ListQuizzes(ctx context.Context, accessToken string) ([]api.QuizRecord, error)

	// InsertQuizResult вставляет запись результата прохождения квиза
	InsertQuizResult(ctx context.Context, accessToken string, rec api.QuizResultRecord) error

	// UploadBlob выгружает байты по пути в blob-хранилище.
	// Повторная выгрузка по тому же пути перезаписывает содержимое.
	UploadBlob(ctx context.Context, accessToken, path string, data []byte) error

	// Health проверяет доступность сервера (используется монитором связи)
	Health(ctx context.Context) error
}
