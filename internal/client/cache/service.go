package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/quizkeeper/internal/client/storage"
	"github.com/iudanet/quizkeeper/internal/models"
)

// Service обслуживает локальный кеш сущностей. Записи ключуются по ID
// (upsert), чтение никогда не ходит в сеть.
type Service struct {
	storage storage.CacheStorage
	logger  *slog.Logger
}

// NewService creates a new cache service
func NewService(cacheStorage storage.CacheStorage, logger *slog.Logger) *Service {
	return &Service{
		storage: cacheStorage,
		logger:  logger,
	}
}

// CacheDocument сохраняет документ в кеш, проставляя время записи
func (s *Service) CacheDocument(ctx context.Context, doc *models.Document) error {
	doc.CachedAt = time.Now()

	if err := s.storage.SaveDocument(ctx, doc); err != nil {
		return fmt.Errorf("failed to cache document: %w", err)
	}

	s.logger.Debug("document cached", "document_id", doc.ID, "name", doc.Name)
	return nil
}

// Document возвращает закешированный документ по ID
func (s *Service) Document(ctx context.Context, id string) (*models.Document, error) {
	return s.storage.GetDocument(ctx, id)
}

// Documents возвращает все закешированные документы пользователя
func (s *Service) Documents(ctx context.Context, userID string) ([]*models.Document, error) {
	return s.storage.ListDocuments(ctx, userID)
}

// DeleteDocument удаляет документ из кеша (идемпотентно)
func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	return s.storage.DeleteDocument(ctx, id)
}

// CacheQuiz сохраняет квиз с вопросами в кеш, проставляя время записи
func (s *Service) CacheQuiz(ctx context.Context, quiz *models.Quiz) error {
	quiz.CachedAt = time.Now()

	if err := s.storage.SaveQuiz(ctx, quiz); err != nil {
		return fmt.Errorf("failed to cache quiz: %w", err)
	}

	s.logger.Debug("quiz cached",
		"quiz_id", quiz.ID,
		"questions", len(quiz.Questions),
		"pending", quiz.Pending)
	return nil
}

// Quiz возвращает закешированный квиз по ID
func (s *Service) Quiz(ctx context.Context, id string) (*models.Quiz, error) {
	return s.storage.GetQuiz(ctx, id)
}

// Quizzes возвращает все закешированные квизы пользователя
func (s *Service) Quizzes(ctx context.Context, userID string) ([]*models.Quiz, error) {
	return s.storage.ListQuizzes(ctx, userID)
}

// PendingQuizzes возвращает квизы, созданные оффлайн и ожидающие
// канонической серверной копии
func (s *Service) PendingQuizzes(ctx context.Context, userID string) ([]*models.Quiz, error) {
	quizzes, err := s.storage.ListQuizzes(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending := make([]*models.Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		if q.Pending {
			pending = append(pending, q)
		}
	}
	return pending, nil
}

// DeleteQuiz удаляет квиз из кеша (идемпотентно)
func (s *Service) DeleteQuiz(ctx context.Context, id string) error {
	return s.storage.DeleteQuiz(ctx, id)
}

// ReplacePendingQuiz атомарно с точки зрения кеша заменяет pending-квиз
// его канонической серверной копией: pending-запись удаляется ровно
// тогда, когда каноническая успешно закеширована.
func (s *Service) ReplacePendingQuiz(ctx context.Context, pendingID string, canonical *models.Quiz) error {
	if err := s.CacheQuiz(ctx, canonical); err != nil {
		return err
	}

	if pendingID == canonical.ID {
		return nil
	}

	if err := s.storage.DeleteQuiz(ctx, pendingID); err != nil {
		return fmt.Errorf("failed to delete pending quiz: %w", err)
	}

	s.logger.Info("pending quiz replaced with canonical",
		"pending_id", pendingID,
		"quiz_id", canonical.ID)
	return nil
}
