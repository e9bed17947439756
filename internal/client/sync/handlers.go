package sync

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	httpClient "github.com/iudanet/quizkeeper/internal/client/api"
	"github.com/iudanet/quizkeeper/internal/client/auth"
	"github.com/iudanet/quizkeeper/internal/client/cache"
	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/pkg/api"
)

// UploadDocumentHandler выгружает документ: blob в хранилище, затем
// insert метаданных. Оба шага обязаны пройти; сбой любого из них —
// сбой всей операции, повтор начинается с выгрузки blob-а.
type UploadDocumentHandler struct {
	apiClient httpClient.ClientAPI
	auth      *auth.Service
	cache     *cache.Service
	logger    *slog.Logger
}

// NewUploadDocumentHandler creates a handler for upload operations
func NewUploadDocumentHandler(apiClient httpClient.ClientAPI, authService *auth.Service, cacheService *cache.Service, logger *slog.Logger) *UploadDocumentHandler {
	return &UploadDocumentHandler{
		apiClient: apiClient,
		auth:      authService,
		cache:     cacheService,
		logger:    logger,
	}
}

// Handle выполняет одну операцию выгрузки документа
func (h *UploadDocumentHandler) Handle(ctx context.Context, op *models.QueuedOperation) error {
	payload, err := models.DecodePayload(op)
	if err != nil {
		return err
	}
	p, ok := payload.(models.UploadDocumentPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type for %s", op.Type)
	}

	accessToken, err := h.auth.AccessToken(ctx)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(p.LocalPath)
	if err != nil {
		return fmt.Errorf("failed to read local file: %w", err)
	}

	// Путь в blob-хранилище выводится из ключа идемпотентности:
	// повторная выгрузка перезаписывает тот же объект
	storagePath := fmt.Sprintf("%s/%s", p.UserID, op.IdempotencyKey)

	if err := h.apiClient.UploadBlob(ctx, accessToken, storagePath, data); err != nil {
		return fmt.Errorf("failed to upload blob: %w", err)
	}

	rec := api.DocumentRecord{
		ID:          op.IdempotencyKey,
		UserID:      p.UserID,
		Name:        p.Name,
		MimeType:    p.MimeType,
		Size:        int64(len(data)),
		StoragePath: storagePath,
		CreatedAt:   time.Now(),
	}

	if err := h.apiClient.InsertDocument(ctx, accessToken, rec); err != nil {
		return fmt.Errorf("failed to insert document record: %w", err)
	}

	// Сервер подтвердил документ: кешируем каноническую запись и
	// убираем локальный placeholder
	canonical := &models.Document{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Name:        rec.Name,
		MimeType:    rec.MimeType,
		Size:        rec.Size,
		StoragePath: rec.StoragePath,
		CreatedAt:   rec.CreatedAt,
	}
	if err := h.cache.CacheDocument(ctx, canonical); err != nil {
		return err
	}
	if p.DocumentID != canonical.ID {
		if err := h.cache.DeleteDocument(ctx, p.DocumentID); err != nil {
			return err
		}
	}

	return nil
}

// CreateQuizHandler публикует квиз через общий Publisher и заменяет
// pending-запись в кеше канонической
type CreateQuizHandler struct {
	publisher *Publisher
	auth      *auth.Service
	cache     *cache.Service
	logger    *slog.Logger
}

// NewCreateQuizHandler creates a handler for quiz creation operations
func NewCreateQuizHandler(publisher *Publisher, authService *auth.Service, cacheService *cache.Service, logger *slog.Logger) *CreateQuizHandler {
	return &CreateQuizHandler{
		publisher: publisher,
		auth:      authService,
		cache:     cacheService,
		logger:    logger,
	}
}

// Handle выполняет одну операцию создания квиза
func (h *CreateQuizHandler) Handle(ctx context.Context, op *models.QueuedOperation) error {
	payload, err := models.DecodePayload(op)
	if err != nil {
		return err
	}
	p, ok := payload.(models.CreateQuizPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type for %s", op.Type)
	}

	accessToken, err := h.auth.AccessToken(ctx)
	if err != nil {
		return err
	}

	quiz, err := h.publisher.PublishQuiz(ctx, accessToken, PublishParams{
		QuizID:        op.IdempotencyKey,
		UserID:        p.UserID,
		Title:         p.Title,
		DocumentIDs:   p.DocumentIDs,
		QuestionCount: p.QuestionCount,
	})
	if err != nil {
		return err
	}

	// pending-запись удаляется ровно тогда, когда каноническая закеширована
	return h.cache.ReplacePendingQuiz(ctx, p.QuizID, quiz)
}

// SaveQuizResultHandler сохраняет результат прохождения квиза на сервере
type SaveQuizResultHandler struct {
	apiClient httpClient.ClientAPI
	auth      *auth.Service
	logger    *slog.Logger
}

// NewSaveQuizResultHandler creates a handler for result submissions
func NewSaveQuizResultHandler(apiClient httpClient.ClientAPI, authService *auth.Service, logger *slog.Logger) *SaveQuizResultHandler {
	return &SaveQuizResultHandler{
		apiClient: apiClient,
		auth:      authService,
		logger:    logger,
	}
}

// Handle выполняет одну операцию сохранения результата
func (h *SaveQuizResultHandler) Handle(ctx context.Context, op *models.QueuedOperation) error {
	payload, err := models.DecodePayload(op)
	if err != nil {
		return err
	}
	p, ok := payload.(models.SaveQuizResultPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type for %s", op.Type)
	}

	accessToken, err := h.auth.AccessToken(ctx)
	if err != nil {
		return err
	}

	rec := api.QuizResultRecord{
		ID:          op.IdempotencyKey,
		UserID:      p.UserID,
		QuizID:      p.QuizID,
		Score:       p.Score,
		Total:       p.Total,
		Answers:     p.Answers,
		CompletedAt: p.CompletedAt,
	}

	if err := h.apiClient.InsertQuizResult(ctx, accessToken, rec); err != nil {
		return fmt.Errorf("failed to insert quiz result: %w", err)
	}

	return nil
}
