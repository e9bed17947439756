package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/quizkeeper/internal/client/cache"
	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/pkg/api"
)

func (c *Cli) runDocuments(ctx context.Context) error {
	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("not authenticated. Please run 'quizkeeper login' first")
	}

	cached, err := c.cacheService.Documents(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to read cached documents: %w", err)
	}

	docs := cached
	fromCache := true

	// Онлайн: объединяем серверный список с кешем (сервер выигрывает)
	// и обновляем кеш результатом
	if !c.monitor.Offline() {
		if remote, err := c.fetchRemoteDocuments(ctx); err != nil {
			c.logger.Warn("failed to fetch documents from server, using cache", "error", err)
		} else {
			docs = cache.ReconcileDocuments(remote, cached)
			fromCache = false

			for _, doc := range docs {
				if err := c.cacheService.CacheDocument(ctx, doc); err != nil {
					c.logger.Warn("failed to refresh cached document",
						"document_id", doc.ID,
						"error", err)
				}
			}
		}
	}

	if fromCache {
		c.io.Println("=== Documents (cached) ===")
	} else {
		c.io.Println("=== Documents ===")
	}
	c.io.Println("")

	if len(docs) == 0 {
		c.io.Println("No documents. Use 'quizkeeper upload <file>' to add one.")
		return nil
	}

	for _, doc := range docs {
		marker := ""
		if models.IsOfflineID(doc.ID) {
			marker = "  [not uploaded yet]"
		}
		c.io.Printf("%s  %s  %d bytes  %s%s\n",
			doc.ID,
			doc.Name,
			doc.Size,
			doc.CreatedAt.Format(time.RFC3339),
			marker)
	}

	return nil
}

// fetchRemoteDocuments запрашивает документы с сервера и приводит их
// к локальной модели
func (c *Cli) fetchRemoteDocuments(ctx context.Context) ([]*models.Document, error) {
	accessToken, err := c.authService.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	records, err := c.apiClient.ListDocuments(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	docs := make([]*models.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, documentFromRecord(rec))
	}
	return docs, nil
}

func documentFromRecord(rec api.DocumentRecord) *models.Document {
	return &models.Document{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Name:        rec.Name,
		MimeType:    rec.MimeType,
		Size:        rec.Size,
		StoragePath: rec.StoragePath,
		CreatedAt:   rec.CreatedAt,
	}
}
