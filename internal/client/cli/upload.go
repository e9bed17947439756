package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/iudanet/quizkeeper/internal/models"
)

func (c *Cli) runUpload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: quizkeeper upload <file>")
	}

	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("not authenticated. Please run 'quizkeeper login' first")
	}

	localPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve file path: %w", err)
	}

	info, err := os.Stat(localPath)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", localPath)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(localPath))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	// Документ сразу попадает в локальный кеш с placeholder-id;
	// канонический серверный ID появится после выгрузки
	doc := &models.Document{
		ID:        models.NewOfflineID(),
		UserID:    session.UserID,
		Name:      filepath.Base(localPath),
		MimeType:  mimeType,
		Size:      info.Size(),
		LocalPath: localPath,
		CreatedAt: time.Now(),
	}

	if err := c.cacheService.CacheDocument(ctx, doc); err != nil {
		return fmt.Errorf("failed to cache document: %w", err)
	}

	opID, err := c.queueManager.Enqueue(ctx, models.UploadDocumentPayload{
		UserID:     session.UserID,
		DocumentID: doc.ID,
		Name:       doc.Name,
		MimeType:   doc.MimeType,
		LocalPath:  doc.LocalPath,
	}, models.DefaultPriority)
	if err != nil {
		return fmt.Errorf("failed to enqueue upload: %w", err)
	}

	c.io.Printf("✓ Document cached: %s (%d bytes)\n", doc.Name, doc.Size)

	if c.monitor.Offline() {
		c.io.Println("Offline: upload queued, it will run when connectivity returns.")
		c.io.Printf("Operation ID: %s\n", opID)
		return nil
	}

	// Онлайн: отдаем очередь на обработку сразу
	result, err := c.queueManager.Drain(ctx, false)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	if result.PermanentlyFailed > 0 {
		c.io.Println("⚠️  Upload failed permanently, see 'quizkeeper status' for details.")
		return nil
	}
	if result.Remaining > 0 {
		c.io.Println("⚠️  Upload did not complete, it stays in the queue.")
		c.io.Println("Run 'quizkeeper sync' to retry.")
		return nil
	}

	c.io.Println("✓ Document uploaded to server.")

	return nil
}
