package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/quizkeeper/internal/server/storage"
)

// MaxBlobSize ограничивает размер выгружаемого документа
const MaxBlobSize = 32 << 20 // 32 MiB

// BlobsHandler handles raw document bytes.
// Путь blob-а имеет вид "{userID}/{key}": пользователь может читать и
// писать только под своим префиксом.
type BlobsHandler struct {
	logger  *slog.Logger
	storage storage.BlobStorage
}

// NewBlobsHandler creates a new blobs handler
func NewBlobsHandler(logger *slog.Logger, blobStorage storage.BlobStorage) *BlobsHandler {
	return &BlobsHandler{
		logger:  logger,
		storage: blobStorage,
	}
}

// HandleBlob обрабатывает PUT и GET /api/v1/blobs/{path...}
func (h *BlobsHandler) HandleBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Получаем user_id из контекста (установлен AuthMiddleware)
	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	path := r.PathValue("path")
	if path == "" {
		http.Error(w, "blob path is required", http.StatusBadRequest)
		return
	}

	// Префикс пути должен совпадать с владельцем
	if !strings.HasPrefix(path, userID+"/") {
		h.logger.Warn("Blob path ownership mismatch",
			"user_id", userID,
			"path", path)
		http.Error(w, "blob path does not belong to user", http.StatusForbidden)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.putBlob(w, r, path)
	case http.MethodGet:
		h.getBlob(w, r, path)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// putBlob сохраняет байты документа (повтор перезаписывает содержимое)
func (h *BlobsHandler) putBlob(w http.ResponseWriter, r *http.Request, path string) {
	ctx := r.Context()

	data, err := io.ReadAll(io.LimitReader(r.Body, MaxBlobSize+1))
	if err != nil {
		h.logger.Error("Failed to read blob body", "error", err, "path", path)
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if len(data) > MaxBlobSize {
		http.Error(w, "blob too large", http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		http.Error(w, "blob body is empty", http.StatusBadRequest)
		return
	}

	if err := h.storage.Put(ctx, path, data); err != nil {
		h.logger.Error("Failed to store blob", "error", err, "path", path)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Blob stored", "path", path, "size", len(data))

	w.WriteHeader(http.StatusCreated)
}

// getBlob возвращает байты документа
func (h *BlobsHandler) getBlob(w http.ResponseWriter, r *http.Request, path string) {
	ctx := r.Context()

	data, err := h.storage.Get(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrBlobNotFound) {
			http.Error(w, "blob not found", http.StatusNotFound)
			return
		}
		h.logger.Error("Failed to read blob", "error", err, "path", path)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("Failed to write blob response", "error", err, "path", path)
	}
}
