package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/quizkeeper/internal/server/storage"
	"github.com/iudanet/quizkeeper/internal/validation"
	"github.com/iudanet/quizkeeper/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
	// UsernameKey ключ для хранения username в контексте
	UsernameKey contextKey = "username"
)

// GetUserID извлекает user_id из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername извлекает username из контекста запроса
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// RecordsHandler handles the typed user collections: documents,
// quizzes and quiz results. Insert-ы идемпотентны: повторная отправка
// записи с тем же ID заменяет ее, а не создает дубликат.
type RecordsHandler struct {
	logger  *slog.Logger
	storage storage.RecordStorage
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(logger *slog.Logger, recordStorage storage.RecordStorage) *RecordsHandler {
	return &RecordsHandler{
		logger:  logger,
		storage: recordStorage,
	}
}

// HandleDocuments обрабатывает GET и POST /api/v1/documents
func (h *RecordsHandler) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Получаем user_id из контекста (установлен AuthMiddleware)
	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.listDocuments(w, r, userID)
	case http.MethodPost:
		h.insertDocument(w, r, userID)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// HandleQuizzes обрабатывает GET и POST /api/v1/quizzes
func (h *RecordsHandler) HandleQuizzes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.listQuizzes(w, r, userID)
	case http.MethodPost:
		h.insertQuiz(w, r, userID)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// HandleResults обрабатывает GET и POST /api/v1/results
func (h *RecordsHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.listResults(w, r, userID)
	case http.MethodPost:
		h.insertResult(w, r, userID)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// insertDocument сохраняет запись документа (upsert по ID)
func (h *RecordsHandler) insertDocument(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	var rec api.DocumentRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		h.logger.Warn("Failed to decode document record", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if rec.ID == "" {
		http.Error(w, "record id is required", http.StatusBadRequest)
		return
	}
	if rec.Name == "" {
		http.Error(w, "document name is required", http.StatusBadRequest)
		return
	}

	// Запись может принадлежать только ее владельцу
	if rec.UserID != userID {
		h.logger.Warn("Document user_id mismatch",
			"expected", userID,
			"got", rec.UserID,
			"record_id", rec.ID)
		http.Error(w, "user_id mismatch", http.StatusForbidden)
		return
	}

	if err := h.storage.UpsertDocument(ctx, &rec); err != nil {
		h.logger.Error("Failed to upsert document", "error", err, "record_id", rec.ID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Document inserted", "user_id", userID, "record_id", rec.ID)

	h.sendInserted(w, rec.ID, "Document inserted successfully")
}

// listDocuments возвращает все документы пользователя
func (h *RecordsHandler) listDocuments(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	docs, err := h.storage.ListDocuments(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list documents", "error", err, "user_id", userID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.DocumentsResponse{Documents: docs})
}

// insertQuiz сохраняет квиз вместе с вопросами одним запросом
func (h *RecordsHandler) insertQuiz(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	var rec api.QuizRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		h.logger.Warn("Failed to decode quiz record", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if rec.ID == "" {
		http.Error(w, "record id is required", http.StatusBadRequest)
		return
	}
	if err := validation.ValidateQuizTitle(rec.Title); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(rec.Questions) == 0 {
		http.Error(w, "quiz must contain at least one question", http.StatusBadRequest)
		return
	}

	if rec.UserID != userID {
		h.logger.Warn("Quiz user_id mismatch",
			"expected", userID,
			"got", rec.UserID,
			"record_id", rec.ID)
		http.Error(w, "user_id mismatch", http.StatusForbidden)
		return
	}

	// QuestionCount ведется сервером по фактическому набору вопросов
	rec.QuestionCount = len(rec.Questions)

	if err := h.storage.UpsertQuiz(ctx, &rec); err != nil {
		h.logger.Error("Failed to upsert quiz", "error", err, "record_id", rec.ID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Quiz inserted",
		"user_id", userID,
		"record_id", rec.ID,
		"questions", len(rec.Questions))

	h.sendInserted(w, rec.ID, "Quiz inserted successfully")
}

// listQuizzes возвращает все квизы пользователя с вопросами
func (h *RecordsHandler) listQuizzes(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	quizzes, err := h.storage.ListQuizzes(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list quizzes", "error", err, "user_id", userID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.QuizzesResponse{Quizzes: quizzes})
}

// insertResult сохраняет результат прохождения квиза.
// Квиза с таким quiz_id может еще не быть на сервере: очередь клиента
// не гарантирует порядок между разными типами операций.
func (h *RecordsHandler) insertResult(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	var rec api.QuizResultRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		h.logger.Warn("Failed to decode quiz result record", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if rec.ID == "" {
		http.Error(w, "record id is required", http.StatusBadRequest)
		return
	}
	if rec.QuizID == "" {
		http.Error(w, "quiz_id is required", http.StatusBadRequest)
		return
	}

	if rec.UserID != userID {
		h.logger.Warn("Quiz result user_id mismatch",
			"expected", userID,
			"got", rec.UserID,
			"record_id", rec.ID)
		http.Error(w, "user_id mismatch", http.StatusForbidden)
		return
	}

	if err := h.storage.UpsertQuizResult(ctx, &rec); err != nil {
		h.logger.Error("Failed to upsert quiz result", "error", err, "record_id", rec.ID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("Quiz result inserted",
		"user_id", userID,
		"record_id", rec.ID,
		"quiz_id", rec.QuizID)

	h.sendInserted(w, rec.ID, "Quiz result inserted successfully")
}

// listResults возвращает все результаты пользователя
func (h *RecordsHandler) listResults(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	results, err := h.storage.ListQuizResults(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to list quiz results", "error", err, "user_id", userID)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.ResultsResponse{Results: results})
}

// sendInserted отправляет подтверждение insert-а
func (h *RecordsHandler) sendInserted(w http.ResponseWriter, id, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(api.InsertResponse{ID: id, Message: message}); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// sendJSON отправляет JSON ответ со статусом 200
func (h *RecordsHandler) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}
