package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OperationType определяет вид отложенной операции
type OperationType string

const (
	// OperationUploadDocument выгрузка документа: blob + метаданные
	OperationUploadDocument OperationType = "upload_document"
	// OperationCreateQuiz генерация и публикация квиза
	OperationCreateQuiz OperationType = "create_quiz"
	// OperationSaveQuizResult сохранение результата прохождения квиза
	OperationSaveQuizResult OperationType = "save_quiz_result"
)

// OperationStatus статус операции в очереди
type OperationStatus string

const (
	// OperationPending операция ожидает обработки
	OperationPending OperationStatus = "pending"
	// OperationProcessing операция обрабатывается прямо сейчас
	OperationProcessing OperationStatus = "processing"
	// OperationFailed последняя попытка завершилась ошибкой
	OperationFailed OperationStatus = "failed"
)

// Priority границы и значение по умолчанию для приоритета операции
const (
	MinPriority     = 1
	MaxPriority     = 10
	DefaultPriority = 5
)

// QueuedOperation представляет одну отложенную операцию в durable-очереди.
// Type и Payload неизменяемы после создания; ID стабилен на все время
// жизни операции. IdempotencyKey прокидывается в удаленные записи,
// чтобы повторная попытка после частичного сбоя не создавала дубликатов.
type QueuedOperation struct {
	ID             string          `json:"id"`                   // ID уникальный идентификатор операции
	Type           OperationType   `json:"type"`                 // Type вид операции
	Payload        json.RawMessage `json:"payload"`              // Payload типизированные данные операции
	Priority       int             `json:"priority"`             // Priority 1-10, больший приоритет обрабатывается раньше
	EnqueuedAt     time.Time       `json:"enqueued_at"`          // EnqueuedAt время постановки в очередь (tiebreak)
	RetryCount     int             `json:"retry_count"`          // RetryCount количество неудачных попыток
	Status         OperationStatus `json:"status"`               // Status текущий статус
	LastError      string          `json:"last_error,omitempty"` // LastError сообщение последней ошибки
	IdempotencyKey string          `json:"idempotency_key"`      // IdempotencyKey ключ идемпотентности для remote-записей
}

// OperationPayload объединяет типизированные payload-ы операций.
// Новый вид операции добавляет новую реализацию вместо расширения
// условной логики в обработчике.
type OperationPayload interface {
	OperationType() OperationType
}

// UploadDocumentPayload данные для выгрузки документа на сервер
type UploadDocumentPayload struct {
	UserID     string `json:"user_id"`     // UserID владелец документа
	DocumentID string `json:"document_id"` // DocumentID идентификатор закешированного документа
	Name       string `json:"name"`        // Name имя файла
	MimeType   string `json:"mime_type"`   // MimeType MIME-тип
	LocalPath  string `json:"local_path"`  // LocalPath путь к локальному файлу с байтами
}

func (UploadDocumentPayload) OperationType() OperationType { return OperationUploadDocument }

// CreateQuizPayload данные для генерации и публикации квиза
type CreateQuizPayload struct {
	UserID        string   `json:"user_id"`        // UserID владелец квиза
	QuizID        string   `json:"quiz_id"`        // QuizID offline-id закешированного pending-квиза
	Title         string   `json:"title"`          // Title название квиза
	DocumentIDs   []string `json:"document_ids"`   // DocumentIDs исходные документы
	QuestionCount int      `json:"question_count"` // QuestionCount число вопросов
}

func (CreateQuizPayload) OperationType() OperationType { return OperationCreateQuiz }

// SaveQuizResultPayload данные для сохранения результата квиза
type SaveQuizResultPayload struct {
	UserID      string    `json:"user_id"`      // UserID кто проходил квиз
	QuizID      string    `json:"quiz_id"`      // QuizID какой квиз
	Score       int       `json:"score"`        // Score правильных ответов
	Total       int       `json:"total"`        // Total всего вопросов
	Answers     []int     `json:"answers"`      // Answers выбранные индексы
	CompletedAt time.Time `json:"completed_at"` // CompletedAt время завершения
}

func (SaveQuizResultPayload) OperationType() OperationType { return OperationSaveQuizResult }

// EncodePayload сериализует типизированный payload в JSON
func EncodePayload(p OperationPayload) (json.RawMessage, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", p.OperationType(), err)
	}
	return data, nil
}

// DecodePayload десериализует payload операции в типизированную структуру.
// Switch по типу исчерпывающий: неизвестный тип — это ошибка данных.
func DecodePayload(op *QueuedOperation) (OperationPayload, error) {
	switch op.Type {
	case OperationUploadDocument:
		var p UploadDocumentPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal upload payload: %w", err)
		}
		return p, nil
	case OperationCreateQuiz:
		var p CreateQuizPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal create quiz payload: %w", err)
		}
		return p, nil
	case OperationSaveQuizResult:
		var p SaveQuizResultPayload
		if err := json.Unmarshal(op.Payload, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal save result payload: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

// SyncError описывает операцию, окончательно исчерпавшую лимит попыток
type SyncError struct {
	OperationID string        `json:"operation_id"` // OperationID идентификатор операции
	Type        OperationType `json:"type"`         // Type вид операции
	Error       string        `json:"error"`        // Error сообщение последней ошибки
	Timestamp   time.Time     `json:"timestamp"`    // Timestamp когда операция была финализирована
}

// SyncStatus агрегирует состояние синхронизации для отображения.
// Пересчитывается движком; UI никогда не пишет его напрямую.
type SyncStatus struct {
	IsOffline         bool        `json:"is_offline"`        // IsOffline текущее состояние связи
	LastOnlineTime    time.Time   `json:"last_online_time"`  // LastOnlineTime когда связь была в последний раз
	LastSyncAttempt   time.Time   `json:"last_sync_attempt"` // LastSyncAttempt время последнего drain-прохода
	PendingOperations int         `json:"pending_operations"` // PendingOperations длина живой очереди
	SyncErrors        []SyncError `json:"sync_errors"`       // SyncErrors последние перманентные сбои (ограниченный список)
}
