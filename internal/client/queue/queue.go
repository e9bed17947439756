package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/quizkeeper/internal/client/storage"
	"github.com/iudanet/quizkeeper/internal/models"
)

const (
	// MaxRetries лимит попыток для одной операции. Операция, исчерпавшая
	// лимит, удаляется из очереди и больше никогда не повторяется
	// автоматически.
	MaxRetries = 3

	// maxSyncErrors сколько последних перманентных сбоев хранится в статусе
	maxSyncErrors = 20
)

// Handler обрабатывает операции одного типа. Новый тип операции
// регистрирует новый handler вместо расширения условной логики.
type Handler interface {
	Handle(ctx context.Context, op *models.QueuedOperation) error
}

// HandlerFunc адаптирует функцию к интерфейсу Handler
type HandlerFunc func(ctx context.Context, op *models.QueuedOperation) error

func (f HandlerFunc) Handle(ctx context.Context, op *models.QueuedOperation) error {
	return f(ctx, op)
}

// OfflineChecker сообщает текущее состояние связи (точечная проверка)
type OfflineChecker interface {
	Offline() bool
}

// DrainResult содержит итоги одного drain-прохода
type DrainResult struct {
	Succeeded         int // операций выполнено и удалено из очереди
	PermanentlyFailed int // операций финализировано как перманентный сбой
	Remaining         int // операций осталось в очереди
}

// Manager владеет durable-очередью отложенных операций и агрегированным
// sync-статусом. Вся мутация очереди идет через его методы.
//
// stateMu закрывает каждую последовательность load → mutate → save
// персистентной очереди, drainMu делает drain single-flight: два
// конкурентных drain-а не могут обработать одну операцию дважды.
type Manager struct {
	queueStorage  storage.QueueStorage
	statusStorage storage.StatusStorage
	offline       OfflineChecker
	logger        *slog.Logger

	handlers map[models.OperationType]Handler

	stateMu sync.Mutex
	drainMu sync.Mutex
}

// NewManager creates a new queue manager
func NewManager(queueStorage storage.QueueStorage, statusStorage storage.StatusStorage, offline OfflineChecker, logger *slog.Logger) *Manager {
	return &Manager{
		queueStorage:  queueStorage,
		statusStorage: statusStorage,
		offline:       offline,
		logger:        logger,
		handlers:      make(map[models.OperationType]Handler),
	}
}

// Register привязывает handler к типу операции.
// Вызывается при сборке приложения, до первого Drain.
func (m *Manager) Register(opType models.OperationType, h Handler) {
	m.handlers[opType] = h
}

// Enqueue добавляет операцию в durable-очередь и пересчитывает статус.
// Никогда не ходит в сеть и успешно работает оффлайн; единственная
// причина ошибки — сбой локального хранилища.
func (m *Manager) Enqueue(ctx context.Context, payload models.OperationPayload, priority int) (string, error) {
	if priority == 0 {
		priority = models.DefaultPriority
	}
	if priority < models.MinPriority {
		priority = models.MinPriority
	}
	if priority > models.MaxPriority {
		priority = models.MaxPriority
	}

	raw, err := models.EncodePayload(payload)
	if err != nil {
		return "", err
	}

	op := &models.QueuedOperation{
		ID:             uuid.New().String(),
		Type:           payload.OperationType(),
		Payload:        raw,
		Priority:       priority,
		EnqueuedAt:     time.Now(),
		RetryCount:     0,
		Status:         models.OperationPending,
		IdempotencyKey: uuid.New().String(),
	}

	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	ops, err := m.queueStorage.LoadQueue(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load queue: %w", err)
	}

	ops = append(ops, op)

	if err := m.queueStorage.SaveQueue(ctx, ops); err != nil {
		return "", fmt.Errorf("failed to save queue: %w", err)
	}

	m.logger.Info("operation enqueued",
		"operation_id", op.ID,
		"type", op.Type,
		"priority", op.Priority,
		"queue_length", len(ops))

	// Статус обновляется best-effort: операция уже durable
	if err := m.updateStatus(ctx, func(st *models.SyncStatus) {
		st.PendingOperations = len(ops)
	}); err != nil {
		m.logger.Warn("failed to update sync status after enqueue", "error", err)
	}

	return op.ID, nil
}

// Drain выполняет один проход по очереди в порядке приоритетов.
// Если force=false и связи нет — это явный no-op для оппортунистических
// вызовов: нулевые счетчики, персистентное состояние не трогается.
func (m *Manager) Drain(ctx context.Context, force bool) (*DrainResult, error) {
	if !force && m.offline.Offline() {
		m.logger.Debug("drain skipped: offline")
		return &DrainResult{}, nil
	}

	// Single-flight: второй конкурентный drain дождется первого
	// и обработает только то, что осталось
	m.drainMu.Lock()
	defer m.drainMu.Unlock()

	m.stateMu.Lock()
	snapshot, err := m.queueStorage.LoadQueue(ctx)
	m.stateMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	sortOperations(snapshot)

	result := &DrainResult{}

	// Итоги прохода по ID операций
	succeeded := make(map[string]bool)
	permanent := make(map[string]bool)
	failed := make(map[string]*models.QueuedOperation)
	var permErrors []models.SyncError

	for _, op := range snapshot {
		// Операции, уже исчерпавшие лимит (например, записанные старой
		// версией), финализируются без новой попытки
		if op.RetryCount >= MaxRetries {
			permanent[op.ID] = true
			permErrors = append(permErrors, newSyncError(op))
			result.PermanentlyFailed++
			m.logger.Error("operation permanently failed",
				"operation_id", op.ID,
				"type", op.Type,
				"retry_count", op.RetryCount,
				"last_error", op.LastError)
			continue
		}

		op.Status = models.OperationProcessing

		err := m.dispatch(ctx, op)
		if err == nil {
			succeeded[op.ID] = true
			result.Succeeded++
			m.logger.Info("operation completed",
				"operation_id", op.ID,
				"type", op.Type)
			continue
		}

		op.RetryCount++
		op.Status = models.OperationFailed
		op.LastError = err.Error()

		// Лимит достигнут этой попыткой: финализируем сразу, без
		// дополнительного холостого прохода
		if op.RetryCount >= MaxRetries {
			permanent[op.ID] = true
			permErrors = append(permErrors, newSyncError(op))
			result.PermanentlyFailed++
			m.logger.Error("operation permanently failed",
				"operation_id", op.ID,
				"type", op.Type,
				"retry_count", op.RetryCount,
				"last_error", op.LastError)
			continue
		}

		failed[op.ID] = op
		m.logger.Warn("operation failed, will retry",
			"operation_id", op.ID,
			"type", op.Type,
			"retry_count", op.RetryCount,
			"error", err)
	}

	// Применяем итоги к персистентной очереди. Перечитываем ее под
	// mutex-ом: за время прохода могли добавиться новые операции,
	// и они должны пережить запись.
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	current, err := m.queueStorage.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload queue: %w", err)
	}

	reduced := make([]*models.QueuedOperation, 0, len(current))
	for _, op := range current {
		if succeeded[op.ID] || permanent[op.ID] {
			continue
		}
		if updated, ok := failed[op.ID]; ok {
			reduced = append(reduced, updated)
			continue
		}
		reduced = append(reduced, op)
	}

	if len(reduced) == 0 {
		// Пустая очередь удаляется целиком, а не хранится пустым массивом
		if err := m.queueStorage.DeleteQueue(ctx); err != nil {
			return nil, fmt.Errorf("failed to delete queue: %w", err)
		}
	} else {
		if err := m.queueStorage.SaveQueue(ctx, reduced); err != nil {
			return nil, fmt.Errorf("failed to save queue: %w", err)
		}
	}

	result.Remaining = len(reduced)

	if err := m.updateStatus(ctx, func(st *models.SyncStatus) {
		st.PendingOperations = len(reduced)
		st.LastSyncAttempt = time.Now()
		st.SyncErrors = append(st.SyncErrors, permErrors...)
		if len(st.SyncErrors) > maxSyncErrors {
			st.SyncErrors = st.SyncErrors[len(st.SyncErrors)-maxSyncErrors:]
		}
	}); err != nil {
		m.logger.Warn("failed to update sync status after drain", "error", err)
	}

	m.logger.Info("drain pass completed",
		"succeeded", result.Succeeded,
		"permanently_failed", result.PermanentlyFailed,
		"remaining", result.Remaining)

	return result, nil
}

// PendingCount возвращает длину живой очереди
func (m *Manager) PendingCount(ctx context.Context) (int, error) {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()

	ops, err := m.queueStorage.LoadQueue(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load queue: %w", err)
	}
	return len(ops), nil
}

// Status возвращает агрегированный sync-статус.
// IsOffline всегда берется из монитора связи, а не из сохраненного снимка.
func (m *Manager) Status(ctx context.Context) (*models.SyncStatus, error) {
	st, err := m.statusStorage.GetSyncStatus(ctx)
	if err != nil {
		if err == storage.ErrStatusNotFound {
			st = &models.SyncStatus{}
		} else {
			return nil, fmt.Errorf("failed to get sync status: %w", err)
		}
	}

	st.IsOffline = m.offline.Offline()

	// PendingOperations обязан совпадать с живой очередью
	count, err := m.PendingCount(ctx)
	if err != nil {
		return nil, err
	}
	st.PendingOperations = count

	return st, nil
}

// NoteConnectivity фиксирует переход состояния связи в статусе.
// Вызывается проводкой монитора при каждом переходе.
func (m *Manager) NoteConnectivity(ctx context.Context, offline bool) {
	if err := m.updateStatus(ctx, func(st *models.SyncStatus) {
		st.IsOffline = offline
		if !offline {
			st.LastOnlineTime = time.Now()
		}
	}); err != nil {
		m.logger.Warn("failed to record connectivity transition", "error", err)
	}
}

// dispatch направляет операцию в зарегистрированный handler
func (m *Manager) dispatch(ctx context.Context, op *models.QueuedOperation) error {
	h, ok := m.handlers[op.Type]
	if !ok {
		return fmt.Errorf("no handler registered for operation type %s", op.Type)
	}
	return h.Handle(ctx, op)
}

// updateStatus перечитывает, мутирует и сохраняет sync-статус
func (m *Manager) updateStatus(ctx context.Context, mutate func(*models.SyncStatus)) error {
	st, err := m.statusStorage.GetSyncStatus(ctx)
	if err != nil {
		if err != storage.ErrStatusNotFound {
			return err
		}
		st = &models.SyncStatus{IsOffline: m.offline.Offline()}
	}

	mutate(st)

	return m.statusStorage.SaveSyncStatus(ctx, st)
}

// newSyncError строит запись перманентного сбоя для статуса
func newSyncError(op *models.QueuedOperation) models.SyncError {
	return models.SyncError{
		OperationID: op.ID,
		Type:        op.Type,
		Error:       op.LastError,
		Timestamp:   time.Now(),
	}
}

// sortOperations упорядочивает проход: приоритет по убыванию,
// при равенстве — раньше поставленные раньше
func sortOperations(ops []*models.QueuedOperation) {
	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].Priority != ops[j].Priority {
			return ops[i].Priority > ops[j].Priority
		}
		return ops[i].EnqueuedAt.Before(ops[j].EnqueuedAt)
	})
}
