package queue

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quizkeeper/internal/client/storage"
	"github.com/iudanet/quizkeeper/internal/models"
)

// stubOffline фиксированное состояние связи для тестов
type stubOffline struct {
	mu      sync.Mutex
	offline bool
}

func (s *stubOffline) Offline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offline
}

func (s *stubOffline) set(offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offline = offline
}

// memQueue in-memory хранилище очереди. Копирует операции при load/save,
// эмулируя JSON round-trip реального bbolt-хранилища.
type memQueue struct {
	mu  sync.Mutex
	ops []*models.QueuedOperation
	has bool
}

func cloneOps(ops []*models.QueuedOperation) []*models.QueuedOperation {
	out := make([]*models.QueuedOperation, 0, len(ops))
	for _, op := range ops {
		c := *op
		out = append(out, &c)
	}
	return out
}

func newQueueMock(mem *memQueue) *storage.QueueStorageMock {
	return &storage.QueueStorageMock{
		LoadQueueFunc: func(ctx context.Context) ([]*models.QueuedOperation, error) {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			if !mem.has {
				return []*models.QueuedOperation{}, nil
			}
			return cloneOps(mem.ops), nil
		},
		SaveQueueFunc: func(ctx context.Context, ops []*models.QueuedOperation) error {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			mem.ops = cloneOps(ops)
			mem.has = true
			return nil
		},
		DeleteQueueFunc: func(ctx context.Context) error {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			mem.ops = nil
			mem.has = false
			return nil
		},
		HasQueueFunc: func(ctx context.Context) (bool, error) {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			return mem.has, nil
		},
	}
}

// memStatus in-memory хранилище sync-статуса
type memStatus struct {
	mu     sync.Mutex
	status *models.SyncStatus
}

func newStatusMock(mem *memStatus) *storage.StatusStorageMock {
	return &storage.StatusStorageMock{
		GetSyncStatusFunc: func(ctx context.Context) (*models.SyncStatus, error) {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			if mem.status == nil {
				return nil, storage.ErrStatusNotFound
			}
			c := *mem.status
			c.SyncErrors = append([]models.SyncError(nil), mem.status.SyncErrors...)
			return &c, nil
		},
		SaveSyncStatusFunc: func(ctx context.Context, status *models.SyncStatus) error {
			mem.mu.Lock()
			defer mem.mu.Unlock()
			c := *status
			c.SyncErrors = append([]models.SyncError(nil), status.SyncErrors...)
			mem.status = &c
			return nil
		},
	}
}

func newTestManager(t *testing.T, offline bool) (*Manager, *memQueue, *memStatus, *stubOffline) {
	t.Helper()

	mem := &memQueue{}
	st := &memStatus{}
	checker := &stubOffline{offline: offline}
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	m := NewManager(newQueueMock(mem), newStatusMock(st), checker, logger)
	return m, mem, st, checker
}

func resultPayload(quizID string) models.SaveQuizResultPayload {
	return models.SaveQuizResultPayload{
		UserID:      "user-123",
		QuizID:      quizID,
		Score:       8,
		Total:       10,
		Answers:     []int{0, 1, 2, 1, 0, 3, 2, 1, 0, 2},
		CompletedAt: time.Now(),
	}
}

func TestEnqueue_Defaults(t *testing.T) {
	m, mem, st, _ := newTestManager(t, true)
	ctx := context.Background()

	id, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	mem.mu.Lock()
	require.Len(t, mem.ops, 1)
	op := mem.ops[0]
	mem.mu.Unlock()

	assert.Equal(t, models.OperationSaveQuizResult, op.Type)
	assert.Equal(t, models.DefaultPriority, op.Priority)
	assert.Equal(t, models.OperationPending, op.Status)
	assert.Equal(t, 0, op.RetryCount)
	assert.NotEmpty(t, op.IdempotencyKey)
	assert.NotEqual(t, op.ID, op.IdempotencyKey)
	assert.False(t, op.EnqueuedAt.IsZero())

	// Статус пересчитан после постановки в очередь
	st.mu.Lock()
	require.NotNil(t, st.status)
	assert.Equal(t, 1, st.status.PendingOperations)
	st.mu.Unlock()
}

func TestEnqueue_PriorityClamp(t *testing.T) {
	m, mem, _, _ := newTestManager(t, true)
	ctx := context.Background()

	_, err := m.Enqueue(ctx, resultPayload("quiz-low"), -3)
	require.NoError(t, err)
	_, err = m.Enqueue(ctx, resultPayload("quiz-high"), 99)
	require.NoError(t, err)

	mem.mu.Lock()
	defer mem.mu.Unlock()
	require.Len(t, mem.ops, 2)
	assert.Equal(t, models.MinPriority, mem.ops[0].Priority)
	assert.Equal(t, models.MaxPriority, mem.ops[1].Priority)
}

func TestEnqueue_WorksOffline(t *testing.T) {
	m, _, _, _ := newTestManager(t, true)
	ctx := context.Background()

	// Оффлайн не мешает постановке в очередь
	for i := 0; i < 5; i++ {
		_, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
		require.NoError(t, err)
	}

	count, err := m.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestDrain_OfflineNoop(t *testing.T) {
	m, mem, _, _ := newTestManager(t, true)
	ctx := context.Background()

	_, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
	require.NoError(t, err)

	handled := 0
	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		handled++
		return nil
	}))

	result, err := m.Drain(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Succeeded)
	assert.Equal(t, 0, result.PermanentlyFailed)
	assert.Equal(t, 0, result.Remaining)
	assert.Equal(t, 0, handled)

	// Очередь не тронута
	mem.mu.Lock()
	assert.Len(t, mem.ops, 1)
	assert.Equal(t, 0, mem.ops[0].RetryCount)
	mem.mu.Unlock()
}

func TestDrain_ForceIgnoresOffline(t *testing.T) {
	m, _, _, _ := newTestManager(t, true)
	ctx := context.Background()

	_, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
	require.NoError(t, err)

	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		return nil
	}))

	result, err := m.Drain(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 0, result.Remaining)
}

func TestDrain_PriorityOrdering(t *testing.T) {
	m, _, _, _ := newTestManager(t, false)
	ctx := context.Background()

	_, err := m.Enqueue(ctx, resultPayload("quiz-a"), 3)
	require.NoError(t, err)
	_, err = m.Enqueue(ctx, resultPayload("quiz-b"), 9)
	require.NoError(t, err)
	_, err = m.Enqueue(ctx, resultPayload("quiz-c"), 5)
	require.NoError(t, err)

	var order []int
	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		order = append(order, op.Priority)
		return nil
	}))

	result, err := m.Drain(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, []int{9, 5, 3}, order)
}

func TestDrain_EqualPriorityFIFO(t *testing.T) {
	m, _, _, _ := newTestManager(t, false)
	ctx := context.Background()

	first, err := m.Enqueue(ctx, resultPayload("quiz-first"), 5)
	require.NoError(t, err)
	second, err := m.Enqueue(ctx, resultPayload("quiz-second"), 5)
	require.NoError(t, err)

	var order []string
	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		order = append(order, op.ID)
		return nil
	}))

	_, err = m.Drain(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, []string{first, second}, order)
}

func TestDrain_QueueDeletedWhenEmpty(t *testing.T) {
	m, mem, _, _ := newTestManager(t, false)
	ctx := context.Background()

	_, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
	require.NoError(t, err)

	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		return nil
	}))

	_, err = m.Drain(ctx, false)
	require.NoError(t, err)

	// Пустая очередь удаляется целиком, а не хранится пустым массивом
	mem.mu.Lock()
	assert.False(t, mem.has)
	mem.mu.Unlock()
}

func TestDrain_RetryCeiling(t *testing.T) {
	m, mem, st, _ := newTestManager(t, false)
	ctx := context.Background()

	opID, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
	require.NoError(t, err)

	attempts := 0
	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		attempts++
		return errors.New("remote unavailable")
	}))

	// Первые два прохода: операция остается с растущим retry_count
	for want := 1; want <= MaxRetries-1; want++ {
		result, err := m.Drain(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Succeeded)
		assert.Equal(t, 0, result.PermanentlyFailed)
		assert.Equal(t, 1, result.Remaining)

		mem.mu.Lock()
		require.Len(t, mem.ops, 1)
		assert.Equal(t, want, mem.ops[0].RetryCount)
		assert.Equal(t, models.OperationFailed, mem.ops[0].Status)
		assert.Equal(t, "remote unavailable", mem.ops[0].LastError)
		mem.mu.Unlock()
	}

	// Третья попытка исчерпывает лимит: операция финализируется сразу,
	// без дополнительного холостого прохода
	result, err := m.Drain(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Succeeded)
	assert.Equal(t, 1, result.PermanentlyFailed)
	assert.Equal(t, 0, result.Remaining)
	assert.Equal(t, MaxRetries, attempts)

	mem.mu.Lock()
	assert.False(t, mem.has)
	mem.mu.Unlock()

	// Перманентный сбой записан в статус ровно один раз
	st.mu.Lock()
	require.NotNil(t, st.status)
	require.Len(t, st.status.SyncErrors, 1)
	assert.Equal(t, opID, st.status.SyncErrors[0].OperationID)
	assert.Equal(t, models.OperationSaveQuizResult, st.status.SyncErrors[0].Type)
	assert.Equal(t, "remote unavailable", st.status.SyncErrors[0].Error)
	st.mu.Unlock()
}

func TestDrain_Conservation(t *testing.T) {
	m, _, _, _ := newTestManager(t, false)
	ctx := context.Background()

	// 2 успеха, 1 повторяемый сбой, 1 перманентный
	for i := 0; i < 3; i++ {
		_, err := m.Enqueue(ctx, resultPayload("quiz-ok"), 0)
		require.NoError(t, err)
	}
	_, err := m.Enqueue(ctx, models.CreateQuizPayload{
		UserID:        "user-123",
		QuizID:        models.NewOfflineID(),
		Title:         "Biology",
		DocumentIDs:   []string{"doc-1"},
		QuestionCount: 10,
	}, 0)
	require.NoError(t, err)

	succeedLeft := 2
	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		if succeedLeft > 0 {
			succeedLeft--
			return nil
		}
		return errors.New("flaky")
	}))
	m.Register(models.OperationCreateQuiz, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		return errors.New("generation down")
	}))

	before, err := m.PendingCount(ctx)
	require.NoError(t, err)

	result, err := m.Drain(ctx, false)
	require.NoError(t, err)

	// Каждая операция учтена ровно в одной категории
	assert.Equal(t, before, result.Succeeded+result.PermanentlyFailed+result.Remaining)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.PermanentlyFailed)
	assert.Equal(t, 2, result.Remaining)
}

func TestDrain_UnregisteredTypeFails(t *testing.T) {
	m, mem, _, _ := newTestManager(t, false)
	ctx := context.Background()

	_, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
	require.NoError(t, err)

	// Обработчик не зарегистрирован: операция остается с ошибкой
	result, err := m.Drain(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Succeeded)
	assert.Equal(t, 1, result.Remaining)

	mem.mu.Lock()
	require.Len(t, mem.ops, 1)
	assert.Equal(t, 1, mem.ops[0].RetryCount)
	assert.Contains(t, mem.ops[0].LastError, "no handler registered")
	mem.mu.Unlock()
}

func TestDrain_EnqueueDuringDrainSurvives(t *testing.T) {
	m, mem, _, _ := newTestManager(t, false)
	ctx := context.Background()

	_, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
	require.NoError(t, err)

	// Обработчик ставит новую операцию прямо во время drain-прохода
	var lateID string
	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		if lateID == "" {
			id, enqErr := m.Enqueue(ctx, resultPayload("quiz-late"), 0)
			require.NoError(t, enqErr)
			lateID = id
		}
		return nil
	}))

	result, err := m.Drain(ctx, false)
	require.NoError(t, err)

	// Новая операция пережила запись результатов прохода
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Remaining)

	mem.mu.Lock()
	require.Len(t, mem.ops, 1)
	assert.Equal(t, lateID, mem.ops[0].ID)
	mem.mu.Unlock()
}

func TestDrain_ConcurrentSingleFlight(t *testing.T) {
	m, _, _, _ := newTestManager(t, false)
	ctx := context.Background()

	const total = 10
	for i := 0; i < total; i++ {
		_, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
		require.NoError(t, err)
	}

	var handledMu sync.Mutex
	handled := make(map[string]int)
	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		handledMu.Lock()
		handled[op.ID]++
		handledMu.Unlock()
		return nil
	}))

	var wg sync.WaitGroup
	results := make([]*DrainResult, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := m.Drain(ctx, false)
			require.NoError(t, err)
			results[i] = r
		}(i)
	}
	wg.Wait()

	// Каждая операция обработана ровно один раз, суммарные итоги сходятся
	handledMu.Lock()
	assert.Len(t, handled, total)
	for id, n := range handled {
		assert.Equal(t, 1, n, "operation %s handled more than once", id)
	}
	handledMu.Unlock()

	assert.Equal(t, total, results[0].Succeeded+results[1].Succeeded)
}

func TestDrain_SyncErrorsBounded(t *testing.T) {
	m, _, st, _ := newTestManager(t, false)
	ctx := context.Background()

	// Статус уже содержит максимум записей о сбоях
	existing := make([]models.SyncError, 0, maxSyncErrors)
	for i := 0; i < maxSyncErrors; i++ {
		existing = append(existing, models.SyncError{
			OperationID: "old-op",
			Type:        models.OperationSaveQuizResult,
			Error:       "old failure",
			Timestamp:   time.Now().Add(-time.Hour),
		})
	}
	st.mu.Lock()
	st.status = &models.SyncStatus{SyncErrors: existing}
	st.mu.Unlock()

	opID, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
	require.NoError(t, err)

	m.Register(models.OperationSaveQuizResult, HandlerFunc(func(ctx context.Context, op *models.QueuedOperation) error {
		return errors.New("still broken")
	}))

	// Доводим операцию до перманентного сбоя
	for i := 0; i < MaxRetries; i++ {
		_, err := m.Drain(ctx, false)
		require.NoError(t, err)
	}

	// Старейшая запись вытеснена, новая на месте
	st.mu.Lock()
	defer st.mu.Unlock()
	require.Len(t, st.status.SyncErrors, maxSyncErrors)
	assert.Equal(t, opID, st.status.SyncErrors[maxSyncErrors-1].OperationID)
}

func TestStatus_RecomputesPending(t *testing.T) {
	m, _, _, checker := newTestManager(t, true)
	ctx := context.Background()

	_, err := m.Enqueue(ctx, resultPayload("quiz-1"), 0)
	require.NoError(t, err)
	_, err = m.Enqueue(ctx, resultPayload("quiz-2"), 0)
	require.NoError(t, err)

	status, err := m.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.IsOffline)
	assert.Equal(t, 2, status.PendingOperations)

	// IsOffline всегда из монитора, а не из сохраненного снимка
	checker.set(false)
	status, err = m.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsOffline)
}

func TestStatus_EmptyWithoutHistory(t *testing.T) {
	m, _, _, _ := newTestManager(t, false)
	ctx := context.Background()

	status, err := m.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsOffline)
	assert.Equal(t, 0, status.PendingOperations)
	assert.Empty(t, status.SyncErrors)
}

func TestNoteConnectivity(t *testing.T) {
	m, _, st, _ := newTestManager(t, false)
	ctx := context.Background()

	m.NoteConnectivity(ctx, false)

	st.mu.Lock()
	defer st.mu.Unlock()
	require.NotNil(t, st.status)
	assert.False(t, st.status.IsOffline)
	assert.False(t, st.status.LastOnlineTime.IsZero())
}
