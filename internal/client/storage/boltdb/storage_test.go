package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quizkeeper/internal/client/storage"
	"github.com/iudanet/quizkeeper/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestNew_CreatesDatabase(t *testing.T) {
	s := newTestStorage(t)
	assert.NotNil(t, s)
}

func TestQueue_LoadEmptyWithoutSave(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	ops, err := s.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	has, err := s.HasQueue(ctx)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestQueue_SaveLoadRoundtrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	payload, err := models.EncodePayload(models.SaveQuizResultPayload{
		UserID: "user-123",
		QuizID: "quiz-1",
		Score:  7,
		Total:  10,
	})
	require.NoError(t, err)

	ops := []*models.QueuedOperation{
		{
			ID:             "op-1",
			Type:           models.OperationSaveQuizResult,
			Payload:        payload,
			Priority:       5,
			EnqueuedAt:     time.Now().Truncate(time.Second),
			Status:         models.OperationPending,
			IdempotencyKey: "idem-1",
		},
		{
			ID:             "op-2",
			Type:           models.OperationCreateQuiz,
			Payload:        payload,
			Priority:       9,
			EnqueuedAt:     time.Now().Truncate(time.Second),
			RetryCount:     2,
			Status:         models.OperationFailed,
			LastError:      "remote unavailable",
			IdempotencyKey: "idem-2",
		},
	}

	require.NoError(t, s.SaveQueue(ctx, ops))

	has, err := s.HasQueue(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	loaded, err := s.LoadQueue(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "op-1", loaded[0].ID)
	assert.Equal(t, models.OperationSaveQuizResult, loaded[0].Type)
	assert.Equal(t, "op-2", loaded[1].ID)
	assert.Equal(t, 2, loaded[1].RetryCount)
	assert.Equal(t, "remote unavailable", loaded[1].LastError)
}

func TestQueue_SaveReplacesExisting(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first := []*models.QueuedOperation{{ID: "op-1", Type: models.OperationCreateQuiz}}
	second := []*models.QueuedOperation{{ID: "op-2", Type: models.OperationUploadDocument}}

	require.NoError(t, s.SaveQueue(ctx, first))
	require.NoError(t, s.SaveQueue(ctx, second))

	loaded, err := s.LoadQueue(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "op-2", loaded[0].ID)
}

func TestQueue_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveQueue(ctx, []*models.QueuedOperation{{ID: "op-1"}}))
	require.NoError(t, s.DeleteQueue(ctx))

	has, err := s.HasQueue(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	ops, err := s.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestQueue_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := New(ctx, dbPath)
	require.NoError(t, err)

	require.NoError(t, s.SaveQueue(ctx, []*models.QueuedOperation{
		{ID: "op-1", Type: models.OperationCreateQuiz, Priority: 7},
	}))
	require.NoError(t, s.Close())

	// Очередь durable: переоткрытие базы сохраняет операции
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s.Close())
	}()

	loaded, err := s.LoadQueue(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "op-1", loaded[0].ID)
	assert.Equal(t, 7, loaded[0].Priority)
}

func TestDocument_Roundtrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	doc := &models.Document{
		ID:          "doc-1",
		UserID:      "user-123",
		Name:        "lecture.pdf",
		MimeType:    "application/pdf",
		Size:        2048,
		StoragePath: "user-123/doc-1",
		CreatedAt:   time.Now().Truncate(time.Second),
	}

	require.NoError(t, s.SaveDocument(ctx, doc))

	loaded, err := s.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, doc.Name, loaded.Name)
	assert.Equal(t, doc.Size, loaded.Size)
	assert.Equal(t, doc.StoragePath, loaded.StoragePath)
}

func TestDocument_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestDocument_ListFiltersByUser(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDocument(ctx, &models.Document{ID: "doc-1", UserID: "user-123"}))
	require.NoError(t, s.SaveDocument(ctx, &models.Document{ID: "doc-2", UserID: "user-123"}))
	require.NoError(t, s.SaveDocument(ctx, &models.Document{ID: "doc-3", UserID: "user-456"}))

	docs, err := s.ListDocuments(ctx, "user-123")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestDocument_DeleteIdempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveDocument(ctx, &models.Document{ID: "doc-1", UserID: "user-123"}))
	require.NoError(t, s.DeleteDocument(ctx, "doc-1"))

	// Повторное удаление — no-op
	require.NoError(t, s.DeleteDocument(ctx, "doc-1"))

	_, err := s.GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
}

func TestQuiz_RoundtripWithQuestions(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	quiz := &models.Quiz{
		ID:            "quiz-1",
		UserID:        "user-123",
		Title:         "Biology basics",
		DocumentIDs:   []string{"doc-1", "doc-2"},
		QuestionCount: 2,
		Questions: []models.Question{
			{ID: "q-1", QuizID: "quiz-1", Text: "What is a cell?", Options: []string{"a", "b", "c", "d"}, CorrectIdx: 1},
			{ID: "q-2", QuizID: "quiz-1", Text: "What is DNA?", Options: []string{"a", "b", "c", "d"}, CorrectIdx: 3, Topic: "genetics"},
		},
		CreatedAt: time.Now().Truncate(time.Second),
	}

	require.NoError(t, s.SaveQuiz(ctx, quiz))

	loaded, err := s.GetQuiz(ctx, "quiz-1")
	require.NoError(t, err)
	assert.Equal(t, quiz.Title, loaded.Title)
	require.Len(t, loaded.Questions, 2)
	assert.Equal(t, "genetics", loaded.Questions[1].Topic)
}

func TestQuiz_PendingFlagSurvives(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	pendingID := models.NewOfflineID()
	require.NoError(t, s.SaveQuiz(ctx, &models.Quiz{
		ID:      pendingID,
		UserID:  "user-123",
		Pending: true,
	}))

	loaded, err := s.GetQuiz(ctx, pendingID)
	require.NoError(t, err)
	assert.True(t, loaded.Pending)
	assert.True(t, models.IsOfflineID(loaded.ID))
}

func TestStatus_NotFoundBeforeSave(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetSyncStatus(context.Background())
	assert.ErrorIs(t, err, storage.ErrStatusNotFound)
}

func TestStatus_Roundtrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	status := &models.SyncStatus{
		IsOffline:         true,
		LastOnlineTime:    time.Now().Add(-time.Hour).Truncate(time.Second),
		LastSyncAttempt:   time.Now().Truncate(time.Second),
		PendingOperations: 3,
		SyncErrors: []models.SyncError{
			{OperationID: "op-1", Type: models.OperationCreateQuiz, Error: "boom", Timestamp: time.Now().Truncate(time.Second)},
		},
	}

	require.NoError(t, s.SaveSyncStatus(ctx, status))

	loaded, err := s.GetSyncStatus(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.IsOffline)
	assert.Equal(t, 3, loaded.PendingOperations)
	require.Len(t, loaded.SyncErrors, 1)
	assert.Equal(t, "op-1", loaded.SyncErrors[0].OperationID)
}

func TestAuth_Roundtrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	data := &storage.AuthData{
		UserID:       "user-123",
		Username:     "student",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}

	require.NoError(t, s.SaveAuth(ctx, data))

	loaded, err := s.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "student", loaded.Username)
	assert.Equal(t, "access-token", loaded.AccessToken)
}

func TestAuth_DeleteThenNotFound(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAuth(ctx, &storage.AuthData{UserID: "user-123"}))
	require.NoError(t, s.DeleteAuth(ctx))

	_, err := s.GetAuth(ctx)
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}
