package sync

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/quizkeeper/internal/client/api"
	"github.com/iudanet/quizkeeper/internal/client/genai"
	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/pkg/api"
)

func TestPublishQuiz(t *testing.T) {
	apiMock := &httpClient.ClientAPIMock{
		InsertQuizFunc: func(ctx context.Context, accessToken string, rec api.QuizRecord) error {
			return nil
		},
	}
	generator := &genai.GeneratorMock{
		GenerateFunc: func(ctx context.Context, documentRefs []string, questionCount int) ([]models.Question, error) {
			questions := make([]models.Question, questionCount)
			for i := range questions {
				questions[i] = models.Question{
					Text:       "question",
					Options:    []string{"a", "b", "c", "d"},
					CorrectIdx: i % 4,
				}
			}
			return questions, nil
		},
	}

	publisher := NewPublisher(apiMock, generator, testLogger())

	quiz, err := publisher.PublishQuiz(context.Background(), "access-token", PublishParams{
		QuizID:        "quiz-canonical",
		UserID:        "user-123",
		Title:         "Chemistry",
		DocumentIDs:   []string{"doc-1", "doc-2"},
		QuestionCount: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "quiz-canonical", quiz.ID)
	assert.Equal(t, "Chemistry", quiz.Title)
	require.Len(t, quiz.Questions, 3)
	for _, q := range quiz.Questions {
		assert.NotEmpty(t, q.ID)
		assert.Equal(t, quiz.ID, q.QuizID)
	}

	// Генератор получил исходные документы
	require.Len(t, generator.GenerateCalls(), 1)
	assert.Equal(t, []string{"doc-1", "doc-2"}, generator.GenerateCalls()[0].DocumentRefs)

	// Квиз с вопросами ушел одним запросом
	require.Len(t, apiMock.InsertQuizCalls(), 1)
	rec := apiMock.InsertQuizCalls()[0].Rec
	assert.Equal(t, quiz.ID, rec.ID)
	assert.Len(t, rec.Questions, 3)
}

func TestCanonicalQuizID_Deterministic(t *testing.T) {
	offlineID := "offline-1700000000000000000"

	first := CanonicalQuizID(offlineID)
	second := CanonicalQuizID(offlineID)

	// Повторный вывод дает тот же серверный ID
	assert.Equal(t, first, second)

	// Результат — валидный UUID, не offline placeholder
	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.False(t, models.IsOfflineID(first))
}

func TestCanonicalQuizID_DistinctInputs(t *testing.T) {
	a := CanonicalQuizID("offline-1")
	b := CanonicalQuizID("offline-2")
	assert.NotEqual(t, a, b)
}
