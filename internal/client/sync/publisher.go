package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	httpClient "github.com/iudanet/quizkeeper/internal/client/api"
	"github.com/iudanet/quizkeeper/internal/client/genai"
	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/pkg/api"
)

// PublishParams описывает один запрос на публикацию квиза
type PublishParams struct {
	QuizID        string   // канонический ID квиза (стабильный между повторами)
	UserID        string
	Title         string
	DocumentIDs   []string
	QuestionCount int
}

// Publisher выполняет remote-write публикации квиза: генерация вопросов
// и insert квиза с вопросами в удаленное хранилище. Одна и та же логика
// используется и обработчиком очереди, и user-invoked реконсиляцией.
type Publisher struct {
	apiClient httpClient.ClientAPI
	generator genai.Generator
	logger    *slog.Logger
}

// NewPublisher creates a new quiz publisher
func NewPublisher(apiClient httpClient.ClientAPI, generator genai.Generator, logger *slog.Logger) *Publisher {
	return &Publisher{
		apiClient: apiClient,
		generator: generator,
		logger:    logger,
	}
}

// PublishQuiz генерирует вопросы и публикует квиз на сервере.
// Любой упавший шаг — ошибка всей публикации; повтор начинается с начала.
// Insert идемпотентен по QuizID, поэтому повтор после частичного сбоя
// заменяет ранее вставленную копию, а не дублирует ее.
func (p *Publisher) PublishQuiz(ctx context.Context, accessToken string, params PublishParams) (*models.Quiz, error) {
	p.logger.Info("publishing quiz",
		"quiz_id", params.QuizID,
		"documents", len(params.DocumentIDs),
		"question_count", params.QuestionCount)

	questions, err := p.generator.Generate(ctx, params.DocumentIDs, params.QuestionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	now := time.Now()
	quiz := &models.Quiz{
		ID:            params.QuizID,
		UserID:        params.UserID,
		Title:         params.Title,
		DocumentIDs:   params.DocumentIDs,
		QuestionCount: params.QuestionCount,
		Questions:     make([]models.Question, 0, len(questions)),
		CreatedAt:     now,
	}

	rec := api.QuizRecord{
		ID:            quiz.ID,
		UserID:        quiz.UserID,
		Title:         quiz.Title,
		DocumentIDs:   quiz.DocumentIDs,
		QuestionCount: quiz.QuestionCount,
		Questions:     make([]api.QuestionRecord, 0, len(questions)),
		CreatedAt:     now,
	}

	for _, q := range questions {
		q.ID = uuid.New().String()
		q.QuizID = quiz.ID
		quiz.Questions = append(quiz.Questions, q)

		rec.Questions = append(rec.Questions, api.QuestionRecord{
			ID:          q.ID,
			QuizID:      q.QuizID,
			Text:        q.Text,
			Options:     q.Options,
			CorrectIdx:  q.CorrectIdx,
			Explanation: q.Explanation,
			Topic:       q.Topic,
			ImageRef:    q.ImageRef,
		})
	}

	// Квиз и его вопросы уходят одним запросом: публикация — единая
	// операция, частично опубликованного квиза не существует
	if err := p.apiClient.InsertQuiz(ctx, accessToken, rec); err != nil {
		return nil, fmt.Errorf("failed to insert quiz: %w", err)
	}

	p.logger.Info("quiz published",
		"quiz_id", quiz.ID,
		"questions", len(quiz.Questions))

	return quiz, nil
}

// CanonicalQuizID детерминированно выводит канонический серверный ID из
// offline placeholder-а. Повторная реконсиляция одного и того же
// pending-квиза всегда целится в одну и ту же серверную запись.
func CanonicalQuizID(offlineID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("quizkeeper/quiz/"+offlineID)).String()
}
