package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/quizkeeper/internal/client/cache"
	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/pkg/api"
)

func (c *Cli) runQuizzes(ctx context.Context) error {
	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("not authenticated. Please run 'quizkeeper login' first")
	}

	cached, err := c.cacheService.Quizzes(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to read cached quizzes: %w", err)
	}

	quizzes := cached
	fromCache := true

	if !c.monitor.Offline() {
		if remote, err := c.fetchRemoteQuizzes(ctx); err != nil {
			c.logger.Warn("failed to fetch quizzes from server, using cache", "error", err)
		} else {
			quizzes = cache.ReconcileQuizzes(remote, cached)
			fromCache = false

			for _, quiz := range quizzes {
				if err := c.cacheService.CacheQuiz(ctx, quiz); err != nil {
					c.logger.Warn("failed to refresh cached quiz",
						"quiz_id", quiz.ID,
						"error", err)
				}
			}
		}
	}

	if fromCache {
		c.io.Println("=== Quizzes (cached) ===")
	} else {
		c.io.Println("=== Quizzes ===")
	}
	c.io.Println("")

	if len(quizzes) == 0 {
		c.io.Println("No quizzes. Use 'quizkeeper quiz create' to generate one.")
		return nil
	}

	for _, quiz := range quizzes {
		marker := ""
		if quiz.Pending {
			marker = "  [pending generation]"
		}
		c.io.Printf("%s  %q  %d questions  %s%s\n",
			quiz.ID,
			quiz.Title,
			len(quiz.Questions),
			quiz.CreatedAt.Format(time.RFC3339),
			marker)
	}

	return nil
}

// fetchRemoteQuizzes запрашивает квизы с сервера и приводит их
// к локальной модели
func (c *Cli) fetchRemoteQuizzes(ctx context.Context) ([]*models.Quiz, error) {
	accessToken, err := c.authService.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	records, err := c.apiClient.ListQuizzes(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	quizzes := make([]*models.Quiz, 0, len(records))
	for _, rec := range records {
		quizzes = append(quizzes, quizFromRecord(rec))
	}
	return quizzes, nil
}

func quizFromRecord(rec api.QuizRecord) *models.Quiz {
	questions := make([]models.Question, 0, len(rec.Questions))
	for _, q := range rec.Questions {
		questions = append(questions, models.Question{
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

	return &models.Quiz{
		ID:            rec.ID,
		UserID:        rec.UserID,
		Title:         rec.Title,
		DocumentIDs:   rec.DocumentIDs,
		QuestionCount: rec.QuestionCount,
		Questions:     questions,
		CreatedAt:     rec.CreatedAt,
	}
}
