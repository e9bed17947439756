package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/internal/validation"
)

func (c *Cli) runQuizCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quiz create", flag.ContinueOnError)
	docs := fs.String("docs", "", "comma-separated document IDs")
	count := fs.Int("count", 10, "number of questions")
	title := fs.String("title", "", "quiz title")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("not authenticated. Please run 'quizkeeper login' first")
	}

	if *docs == "" {
		return fmt.Errorf("at least one document ID is required (--docs)")
	}

	documentIDs := []string{}
	for _, id := range strings.Split(*docs, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			documentIDs = append(documentIDs, id)
		}
	}

	quizTitle := *title
	if quizTitle == "" {
		quizTitle = fmt.Sprintf("Quiz %s", time.Now().Format("2006-01-02 15:04"))
	}

	if err := validation.ValidateQuizParams(quizTitle, documentIDs, *count); err != nil {
		return err
	}

	// Pending-квиз попадает в кеш сразу, с placeholder-id и без вопросов.
	// Вопросы появятся вместе с канонической копией после генерации.
	quiz := &models.Quiz{
		ID:            models.NewOfflineID(),
		UserID:        session.UserID,
		Title:         quizTitle,
		DocumentIDs:   documentIDs,
		QuestionCount: *count,
		Pending:       true,
		CreatedAt:     time.Now(),
	}

	if err := c.cacheService.CacheQuiz(ctx, quiz); err != nil {
		return fmt.Errorf("failed to cache quiz: %w", err)
	}

	opID, err := c.queueManager.Enqueue(ctx, models.CreateQuizPayload{
		UserID:        session.UserID,
		QuizID:        quiz.ID,
		Title:         quiz.Title,
		DocumentIDs:   quiz.DocumentIDs,
		QuestionCount: quiz.QuestionCount,
	}, models.DefaultPriority)
	if err != nil {
		return fmt.Errorf("failed to enqueue quiz creation: %w", err)
	}

	c.io.Printf("✓ Quiz queued: %s (%d questions)\n", quiz.Title, quiz.QuestionCount)

	if c.monitor.Offline() {
		c.io.Println("Offline: generation will run when connectivity returns.")
		c.io.Printf("Operation ID: %s\n", opID)
		return nil
	}

	c.io.Println("Generating questions...")

	result, err := c.queueManager.Drain(ctx, false)
	if err != nil {
		return fmt.Errorf("quiz generation failed: %w", err)
	}

	if result.PermanentlyFailed > 0 {
		c.io.Println("⚠️  Generation failed permanently, see 'quizkeeper status' for details.")
		return nil
	}
	if result.Remaining > 0 {
		c.io.Println("⚠️  Generation did not complete, the quiz stays pending.")
		c.io.Println("Run 'quizkeeper sync' to retry.")
		return nil
	}

	c.io.Println("✓ Quiz generated and published.")
	c.io.Println("Run 'quizkeeper quizzes' to see it.")

	return nil
}
