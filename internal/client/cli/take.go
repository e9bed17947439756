package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/quizkeeper/internal/models"
)

func (c *Cli) runTake(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: quizkeeper take <quiz-id>")
	}

	session, err := c.authService.Session(ctx)
	if err != nil {
		return fmt.Errorf("not authenticated. Please run 'quizkeeper login' first")
	}

	quiz, err := c.cacheService.Quiz(ctx, args[0])
	if err != nil {
		return fmt.Errorf("quiz not found in local cache: %w", err)
	}

	if quiz.Pending || len(quiz.Questions) == 0 {
		return fmt.Errorf("quiz %s has no questions yet, run 'quizkeeper sync' first", quiz.ID)
	}

	c.io.Printf("=== %s ===\n", quiz.Title)
	c.io.Println("")

	answers := make([]int, 0, len(quiz.Questions))
	score := 0

	for i, question := range quiz.Questions {
		c.io.Printf("%d/%d. %s\n", i+1, len(quiz.Questions), question.Text)
		for j, option := range question.Options {
			c.io.Printf("  %d) %s\n", j+1, option)
		}

		answer, err := c.readAnswer(len(question.Options))
		if err != nil {
			return err
		}
		answers = append(answers, answer)

		if answer == question.CorrectIdx {
			score++
			c.io.Println("✓ Correct!")
		} else {
			c.io.Printf("✗ Wrong. Correct answer: %d) %s\n",
				question.CorrectIdx+1,
				question.Options[question.CorrectIdx])
			if question.Explanation != "" {
				c.io.Printf("  %s\n", question.Explanation)
			}
		}
		c.io.Println("")
	}

	c.io.Printf("Result: %d/%d\n", score, len(quiz.Questions))

	// Результат уходит через очередь: оффлайн он сохранится и будет
	// доставлен при восстановлении связи
	_, err = c.queueManager.Enqueue(ctx, models.SaveQuizResultPayload{
		UserID:      session.UserID,
		QuizID:      quiz.ID,
		Score:       score,
		Total:       len(quiz.Questions),
		Answers:     answers,
		CompletedAt: time.Now(),
	}, models.DefaultPriority)
	if err != nil {
		return fmt.Errorf("failed to enqueue result: %w", err)
	}

	if c.monitor.Offline() {
		c.io.Println("Offline: result queued, it will be saved when connectivity returns.")
		return nil
	}

	if _, err := c.queueManager.Drain(ctx, false); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	c.io.Println("✓ Result saved.")

	return nil
}

// readAnswer читает номер варианта (1-based) и возвращает индекс (0-based)
func (c *Cli) readAnswer(optionCount int) (int, error) {
	for {
		input, err := c.io.ReadInput("Your answer: ")
		if err != nil {
			return 0, fmt.Errorf("failed to read answer: %w", err)
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > optionCount {
			c.io.Printf("Please enter a number between 1 and %d.\n", optionCount)
			continue
		}

		return n - 1, nil
	}
}
