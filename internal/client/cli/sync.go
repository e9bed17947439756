package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println("")

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !isAuth {
		return fmt.Errorf("not authenticated. Please run 'quizkeeper login' first")
	}

	c.io.Println("Synchronizing with server...")

	result, err := c.syncService.SyncNow(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println("")
	c.io.Println("✓ Synchronization completed!")
	c.io.Println("")
	c.io.Printf("Operations succeeded:  %d\n", result.Drain.Succeeded)
	if result.Drain.PermanentlyFailed > 0 {
		c.io.Printf("Permanently failed:    %d\n", result.Drain.PermanentlyFailed)
	}
	if result.Drain.Remaining > 0 {
		c.io.Printf("Still queued:          %d\n", result.Drain.Remaining)
	}
	if result.ReconciledQuizzes > 0 {
		c.io.Printf("Quizzes reconciled:    %d\n", result.ReconciledQuizzes)
	}
	if result.FailedQuizzes > 0 {
		c.io.Printf("Quizzes still pending: %d\n", result.FailedQuizzes)
	}

	return nil
}
