package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println("")

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		c.io.Println("Authentication: not authenticated")
		c.io.Println("")
		c.io.Println("Run 'quizkeeper login' to authenticate.")
	} else {
		session, err := c.authService.Session(ctx)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		expiresAt := time.Unix(session.ExpiresAt, 0)
		remaining := time.Until(expiresAt)

		c.io.Println("Authentication: authenticated")
		c.io.Printf("Username: %s\n", session.Username)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	c.io.Println("")

	if c.monitor.Offline() {
		c.io.Println("Network: offline")
	} else {
		c.io.Println("Network: online")
	}

	status, err := c.queueManager.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	c.io.Printf("Pending operations: %d\n", status.PendingOperations)
	if !status.LastSyncAttempt.IsZero() {
		c.io.Printf("Last sync attempt: %s\n", status.LastSyncAttempt.Format(time.RFC3339))
	}
	if !status.LastOnlineTime.IsZero() {
		c.io.Printf("Last online: %s\n", status.LastOnlineTime.Format(time.RFC3339))
	}

	if len(status.SyncErrors) > 0 {
		c.io.Println("")
		c.io.Printf("Recent sync failures (%d):\n", len(status.SyncErrors))
		for _, syncErr := range status.SyncErrors {
			c.io.Printf("  [%s] %s %s: %s\n",
				syncErr.Timestamp.Format(time.RFC3339),
				syncErr.Type,
				syncErr.OperationID,
				syncErr.Error)
		}
	}

	if status.PendingOperations > 0 {
		c.io.Println("")
		c.io.Println("Run 'quizkeeper sync' to synchronize with server.")
	}

	return nil
}
