package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/quizkeeper/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to logout: %w", err)
	}

	c.io.Println("✓ Logged out.")
	c.io.Println("Local session removed. Cached data and the operation queue are kept.")

	return nil
}
