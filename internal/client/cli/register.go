package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/quizkeeper/internal/validation"
	"github.com/iudanet/quizkeeper/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println("")

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println("")
	c.io.Println("Registering...")

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	c.io.Println("")
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %s\n", resp.UserID)
	c.io.Println("")
	c.io.Println("Run 'quizkeeper login' to start a session.")

	return nil
}
