package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/quizkeeper/internal/client/storage"
	"github.com/iudanet/quizkeeper/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println("")

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println("")
	c.io.Println("Authenticating...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	authData := &storage.AuthData{
		UserID:       resp.UserID,
		Username:     username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Unix() + resp.ExpiresIn,
	}

	if err := c.authService.SaveSession(ctx, authData); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println("")
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", username)
	c.io.Printf("Access token expires in: %d seconds\n", resp.ExpiresIn)

	return nil
}
