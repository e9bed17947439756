package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/quizkeeper/internal/client/storage"
)

// Service управляет сохраненной сессией пользователя
type Service struct {
	storage storage.AuthStorage
}

// NewService creates a new auth service
func NewService(authStorage storage.AuthStorage) *Service {
	return &Service{storage: authStorage}
}

// SaveSession сохраняет сессию после успешного login/refresh
func (s *Service) SaveSession(ctx context.Context, data *storage.AuthData) error {
	if err := s.storage.SaveAuth(ctx, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Session возвращает сохраненную сессию.
// Returns storage.ErrAuthNotFound if no session exists.
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	return s.storage.GetAuth(ctx)
}

// IsAuthenticated сообщает, есть ли сохраненная сессия
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.storage.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// AccessToken возвращает действующий access token текущей сессии
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	data, err := s.storage.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			return "", fmt.Errorf("not authenticated. Please run 'quizkeeper login' first")
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().Unix() > data.ExpiresAt {
		return "", fmt.Errorf("access token has expired. Please login again")
	}

	return data.AccessToken, nil
}

// UserID возвращает идентификатор текущего пользователя
func (s *Service) UserID(ctx context.Context) (string, error) {
	data, err := s.storage.GetAuth(ctx)
	if err != nil {
		if err == storage.ErrAuthNotFound {
			return "", fmt.Errorf("not authenticated. Please run 'quizkeeper login' first")
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return data.UserID, nil
}

// Logout удаляет сохраненную сессию
func (s *Service) Logout(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
