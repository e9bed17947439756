package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// RefreshTokenSize размер refresh token в байтах до кодирования
const RefreshTokenSize = 32

// GenerateRefreshToken генерирует криптографически случайный refresh token
func GenerateRefreshToken() (string, error) {
	raw := make([]byte, RefreshTokenSize)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// HashToken хеширует refresh token через SHA256 для хранения на сервере.
// В базе лежит только хеш: утечка базы не раскрывает сами токены,
// а детерминированность позволяет искать токен по его хешу.
func HashToken(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("token cannot be empty")
	}

	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:]), nil
}

// VerifyToken проверяет, соответствует ли токен сохраненному хешу
func VerifyToken(token, hashedToken string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	if hashedToken == "" {
		return fmt.Errorf("hashed token cannot be empty")
	}

	computed, err := HashToken(token)
	if err != nil {
		return fmt.Errorf("failed to compute token hash: %w", err)
	}

	if computed != hashedToken {
		return fmt.Errorf("invalid token")
	}

	return nil
}
