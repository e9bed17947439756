package blobfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iudanet/quizkeeper/internal/server/storage"
)

// Store хранит blob-ы как файлы под корневой директорией.
// Путь blob-а ("{userID}/{key}") отображается в путь файла; запись
// идет через временный файл с rename, чтобы читатели не видели
// частично записанных данных.
type Store struct {
	root string
}

// New creates a new filesystem blob store rooted at dir
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}
	return &Store{root: dir}, nil
}

// Put stores blob bytes at the given path, replacing existing content
func (s *Store) Put(ctx context.Context, path string, data []byte) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0750); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Rename атомарен в пределах файловой системы: перезапись по тому же
	// пути заменяет содержимое целиком
	if err := os.Rename(tmpName, full); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to finalize blob: %w", err)
	}

	return nil
}

// Get retrieves blob bytes by path
func (s *Store) Get(ctx context.Context, path string) ([]byte, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}

	return data, nil
}

// Delete removes a blob. Deleting an absent blob is a no-op.
func (s *Store) Delete(ctx context.Context, path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}

// resolve проверяет путь и отображает его в файл под корнем.
// Путь с ".." или абсолютный путь отклоняется: клиент не может выйти
// за пределы хранилища.
func (s *Store) resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("blob path cannot be empty")
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("blob path must be relative")
	}

	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("blob path escapes storage root")
	}

	return filepath.Join(s.root, clean), nil
}
