package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quizkeeper/internal/client/storage"
	"github.com/iudanet/quizkeeper/internal/models"
)

// SaveDocument stores or replaces a cached document
func (s *Storage) SaveDocument(ctx context.Context, doc *models.Document) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		// Сериализуем документ в JSON
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}

		// Put по существующему ключу заменяет запись: upsert по ID
		if err := bucket.Put([]byte(doc.ID), data); err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}

		return nil
	})

	if err != nil {
		return &storage.OpError{Op: "save document", Err: err}
	}

	return nil
}

// GetDocument retrieves a cached document by ID
func (s *Storage) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	var doc *models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrDocumentNotFound
		}

		doc = &models.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("failed to unmarshal document: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrDocumentNotFound {
			return nil, err
		}
		return nil, &storage.OpError{Op: "get document", Err: err}
	}

	return doc, nil
}

// ListDocuments returns all cached documents for the user
func (s *Storage) ListDocuments(ctx context.Context, userID string) ([]*models.Document, error) {
	var docs []*models.Document

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}

		// Итерируемся по всем документам
		return bucket.ForEach(func(k, v []byte) error {
			doc := &models.Document{}
			if err := json.Unmarshal(v, doc); err != nil {
				return fmt.Errorf("failed to unmarshal document: %w", err)
			}

			if doc.UserID == userID {
				docs = append(docs, doc)
			}

			return nil
		})
	})

	if err != nil {
		return nil, &storage.OpError{Op: "list documents", Err: err}
	}

	return docs, nil
}

// DeleteDocument removes a cached document.
// Удаление отсутствующего документа — no-op.
func (s *Storage) DeleteDocument(ctx context.Context, id string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDocuments)
		if bucket == nil {
			return fmt.Errorf("documents bucket not found")
		}
		return bucket.Delete([]byte(id))
	})

	if err != nil {
		return &storage.OpError{Op: "delete document", Err: err}
	}

	return nil
}

// SaveQuiz stores or replaces a cached quiz with its questions
func (s *Storage) SaveQuiz(ctx context.Context, quiz *models.Quiz) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQuizzes)
		if bucket == nil {
			return fmt.Errorf("quizzes bucket not found")
		}

		data, err := json.Marshal(quiz)
		if err != nil {
			return fmt.Errorf("failed to marshal quiz: %w", err)
		}

		if err := bucket.Put([]byte(quiz.ID), data); err != nil {
			return fmt.Errorf("failed to save quiz: %w", err)
		}

		return nil
	})

	if err != nil {
		return &storage.OpError{Op: "save quiz", Err: err}
	}

	return nil
}

// GetQuiz retrieves a cached quiz by ID
func (s *Storage) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz *models.Quiz

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQuizzes)
		if bucket == nil {
			return fmt.Errorf("quizzes bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrQuizNotFound
		}

		quiz = &models.Quiz{}
		if err := json.Unmarshal(data, quiz); err != nil {
			return fmt.Errorf("failed to unmarshal quiz: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrQuizNotFound {
			return nil, err
		}
		return nil, &storage.OpError{Op: "get quiz", Err: err}
	}

	return quiz, nil
}

// ListQuizzes returns all cached quizzes for the user
func (s *Storage) ListQuizzes(ctx context.Context, userID string) ([]*models.Quiz, error) {
	var quizzes []*models.Quiz

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQuizzes)
		if bucket == nil {
			return fmt.Errorf("quizzes bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			quiz := &models.Quiz{}
			if err := json.Unmarshal(v, quiz); err != nil {
				return fmt.Errorf("failed to unmarshal quiz: %w", err)
			}

			if quiz.UserID == userID {
				quizzes = append(quizzes, quiz)
			}

			return nil
		})
	})

	if err != nil {
		return nil, &storage.OpError{Op: "list quizzes", Err: err}
	}

	return quizzes, nil
}

// DeleteQuiz removes a cached quiz.
// Удаление отсутствующего квиза — no-op.
func (s *Storage) DeleteQuiz(ctx context.Context, id string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQuizzes)
		if bucket == nil {
			return fmt.Errorf("quizzes bucket not found")
		}
		return bucket.Delete([]byte(id))
	})

	if err != nil {
		return &storage.OpError{Op: "delete quiz", Err: err}
	}

	return nil
}
