package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/quizkeeper/pkg/api"
)

// UpsertDocument stores or replaces a document record by ID
func (s *Storage) UpsertDocument(ctx context.Context, doc *api.DocumentRecord) error {
	query := `
		INSERT OR REPLACE INTO documents (id, user_id, name, mime_type, size, storage_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		doc.ID,
		doc.UserID,
		doc.Name,
		doc.MimeType,
		doc.Size,
		doc.StoragePath,
		doc.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	return nil
}

// ListDocuments returns all document records owned by the user
func (s *Storage) ListDocuments(ctx context.Context, userID string) ([]api.DocumentRecord, error) {
	query := `
		SELECT id, user_id, name, mime_type, size, storage_path, created_at
		FROM documents
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	docs := []api.DocumentRecord{}

	for rows.Next() {
		var doc api.DocumentRecord
		if err := rows.Scan(
			&doc.ID,
			&doc.UserID,
			&doc.Name,
			&doc.MimeType,
			&doc.Size,
			&doc.StoragePath,
			&doc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return docs, nil
}

// UpsertQuiz stores or replaces a quiz record with its questions.
// Квиз и вопросы пишутся в одной транзакции: существующие вопросы квиза
// заменяются целиком, повтор после частичного сбоя не плодит дубликатов.
func (s *Storage) UpsertQuiz(ctx context.Context, quiz *api.QuizRecord) error {
	docIDs, err := json.Marshal(quiz.DocumentIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal document ids: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	quizQuery := `
		INSERT OR REPLACE INTO quizzes (id, user_id, title, document_ids, question_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if _, err := tx.ExecContext(ctx, quizQuery,
		quiz.ID,
		quiz.UserID,
		quiz.Title,
		string(docIDs),
		quiz.QuestionCount,
		quiz.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to upsert quiz: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE quiz_id = ?`, quiz.ID); err != nil {
		return fmt.Errorf("failed to delete old questions: %w", err)
	}

	questionQuery := `
		INSERT INTO questions (id, quiz_id, text, options, correct_idx, explanation, topic, image_ref)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, q := range quiz.Questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("failed to marshal question options: %w", err)
		}

		if _, err := tx.ExecContext(ctx, questionQuery,
			q.ID,
			quiz.ID,
			q.Text,
			string(options),
			q.CorrectIdx,
			q.Explanation,
			q.Topic,
			q.ImageRef,
		); err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quiz upsert: %w", err)
	}

	return nil
}

// ListQuizzes returns all quiz records owned by the user, with questions
func (s *Storage) ListQuizzes(ctx context.Context, userID string) ([]api.QuizRecord, error) {
	query := `
		SELECT id, user_id, title, document_ids, question_count, created_at
		FROM quizzes
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	quizzes := []api.QuizRecord{}

	for rows.Next() {
		var quiz api.QuizRecord
		var docIDs string

		if err := rows.Scan(
			&quiz.ID,
			&quiz.UserID,
			&quiz.Title,
			&docIDs,
			&quiz.QuestionCount,
			&quiz.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}

		if err := json.Unmarshal([]byte(docIDs), &quiz.DocumentIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document ids: %w", err)
		}

		quizzes = append(quizzes, quiz)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quizzes: %w", err)
	}

	// Подгружаем вопросы каждого квиза
	for i := range quizzes {
		questions, err := s.listQuestions(ctx, quizzes[i].ID)
		if err != nil {
			return nil, err
		}
		quizzes[i].Questions = questions
	}

	return quizzes, nil
}

// listQuestions возвращает вопросы одного квиза
func (s *Storage) listQuestions(ctx context.Context, quizID string) ([]api.QuestionRecord, error) {
	query := `
		SELECT id, quiz_id, text, options, correct_idx, explanation, topic, image_ref
		FROM questions
		WHERE quiz_id = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	questions := []api.QuestionRecord{}

	for rows.Next() {
		var q api.QuestionRecord
		var options string

		if err := rows.Scan(
			&q.ID,
			&q.QuizID,
			&q.Text,
			&options,
			&q.CorrectIdx,
			&q.Explanation,
			&q.Topic,
			&q.ImageRef,
		); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}

		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal question options: %w", err)
		}

		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return questions, nil
}

// UpsertQuizResult stores or replaces a quiz result record by ID
func (s *Storage) UpsertQuizResult(ctx context.Context, result *api.QuizResultRecord) error {
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO quiz_results (id, user_id, quiz_id, score, total, answers, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query,
		result.ID,
		result.UserID,
		result.QuizID,
		result.Score,
		result.Total,
		string(answers),
		result.CompletedAt,
	); err != nil {
		return fmt.Errorf("failed to upsert quiz result: %w", err)
	}

	return nil
}

// ListQuizResults returns all quiz result records owned by the user
func (s *Storage) ListQuizResults(ctx context.Context, userID string) ([]api.QuizResultRecord, error) {
	query := `
		SELECT id, user_id, quiz_id, score, total, answers, completed_at
		FROM quiz_results
		WHERE user_id = ?
		ORDER BY completed_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz results: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	results := []api.QuizResultRecord{}

	for rows.Next() {
		var result api.QuizResultRecord
		var answers string

		if err := rows.Scan(
			&result.ID,
			&result.UserID,
			&result.QuizID,
			&result.Score,
			&result.Total,
			&answers,
			&result.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quiz result: %w", err)
		}

		if err := json.Unmarshal([]byte(answers), &result.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quiz results: %w", err)
	}

	return results, nil
}
