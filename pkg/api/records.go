package api

import "time"

// DocumentRecord представляет запись документа в коллекции documents.
// Insert с существующим ID выполняется как upsert: повторная отправка
// после частичного сбоя не создает дубликатов.
type DocumentRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storage_path"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuestionRecord представляет запись вопроса в коллекции questions
type QuestionRecord struct {
	ID          string   `json:"id"`
	QuizID      string   `json:"quiz_id"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	CorrectIdx  int      `json:"correct_idx"`
	Explanation string   `json:"explanation"`
	Topic       string   `json:"topic,omitempty"`
	ImageRef    string   `json:"image_ref,omitempty"`
}

// QuizRecord представляет запись квиза в коллекции quizzes.
// При insert вопросы передаются вместе с квизом одним запросом,
// чтобы публикация была единой операцией.
type QuizRecord struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Title         string           `json:"title"`
	DocumentIDs   []string         `json:"document_ids"`
	QuestionCount int              `json:"question_count"`
	Questions     []QuestionRecord `json:"questions,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// QuizResultRecord представляет запись результата в коллекции quiz_results
type QuizResultRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	QuizID      string    `json:"quiz_id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Answers     []int     `json:"answers"`
	CompletedAt time.Time `json:"completed_at"`
}

// DocumentsResponse список документов пользователя
type DocumentsResponse struct {
	Documents []DocumentRecord `json:"documents"`
}

// QuizzesResponse список квизов пользователя (с вопросами)
type QuizzesResponse struct {
	Quizzes []QuizRecord `json:"quizzes"`
}

// ResultsResponse список результатов пользователя
type ResultsResponse struct {
	Results []QuizResultRecord `json:"results"`
}

// InsertResponse подтверждение insert-а записи
type InsertResponse struct {
	ID      string `json:"id"`      // ID вставленной записи
	Message string `json:"message"` // сообщение об успехе
}
