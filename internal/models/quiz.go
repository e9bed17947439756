package models

import "time"

// Question представляет один вопрос с четырьмя вариантами ответа.
type Question struct {
	ID          string   `json:"id"`                  // ID уникальный идентификатор вопроса
	QuizID      string   `json:"quiz_id"`             // QuizID идентификатор квиза
	Text        string   `json:"text"`                // Text текст вопроса
	Options     []string `json:"options"`             // Options варианты ответа (всегда 4)
	CorrectIdx  int      `json:"correct_idx"`         // CorrectIdx индекс правильного варианта (0-3)
	Explanation string   `json:"explanation"`         // Explanation объяснение правильного ответа
	Topic       string   `json:"topic,omitempty"`     // Topic опциональная тема вопроса
	ImageRef    string   `json:"image_ref,omitempty"` // ImageRef опциональная ссылка на изображение
}

// Quiz представляет квиз, сгенерированный из одного или нескольких документов.
// Pending=true означает, что квиз создан оффлайн и его каноническая
// серверная копия еще не существует.
type Quiz struct {
	ID            string     `json:"id"`                  // ID уникальный идентификатор (UUID или offline-id)
	UserID        string     `json:"user_id"`             // UserID владелец квиза
	Title         string     `json:"title"`               // Title название квиза
	DocumentIDs   []string   `json:"document_ids"`        // DocumentIDs исходные документы
	QuestionCount int        `json:"question_count"`      // QuestionCount запрошенное число вопросов
	Questions     []Question `json:"questions"`           // Questions сгенерированные вопросы
	Pending       bool       `json:"pending"`             // Pending создан оффлайн, ждет синхронизации
	CreatedAt     time.Time  `json:"created_at"`          // CreatedAt время создания
	CachedAt      time.Time  `json:"cached_at,omitempty"` // CachedAt время последней локальной записи в кеш
}

// QuizResult представляет результат прохождения квиза пользователем.
type QuizResult struct {
	ID          string    `json:"id"`           // ID уникальный идентификатор результата
	UserID      string    `json:"user_id"`      // UserID кто проходил квиз
	QuizID      string    `json:"quiz_id"`      // QuizID какой квиз
	Score       int       `json:"score"`        // Score количество правильных ответов
	Total       int       `json:"total"`        // Total общее количество вопросов
	Answers     []int     `json:"answers"`      // Answers выбранные индексы по порядку вопросов
	CompletedAt time.Time `json:"completed_at"` // CompletedAt время завершения
}
