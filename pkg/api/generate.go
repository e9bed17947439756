package api

// GenerateRequest представляет запрос к сервису генерации вопросов
type GenerateRequest struct {
	DocumentRefs  []string `json:"document_refs"`  // ссылки на исходные документы (storage paths)
	QuestionCount int      `json:"question_count"` // сколько вопросов сгенерировать
}

// GeneratedQuestion представляет один сгенерированный вопрос
type GeneratedQuestion struct {
	Text        string   `json:"text"`                // текст вопроса
	Options     []string `json:"options"`             // четыре варианта ответа
	CorrectIdx  int      `json:"correct_idx"`         // индекс правильного варианта
	Explanation string   `json:"explanation"`         // объяснение ответа
	Topic       string   `json:"topic,omitempty"`     // опциональная тема
	ImageRef    string   `json:"image_ref,omitempty"` // опциональная ссылка на изображение
}

// GenerateResponse представляет ответ сервиса генерации
type GenerateResponse struct {
	Questions []GeneratedQuestion `json:"questions"`
}
