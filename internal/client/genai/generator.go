package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/quizkeeper/internal/models"
	"github.com/iudanet/quizkeeper/pkg/api"
)

//go:generate moq -out generator_mock.go . Generator

// Generator определяет интерфейс генерации вопросов из документов.
// Для движка это непрозрачная, возможно медленная и ненадежная зависимость
// со своей внутренней политикой повторов.
type Generator interface {
	// Generate создает questionCount вопросов по указанным документам.
	// ID вопросов не заполняются: их назначает вызывающий код.
	Generate(ctx context.Context, documentRefs []string, questionCount int) ([]models.Question, error)
}

const (
	defaultTimeout    = 120 * time.Second
	defaultMaxRetries = 2
	initialBackoff    = 2 * time.Second
)

// Client представляет HTTP клиент сервиса генерации вопросов
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxRetries uint64
}

var _ Generator = (*Client)(nil)

// NewClient создает новый клиент генерации.
// baseURL — адрес сервиса, apiKey — ключ доступа (может быть пустым).
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			// Генерация занимает десятки секунд, таймаут щедрый
			Timeout: defaultTimeout,
		},
		maxRetries: defaultMaxRetries,
	}
}

// Generate создает вопросы по документам с экспоненциальным backoff-ом.
// Ошибки 4xx не повторяются: запрос не станет валиднее от повтора.
func (c *Client) Generate(ctx context.Context, documentRefs []string, questionCount int) ([]models.Question, error) {
	req := api.GenerateRequest{
		DocumentRefs:  documentRefs,
		QuestionCount: questionCount,
	}

	var questions []models.Question

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(initialBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := c.generateOnce(ctx, req)
		if err != nil {
			return err
		}
		questions = resp
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	return questions, nil
}

// generateOnce выполняет один запрос к сервису генерации
func (c *Client) generateOnce(ctx context.Context, genReq api.GenerateRequest) ([]models.Question, error) {
	jsonData, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки повторяемы
		return nil, retry.RetryableError(fmt.Errorf("generate request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("failed to read generate response: %w", err))
	}

	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return nil, retry.RetryableError(fmt.Errorf("generation service returned status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("generation service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var genResp api.GenerateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, fmt.Errorf("failed to decode generate response: %w", err)
	}

	questions := make([]models.Question, 0, len(genResp.Questions))
	for _, q := range genResp.Questions {
		questions = append(questions, models.Question{
			Text:        q.Text,
			Options:     q.Options,
			CorrectIdx:  q.CorrectIdx,
			Explanation: q.Explanation,
			Topic:       q.Topic,
			ImageRef:    q.ImageRef,
		})
	}

	return questions, nil
}
