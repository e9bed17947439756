package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/quizkeeper/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, req api.RefreshRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// InsertDocument вставляет запись документа
func (c *Client) InsertDocument(ctx context.Context, accessToken string, rec api.DocumentRecord) error {
	var resp api.InsertResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/documents", accessToken, rec, &resp)
	if err != nil {
		return fmt.Errorf("insert document request failed: %w", err)
	}
	return nil
}

// ListDocuments возвращает все документы текущего пользователя
func (c *Client) ListDocuments(ctx context.Context, accessToken string) ([]api.DocumentRecord, error) {
	var resp api.DocumentsResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/documents", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list documents request failed: %w", err)
	}
	return resp.Documents, nil
}

// InsertQuiz вставляет квиз вместе с вопросами
func (c *Client) InsertQuiz(ctx context.Context, accessToken string, rec api.QuizRecord) error {
	var resp api.InsertResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/quizzes", accessToken, rec, &resp)
	if err != nil {
		return fmt.Errorf("insert quiz request failed: %w", err)
	}
	return nil
}

// ListQuizzes возвращает все квизы текущего пользователя
func (c *Client) ListQuizzes(ctx context.Context, accessToken string) ([]api.QuizRecord, error) {
	var resp api.QuizzesResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/quizzes", accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list quizzes request failed: %w", err)
	}
	return resp.Quizzes, nil
}

// InsertQuizResult вставляет запись результата прохождения квиза
func (c *Client) InsertQuizResult(ctx context.Context, accessToken string, rec api.QuizResultRecord) error {
	var resp api.InsertResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/results", accessToken, rec, &resp)
	if err != nil {
		return fmt.Errorf("insert result request failed: %w", err)
	}
	return nil
}

// UploadBlob выгружает байты по пути в blob-хранилище
func (c *Client) UploadBlob(ctx context.Context, accessToken, path string, data []byte) error {
	reqURL := c.baseURL + "/api/v1/blobs/" + url.PathEscape(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// doRequest выполняет HTTP запрос c JSON телом и декодирует JSON ответ
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
