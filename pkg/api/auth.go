package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль (хешируется на сервере)
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	UserID  string `json:"user_id"` // UUID пользователя
	Message string `json:"message"` // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль
}

// RefreshRequest представляет запрос на обновление access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"` // действующий refresh token
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	UserID       string `json:"user_id"`       // UUID пользователя
	AccessToken  string `json:"access_token"`  // JWT access token
	RefreshToken string `json:"refresh_token"` // refresh token
	ExpiresIn    int64  `json:"expires_in"`    // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
