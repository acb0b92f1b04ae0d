package shareitserver

import "net/http"

// Заголовки, которые gateway передаёт в server
const (
	UserIDHeader    = "X-Sharer-User-Id"
	RequestIDHeader = "X-Request-ID"
)

// ForwardRequest запрос, проксируемый в server
type ForwardRequest struct {
	Method    string
	Path      string // путь относительно baseURL, например /api/v1/bookings/5
	RawQuery  string
	Body      []byte
	UserID    string
	RequestID string
}

// Response ответ server, передаваемый клиенту без изменений
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ErrorResponse модель ошибки от server
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
