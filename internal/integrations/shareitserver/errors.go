package shareitserver

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("shareitserver client: internal error")

	// ErrUnavailable server недоступен: соединение не установлено или истёк таймаут
	ErrUnavailable = errors.New("shareitserver client: server unavailable")

	// ErrInvalidResponse тело ответа server не удалось прочитать
	ErrInvalidResponse = errors.New("shareitserver client: invalid response")
)
