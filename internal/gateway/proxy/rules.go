package proxy

import "github.com/m04kA/SMC-ShareIt/internal/gateway/validation"

// Rule что gateway проверяет в запросе перед проксированием
type Rule struct {
	// PathIDs переменные пути, которые должны быть положительными int64
	PathIDs []string
	// Body фабрика DTO для проверки JSON тела; nil, если тела нет
	Body func() interface{}
	// Page проверять from/size
	Page bool
	// Approved обязательный булев query параметр approved
	Approved bool
}

func userCreateBody() interface{}    { return &validation.UserCreate{} }
func userUpdateBody() interface{}    { return &validation.UserUpdate{} }
func itemCreateBody() interface{}    { return &validation.ItemCreate{} }
func itemUpdateBody() interface{}    { return &validation.ItemUpdate{} }
func commentCreateBody() interface{} { return &validation.CommentCreate{} }
func bookingCreateBody() interface{} { return &validation.BookingCreate{} }
func requestCreateBody() interface{} { return &validation.RequestCreate{} }
