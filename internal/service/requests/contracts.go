package requests

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

// RequestRepository интерфейс репозитория запросов
type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*domain.Request, error)
	ListOthers(ctx context.Context, requesterID int64, offset, limit uint64) ([]*domain.Request, error)
}

// ItemRepository вещи, добавленные в ответ на запросы
type ItemRepository interface {
	ListByRequests(ctx context.Context, requestIDs []int64) (map[int64][]*domain.Item, error)
}

// UserRepository справочник пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
