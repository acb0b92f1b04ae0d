package items

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	ListByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*domain.Item, error)
	Search(ctx context.Context, text string, page domain.Page) ([]*domain.Item, error)
}

// UserRepository справочник пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RequestRepository нужен для проверки requestId при создании вещи
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
}

// CommentRepository интерфейс репозитория отзывов
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListByItems(ctx context.Context, itemIDs []int64) (map[int64][]*domain.Comment, error)
}

// BookingEngine проекции бронирований для карточки вещи и право оставить отзыв
type BookingEngine interface {
	Neighbours(ctx context.Context, itemIDs []int64) (last, next map[int64]*domain.BookingSummary, err error)
	CheckCanComment(ctx context.Context, itemID, userID int64) error
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
