package models

import (
	"time"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
	bookingModels "github.com/m04kA/SMC-ShareIt/internal/service/bookings/models"
	"github.com/m04kA/SMC-ShareIt/pkg/ptr"
)

// Request модели

// CreateItemRequest запрос на добавление вещи
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// UpdateItemRequest частичное обновление вещи, отсутствующие поля не меняются
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

// CreateCommentRequest запрос на добавление отзыва
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// Response модели

// CommentResponse отзыв о вещи
type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemResponse карточка вещи
// LastBooking и NextBooking заполняются только для владельца
type ItemResponse struct {
	ID          int64                                 `json:"id"`
	Name        string                                `json:"name"`
	Description string                                `json:"description"`
	Available   bool                                  `json:"available"`
	RequestID   *int64                                `json:"requestId,omitempty"`
	LastBooking *bookingModels.BookingSummaryResponse `json:"lastBooking"`
	NextBooking *bookingModels.BookingSummaryResponse `json:"nextBooking"`
	Comments    []*CommentResponse                    `json:"comments"`
}

// Конвертеры

// ToDomainItem конвертирует запрос создания в domain.Item
func (r *CreateItemRequest) ToDomainItem(ownerID int64) *domain.Item {
	return &domain.Item{
		Name:        r.Name,
		Description: r.Description,
		Available:   ptr.Value(r.Available),
		OwnerID:     ownerID,
		RequestID:   r.RequestID,
	}
}

// ToDomainPatch конвертирует запрос в патч
func (r *UpdateItemRequest) ToDomainPatch() domain.ItemPatch {
	return domain.ItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

// FromDomainItem карточка вещи без бронирований и отзывов
func FromDomainItem(item *domain.Item) *ItemResponse {
	return &ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		Comments:    make([]*CommentResponse, 0),
	}
}

// FromDomainComment конвертирует отзыв
func FromDomainComment(c *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

// FromDomainComments конвертирует список отзывов, nil превращается в []
func FromDomainComments(comments []*domain.Comment) []*CommentResponse {
	result := make([]*CommentResponse, 0, len(comments))
	for _, c := range comments {
		result = append(result, FromDomainComment(c))
	}
	return result
}
