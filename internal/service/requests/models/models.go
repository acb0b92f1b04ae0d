package models

import (
	"time"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

// CreateRequestRequest запрос вещи, которой нет в каталоге
type CreateRequestRequest struct {
	Description string `json:"description"`
}

// RequestItemResponse вещь, добавленная в ответ на запрос
type RequestItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
	OwnerID     int64  `json:"ownerId"`
}

// RequestResponse запрос с вещами, добавленными в ответ на него
type RequestResponse struct {
	ID          int64                  `json:"id"`
	Description string                 `json:"description"`
	Created     time.Time              `json:"created"`
	Items       []*RequestItemResponse `json:"items"`
}

// FromDomainRequest конвертирует domain.Request; Items никогда не nil
func FromDomainRequest(req *domain.Request) *RequestResponse {
	items := make([]*RequestItemResponse, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, &RequestItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.Available,
			RequestID:   req.ID,
			OwnerID:     item.OwnerID,
		})
	}

	return &RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     req.Created,
		Items:       items,
	}
}

// FromDomainRequestList конвертирует список запросов
func FromDomainRequestList(requests []*domain.Request) []*RequestResponse {
	result := make([]*RequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, FromDomainRequest(r))
	}
	return result
}
