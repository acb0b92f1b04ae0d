package domain

import "time"

// Request запрос вещи, которой пока нет в каталоге
type Request struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
	Items       []*Item // Вычисляется при чтении: вещи с item.RequestID == request.ID
}
