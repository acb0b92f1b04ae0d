package validation

import "time"

// Тела запросов, которые gateway проверяет перед проксированием.
// Поля совпадают с JSON моделями server

type UserCreate struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
}

type UserUpdate struct {
	Name  *string `json:"name" validate:"omitempty,notblank"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type ItemCreate struct {
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

type ItemUpdate struct {
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank"`
	Available   *bool   `json:"available"`
}

type CommentCreate struct {
	Text string `json:"text" validate:"notblank"`
}

type BookingCreate struct {
	ItemID int64     `json:"itemId" validate:"gt=0"`
	Start  time.Time `json:"start" validate:"required,future"`
	End    time.Time `json:"end" validate:"required,future,gtfield=Start"`
}

type RequestCreate struct {
	Description string `json:"description" validate:"notblank"`
}

// Page параметры пагинации from/size
type Page struct {
	From int `validate:"gte=0"`
	Size int `validate:"gt=0"`
}
