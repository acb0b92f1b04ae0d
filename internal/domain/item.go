package domain

import "time"

// Item вещь, которую можно взять в аренду
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64 // Запрос, в ответ на который вещь была добавлена
}

// ItemPatch частичное обновление вещи, nil поля не меняются
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Apply применяет патч к вещи
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Available != nil {
		item.Available = *p.Available
	}
}

// Comment отзыв о вещи
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}
