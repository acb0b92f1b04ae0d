package domain

import "time"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// Booking бронирование вещи пользователем на полуоткрытый интервал [Start, End)
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Item   *Item // Загружается вместе с бронированием (владелец - Item.OwnerID)
	Booker *User
	Status BookingStatus
}

// IsWaiting бронирование ещё ждёт решения владельца
func (b *Booking) IsWaiting() bool {
	return b.Status == StatusWaiting
}

// IsTerminal из статуса нет переходов
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}

// IsFinished бронирование закончилось к моменту now
func (b *Booking) IsFinished(now time.Time) bool {
	return b.End.Before(now)
}

// OwnerID id владельца забронированной вещи
func (b *Booking) OwnerID() int64 {
	if b.Item == nil {
		return 0
	}
	return b.Item.OwnerID
}

// BookerID id автора бронирования
func (b *Booking) BookerID() int64 {
	if b.Booker == nil {
		return 0
	}
	return b.Booker.ID
}

// IsParticipant пользователь - автор бронирования или владелец вещи
func (b *Booking) IsParticipant(userID int64) bool {
	return b.BookerID() == userID || b.OwnerID() == userID
}

// Decide возвращает статус, в который переходит бронирование по решению владельца
// Переход разрешён только из WAITING; ok=false означает, что решение уже принято
func (b *Booking) Decide(approve bool) (next BookingStatus, ok bool) {
	if !b.IsWaiting() {
		return b.Status, false
	}
	if approve {
		return StatusApproved, true
	}
	return StatusRejected, true
}

// ValidInterval проверяет start < end (строго)
func ValidInterval(start, end time.Time) bool {
	return start.Before(end)
}

// BookingSummary минимальная проекция бронирования для карточки вещи (last/next booking)
type BookingSummary struct {
	ID       int64
	BookerID int64
}

// Summary проекция бронирования
func (b *Booking) Summary() *BookingSummary {
	return &BookingSummary{ID: b.ID, BookerID: b.BookerID()}
}
