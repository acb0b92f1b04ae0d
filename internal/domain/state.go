package domain

import "time"

// BookingState окно выборки бронирований относительно текущего времени / статуса
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

var knownStates = map[string]BookingState{
	string(StateAll):      StateAll,
	string(StateCurrent):  StateCurrent,
	string(StatePast):     StatePast,
	string(StateFuture):   StateFuture,
	string(StateWaiting):  StateWaiting,
	string(StateRejected): StateRejected,
}

// ParseBookingState разбирает токен состояния (регистр важен)
func ParseBookingState(token string) (BookingState, bool) {
	state, ok := knownStates[token]
	return state, ok
}

// BookingScope по какому участнику фильтровать бронирования
type BookingScope int

const (
	ScopeBooker BookingScope = iota // b.booker_id
	ScopeOwner                      // i.owner_id
)

func (s BookingScope) String() string {
	if s == ScopeOwner {
		return "owner"
	}
	return "booker"
}

// BookingFilter параметры выборки списка бронирований
// Результат всегда отсортирован по start по убыванию, пагинация применяется после фильтрации
type BookingFilter struct {
	Scope  BookingScope
	UserID int64
	State  BookingState
	Now    time.Time
	Page   Page
}
