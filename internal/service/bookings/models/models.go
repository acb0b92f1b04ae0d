package models

import (
	"time"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

// Request модели

// ListBookingsRequest запрос списка бронирований автора или владельца вещей
type ListBookingsRequest struct {
	UserID int64  `json:"userId"`
	State  string `json:"state"`
	From   int    `json:"from"`
	Size   int    `json:"size"`
}

// Response модели

// ItemRef краткая информация о вещи в бронировании
type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserRef краткая информация об авторе бронирования
type UserRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingResponse ответ с информацией о бронировании
type BookingResponse struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
}

// BookingSummaryResponse последнее / следующее бронирование в карточке вещи
type BookingSummaryResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// Конвертеры

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:     booking.ID,
		Start:  booking.Start,
		End:    booking.End,
		Status: string(booking.Status),
	}

	if booking.Item != nil {
		resp.Item = ItemRef{ID: booking.Item.ID, Name: booking.Item.Name}
	}
	if booking.Booker != nil {
		resp.Booker = UserRef{ID: booking.Booker.ID, Name: booking.Booker.Name}
	}

	return resp
}

// FromDomainBookingList конвертирует список бронирований
// Пустой список сериализуется как [], а не null
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// FromDomainSummary конвертирует проекцию; nil остаётся nil
func FromDomainSummary(summary *domain.BookingSummary) *BookingSummaryResponse {
	if summary == nil {
		return nil
	}
	return &BookingSummaryResponse{ID: summary.ID, BookerID: summary.BookerID}
}
