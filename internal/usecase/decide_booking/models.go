package decide_booking

import (
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings/models"
)

// Request решение владельца по бронированию
type Request struct {
	OwnerID   int64 // ID вызывающего, должен совпадать с владельцем вещи
	BookingID int64
	Approved  bool // true - APPROVED, false - REJECTED
}

// Response бронирование после перехода
type Response = models.BookingResponse
