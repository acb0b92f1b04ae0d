package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ShareIt/internal/service/bookings/models"
)

// Request модель запроса на создание бронирования
type Request struct {
	BookerID int64     // ID пользователя, который бронирует (X-Sharer-User-Id)
	ItemID   int64     // ID вещи
	Start    time.Time // Начало, строго в будущем
	End      time.Time // Конец, строго после начала
}

// Response созданное бронирование (статус всегда WAITING)
type Response = models.BookingResponse
