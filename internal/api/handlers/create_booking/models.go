package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-ShareIt/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId"`
	Start  time.Time `json:"start"` // RFC3339
	End    time.Time `json:"end"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(bookerID int64) *createBooking.Request {
	return &createBooking.Request{
		BookerID: bookerID,
		ItemID:   r.ItemID,
		Start:    r.Start,
		End:      r.End,
	}
}
