package get_owner_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-ShareIt/internal/api/handlers"
	"github.com/m04kA/SMC-ShareIt/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(r *http.Request, userID int64) (*models.ListBookingsRequest, error) {
	from, size, err := handlers.Pagination(r)
	if err != nil {
		return nil, err
	}

	return &models.ListBookingsRequest{
		UserID: userID,
		State:  handlers.State(r),
		From:   from,
		Size:   size,
	}, nil
}
