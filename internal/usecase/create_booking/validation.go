package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

// validateRequest валидирует входные данные запроса относительно текущего времени
func validateRequest(req *Request, now time.Time) error {
	if req.BookerID <= 0 {
		return fmt.Errorf("%w: bookerID must be positive", ErrInvalidInput)
	}

	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.Start.After(now) {
		return ErrStartNotInFuture
	}

	if !domain.ValidInterval(req.Start, req.End) {
		return ErrInvalidInterval
	}

	return nil
}
