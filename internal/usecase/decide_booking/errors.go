package decide_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

var (
	// ErrBookingNotFound бронирование не найдено или вызывающий не владелец вещи
	ErrBookingNotFound = fmt.Errorf("decide_booking: booking not found: %w", domain.ErrNotFound)

	// ErrNotWaiting решение по бронированию уже принято
	ErrNotWaiting = fmt.Errorf("decide_booking: status change only permitted from WAITING: %w", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("decide_booking: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_booking: internal error")
)
