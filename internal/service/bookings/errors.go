package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

var (
	// ErrBookingNotFound бронирование не найдено или вызывающий не его участник
	ErrBookingNotFound = fmt.Errorf("booking not found: %w", domain.ErrNotFound)

	// ErrUserNotFound вызывающий пользователь не найден
	ErrUserNotFound = fmt.Errorf("user not found: %w", domain.ErrNotFound)

	// ErrUnknownState токен окна выборки не распознан
	ErrUnknownState = fmt.Errorf("unknown state: %w", domain.ErrValidation)

	// ErrInvalidPagination from < 0 или size <= 0
	ErrInvalidPagination = fmt.Errorf("invalid pagination: %w", domain.ErrValidation)

	// ErrBookingNotFinished у пользователя нет завершившегося бронирования вещи
	ErrBookingNotFinished = fmt.Errorf("booking not finished: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
