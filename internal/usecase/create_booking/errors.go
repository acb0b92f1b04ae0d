package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

var (
	// ErrUserNotFound возвращается, когда автор бронирования не найден
	ErrUserNotFound = fmt.Errorf("create_booking: user not found: %w", domain.ErrNotFound)

	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = fmt.Errorf("create_booking: item not found: %w", domain.ErrNotFound)

	// ErrOwnItem возвращается, когда владелец пытается забронировать свою вещь.
	// Сообщается как "не найдено", а не как ошибка валидации
	ErrOwnItem = fmt.Errorf("create_booking: owner cannot book own item: %w", domain.ErrNotFound)

	// ErrItemUnavailable возвращается, когда вещь недоступна для бронирования
	ErrItemUnavailable = fmt.Errorf("create_booking: item unavailable: %w", domain.ErrValidation)

	// ErrStartNotInFuture возвращается, когда начало бронирования не в будущем
	ErrStartNotInFuture = fmt.Errorf("create_booking: start must be in the future: %w", domain.ErrValidation)

	// ErrInvalidInterval возвращается, когда start >= end
	ErrInvalidInterval = fmt.Errorf("create_booking: start must be before end: %w", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
