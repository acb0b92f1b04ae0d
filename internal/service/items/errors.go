package items

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareIt/internal/domain"
)

var (
	// ErrItemNotFound вещь не найдена (или вызывающий не её владелец при изменении)
	ErrItemNotFound = fmt.Errorf("item not found: %w", domain.ErrNotFound)

	// ErrUserNotFound вызывающий пользователь не найден
	ErrUserNotFound = fmt.Errorf("user not found: %w", domain.ErrNotFound)

	// ErrRequestNotFound запрос, указанный в requestId, не найден
	ErrRequestNotFound = fmt.Errorf("request not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("invalid item data: %w", domain.ErrValidation)

	// ErrInvalidPagination from < 0 или size <= 0
	ErrInvalidPagination = fmt.Errorf("invalid pagination: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("items.service: internal error")
)
