package item

import "errors"

var (
	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = errors.New("item.repository: item not found")

	ErrBuildQuery = errors.New("item.repository: failed to build query")
	ErrExecQuery  = errors.New("item.repository: failed to execute query")
	ErrScanRow    = errors.New("item.repository: failed to scan row")
)
