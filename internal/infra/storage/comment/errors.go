package comment

import "errors"

var (
	ErrBuildQuery = errors.New("comment.repository: failed to build query")
	ErrExecQuery  = errors.New("comment.repository: failed to execute query")
	ErrScanRow    = errors.New("comment.repository: failed to scan row")
)
