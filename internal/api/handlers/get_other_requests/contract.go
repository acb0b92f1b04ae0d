package get_other_requests

import (
	"context"

	"github.com/m04kA/SMC-ShareIt/internal/service/requests/models"
)

type RequestService interface {
	ListOthers(ctx context.Context, requesterID int64, from, size int) ([]*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
