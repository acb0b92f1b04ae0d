package get_my_requests

import (
	"context"

	"github.com/m04kA/SMC-ShareIt/internal/service/requests/models"
)

type RequestService interface {
	ListMine(ctx context.Context, requesterID int64) ([]*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
