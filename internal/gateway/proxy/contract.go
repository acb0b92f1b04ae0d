package proxy

import (
	"context"

	"github.com/m04kA/SMC-ShareIt/internal/integrations/shareitserver"
)

// Forwarder передаёт запрос в server
type Forwarder interface {
	Forward(ctx context.Context, req *shareitserver.ForwardRequest) (*shareitserver.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
