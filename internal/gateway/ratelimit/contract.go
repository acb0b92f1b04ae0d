package ratelimit

import "context"

// Limiter решает, пропустить ли очередной запрос с ключом key
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Metrics interface {
	ObserveRateLimitRejection(backend string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
