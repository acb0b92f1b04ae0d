package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Поддерживаемые бэкенды rate limiter'а
const (
	RateLimitBackendLocal = "local"
	RateLimitBackendRedis = "redis"
)

// GatewayConfig конфигурация gateway-приложения
type GatewayConfig struct {
	Server        ServerConfig        `toml:"server"`
	ShareItServer ShareItServerConfig `toml:"shareit_server"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	Redis         RedisConfig         `toml:"redis"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
}

// ShareItServerConfig адрес server-приложения, куда gateway проксирует запросы
type ShareItServerConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// RateLimitConfig ограничение частоты запросов на одного пользователя
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	Backend           string  `toml:"backend"` // local | redis
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	WindowSeconds     int     `toml:"window_seconds"` // только для redis
	WindowLimit       int     `toml:"window_limit"`   // только для redis
}

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	PoolSize int    `toml:"pool_size"`
}

// LoadGateway читает конфигурацию gateway из TOML файла
func LoadGateway(path string) (*GatewayConfig, error) {
	loadDotEnv()

	var cfg GatewayConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *GatewayConfig) applyEnv() {
	overrideString(&c.ShareItServer.URL, "SHAREIT_SERVER_URL")
	overrideString(&c.Redis.Addr, "REDIS_ADDR")
	overrideString(&c.Redis.Password, "REDIS_PASSWORD")
	overrideString(&c.Logs.Level, "LOG_LEVEL")
}

func (c *GatewayConfig) applyDefaults() {
	c.Server.applyDefaults(8080)

	if c.ShareItServer.URL == "" {
		c.ShareItServer.URL = "http://localhost:9090"
	}
	if c.ShareItServer.Timeout == 0 {
		c.ShareItServer.Timeout = 5
	}

	if c.RateLimit.Backend == "" {
		c.RateLimit.Backend = RateLimitBackendLocal
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if c.RateLimit.WindowLimit == 0 {
		c.RateLimit.WindowLimit = 600
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}

	c.Metrics.applyDefaults("shareit-gateway")
}

func (c *GatewayConfig) validate() error {
	if err := c.Server.validate(); err != nil {
		return err
	}
	if c.ShareItServer.Timeout < 0 {
		return fmt.Errorf("%w: shareit_server.timeout=%d", ErrInvalidConfig, c.ShareItServer.Timeout)
	}

	if !c.RateLimit.Enabled {
		return nil
	}

	switch c.RateLimit.Backend {
	case RateLimitBackendLocal, RateLimitBackendRedis:
	default:
		return fmt.Errorf("%w: rate_limit.backend=%q", ErrInvalidConfig, c.RateLimit.Backend)
	}
	if c.RateLimit.RequestsPerSecond < 0 || c.RateLimit.Burst < 0 || c.RateLimit.WindowLimit < 0 {
		return fmt.Errorf("%w: rate_limit values must not be negative", ErrInvalidConfig)
	}

	return nil
}
