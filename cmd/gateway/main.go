package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ShareIt/internal/api/middleware"
	"github.com/m04kA/SMC-ShareIt/internal/config"
	"github.com/m04kA/SMC-ShareIt/internal/gateway/proxy"
	"github.com/m04kA/SMC-ShareIt/internal/gateway/ratelimit"
	"github.com/m04kA/SMC-ShareIt/internal/gateway/validation"
	"github.com/m04kA/SMC-ShareIt/internal/integrations/shareitserver"
	"github.com/m04kA/SMC-ShareIt/pkg/logger"
	"github.com/m04kA/SMC-ShareIt/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "gateway.toml", "path to gateway config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.LoadGateway(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ShareIt gateway...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент server-приложения
	serverClient := shareitserver.NewClient(
		cfg.ShareItServer.URL,
		time.Duration(cfg.ShareItServer.Timeout)*time.Second,
		log,
	)
	log.Info("ShareIt server client initialized (url=%s, timeout=%ds)",
		cfg.ShareItServer.URL, cfg.ShareItServer.Timeout)

	proxyHandler := proxy.NewHandler(serverClient, validation.New(), log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Rate limiting
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		var limiter ratelimit.Limiter

		switch cfg.RateLimit.Backend {
		case config.RateLimitBackendRedis:
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
				PoolSize: cfg.Redis.PoolSize,
			})

			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := ratelimit.Ping(pingCtx, redisClient)
			cancel()
			if err != nil {
				log.Fatal("Failed to connect to Redis at %s: %v", cfg.Redis.Addr, err)
			}

			limiter = ratelimit.NewRedisLimiter(
				redisClient,
				cfg.RateLimit.WindowLimit,
				time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			)
		default:
			limiter = ratelimit.NewLocalLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		}

		api.Use(ratelimit.Middleware(limiter, cfg.RateLimit.Backend, metricsCollector, log))
		log.Info("Rate limiting enabled (backend=%s)", cfg.RateLimit.Backend)
	}

	proxy.Register(api, proxyHandler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting gateway on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Gateway failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gateway...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Gateway forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis client: %v", err)
		}
	}

	log.Info("Gateway stopped gracefully")
}
