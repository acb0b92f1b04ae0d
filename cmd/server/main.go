package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/create_booking"
	createCommentHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/create_comment"
	createItemHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/create_item"
	createRequestHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/create_request"
	createUserHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/create_user"
	decideBookingHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/decide_booking"
	deleteUserHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/delete_user"
	getBookerBookingsHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/get_booker_bookings"
	getBookingHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/get_booking"
	getItemHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/get_item"
	getMyRequestsHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/get_my_requests"
	getOtherRequestsHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/get_other_requests"
	getOwnerBookingsHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/get_owner_bookings"
	getOwnerItemsHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/get_owner_items"
	getRequestHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/get_request"
	getUserHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/get_user"
	listUsersHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/list_users"
	searchItemsHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/search_items"
	updateItemHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/update_item"
	updateUserHandler "github.com/m04kA/SMC-ShareIt/internal/api/handlers/update_user"
	"github.com/m04kA/SMC-ShareIt/internal/api/middleware"
	"github.com/m04kA/SMC-ShareIt/internal/config"
	bookingRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/booking"
	commentRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/comment"
	itemRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/item"
	requestRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/request"
	userRepo "github.com/m04kA/SMC-ShareIt/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-ShareIt/internal/service/bookings"
	itemsService "github.com/m04kA/SMC-ShareIt/internal/service/items"
	requestsService "github.com/m04kA/SMC-ShareIt/internal/service/requests"
	usersService "github.com/m04kA/SMC-ShareIt/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-ShareIt/internal/usecase/create_booking"
	decideBookingUC "github.com/m04kA/SMC-ShareIt/internal/usecase/decide_booking"
	"github.com/m04kA/SMC-ShareIt/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareIt/pkg/logger"
	"github.com/m04kA/SMC-ShareIt/pkg/metrics"
	"github.com/m04kA/SMC-ShareIt/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to server config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting ShareIt server...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка просто проксирует вызовы
	wrappedDB := dbmetrics.Wrap(db, metricsCollector)
	wrappedDB.StartPoolCollector(15*time.Second, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(wrappedDB)
	itemRepository := itemRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	requestRepository := requestRepo.NewRepository(wrappedDB)
	commentRepository := commentRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	userSvc := usersService.NewService(userRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, userRepository, log)
	itemSvc := itemsService.NewService(
		itemRepository,
		userRepository,
		requestRepository,
		commentRepository,
		bookingSvc,
		log,
	)
	requestSvc := requestsService.NewService(requestRepository, itemRepository, userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		itemRepository,
		txMgr,
		metricsCollector,
		log,
	)
	decideBookingUseCase := decideBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	createUser := createUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)
	deleteUser := deleteUserHandler.NewHandler(userSvc, log)

	createItem := createItemHandler.NewHandler(itemSvc, log)
	updateItem := updateItemHandler.NewHandler(itemSvc, log)
	getItem := getItemHandler.NewHandler(itemSvc, log)
	getOwnerItems := getOwnerItemsHandler.NewHandler(itemSvc, log)
	searchItems := searchItemsHandler.NewHandler(itemSvc, log)
	createComment := createCommentHandler.NewHandler(itemSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	decideBooking := decideBookingHandler.NewHandler(decideBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookerBookings := getBookerBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)

	createRequest := createRequestHandler.NewHandler(requestSvc, log)
	getRequest := getRequestHandler.NewHandler(requestSvc, log)
	getMyRequests := getMyRequestsHandler.NewHandler(requestSvc, log)
	getOtherRequests := getOtherRequestsHandler.NewHandler(requestSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без X-Sharer-User-Id)
	// ============================================================

	// --- Пользователи ---
	api.HandleFunc("/users", createUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", getUser.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}", updateUser.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/users/{userId}", deleteUser.Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Sharer-User-Id header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Вещи ---
	protected.HandleFunc("/items", createItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/items", getOwnerItems.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/search", searchItems.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", getItem.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", updateItem.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/items/{itemId}/comment", createComment.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getBookerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/owner", getOwnerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", decideBooking.Handle).Methods(http.MethodPatch)

	// --- Запросы вещей ---
	protected.HandleFunc("/requests", createRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/requests", getMyRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/all", getOtherRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)

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
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
