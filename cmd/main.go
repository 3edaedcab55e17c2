package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	calculateQuoteHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/calculate_quote"
	createBookingHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/get_catalog"
	listBookingsHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-DetailingBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingBooking/internal/config"
	"github.com/m04kA/SMC-DetailingBooking/internal/infra/queue/redisqueue"
	bookingRepo "github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/notificationservice"
	bookingsService "github.com/m04kA/SMC-DetailingBooking/internal/service/bookings"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/occupancy"
	quoteService "github.com/m04kA/SMC-DetailingBooking/internal/service/quote"
	createBookingUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/get_availability"
	"github.com/m04kA/SMC-DetailingBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
	"github.com/m04kA/SMC-DetailingBooking/pkg/metrics"
	"github.com/m04kA/SMC-DetailingBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-DetailingBooking...")

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

	// При выключенных метриках обертка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if err := wrappedDB.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.ApplyMigrations {
		if err := migrations.Up(startupCtx, wrappedDB, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Канал уведомлений о новых бронированиях
	var notifier createBookingUC.Notifier
	switch cfg.Notifications.Driver {
	case config.NotificationDriverHTTP:
		notifier = notificationservice.NewClient(
			cfg.Notifications.URL,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			log,
		)
		log.Info("Notifications sent over HTTP (url=%s, timeout=%ds)", cfg.Notifications.URL, cfg.Notifications.Timeout)

	case config.NotificationDriverRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Notifications.RedisAddr,
			Password: cfg.Notifications.RedisPassword,
			DB:       cfg.Notifications.RedisDB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(startupCtx).Err(); err != nil {
			log.Warn("Redis is not reachable, booking notifications will fail until it is: %v", err)
		}
		notifier = redisqueue.NewPublisher(redisClient, cfg.Notifications.RedisChannel, log)
		log.Info("Notifications published to redis (addr=%s, channel=%s)",
			cfg.Notifications.RedisAddr, cfg.Notifications.RedisChannel)

	default:
		notifier = notificationservice.Noop{}
		log.Info("Notifications disabled")
	}

	// Инициализируем репозитории и сервисы
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	resolver := occupancy.NewResolver(bookingRepository, metricsCollector, log)
	quoteSvc := quoteService.NewService()
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		resolver,
		quoteSvc,
		notifier,
		txMgr,
		metricsCollector,
		log,
		createBookingUC.Options{StrictSlotCheck: cfg.Booking.StrictSlotCheck},
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(resolver, log)

	log.Info("Booking writer initialized (strict_slot_check=%t)", cfg.Booking.StrictSlotCheck)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(quoteSvc, log)
	calculateQuote := calculateQuoteHandler.NewHandler(quoteSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталоги и расчет стоимости ---
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", calculateQuote.Handle).Methods(http.MethodPost)

	// --- Доступность ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
