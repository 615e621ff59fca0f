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

	checkAvailabilityHandler "github.com/m04kA/FDS-ReservationService/internal/api/handlers/check_availability"
	createFeedbackHandler "github.com/m04kA/FDS-ReservationService/internal/api/handlers/create_feedback"
	createReminderHandler "github.com/m04kA/FDS-ReservationService/internal/api/handlers/create_reminder"
	createReservationHandler "github.com/m04kA/FDS-ReservationService/internal/api/handlers/create_reservation"
	getCatalogHandler "github.com/m04kA/FDS-ReservationService/internal/api/handlers/get_catalog"
	getFeedbackHandler "github.com/m04kA/FDS-ReservationService/internal/api/handlers/get_feedback"
	getRemindersHandler "github.com/m04kA/FDS-ReservationService/internal/api/handlers/get_reminders"
	getReservationsHandler "github.com/m04kA/FDS-ReservationService/internal/api/handlers/get_reservations"
	healthHandler "github.com/m04kA/FDS-ReservationService/internal/api/handlers/health"
	"github.com/m04kA/FDS-ReservationService/internal/api/middleware"
	"github.com/m04kA/FDS-ReservationService/internal/config"
	"github.com/m04kA/FDS-ReservationService/internal/domain"
	feedbackRepo "github.com/m04kA/FDS-ReservationService/internal/infra/storage/feedback"
	reminderRepo "github.com/m04kA/FDS-ReservationService/internal/infra/storage/reminder"
	reservationRepo "github.com/m04kA/FDS-ReservationService/internal/infra/storage/reservation"
	feedbackService "github.com/m04kA/FDS-ReservationService/internal/service/feedback"
	remindersService "github.com/m04kA/FDS-ReservationService/internal/service/reminders"
	reservationsService "github.com/m04kA/FDS-ReservationService/internal/service/reservations"
	checkAvailabilityUC "github.com/m04kA/FDS-ReservationService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/FDS-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/FDS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/FDS-ReservationService/pkg/logger"
	"github.com/m04kA/FDS-ReservationService/pkg/metrics"
	"github.com/m04kA/FDS-ReservationService/pkg/slotlock"
	"github.com/m04kA/FDS-ReservationService/pkg/txmanager"
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

	log.Info("Starting FDS-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	// Оборачиваем соединение: с метриками или без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}

	// Планировка зала фиксируется на старте и не меняется до рестарта
	catalog := domain.NewCatalog(cfg.Tables.Reserved, cfg.Tables.Standard, cfg.Tables.StandardSeats)
	log.Info("Table catalog initialized: %d reserved, %d standard (x%d seats)",
		len(catalog.ReservedIDs()), len(catalog.StandardIDs()), catalog.StandardCapacity())

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	feedbackRepository := feedbackRepo.NewRepository(wrappedDB)
	reminderRepository := reminderRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)
	slotLocks := slotlock.New()

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	feedbackSvc := feedbackService.NewService(feedbackRepository, log)
	remindersSvc := remindersService.NewService(reminderRepository, log)

	// Инициализируем use cases
	var outcomes createReservationUC.OutcomeRecorder
	if metricsCollector != nil {
		outcomes = metricsCollector
	}
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		slotLocks,
		catalog,
		outcomes,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		catalog,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalog)
	getReservations := getReservationsHandler.NewHandler(reservationsSvc, log)
	createFeedback := createFeedbackHandler.NewHandler(feedbackSvc, log)
	getFeedback := getFeedbackHandler.NewHandler(feedbackSvc, log)
	createReminder := createReminderHandler.NewHandler(remindersSvc, log)
	getReminders := getRemindersHandler.NewHandler(remindersSvc, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Доступность столов и конфигурация зала
	api.HandleFunc("/tables", checkAvailability.Handle).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/tables/info", getCatalog.Handle).Methods(http.MethodGet, http.MethodOptions)

	// Бронирования: создание под rate limit, листинг без него
	api.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet, http.MethodOptions)

	createReservationRoute := api.PathPrefix("/reservations").Subrouter()
	createReservationRoute.HandleFunc("", createReservation.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Отзывы
	api.HandleFunc("/feedback", getFeedback.Handle).Methods(http.MethodGet, http.MethodOptions)

	createFeedbackRoute := api.PathPrefix("/feedback").Subrouter()
	createFeedbackRoute.HandleFunc("", createFeedback.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Напоминания
	api.HandleFunc("/reminders", getReminders.Handle).Methods(http.MethodGet, http.MethodOptions)

	createReminderRoute := api.PathPrefix("/reminders").Subrouter()
	createReminderRoute.HandleFunc("", createReminder.Handle).Methods(http.MethodPost, http.MethodOptions)

	if cfg.RateLimit.Enabled {
		reservationsLimiter := middleware.NewRateLimiter(cfg.RateLimit.ReservationsPerMinute, stopCh)
		feedbackLimiter := middleware.NewRateLimiter(cfg.RateLimit.FeedbackPerMinute, stopCh)

		createReservationRoute.Use(reservationsLimiter.Middleware)
		createFeedbackRoute.Use(feedbackLimiter.Middleware)
		createReminderRoute.Use(feedbackLimiter.Middleware)
		log.Info("Rate limiting enabled: %d/min reservations, %d/min feedback",
			cfg.RateLimit.ReservationsPerMinute, cfg.RateLimit.FeedbackPerMinute)
	}

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

	// Останавливаем фоновые горутины (метрики пула, очистка rate limiter)
	close(stopCh)

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
