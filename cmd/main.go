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

	"github.com/bmbestetica/BMB-BookingService/internal/api/handlers"
	createBookingHandler "github.com/bmbestetica/BMB-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/bmbestetica/BMB-BookingService/internal/api/handlers/get_booking"
	getTimeslotsHandler "github.com/bmbestetica/BMB-BookingService/internal/api/handlers/get_timeslots"
	initServicesHandler "github.com/bmbestetica/BMB-BookingService/internal/api/handlers/init_services"
	listBookingsHandler "github.com/bmbestetica/BMB-BookingService/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/bmbestetica/BMB-BookingService/internal/api/handlers/list_services"
	notificationConfigHandler "github.com/bmbestetica/BMB-BookingService/internal/api/handlers/notification_config"
	updateBookingStatusHandler "github.com/bmbestetica/BMB-BookingService/internal/api/handlers/update_booking_status"
	"github.com/bmbestetica/BMB-BookingService/internal/api/middleware"
	"github.com/bmbestetica/BMB-BookingService/internal/config"
	bookingRepo "github.com/bmbestetica/BMB-BookingService/internal/infra/storage/booking"
	serviceRepo "github.com/bmbestetica/BMB-BookingService/internal/infra/storage/service"
	"github.com/bmbestetica/BMB-BookingService/internal/notify"
	bookingsService "github.com/bmbestetica/BMB-BookingService/internal/service/bookings"
	catalogService "github.com/bmbestetica/BMB-BookingService/internal/service/catalog"
	createBookingUC "github.com/bmbestetica/BMB-BookingService/internal/usecase/create_booking"
	getTimeslotsUC "github.com/bmbestetica/BMB-BookingService/internal/usecase/get_timeslots"
	"github.com/bmbestetica/BMB-BookingService/pkg/dbmetrics"
	"github.com/bmbestetica/BMB-BookingService/pkg/logger"
	"github.com/bmbestetica/BMB-BookingService/pkg/metrics"
	"github.com/bmbestetica/BMB-BookingService/pkg/simpletxmanager"
	"github.com/bmbestetica/BMB-BookingService/pkg/txmanager"
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

	log.Info("Starting BMB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		serviceRepository *serviceRepo.Repository
	)

	var txMgr createBookingUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем диспетчер уведомлений
	emailSender := notify.NewSMTPSender(
		cfg.Notifications.SMTPServer,
		cfg.Notifications.SMTPPort,
		cfg.Notifications.SMTPUser,
		cfg.Notifications.SMTPPassword,
		cfg.Notifications.FromEmail,
		log,
	)
	whatsappSender := notify.NewLogWhatsAppSender(log)

	var notifyMetrics notify.MetricsCollector
	if cfg.Metrics.Enabled {
		notifyMetrics = metricsCollector
	}

	dispatcher := notify.NewDispatcher(
		emailSender,
		whatsappSender,
		cfg.Notifications.OwnerEmail,
		cfg.Notifications.OwnerWhatsApp,
		cfg.Notifications.QueueSize,
		notifyMetrics,
		log,
	)
	defer dispatcher.Close()
	log.Info("Notification dispatcher started (queue_size=%d, email_configured=%t)",
		cfg.Notifications.QueueSize, cfg.Notifications.EmailConfigured())

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		txMgr,
		dispatcher,
		log,
	)
	getTimeslotsUseCase := getTimeslotsUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	initServices := initServicesHandler.NewHandler(catalogSvc, log)
	getTimeslots := getTimeslotsHandler.NewHandler(getTimeslotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	notificationConfig := notificationConfigHandler.NewHandler(cfg.Notifications)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// Корневой health endpoint
	api.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{
			"message": "BMB ESTÉTICA AUTOMOTIVA API",
		})
	}).Methods(http.MethodGet)

	// --- Каталог услуг ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/init-services", initServices.Handle).Methods(http.MethodPost)

	// --- Слоты ---
	api.HandleFunc("/timeslots", getTimeslots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Уведомления ---
	api.HandleFunc("/notification-config", notificationConfig.Handle).Methods(http.MethodGet)

	// CORS оборачивает роутер снаружи, чтобы preflight OPTIONS
	// не упирался в 405 на маршрутах с ограничением по методу
	handler := middleware.CORS(cfg.CORS.AllowedOrigins)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
