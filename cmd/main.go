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

	bookingAnalyticsHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/booking_analytics"
	catalogRevenueHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/catalog_revenue"
	createBookingHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/create_booking"
	createTurfHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/create_turf"
	deleteTurfHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/delete_turf"
	getAllBookingsHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/get_all_bookings"
	getOwnerBookingsHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/get_owner_bookings"
	getOwnerTurfsHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/get_owner_turfs"
	getTurfHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/get_turf"
	getUserHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/get_user_bookings"
	listTurfsHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/list_turfs"
	loginUserHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/login_user"
	updateTurfHandler "github.com/booknjoy/turf-booking-service/internal/api/handlers/update_turf"
	"github.com/booknjoy/turf-booking-service/internal/api/middleware"
	"github.com/booknjoy/turf-booking-service/internal/config"
	bookingRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/booking"
	turfRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/turf"
	userRepo "github.com/booknjoy/turf-booking-service/internal/infra/storage/user"
	"github.com/booknjoy/turf-booking-service/internal/integrations/mailservice"
	bookingsService "github.com/booknjoy/turf-booking-service/internal/service/bookings"
	"github.com/booknjoy/turf-booking-service/internal/service/notification"
	"github.com/booknjoy/turf-booking-service/internal/service/promo"
	turfsService "github.com/booknjoy/turf-booking-service/internal/service/turfs"
	usersService "github.com/booknjoy/turf-booking-service/internal/service/users"
	createBookingUC "github.com/booknjoy/turf-booking-service/internal/usecase/create_booking"
	revenueDashboardUC "github.com/booknjoy/turf-booking-service/internal/usecase/revenue_dashboard"
	"github.com/booknjoy/turf-booking-service/pkg/dbmetrics"
	"github.com/booknjoy/turf-booking-service/pkg/logger"
	"github.com/booknjoy/turf-booking-service/pkg/metrics"
	"github.com/booknjoy/turf-booking-service/pkg/simpletxmanager"
	"github.com/booknjoy/turf-booking-service/pkg/txmanager"
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

	log.Info("Starting turf-booking-service...")
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

	// Инициализируем почтовый клиент
	mailClient := mailservice.NewClient(
		cfg.MailService.URL,
		cfg.MailService.From,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Mail client initialized (url=%s timeout=%ds)", cfg.MailService.URL, cfg.MailService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		turfRepository    *turfRepo.Repository
		userRepository    *userRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		turfRepository = turfRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		turfRepository = turfRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	promoEngine := promo.NewEngine()
	notifier := notification.NewDispatcher(mailClient, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	turfSvc := turfsService.NewService(turfRepository, userRepository, log)
	userSvc := usersService.NewService(userRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		turfRepository,
		promoEngine,
		notifier,
		txMgr,
		log,
	)
	revenueDashboardUseCase := revenueDashboardUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	bookingAnalytics := bookingAnalyticsHandler.NewHandler(revenueDashboardUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	createTurf := createTurfHandler.NewHandler(turfSvc, log)
	getTurf := getTurfHandler.NewHandler(turfSvc, log)
	listTurfs := listTurfsHandler.NewHandler(turfSvc, log)
	updateTurf := updateTurfHandler.NewHandler(turfSvc, log)
	deleteTurf := deleteTurfHandler.NewHandler(turfSvc, log)
	getOwnerTurfs := getOwnerTurfsHandler.NewHandler(turfSvc, log)
	catalogRevenue := catalogRevenueHandler.NewHandler(turfSvc, log)
	loginUser := loginUserHandler.NewHandler(userSvc, log)
	getUser := getUserHandler.NewHandler(userSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог площадок
	api.HandleFunc("/turfs", listTurfs.Handle).Methods(http.MethodGet)
	api.HandleFunc("/turfs/{turfId:[0-9]+}", getTurf.Handle).Methods(http.MethodGet)

	// Вход через identity-провайдера и публичный профиль
	api.HandleFunc("/users/login", loginUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users/{email}", getUser.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Бронирования ---
	// Demo-оплата: создание бронирования сразу в статусе paid
	protected.HandleFunc("/bookings/demo-payment", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/users/{email}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Кабинет владельца ---
	// Бронирования всех площадок владельца
	protected.HandleFunc("/owners/{email}/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)

	// Площадки владельца
	protected.HandleFunc("/owners/{email}/turfs", getOwnerTurfs.Handle).Methods(http.MethodGet)

	// Управление каталогом
	protected.HandleFunc("/turfs", createTurf.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/turfs/{turfId:[0-9]+}", updateTurf.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/turfs/{turfId:[0-9]+}", deleteTurf.Handle).Methods(http.MethodDelete)

	// ============================================================
	// ADMIN ROUTES (требуют email из allowlist)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminEmails, log))

	// Все бронирования платформы
	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)

	// Аналитика по выручке (дашборд)
	admin.HandleFunc("/bookings/analytics", bookingAnalytics.Handle).Methods(http.MethodGet)

	// Каталожный отчет по прайс-листам
	admin.HandleFunc("/turfs/analytics/revenue", catalogRevenue.Handle).Methods(http.MethodGet)

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
