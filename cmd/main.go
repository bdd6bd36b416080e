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

	adminCatalogHandler "github.com/m04kA/partizan-booking/internal/api/handlers/admin_catalog"
	adminOrdersHandler "github.com/m04kA/partizan-booking/internal/api/handlers/admin_orders"
	adminReviewsHandler "github.com/m04kA/partizan-booking/internal/api/handlers/admin_reviews"
	createFullOrderHandler "github.com/m04kA/partizan-booking/internal/api/handlers/create_full_order"
	createQuickOrderHandler "github.com/m04kA/partizan-booking/internal/api/handlers/create_quick_order"
	createReviewHandler "github.com/m04kA/partizan-booking/internal/api/handlers/create_review"
	getAvailableDatesHandler "github.com/m04kA/partizan-booking/internal/api/handlers/get_available_dates"
	getCategoriesHandler "github.com/m04kA/partizan-booking/internal/api/handlers/get_categories"
	getHolidayHandler "github.com/m04kA/partizan-booking/internal/api/handlers/get_holiday"
	getHolidaysHandler "github.com/m04kA/partizan-booking/internal/api/handlers/get_holidays"
	getReviewsHandler "github.com/m04kA/partizan-booking/internal/api/handlers/get_reviews"
	registerTrainingHandler "github.com/m04kA/partizan-booking/internal/api/handlers/register_training"
	"github.com/m04kA/partizan-booking/internal/api/middleware"
	"github.com/m04kA/partizan-booking/internal/config"
	"github.com/m04kA/partizan-booking/internal/infra/migrator"
	bookingRepo "github.com/m04kA/partizan-booking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/partizan-booking/internal/infra/storage/catalog"
	leadsRepo "github.com/m04kA/partizan-booking/internal/infra/storage/leads"
	reviewRepo "github.com/m04kA/partizan-booking/internal/infra/storage/review"
	catalogService "github.com/m04kA/partizan-booking/internal/service/catalog"
	leadsService "github.com/m04kA/partizan-booking/internal/service/leads"
	"github.com/m04kA/partizan-booking/internal/service/ledger"
	ordersService "github.com/m04kA/partizan-booking/internal/service/orders"
	reviewsService "github.com/m04kA/partizan-booking/internal/service/reviews"
	createFullOrderUC "github.com/m04kA/partizan-booking/internal/usecase/create_full_order"
	getAvailableDatesUC "github.com/m04kA/partizan-booking/internal/usecase/get_available_dates"
	"github.com/m04kA/partizan-booking/pkg/dbmetrics"
	"github.com/m04kA/partizan-booking/pkg/logger"
	"github.com/m04kA/partizan-booking/pkg/metrics"
	"github.com/m04kA/partizan-booking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	cfg, err := config.Load(configPath)
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

	log.Info("Starting partizan-booking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid venue timezone: %v", err)
	}

	// Метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		bookingRecorder  createFullOrderUC.Recorder
		leadsRecorder    leadsService.Recorder
		dbCollector      dbmetrics.Collector
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		bookingRecorder = metricsCollector
		leadsRecorder = metricsCollector
		dbCollector = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Миграции
	if cfg.Migrations.AutoApply {
		if err := migrator.Up(cfg.Database.DSN(), log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)

	// Redis для общих счетчиков rate limit (опционально)
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled && cfg.RateLimit.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RateLimit.RedisURL)
		if err != nil {
			log.Fatal("Invalid redis url: %v", err)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Rate limit counters stored in redis")
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	leadsRepository := leadsRepo.NewRepository(wrappedDB)
	reviewRepository := reviewRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сервисы
	slotLedger := ledger.New(bookingRepository, &ledger.RealTimeProvider{Location: location})
	catalogSvc := catalogService.NewService(catalogRepository, log)
	leadsSvc := leadsService.NewService(leadsRepository, catalogRepository, leadsRecorder, log)
	reviewsSvc := reviewsService.NewService(reviewRepository, log)
	ordersSvc := ordersService.NewService(bookingRepository, leadsRepository, log)

	// Use cases
	createFullOrderUseCase := createFullOrderUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		slotLedger,
		txMgr,
		bookingRecorder,
		createFullOrderUC.Config{
			Hours:            cfg.BusinessHours.ToDomain(),
			Location:         location,
			MaxAdmitAttempts: cfg.Booking.MaxAdmitAttempts,
		},
		log,
	)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		location,
		log,
	)

	// Handlers
	createFullOrder := createFullOrderHandler.NewHandler(createFullOrderUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	createQuickOrder := createQuickOrderHandler.NewHandler(leadsSvc, log)
	registerTraining := registerTrainingHandler.NewHandler(leadsSvc, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	getReviews := getReviewsHandler.NewHandler(reviewsSvc, log)
	getHolidays := getHolidaysHandler.NewHandler(catalogSvc, log)
	getHoliday := getHolidayHandler.NewHandler(catalogSvc, log)
	getCategories := getCategoriesHandler.NewHandler(catalogSvc, log)
	adminOrders := adminOrdersHandler.NewHandler(ordersSvc, log)
	adminReviews := adminReviewsHandler.NewHandler(reviewsSvc, log)
	adminCatalog := adminCatalogHandler.NewHandler(catalogSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Метрики снаружи Recover: запросы с паникой учитываются как 500
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r.Use(middleware.Recover(log))

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/get-available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/holidays", getHolidays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/holidays/{slug}", getHoliday.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories", getCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reviews", getReviews.Handle).Methods(http.MethodGet)

	// Формы сайта: под rate limit
	// Ошибки форм, включая панику и лимит, всегда {success:false, message}
	forms := api.PathPrefix("").Subrouter()
	forms.Use(middleware.RecoverForm(log))
	if cfg.RateLimit.Enabled {
		limit, err := middleware.NewRateLimiter(middleware.RateLimitConfig{
			Rate:               cfg.RateLimit.Rate,
			TrustForwardHeader: cfg.RateLimit.TrustForwardHeader,
			FormResponse:       true,
		}, redisClient)
		if err != nil {
			log.Fatal("Failed to create rate limiter: %v", err)
		}
		forms.Use(limit)
		log.Info("Rate limit %s enabled for public forms", cfg.RateLimit.Rate)
	}

	forms.HandleFunc("/create-full-order", createFullOrder.Handle).Methods(http.MethodPost)
	forms.HandleFunc("/create-quick-order", createQuickOrder.Handle).Methods(http.MethodPost)
	forms.HandleFunc("/create-review", createReview.Handle).Methods(http.MethodPost)
	forms.HandleFunc("/register-training", registerTraining.Handle).Methods(http.MethodPost)

	// ============================================================
	// BACK OFFICE (X-Admin-Token)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))
	if cfg.Admin.Token == "" {
		log.Warn("Admin token is empty: back office is disabled")
	}

	// --- Заявки ---
	admin.HandleFunc("/orders/full", adminOrders.ListFull).Methods(http.MethodGet)
	admin.HandleFunc("/orders/full/{id}", adminOrders.GetFull).Methods(http.MethodGet)
	admin.HandleFunc("/orders/quick", adminOrders.ListQuick).Methods(http.MethodGet)
	admin.HandleFunc("/orders/training", adminOrders.ListTrainings).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{kind}/{id}/processed", adminOrders.MarkProcessed).Methods(http.MethodPatch)

	// --- Отзывы ---
	admin.HandleFunc("/reviews", adminReviews.List).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{id}/approve", adminReviews.Approve).Methods(http.MethodPatch)
	admin.HandleFunc("/reviews/{id}", adminReviews.Delete).Methods(http.MethodDelete)

	// --- Каталог ---
	admin.HandleFunc("/categories", adminCatalog.CreateCategory).Methods(http.MethodPost)
	admin.HandleFunc("/holidays", adminCatalog.ListHolidays).Methods(http.MethodGet)
	admin.HandleFunc("/holidays", adminCatalog.CreateHoliday).Methods(http.MethodPost)
	admin.HandleFunc("/holidays/{id}/active", adminCatalog.SetActive).Methods(http.MethodPatch)

	// HTTP сервер
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

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	close(stopMetricsCh)
	log.Info("Server stopped")
}
