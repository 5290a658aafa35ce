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

	checkAvailabilityHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/check_availability"
	createReservationHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/delete_reservation"
	finishReservationHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/finish_reservation"
	getAvailableSlotsHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/get_available_slots"
	getLocationReservationsHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/get_location_reservations"
	getReservationHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/get_reservation"
	listJetSkisHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/list_jetskis"
	listLocationsHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/list_locations"
	listRentalOptionsHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/list_rental_options"
	setOptionAvailabilityHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/set_option_availability"
	startReservationHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/start_reservation"
	updateJetSkiStatusHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/update_jetski_status"
	updateReservationHandler "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/handlers/update_reservation"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/api/middleware"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/config"
	jetskiRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/jetski"
	locationRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/location"
	rentalOptionRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/rentaloption"
	reservationRepo "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/infra/storage/reservation"
	authServiceClient "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/integrations/authservice"
	fleetService "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/fleet"
	optionsService "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/options"
	reservationsService "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/service/reservations"
	checkAvailabilityUC "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/check_availability"
	createReservationUC "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/create_reservation"
	generateSlotsUC "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/generate_slots"
	updateReservationUC "github.com/MarinoLucicRaguz/jetski-rental-sub000/internal/usecase/update_reservation"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/dbmetrics"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/logger"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/metrics"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/simpletxmanager"
	"github.com/MarinoLucicRaguz/jetski-rental-sub000/pkg/txmanager"
)

// systemClock источник текущего времени для usecases
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

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

	log.Info("Starting JetskiRentalService...")
	log.Info("Configuration loaded from config.toml")

	// Валидируем расписание заранее - с битым расписанием сервис не стартует
	schedule, err := cfg.Booking.ToSchedule()
	if err != nil {
		log.Fatal("Invalid booking schedule: %v", err)
	}
	log.Info("Booking schedule: %s-%s, granularity=%dm, buffer=%dm",
		schedule.OpeningTime, schedule.ClosingTime,
		schedule.SlotGranularityMinutes, schedule.BufferMinutes)

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

	// Инициализируем клиент AuthService
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("AuthService client initialized (url=%s, timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository  *reservationRepo.Repository
		jetskiRepository       *jetskiRepo.Repository
		rentalOptionRepository *rentalOptionRepo.Repository
		locationRepository     *locationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		jetskiRepository = jetskiRepo.NewRepository(wrappedDB)
		rentalOptionRepository = rentalOptionRepo.NewRepository(wrappedDB)
		locationRepository = locationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		jetskiRepository = jetskiRepo.NewRepository(db)
		rentalOptionRepository = rentalOptionRepo.NewRepository(db)
		locationRepository = locationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := systemClock{}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		authClient,
		log,
	)
	fleetSvc := fleetService.NewService(
		jetskiRepository,
		locationRepository,
		authClient,
		log,
	)
	optionsSvc := optionsService.NewService(
		rentalOptionRepository,
		authClient,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		jetskiRepository,
		rentalOptionRepository,
		locationRepository,
		txMgr,
		schedule,
		clock,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		jetskiRepository,
		rentalOptionRepository,
		locationRepository,
		txMgr,
		schedule,
		clock,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		jetskiRepository,
		log,
	)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		reservationRepository,
		jetskiRepository,
		locationRepository,
		schedule,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	startReservation := startReservationHandler.NewHandler(reservationSvc, log)
	finishReservation := finishReservationHandler.NewHandler(reservationSvc, log)
	getLocationReservations := getLocationReservationsHandler.NewHandler(reservationSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(generateSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	listJetSkis := listJetSkisHandler.NewHandler(fleetSvc, log)
	updateJetSkiStatus := updateJetSkiStatusHandler.NewHandler(fleetSvc, log)
	listLocations := listLocationsHandler.NewHandler(fleetSvc, log)
	listRentalOptions := listRentalOptionsHandler.NewHandler(optionsSvc, true, log)
	listAllRentalOptions := listRentalOptionsHandler.NewHandler(optionsSvc, false, log)
	setOptionAvailability := setOptionAvailabilityHandler.NewHandler(optionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Список локаций
	api.HandleFunc("/locations", listLocations.Handle).Methods(http.MethodGet)

	// Доступные слоты для бронирования на локации
	api.HandleFunc("/locations/{locationId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Список видимых опций аренды
	api.HandleFunc("/rental-options", listRentalOptions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Брони ---
	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Изменение брони (полная замена окна, гидроциклов и данных клиента)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Удаление брони
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Старт аренды (клиент забрал гидроциклы)
	protected.HandleFunc("/reservations/{reservationId}/start", startReservation.Handle).Methods(http.MethodPatch)

	// Завершение аренды (гидроциклы вернулись)
	protected.HandleFunc("/reservations/{reservationId}/finish", finishReservation.Handle).Methods(http.MethodPatch)

	// Брони локации
	protected.HandleFunc("/locations/{locationId}/reservations",
		getLocationReservations.Handle).Methods(http.MethodGet)

	// Проверка доступности гидроциклов на интервал
	protected.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// --- Флот ---
	// Список гидроциклов
	protected.HandleFunc("/jetskis", listJetSkis.Handle).Methods(http.MethodGet)

	// Смена статуса гидроцикла
	protected.HandleFunc("/jetskis/{jetskiId}/status", updateJetSkiStatus.Handle).Methods(http.MethodPatch)

	// --- Опции аренды ---
	// Список опций, включая скрытые
	protected.HandleFunc("/rental-options/all", listAllRentalOptions.Handle).Methods(http.MethodGet)

	// Скрытие/восстановление опции (soft delete)
	protected.HandleFunc("/rental-options/{optionId}/availability",
		setOptionAvailability.Handle).Methods(http.MethodPatch)

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

	log.Info("Server exited")
}
