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

	cancelReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/cancel_reservation"
	confirmReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/delete_reservation"
	getHotelConfigHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/get_hotel_config"
	getReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/list_reservations"
	listRoomsHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/list_rooms"
	listStayDurationsHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/list_stay_durations"
	updateReservationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/update_reservation_status"
	upsertStayDurationHandler "github.com/m04kA/HMS-ReservationService/internal/api/handlers/upsert_stay_duration"
	"github.com/m04kA/HMS-ReservationService/internal/api/middleware"
	"github.com/m04kA/HMS-ReservationService/internal/config"
	hotelRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/hotel"
	paymentRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/room"
	stayRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/stay"
	roomMapClient "github.com/m04kA/HMS-ReservationService/internal/integrations/roommap"
	availabilityService "github.com/m04kA/HMS-ReservationService/internal/service/availability"
	reservationsService "github.com/m04kA/HMS-ReservationService/internal/service/reservations"
	roomsService "github.com/m04kA/HMS-ReservationService/internal/service/rooms"
	staysService "github.com/m04kA/HMS-ReservationService/internal/service/stays"
	createReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
	updateReservationUC "github.com/m04kA/HMS-ReservationService/internal/usecase/update_reservation"
	"github.com/m04kA/HMS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/HMS-ReservationService/pkg/eventbus"
	"github.com/m04kA/HMS-ReservationService/pkg/logger"
	"github.com/m04kA/HMS-ReservationService/pkg/metrics"
	"github.com/m04kA/HMS-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/HMS-ReservationService/pkg/txmanager"
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

	log.Info("Starting HMS-ReservationService...")
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
		reservationRepository *reservationRepo.Repository
		roomRepository        *roomRepo.Repository
		stayRepository        *stayRepo.Repository
		hotelRepository       *hotelRepo.Repository
		paymentRepository     *paymentRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		roomRepository = roomRepo.NewRepository(wrappedDB)
		stayRepository = stayRepo.NewRepository(wrappedDB)
		hotelRepository = hotelRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		roomRepository = roomRepo.NewRepository(db)
		stayRepository = stayRepo.NewRepository(db)
		hotelRepository = hotelRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Шина событий: сигнал "данные броней изменились" для шахматки
	bus := eventbus.New()

	// Инициализируем сервисы
	gate := availabilityService.NewGate(reservationRepository, log)
	staysSvc := staysService.NewService(stayRepository, log)
	roomsSvc := roomsService.NewService(roomRepository, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		roomRepository,
		gate,
		bus,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		hotelRepository,
		paymentRepository,
		staysSvc,
		gate,
		txMgr,
		bus,
		log,
	)

	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		roomRepository,
		hotelRepository,
		staysSvc,
		gate,
		txMgr,
		bus,
		log,
	)

	// Подписываем шахматку на изменения данных броней
	if cfg.RoomMap.Enabled {
		roomMap := roomMapClient.NewClient(
			cfg.RoomMap.URL,
			time.Duration(cfg.RoomMap.Timeout)*time.Second,
			log,
		)
		events := bus.Subscribe(16)
		go func() {
			for range events {
				ctx, cancel := context.WithTimeout(
					context.Background(),
					time.Duration(cfg.RoomMap.Timeout)*time.Second,
				)
				_ = roomMap.NotifyDataChanged(ctx)
				cancel()
			}
		}()
		log.Info("RoomMap integration enabled (url=%s, timeout=%ds)", cfg.RoomMap.URL, cfg.RoomMap.Timeout)
	}

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	listStayDurations := listStayDurationsHandler.NewHandler(staysSvc, log)
	upsertStayDuration := upsertStayDurationHandler.NewHandler(staysSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	getHotelConfig := getHotelConfigHandler.NewHandler(hotelRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов по IP
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
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

	// Каталог длительностей проживания отеля
	api.HandleFunc("/hotels/{hotelId}/stay-durations", listStayDurations.Handle).Methods(http.MethodGet)

	// Номера отеля
	api.HandleFunc("/hotels/{hotelId}/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Конфигурация отеля (checkout-час)
	api.HandleFunc("/hotels/{hotelId}/config", getHotelConfig.Handle).Methods(http.MethodGet)

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

	// Редактирование брони
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Удаление брони
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Подтверждение брони
	protected.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)

	// Отмена брони (с освобождением номера)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Произвольный переход статуса
	protected.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Брони отеля
	protected.HandleFunc("/hotels/{hotelId}/reservations", listReservations.Handle).Methods(http.MethodGet)

	// --- Каталог длительностей (для администраторов отеля) ---
	protected.HandleFunc("/hotels/{hotelId}/stay-durations/{stayDurationId}",
		upsertStayDuration.Handle).Methods(http.MethodPut)

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
