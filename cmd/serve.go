package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	adminSlotsHandler "github.com/m04kA/SMC-CallCenterService/internal/api/handlers/admin_slots"
	checkDisponibilitaHandler "github.com/m04kA/SMC-CallCenterService/internal/api/handlers/check_disponibilita"
	checkPolizzaHandler "github.com/m04kA/SMC-CallCenterService/internal/api/handlers/check_polizza"
	createSlotHandler "github.com/m04kA/SMC-CallCenterService/internal/api/handlers/create_slot"
	deleteBookingHandler "github.com/m04kA/SMC-CallCenterService/internal/api/handlers/delete_booking"
	findBookingHandler "github.com/m04kA/SMC-CallCenterService/internal/api/handlers/find_booking_by_phone"
	saveBookingHandler "github.com/m04kA/SMC-CallCenterService/internal/api/handlers/save_booking"
	"github.com/m04kA/SMC-CallCenterService/internal/api/middleware"
	"github.com/m04kA/SMC-CallCenterService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/booking"
	policyRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/policy"
	slotRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/SMC-CallCenterService/internal/service/bookings"
	policyService "github.com/m04kA/SMC-CallCenterService/internal/service/policy"
	slotsService "github.com/m04kA/SMC-CallCenterService/internal/service/slots"
	cancelBookingUC "github.com/m04kA/SMC-CallCenterService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-CallCenterService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-CallCenterService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CallCenterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallCenterService/pkg/logger"
	"github.com/m04kA/SMC-CallCenterService/pkg/metrics"
	"github.com/m04kA/SMC-CallCenterService/pkg/tracing"
	"github.com/m04kA/SMC-CallCenterService/pkg/txmanager"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-CallCenterService...")
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Трассировка: при выключенной остаётся noop провайдер
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.Endpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.Endpoint)
	}

	// nil коллектор = метрики выключены, методы Metrics безопасны на nil
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	stopMetricsCh := make(chan struct{})
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	router := newRouter(cfg, wrappedDB, metricsCollector, log)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(router, "callcenter"),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server exited")
	return nil
}

// newRouter собирает репозитории, сервисы, use cases и маршруты
func newRouter(cfg *config.Config, db *dbmetrics.DB, metricsCollector *metrics.Metrics, log *logger.Logger) *mux.Router {
	// Репозитории
	policyRepository := policyRepo.NewRepository(db)
	slotRepository := slotRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Сервисы
	policySvc := policyService.NewService(policyRepository, metricsCollector, log)
	bookingSvc := bookingsService.NewService(bookingRepository, cfg.Booking.CountryCode, log)
	slotsSvc := slotsService.NewService(slotRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		cfg.Booking.CountryCode,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		cfg.Booking.AvailabilityLimit,
		log,
	)

	// Handlers
	checkPolizza := checkPolizzaHandler.NewHandler(policySvc, log)
	checkDisponibilita := checkDisponibilitaHandler.NewHandler(getAvailableSlotsUseCase, log)
	findBooking := findBookingHandler.NewHandler(bookingSvc, log)
	saveBooking := saveBookingHandler.NewHandler(createBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(cancelBookingUseCase, log)
	createSlot := createSlotHandler.NewHandler(slotsSvc, log)
	adminSlots := adminSlotsHandler.NewHandler(slotsSvc, log)

	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.CORS(middleware.CORSPolicy{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:         cfg.CORS.MaxAge,
	}))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// OPTIONS нужен, чтобы preflight дошёл до CORS middleware
	r.HandleFunc("/check_polizza", checkPolizza.Handle).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/check_disponibilita", checkDisponibilita.Handle).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/find_booking_by_phone", findBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/save_booking", saveBooking.Handle).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/delete_booking", deleteBooking.Handle).Methods(http.MethodPost, http.MethodOptions)

	// Администрирование слотов
	r.HandleFunc("/create_slot", createSlot.Handle).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/admin_slots", adminSlots.Handle).Methods(http.MethodGet, http.MethodOptions)

	return r
}
