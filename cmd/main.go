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

	bookSlotHandler "github.com/calendrio/calendar-backend/internal/api/handlers/book_slot"
	getFreeSlotsHandler "github.com/calendrio/calendar-backend/internal/api/handlers/get_free_slots"
	listEventsHandler "github.com/calendrio/calendar-backend/internal/api/handlers/list_events"
	"github.com/calendrio/calendar-backend/internal/api/middleware"
	"github.com/calendrio/calendar-backend/internal/config"
	eventRepo "github.com/calendrio/calendar-backend/internal/infra/storage/event"
	bookSlotUC "github.com/calendrio/calendar-backend/internal/usecase/book_slot"
	getFreeSlotsUC "github.com/calendrio/calendar-backend/internal/usecase/get_free_slots"
	listEventsUC "github.com/calendrio/calendar-backend/internal/usecase/list_events"
	"github.com/calendrio/calendar-backend/migrations"
	"github.com/calendrio/calendar-backend/pkg/dbmetrics"
	"github.com/calendrio/calendar-backend/pkg/logger"
	"github.com/calendrio/calendar-backend/pkg/metrics"
	"github.com/calendrio/calendar-backend/pkg/simpletxmanager"
	"github.com/calendrio/calendar-backend/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting calendar-backend...")

	schedule, err := cfg.Booking.Schedule()
	if err != nil {
		log.Fatal("Failed to resolve booking schedule: %v", err)
	}
	log.Info("Working hours %02d:00-%02d:00 (%s), slot duration %d minutes",
		cfg.Booking.StartHour, cfg.Booking.EndHour, cfg.Booking.Timezone, cfg.Booking.SlotDurationMinutes)

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	if err := migrations.Apply(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied")

	// The booking use case only sees the TransactionManager interface; the
	// concrete manager depends on whether DB metrics are collected.
	var (
		eventRepository *eventRepo.Repository
		txMgr           bookSlotUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		eventRepository = eventRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		eventRepository = eventRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(eventRepository, schedule, log)
	bookSlotUseCase := bookSlotUC.NewUseCase(eventRepository, txMgr, schedule, log)
	listEventsUseCase := listEventsUC.NewUseCase(eventRepository, log)

	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	listEvents := listEventsHandler.NewHandler(listEventsUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	events := r.PathPrefix("/events").Subrouter()

	// Free slots for one day
	events.HandleFunc("/free-slots", getFreeSlots.Handle).Methods(http.MethodGet)

	// Booked events in a date range
	events.HandleFunc("/list", listEvents.Handle).Methods(http.MethodGet)

	// Atomic slot booking
	events.HandleFunc("/booking", bookSlot.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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
