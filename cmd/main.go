package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelSlotHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/cancel_slot_occurrence"
	createEventHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/create_event"
	deleteEventHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/delete_event"
	deleteTemplateHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/delete_template"
	generateSlotsHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/generate_slots"
	getEffectiveShiftsHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/get_effective_shifts"
	getEventsHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/get_events"
	getSlotAvailabilityHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/get_slot_availability"
	getStaffAvailabilityHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/get_staff_availability"
	overrideSlotHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/override_slot"
	toggleTemplateHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/toggle_template"
	updateEventHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/update_event"
	validateBookingHandler "github.com/KUL-Services/bookly-scheduling/internal/api/handlers/validate_booking"
	"github.com/KUL-Services/bookly-scheduling/internal/api/middleware"
	"github.com/KUL-Services/bookly-scheduling/internal/config"
	"github.com/KUL-Services/bookly-scheduling/internal/infra/storage/statestore"
	"github.com/KUL-Services/bookly-scheduling/internal/service/availability"
	"github.com/KUL-Services/bookly-scheduling/internal/service/calendar"
	"github.com/KUL-Services/bookly-scheduling/internal/service/conflicts"
	"github.com/KUL-Services/bookly-scheduling/internal/service/slots"
	createEventUC "github.com/KUL-Services/bookly-scheduling/internal/usecase/create_event"
	updateEventUC "github.com/KUL-Services/bookly-scheduling/internal/usecase/update_event"
	"github.com/KUL-Services/bookly-scheduling/pkg/logger"
	"github.com/KUL-Services/bookly-scheduling/pkg/metrics"
)

const serviceName = "bookly-scheduling"

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.Path, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting %s...", serviceName)

	// Metrics (optional)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(serviceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Snapshot persistence backend
	persistor, cleanup, err := buildPersistor(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storage backend: %v", err)
	}
	defer cleanup()

	// Calendar store with injected slot generator and clock.
	// The recorder interfaces stay nil when metrics are disabled.
	var storeRecorder calendar.MetricsRecorder
	var validatorRecorder conflicts.Recorder
	if metricsCollector != nil {
		storeRecorder = metricsCollector
		validatorRecorder = metricsCollector
	}

	generator := slots.NewGenerator(log)
	store := calendar.NewStore(persistor, generator, &calendar.RealTimeProvider{}, storeRecorder, log)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 15*time.Second)
	if err := store.Load(loadCtx); err != nil {
		cancelLoad()
		log.Fatal("Failed to load calendar state: %v", err)
	}
	cancelLoad()

	// The resolver and validator read back through the store's provider
	// interfaces; the validator is attached after construction.
	resolver := availability.NewService(store, log)
	validator := conflicts.NewService(store, store, store, store, resolver, validatorRecorder, log)
	store.SetValidator(validator)

	// Use cases
	createEventUseCase := createEventUC.NewUseCase(store, log)
	updateEventUseCase := updateEventUC.NewUseCase(store, log)

	// Handlers
	createEvent := createEventHandler.NewHandler(createEventUseCase, log)
	updateEvent := updateEventHandler.NewHandler(updateEventUseCase, log)
	deleteEvent := deleteEventHandler.NewHandler(store, log)
	getEvents := getEventsHandler.NewHandler(store, log)
	validateBooking := validateBookingHandler.NewHandler(validator, log)
	getEffectiveShifts := getEffectiveShiftsHandler.NewHandler(resolver, log)
	getSlotAvailability := getSlotAvailabilityHandler.NewHandler(validator, store, log)
	getStaffAvailability := getStaffAvailabilityHandler.NewHandler(validator, log)
	generateSlots := generateSlotsHandler.NewHandler(store, log)
	overrideSlot := overrideSlotHandler.NewHandler(store, log)
	cancelSlot := cancelSlotHandler.NewHandler(store, log)
	toggleTemplate := toggleTemplateHandler.NewHandler(store, log)
	deleteTemplate := deleteTemplateHandler.NewHandler(store, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public read-only routes
	api.HandleFunc("/events", getEvents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/entities/{entityId}/effective-shifts", getEffectiveShifts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{templateId}/{patternId}/{date}/availability", getSlotAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/availability", getStaffAvailability.Handle).Methods(http.MethodGet)

	// Protected mutation routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/events", createEvent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/events/{eventId}", updateEvent.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/events/{eventId}", deleteEvent.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/templates/{templateId}/generate", generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/templates/{templateId}/slots/override", overrideSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/templates/{templateId}/slots/cancel", cancelSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/templates/{templateId}/active", toggleTemplate.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/templates/{templateId}", deleteTemplate.Handle).Methods(http.MethodDelete)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// One final synchronous snapshot so in-flight background saves
	// cannot be the last word.
	if err := store.Flush(shutdownCtx); err != nil {
		log.Error("Failed to flush calendar state: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// buildPersistor selects the snapshot backend from configuration.
func buildPersistor(cfg *config.Config, log *logger.Logger) (calendar.StatePersistor, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		log.Info("Using in-memory state store")
		return statestore.NewMemoryStore(), func() {}, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		log.Info("Using Redis state store at %s", cfg.Storage.Redis.Addr)
		return statestore.NewRedisStore(client, cfg.Storage.Namespace), func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		store, err := statestore.NewPostgresStore(cfg.Storage.Postgres.DSN(), cfg.Storage.Namespace)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		log.Info("Using PostgreSQL state store (host=%s, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.DBName)
		return store, func() { _ = store.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
