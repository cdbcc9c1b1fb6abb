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
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	getAreaCoverageHandler "github.com/avonwash/WCS-AvailabilityService/internal/api/handlers/get_area_coverage"
	getAvailableDatesHandler "github.com/avonwash/WCS-AvailabilityService/internal/api/handlers/get_available_dates"
	getBankHolidaysHandler "github.com/avonwash/WCS-AvailabilityService/internal/api/handlers/get_bank_holidays"
	getServiceAreasHandler "github.com/avonwash/WCS-AvailabilityService/internal/api/handlers/get_service_areas"
	"github.com/avonwash/WCS-AvailabilityService/internal/api/middleware"
	"github.com/avonwash/WCS-AvailabilityService/internal/calendar"
	"github.com/avonwash/WCS-AvailabilityService/internal/config"
	"github.com/avonwash/WCS-AvailabilityService/internal/schedule"
	areasService "github.com/avonwash/WCS-AvailabilityService/internal/service/areas"
	getAvailableDatesUC "github.com/avonwash/WCS-AvailabilityService/internal/usecase/get_available_dates"
	"github.com/avonwash/WCS-AvailabilityService/pkg/logger"
	"github.com/avonwash/WCS-AvailabilityService/pkg/metrics"
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

	log.Info("Starting WCS-AvailabilityService...")

	if err := calendar.ValidateHolidays(); err != nil {
		log.Fatal("Bank holiday table failed validation: %v", err)
	}

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Load the round table (built-in table when no file is configured)
	var table *schedule.Table
	if cfg.Schedule.File != "" {
		table, err = schedule.Load(cfg.Schedule.File)
		if err != nil {
			log.Fatal("Failed to load schedule table: %v", err)
		}
		log.Info("Schedule table loaded from %s (%d rounds)", cfg.Schedule.File, len(table.Rounds()))
	} else {
		table = schedule.Default()
		log.Info("Using built-in schedule table (%d rounds)", len(table.Rounds()))
	}

	// Occupancy is nil here: remaining capacity equals the round capacity
	// until a committed-bookings provider is wired in
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(table, nil, log)

	areasSvc := areasService.NewService(table, log)

	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getServiceAreas := getServiceAreasHandler.NewHandler(areasSvc, log)
	getAreaCoverage := getAreaCoverageHandler.NewHandler(areasSvc, log)
	getBankHolidays := getBankHolidaysHandler.NewHandler(areasSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled (%.1f req/s, burst %d)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	if cfg.Cache.Enabled {
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		store := gocache.New(ttl, 2*ttl)
		api.Use(middleware.Cache(store, ttl))
		log.Info("Response cache enabled (ttl %s)", ttl)
	}

	// Booking form
	api.HandleFunc("/availability", getAvailableDates.Handle).Methods(http.MethodGet)

	// Admin dashboard
	api.HandleFunc("/areas", getServiceAreas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/areas/coverage", getAreaCoverage.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bank-holidays", getBankHolidays.Handle).Methods(http.MethodGet)

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
