package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"countryservice/internal/api"
	"countryservice/internal/config"
	"countryservice/internal/database"
	"countryservice/internal/exchangerate"
	"countryservice/internal/metrics"
	"countryservice/internal/repository"
	"countryservice/internal/restcountries"
	"countryservice/internal/service"
	"countryservice/internal/summary"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	countryRepo := repository.NewCountryRepository(db)

	// Seed the status tracker from persisted state so a restart keeps the
	// last refresh history
	statusTracker := service.NewStatusTracker()
	if count, err := countryRepo.Count(); err == nil {
		lastRefreshed, _ := countryRepo.GetLastRefreshedAt()
		statusTracker.Seed(count, lastRefreshed)
	}

	// Create external source clients
	countriesClient := restcountries.NewClient(cfg.Sources.CountriesURL, cfg.Sources.FetchTimeout)
	ratesClient := exchangerate.NewClient(cfg.Sources.RatesURL, cfg.Sources.FetchTimeout)

	refreshMetrics := metrics.NewRefreshMetrics(prometheus.DefaultRegisterer)

	// Create services
	systemService := service.NewSystemService(db)
	countryService := service.NewCountryService(countryRepo)
	refreshService := service.NewRefreshService(
		countryRepo,
		countriesClient,
		ratesClient,
		statusTracker,
		refreshMetrics,
		cfg.Sources.FetchTimeout,
		cfg.Refresh.GDPPerCapitaUSD,
	)
	renderer := summary.NewRenderer(countryRepo)

	// Optional background refresh schedule
	var scheduler *cron.Cron
	if cfg.Refresh.Schedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Refresh.Schedule, func() {
			if _, err := refreshService.Refresh(); err != nil {
				log.Printf("Scheduled refresh failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid REFRESH_SCHEDULE %q: %v", cfg.Refresh.Schedule, err)
		}
		scheduler.Start()
		log.Printf("Scheduled refresh enabled: %s", cfg.Refresh.Schedule)
	}

	// Create router
	router := api.NewRouter(systemService, countryService, refreshService, renderer, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
