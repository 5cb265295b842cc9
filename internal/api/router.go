package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"countryservice/internal/api/handlers"
	custommiddleware "countryservice/internal/api/middleware"
	"countryservice/internal/config"
	"countryservice/internal/service"
	"countryservice/internal/summary"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	countryService *service.CountryService,
	refreshService *service.RefreshService,
	renderer *summary.Renderer,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	countryHandler := handlers.NewCountryHandler(countryService, renderer)
	refreshHandler := handlers.NewRefreshHandler(refreshService)

	r.Route("/countries", func(r chi.Router) {
		r.Post("/refresh", refreshHandler.Refresh)
		r.Get("/image", countryHandler.SummaryImage)
		r.Get("/", countryHandler.Countries)
		r.Get("/{name}", countryHandler.CountryByName)
		r.Delete("/{name}", countryHandler.DeleteCountry)
	})

	r.Get("/status", refreshHandler.Status)
	r.Handle("/metrics", promhttp.Handler())

	// System namespace
	r.Route("/system", func(r chi.Router) {
		systemHandler := handlers.NewSystemHandler(systemService)
		r.Get("/health", systemHandler.Health)
		r.Get("/version", systemHandler.Version)
	})

	return r
}
