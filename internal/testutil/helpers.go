package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"countryservice/internal/exchangerate"
	"countryservice/internal/metrics"
	"countryservice/internal/repository"
	"countryservice/internal/restcountries"
	"countryservice/internal/service"
)

// TestGDPPerCapitaUSD is the fixed GDP multiplier used across tests.
const TestGDPPerCapitaUSD = 1500.0

// NewTestCountryService builds a CountryService over the given test database.
func NewTestCountryService(t *testing.T, db *sql.DB) *service.CountryService {
	t.Helper()

	return service.NewCountryService(repository.NewCountryRepository(db))
}

// NewTestRefreshService builds a RefreshService wired to the given mock
// source clients, a fresh status tracker, and an isolated metrics registry.
func NewTestRefreshService(t *testing.T, db *sql.DB, countries restcountries.Client, rates exchangerate.Client) *service.RefreshService {
	t.Helper()

	return service.NewRefreshService(
		repository.NewCountryRepository(db),
		countries,
		rates,
		service.NewStatusTracker(),
		metrics.NewRefreshMetrics(prometheus.NewRegistry()),
		5*time.Second,
		TestGDPPerCapitaUSD,
	)
}
