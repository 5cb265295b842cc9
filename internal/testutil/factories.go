package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"countryservice/internal/model"
)

// CountryBuilder provides a fluent interface for creating test countries.
//
// Example usage:
//
//	// Simple creation with defaults
//	country := testutil.NewCountry("Testland").Build(t, db)
//
//	// Customized country
//	country := testutil.NewCountry("Testland").
//	    WithRegion("Europe").
//	    WithRate("TST", 2.5).
//	    WithGDP(1000000).
//	    Build(t, db)
type CountryBuilder struct {
	country model.Country
}

// NewCountry creates a CountryBuilder with sensible defaults and no
// currency, rate, or GDP.
func NewCountry(name string) *CountryBuilder {
	return &CountryBuilder{
		country: model.Country{
			ID:              uuid.NewString(),
			Name:            name,
			Capital:         "Test City",
			Region:          "Test Region",
			Population:      1000000,
			LastRefreshedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// WithRegion sets a custom region.
func (b *CountryBuilder) WithRegion(region string) *CountryBuilder {
	b.country.Region = region
	return b
}

// WithPopulation sets a custom population.
func (b *CountryBuilder) WithPopulation(population int64) *CountryBuilder {
	b.country.Population = population
	return b
}

// WithCurrency sets a currency code without an exchange rate.
func (b *CountryBuilder) WithCurrency(code string) *CountryBuilder {
	b.country.CurrencyCode = &code
	return b
}

// WithRate sets a currency code and its exchange rate.
func (b *CountryBuilder) WithRate(code string, rate float64) *CountryBuilder {
	b.country.CurrencyCode = &code
	b.country.ExchangeRate = &rate
	return b
}

// WithGDP sets the estimated GDP.
func (b *CountryBuilder) WithGDP(gdp float64) *CountryBuilder {
	b.country.EstimatedGDP = &gdp
	return b
}

// Record returns the built country without persisting it.
func (b *CountryBuilder) Record() model.Country {
	return b.country
}

// Build inserts the country into the database and returns it.
func (b *CountryBuilder) Build(t *testing.T, db *sql.DB) model.Country {
	t.Helper()

	query := `
		INSERT INTO country (id, name, capital, region, population, currency_code, exchange_rate, estimated_gdp, flag_url, last_refreshed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.country.ID,
		b.country.Name,
		b.country.Capital,
		b.country.Region,
		b.country.Population,
		b.country.CurrencyCode,
		b.country.ExchangeRate,
		b.country.EstimatedGDP,
		b.country.FlagURL,
		b.country.LastRefreshedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to insert test country %q: %v", b.country.Name, err)
	}

	return b.country
}
