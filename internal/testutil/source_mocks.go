package testutil

import (
	"context"

	"countryservice/internal/restcountries"
)

// MockCountriesClient is a mock implementation of restcountries.Client for
// testing. It returns predefined data instead of making actual API calls.
type MockCountriesClient struct {
	// Countries is the record set to return
	Countries []restcountries.RawCountry
	// Err is the error to return instead, when set
	Err error
	// FetchCount tracks how many times FetchCountries was called
	FetchCount int
}

// NewMockCountriesClient creates a mock catalog client with a small default
// dataset.
func NewMockCountriesClient() *MockCountriesClient {
	return &MockCountriesClient{
		Countries: []restcountries.RawCountry{
			{Name: "Nigeria", Capital: "Abuja", Region: "Africa", Population: 200000000, CurrencyCode: "NGN", FlagURL: "https://flagcdn.com/ng.svg"},
			{Name: "Netherlands", Capital: "Amsterdam", Region: "Europe", Population: 17000000, CurrencyCode: "EUR", FlagURL: "https://flagcdn.com/nl.svg"},
			{Name: "Atlantis", Region: "Oceania", Population: 42},
		},
	}
}

// FetchCountries returns the configured countries or error.
func (m *MockCountriesClient) FetchCountries(_ context.Context) ([]restcountries.RawCountry, error) {
	m.FetchCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Countries, nil
}

// WithError configures the mock to fail with the given error.
func (m *MockCountriesClient) WithError(err error) *MockCountriesClient {
	m.Err = err
	return m
}

// WithCountries configures the mock to return the given records.
func (m *MockCountriesClient) WithCountries(countries []restcountries.RawCountry) *MockCountriesClient {
	m.Countries = countries
	return m
}

// MockRatesClient is a mock implementation of exchangerate.Client for
// testing.
type MockRatesClient struct {
	// Rates is the rate table to return
	Rates map[string]float64
	// Err is the error to return instead, when set
	Err error
	// FetchCount tracks how many times FetchRates was called
	FetchCount int
}

// NewMockRatesClient creates a mock rates client with a small default table.
func NewMockRatesClient() *MockRatesClient {
	return &MockRatesClient{
		Rates: map[string]float64{
			"NGN": 800.0,
			"EUR": 0.9,
			"USD": 1.0,
		},
	}
}

// FetchRates returns the configured rate table or error.
func (m *MockRatesClient) FetchRates(_ context.Context) (map[string]float64, error) {
	m.FetchCount++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rates, nil
}

// WithError configures the mock to fail with the given error.
func (m *MockRatesClient) WithError(err error) *MockRatesClient {
	m.Err = err
	return m
}

// WithRates configures the mock to return the given rate table.
func (m *MockRatesClient) WithRates(rates map[string]float64) *MockRatesClient {
	m.Rates = rates
	return m
}
