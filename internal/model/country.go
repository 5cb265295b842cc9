package model

import "time"

// Sort keys accepted by country queries.
const (
	SortGDPDesc        = "gdp_desc"
	SortGDPAsc         = "gdp_asc"
	SortPopulationDesc = "population_desc"
	SortPopulationAsc  = "population_asc"
)

// Country is the canonical merged record persisted in the store.
//
// ExchangeRate and EstimatedGDP are either both set or both nil: a country
// whose currency has no known USD rate (or no currency at all) carries
// neither. EstimatedGDP is a proxy metric, population × a fixed per-capita
// constant ÷ exchange rate, not a real economic figure.
type Country struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Capital         string    `json:"capital,omitempty"`
	Region          string    `json:"region,omitempty"`
	Population      int64     `json:"population"`
	CurrencyCode    *string   `json:"currency_code"`
	ExchangeRate    *float64  `json:"exchange_rate"`
	EstimatedGDP    *float64  `json:"estimated_gdp"`
	FlagURL         string    `json:"flag_url,omitempty"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// CountryFilter narrows a country query. Empty fields apply no filter.
// Matching is exact but case-insensitive for both region and currency.
type CountryFilter struct {
	Region   string
	Currency string
	Sort     string
}

// CountryListResponse is the payload for GET /countries.
type CountryListResponse struct {
	Data  []Country `json:"data"`
	Count int       `json:"count"`
}

// RefreshResponse is the payload for POST /countries/refresh.
type RefreshResponse struct {
	Message         string    `json:"message"`
	TotalCountries  int       `json:"total_countries"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// RefreshStatus is a snapshot of the refresh pipeline state.
// LastRefreshedAt is nil before the first successful refresh.
type RefreshStatus struct {
	TotalCountries  int        `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
	Refreshing      bool       `json:"refreshing"`
	LastError       *string    `json:"last_error,omitempty"`
}
