// Package aggregate joins the raw country catalog with a currency→USD rate
// table into the canonical merged record set. It is pure: no I/O, no clock,
// no randomness — determinism here is what makes refresh results testable.
package aggregate

import (
	"strings"
	"time"

	"countryservice/internal/model"
	"countryservice/internal/restcountries"
)

// Merge produces one canonical record per country name.
//
// For each country the currency code is looked up in rates with a
// case-insensitive exact match. On a hit the record carries the rate and an
// estimated GDP of population × gdpPerCapitaUSD ÷ rate; on a miss, or when
// the country has no currency code at all, both fields are nil. The rate and
// GDP fields are therefore always both set or both nil.
//
// Duplicate names in the input (compared case-insensitively) collapse to a
// single record: values from the last occurrence win, at the position of the
// first occurrence. Input order is otherwise preserved.
func Merge(countries []restcountries.RawCountry, rates map[string]float64, gdpPerCapitaUSD float64, now time.Time) []model.Country {
	upperRates := make(map[string]float64, len(rates))
	for code, rate := range rates {
		upperRates[strings.ToUpper(code)] = rate
	}

	merged := make([]model.Country, 0, len(countries))
	seen := make(map[string]int, len(countries))

	for _, raw := range countries {
		record := model.Country{
			Name:            raw.Name,
			Capital:         raw.Capital,
			Region:          raw.Region,
			Population:      raw.Population,
			FlagURL:         raw.FlagURL,
			LastRefreshedAt: now,
		}

		if raw.CurrencyCode != "" {
			code := raw.CurrencyCode
			record.CurrencyCode = &code

			if rate, ok := upperRates[strings.ToUpper(code)]; ok {
				gdp := float64(raw.Population) * gdpPerCapitaUSD / rate
				record.ExchangeRate = &rate
				record.EstimatedGDP = &gdp
			}
		}

		key := strings.ToLower(raw.Name)
		if i, ok := seen[key]; ok {
			merged[i] = record
			continue
		}
		seen[key] = len(merged)
		merged = append(merged, record)
	}

	return merged
}
