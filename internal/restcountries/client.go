package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"countryservice/internal/apperrors"
)

// Client is the interface the refresh pipeline depends on for fetching the
// country catalog. Satisfied by CatalogClient and mocked in testutil.
type Client interface {
	FetchCountries(ctx context.Context) ([]RawCountry, error)
}

// CatalogClient fetches the raw country catalog from the restcountries API.
//
// Failures are reported through the apperrors sentinels:
//   - apperrors.ErrSourceUnreachable for network errors, timeouts, and
//     non-2xx responses
//   - apperrors.ErrSourceMalformed when the body cannot be decoded or
//     contains no usable entries
//
// The client never retries; retry policy belongs to the caller.
type CatalogClient struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given endpoint. A fetch that
// exceeds timeout is reported as unreachable.
func NewClient(url string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchCountries retrieves and parses the country catalog.
//
// Individual malformed entries (missing name) are skipped rather than
// failing the whole fetch. A response with zero valid entries is itself
// malformed.
func (c *CatalogClient) FetchCountries(ctx context.Context) ([]RawCountry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: restcountries returned status %d", apperrors.ErrSourceUnreachable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnreachable, err)
	}

	var entries []response
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceMalformed, err)
	}

	countries := make([]RawCountry, 0, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}

		// Policy: take the first listed currency code.
		var currencyCode string
		if len(entry.Currencies) > 0 {
			currencyCode = entry.Currencies[0].Code
		}

		countries = append(countries, RawCountry{
			Name:         entry.Name,
			Capital:      entry.Capital,
			Region:       entry.Region,
			Population:   entry.Population,
			CurrencyCode: currencyCode,
			FlagURL:      entry.Flag,
		})
	}

	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: no valid country entries in response", apperrors.ErrSourceMalformed)
	}

	return countries, nil
}
