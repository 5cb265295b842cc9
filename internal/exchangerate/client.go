// Package exchangerate fetches currency→USD exchange rates from the
// open.er-api.com provider. Rates are a point-in-time snapshot expressed as
// units of currency per USD.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"countryservice/internal/apperrors"
)

// Client is the interface the refresh pipeline depends on for fetching
// exchange rates. Satisfied by RatesClient and mocked in testutil.
type Client interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// response mirrors the relevant part of the open.er-api.com payload.
type response struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// RatesClient fetches a currency→USD rate table over HTTP.
//
// Failure reporting follows the same taxonomy as the catalog client:
// apperrors.ErrSourceUnreachable for transport-level failures and non-2xx
// responses, apperrors.ErrSourceMalformed when the rates structure is
// missing or empty. No retries.
type RatesClient struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a rates client for the given endpoint. A fetch that
// exceeds timeout is reported as unreachable.
func NewClient(url string, timeout time.Duration) *RatesClient {
	return &RatesClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchRates retrieves the current rate table. Entries with a non-positive
// rate are dropped; a response with no usable rates is malformed.
func (c *RatesClient) FetchRates(ctx context.Context) (map[string]float64, error) {
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
		return nil, fmt.Errorf("%w: exchange rate API returned status %d", apperrors.ErrSourceUnreachable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnreachable, err)
	}

	var parsed response
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceMalformed, err)
	}

	rates := make(map[string]float64, len(parsed.Rates))
	for code, rate := range parsed.Rates {
		if rate > 0 {
			rates[code] = rate
		}
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: response contains no rates", apperrors.ErrSourceMalformed)
	}

	return rates, nil
}
