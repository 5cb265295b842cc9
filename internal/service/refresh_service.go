package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"countryservice/internal/aggregate"
	"countryservice/internal/apperrors"
	"countryservice/internal/exchangerate"
	"countryservice/internal/metrics"
	"countryservice/internal/model"
	"countryservice/internal/repository"
	"countryservice/internal/restcountries"
)

// RefreshService coordinates the refresh pipeline: it fetches the country
// catalog and the exchange rate table concurrently, merges them, and
// atomically replaces the persisted dataset.
//
// A refresh is all-or-nothing. If either source fails, the cached dataset
// and the tracker's success fields are left untouched and the failure is
// surfaced as apperrors.ErrSourceUnavailable. At most one refresh runs at a
// time; a second request is rejected with apperrors.ErrRefreshInProgress.
type RefreshService struct {
	countryRepo *repository.CountryRepository
	countries   restcountries.Client
	rates       exchangerate.Client
	status      *StatusTracker
	metrics     *metrics.RefreshMetrics

	fetchTimeout    time.Duration
	gdpPerCapitaUSD float64
}

// NewRefreshService creates a new RefreshService.
func NewRefreshService(
	countryRepo *repository.CountryRepository,
	countries restcountries.Client,
	rates exchangerate.Client,
	status *StatusTracker,
	refreshMetrics *metrics.RefreshMetrics,
	fetchTimeout time.Duration,
	gdpPerCapitaUSD float64,
) *RefreshService {
	return &RefreshService{
		countryRepo:     countryRepo,
		countries:       countries,
		rates:           rates,
		status:          status,
		metrics:         refreshMetrics,
		fetchTimeout:    fetchTimeout,
		gdpPerCapitaUSD: gdpPerCapitaUSD,
	}
}

// Refresh runs one full refresh cycle and returns the resulting summary.
//
// The method deliberately takes no caller context: once started, a refresh
// runs to completion server-side even if the triggering request goes away,
// so the atomic replace is never aborted mid-write. The two source fetches
// share a timeout derived from the configured fetch timeout.
func (s *RefreshService) Refresh() (*model.RefreshResponse, error) {
	if !s.status.Begin() {
		s.metrics.RecordFailure("rejected")
		return nil, apperrors.ErrRefreshInProgress
	}

	started := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
	defer cancel()

	var rawCountries []restcountries.RawCountry
	var rateTable map[string]float64

	// Fetch both sources concurrently and join; neither fetch depends on
	// the other's completion order.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rawCountries, err = s.countries.FetchCountries(gctx)
		if err != nil {
			return fmt.Errorf("country catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rateTable, err = s.rates.FetchRates(gctx)
		if err != nil {
			return fmt.Errorf("exchange rates: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		// Client failures never leak raw transport errors to the caller:
		// everything is normalized to SourceUnavailable.
		wrapped := fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
		s.status.Fail(wrapped)
		s.metrics.RecordFailure("source_unavailable")
		log.Printf("refresh failed: %v", err)
		return nil, wrapped
	}

	refreshedAt := time.Now().UTC()
	merged := aggregate.Merge(rawCountries, rateTable, s.gdpPerCapitaUSD, refreshedAt)

	if err := s.countryRepo.ReplaceAll(merged, refreshedAt); err != nil {
		wrapped := fmt.Errorf("%w: %v", apperrors.ErrFailedToReplaceCountries, err)
		s.status.Fail(wrapped)
		s.metrics.RecordFailure("error")
		log.Printf("refresh failed: %v", err)
		return nil, wrapped
	}

	s.status.Succeed(len(merged), refreshedAt)
	s.metrics.RecordSuccess(len(merged), time.Since(started).Seconds())
	log.Printf("refresh completed: %d countries in %s", len(merged), time.Since(started))

	return &model.RefreshResponse{
		Message:         "Countries data refreshed successfully",
		TotalCountries:  len(merged),
		LastRefreshedAt: refreshedAt,
	}, nil
}

// Status returns the current refresh status snapshot.
func (s *RefreshService) Status() model.RefreshStatus {
	return s.status.Snapshot()
}
