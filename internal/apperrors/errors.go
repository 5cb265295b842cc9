package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrCountryNotFound indicates that no country with the given name exists.
	// Name lookups are case-insensitive, so this means no match under folding.
	ErrCountryNotFound = errors.New("country not found")
)

// Source errors represent failures of the external data providers.
// They are produced by the source clients and never leave the refresh
// orchestrator unwrapped.
var (
	// ErrSourceUnreachable indicates a network failure, timeout, or non-2xx
	// response from an external provider.
	ErrSourceUnreachable = errors.New("external source unreachable")

	// ErrSourceMalformed indicates the provider responded but the body did
	// not contain the expected structure.
	ErrSourceMalformed = errors.New("external source returned malformed data")

	// ErrSourceUnavailable is the normalized refresh failure surfaced to
	// callers when either provider fetch fails. Maps to HTTP 503.
	ErrSourceUnavailable = errors.New("external data source unavailable")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrRefreshInProgress indicates a refresh was requested while another
	// refresh is still running. Refreshes are never queued or run concurrently.
	ErrRefreshInProgress = errors.New("refresh already in progress")

	// ErrInvalidSortKey indicates an unknown sort parameter on a country query.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrEmptyName indicates a required country name parameter is empty.
	ErrEmptyName = errors.New("country name cannot be empty")

	// ErrValidationFailed indicates a request parameter failed validation.
	ErrValidationFailed = errors.New("validation failed")
)

// Operation failure errors represent system-level failures when retrieving
// or storing data, not due to missing entities or validation issues.
var (
	ErrFailedToRetrieveCountries = errors.New("failed to retrieve countries")
	ErrFailedToRetrieveCountry   = errors.New("failed to retrieve country")
	ErrFailedToDeleteCountry     = errors.New("failed to delete country")
	ErrFailedToReplaceCountries  = errors.New("failed to replace country dataset")
	ErrFailedToRenderSummary     = errors.New("failed to render summary image")
)
