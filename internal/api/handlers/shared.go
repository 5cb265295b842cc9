package handlers

import (
	"errors"
	"net/http"

	"countryservice/internal/apperrors"
	"countryservice/internal/api/response"
)

// respondServiceError maps service-layer sentinel errors to HTTP responses.
// Unexpected errors become a bare 500 so internal details never reach the
// caller.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCountryNotFound):
		response.RespondError(w, http.StatusNotFound, "Country not found", nil)
	case errors.Is(err, apperrors.ErrValidationFailed):
		response.RespondError(w, http.StatusBadRequest, "Validation failed", err.Error())
	case errors.Is(err, apperrors.ErrRefreshInProgress):
		response.RespondError(w, http.StatusConflict, "Refresh already in progress", nil)
	case errors.Is(err, apperrors.ErrSourceUnavailable):
		response.RespondError(w, http.StatusServiceUnavailable, "External data source unavailable", "Could not fetch data from external source")
	default:
		response.RespondError(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}
