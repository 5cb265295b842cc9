package handlers

import (
	"net/http"

	"countryservice/internal/api/response"
	"countryservice/internal/service"
)

// RefreshHandler handles HTTP requests for the refresh pipeline and its
// status.
type RefreshHandler struct {
	refreshService *service.RefreshService
}

// NewRefreshHandler creates a new RefreshHandler with the provided service.
func NewRefreshHandler(refreshService *service.RefreshService) *RefreshHandler {
	return &RefreshHandler{
		refreshService: refreshService,
	}
}

// Refresh handles POST requests to re-fetch both external sources and
// replace the cached dataset.
//
// Endpoint: POST /countries/refresh
// Response: 200 OK with {message, total_countries, last_refreshed_at}
// Errors: 409 when a refresh is already running, 503 when either external
// source is unavailable
func (h *RefreshHandler) Refresh(w http.ResponseWriter, _ *http.Request) {
	result, err := h.refreshService.Refresh()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// Status handles GET requests for the refresh status snapshot.
//
// Endpoint: GET /status
// Response: 200 OK with {total_countries, last_refreshed_at, refreshing, last_error}
func (h *RefreshHandler) Status(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.refreshService.Status())
}
