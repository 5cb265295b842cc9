package handlers

import (
	"net/http"

	"countryservice/internal/api/response"
	"countryservice/internal/model"
	"countryservice/internal/service"
)

// SystemHandler handles HTTP requests for system endpoints.
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler with the provided service.
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// Health handles GET requests for the health check.
//
// Endpoint: GET /system/health
// Response: 200 OK when the database is reachable, 503 otherwise
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "Database unavailable", nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET requests for version information.
//
// Endpoint: GET /system/version
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, model.VersionInfo{
		AppVersion: h.systemService.CheckVersion(),
		DbVersion:  "1",
	})
}
