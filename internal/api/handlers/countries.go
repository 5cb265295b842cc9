package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"countryservice/internal/api/response"
	"countryservice/internal/model"
	"countryservice/internal/service"
	"countryservice/internal/summary"
)

// CountryHandler handles HTTP requests for the country endpoints.
// It parses requests and delegates to the country service and the summary
// renderer.
type CountryHandler struct {
	countryService *service.CountryService
	renderer       *summary.Renderer
}

// NewCountryHandler creates a new CountryHandler with the provided
// dependencies.
func NewCountryHandler(countryService *service.CountryService, renderer *summary.Renderer) *CountryHandler {
	return &CountryHandler{
		countryService: countryService,
		renderer:       renderer,
	}
}

// Countries handles GET requests to list countries.
//
// Endpoint: GET /countries?region=&currency=&sort=
// Response: 200 OK with {data, count}
// Errors: 400 on an unknown sort key, 500 on retrieval failure
func (h *CountryHandler) Countries(w http.ResponseWriter, r *http.Request) {
	filter := model.CountryFilter{
		Region:   r.URL.Query().Get("region"),
		Currency: r.URL.Query().Get("currency"),
		Sort:     r.URL.Query().Get("sort"),
	}

	countries, err := h.countryService.GetCountries(filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, model.CountryListResponse{
		Data:  countries,
		Count: len(countries),
	})
}

// CountryByName handles GET requests for a single country.
//
// Endpoint: GET /countries/{name}
// Response: 200 OK with the country record
// Errors: 404 when no country matches the name (case-insensitive)
func (h *CountryHandler) CountryByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	country, err := h.countryService.GetCountryByName(name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, country)
}

// DeleteCountry handles DELETE requests for a single country.
//
// Endpoint: DELETE /countries/{name}
// Response: 204 No Content
// Errors: 404 when no country matches the name
func (h *CountryHandler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.countryService.DeleteCountryByName(name); err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// SummaryImage handles GET requests for the summary digest image.
//
// Endpoint: GET /countries/image
// Response: 200 OK with image/png bytes; an empty dataset renders a
// placeholder image rather than an error.
func (h *CountryHandler) SummaryImage(w http.ResponseWriter, _ *http.Request) {
	imageBytes, err := h.renderer.RenderSummary()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(imageBytes)
}
