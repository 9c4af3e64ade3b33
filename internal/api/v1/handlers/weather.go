package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-lookup/internal/display"
	"ulascansenturk/weather-lookup/internal/forecast"
	"ulascansenturk/weather-lookup/internal/service"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

// SearchLocations serves GET /v1/search?q=.
func (h *WeatherHandler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	suggestions, err := h.weatherService.SearchLocations(ctx, query)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("query", query).Msg("failed to search locations")
		h.respondWithServiceError(w, "failed to search locations", err)
		return
	}

	if suggestions == nil {
		suggestions = []forecast.Suggestion{}
	}

	respondWithJSON(w, http.StatusOK, SearchResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}

// GetForecast serves GET /v1/forecast?q=&unit=&hour=.
func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	location := strings.TrimSpace(params.Get("q"))
	if location == "" {
		respondWithError(w, http.StatusBadRequest, "location parameter 'q' is required")
		return
	}

	unit, err := forecast.ParseUnit(params.Get("unit"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	hour, err := parseHour(params.Get("hour"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.weatherService.GetForecastWindow(ctx, location, hour)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("location", location).Msg("failed to get forecast")
		h.respondWithServiceError(w, "failed to get forecast", err)
		return
	}

	view := display.BuildForecastView(result.Forecast, result.Window, unit)
	view.Hour = result.Hour

	respondWithJSON(w, http.StatusOK, ForecastResponse{
		ForecastView: view,
		Cached:       result.Cached,
	})
}

func (h *WeatherHandler) respondWithServiceError(w http.ResponseWriter, prefix string, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		respondWithError(w, http.StatusGatewayTimeout, prefix+": "+err.Error())
		return
	}
	respondWithError(w, http.StatusInternalServerError, prefix+": "+err.Error())
}
