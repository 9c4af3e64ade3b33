package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter mounts the API. lookupHandler may be nil when no lookup log is
// configured.
func NewRouter(weatherHandler *WeatherHandler, lookupHandler *LookupHandler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/search", weatherHandler.SearchLocations)
		r.Get("/forecast", weatherHandler.GetForecast)
		if lookupHandler != nil {
			r.Get("/lookups/latest", lookupHandler.GetLatestLookup)
		}
	})

	return r
}
