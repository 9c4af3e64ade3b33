package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"ulascansenturk/weather-lookup/internal/db/lookuplog"
)

type LookupHandler struct {
	repo lookuplog.Repository
}

func NewLookupHandler(repo lookuplog.Repository) *LookupHandler {
	return &LookupHandler{repo: repo}
}

// GetLatestLookup serves GET /v1/lookups/latest?q=, the most recent upstream
// fetch logged for a location.
func (h *LookupHandler) GetLatestLookup(w http.ResponseWriter, r *http.Request) {
	location := strings.TrimSpace(r.URL.Query().Get("q"))
	if location == "" {
		respondWithError(w, http.StatusBadRequest, "location parameter 'q' is required")
		return
	}

	lookup, err := h.repo.GetRecentLookup(location)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(w, http.StatusNotFound, "no lookups recorded for "+location)
		return
	}
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("location", location).Msg("failed to read lookup log")
		respondWithError(w, http.StatusInternalServerError, "failed to read lookup log: "+err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, lookup)
}
