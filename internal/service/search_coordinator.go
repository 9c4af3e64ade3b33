package service

import (
	"context"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/fetchstate"
	"ulascansenturk/weather-lookup/internal/forecast"
	"ulascansenturk/weather-lookup/internal/providers"
)

const (
	DefaultMinQueryLength = 2
	DefaultForecastDays   = 2
)

type CoordinatorConfig struct {
	SearchURL   string
	ForecastURL string
	// Suggestions are fetched once the query is longer than MinQueryLength.
	MinQueryLength int
	ForecastDays   int
	DebounceWait   time.Duration
	OnChange       func()
}

// CoordinatorSnapshot is a copy of everything the presentation layer renders.
type CoordinatorSnapshot struct {
	Query                string
	Unit                 forecast.TemperatureUnit
	SelectedLocation     string
	SuggestionsPanelOpen bool
	Suggestions          fetchstate.State[[]forecast.Suggestion]
	Current              fetchstate.State[forecast.ForecastResponse]
}

// SearchCoordinator owns the search box state and drives the suggestion and
// current-weather fetches. Fetches run under the context given at
// construction.
type SearchCoordinator struct {
	ctx            context.Context
	minQueryLength int
	forecastDays   int

	suggestions *fetchstate.Holder[[]forecast.Suggestion]
	current     *fetchstate.Holder[forecast.ForecastResponse]
	debouncer   QueryDebouncer

	mu               sync.Mutex
	query            string
	unit             forecast.TemperatureUnit
	selectedLocation string
	panelOpen        bool
}

func NewSearchCoordinator(ctx context.Context, getter providers.Getter, cfg CoordinatorConfig) *SearchCoordinator {
	if cfg.SearchURL == "" {
		cfg.SearchURL = providers.DefaultSearchURL
	}
	if cfg.ForecastURL == "" {
		cfg.ForecastURL = providers.DefaultForecastURL
	}
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = DefaultMinQueryLength
	}
	// the forecast window reads tomorrow's hours
	if cfg.ForecastDays < DefaultForecastDays {
		cfg.ForecastDays = DefaultForecastDays
	}

	var holderOpts []fetchstate.Option
	if cfg.OnChange != nil {
		holderOpts = append(holderOpts, fetchstate.WithOnChange(cfg.OnChange))
	}

	c := &SearchCoordinator{
		ctx:            ctx,
		minQueryLength: cfg.MinQueryLength,
		forecastDays:   cfg.ForecastDays,
		suggestions: fetchstate.NewHolder[[]forecast.Suggestion](getter, cfg.SearchURL,
			append(holderOpts, fetchstate.WithSupersede())...),
		current:   fetchstate.NewHolder[forecast.ForecastResponse](getter, cfg.ForecastURL, holderOpts...),
		unit:      forecast.Celsius,
		panelOpen: true,
	}
	c.debouncer = NewQueryDebouncer(cfg.DebounceWait, c.submitSuggestions)

	return c
}

// OnQueryChanged records the text typed so far and schedules a suggestion
// fetch once it is long enough. Shortening the text below that length drops
// any fetch still waiting out the debounce.
func (c *SearchCoordinator) OnQueryChanged(text string) {
	c.mu.Lock()
	c.query = text
	c.panelOpen = true
	c.mu.Unlock()

	if utf8.RuneCountInString(text) > c.minQueryLength {
		c.debouncer.Submit(text)
		return
	}
	c.debouncer.Cancel()
}

func (c *SearchCoordinator) submitSuggestions(query string) {
	log.Debug().Str("query", query).Msg("fetching suggestions")
	c.suggestions.Trigger(c.ctx, providers.Params{{Key: "q", Value: query}})
}

// FlushSuggestions sends a pending debounced query right away.
func (c *SearchCoordinator) FlushSuggestions() {
	c.debouncer.Flush()
}

// OnSuggestionChosen selects a location and fetches its current weather and
// forecast. It reports whether a fetch was started.
func (c *SearchCoordinator) OnSuggestionChosen(locationName string) (<-chan struct{}, bool) {
	c.mu.Lock()
	c.query = locationName
	c.selectedLocation = locationName
	c.panelOpen = false
	c.mu.Unlock()

	return c.current.Trigger(c.ctx, providers.Params{
		{Key: "q", Value: locationName},
		{Key: "days", Value: strconv.Itoa(c.forecastDays)},
	})
}

func (c *SearchCoordinator) OnUnitChanged(unit forecast.TemperatureUnit) {
	c.mu.Lock()
	c.unit = unit
	c.mu.Unlock()
}

// ForecastWindow selects the upcoming hours from the latest fetched forecast.
func (c *SearchCoordinator) ForecastWindow(currentHour int) []forecast.HourlyReading {
	state := c.current.State()
	if !state.HasData {
		return forecast.SelectWindow(nil, currentHour)
	}
	return forecast.SelectWindow(&state.Data, currentHour)
}

// Temperature formats a reading for the selected unit.
func (c *SearchCoordinator) Temperature(celsius, fahrenheit float64) string {
	c.mu.Lock()
	unit := c.unit
	c.mu.Unlock()
	return forecast.FormatTemperature(celsius, fahrenheit, unit)
}

func (c *SearchCoordinator) Snapshot() CoordinatorSnapshot {
	c.mu.Lock()
	snapshot := CoordinatorSnapshot{
		Query:                c.query,
		Unit:                 c.unit,
		SelectedLocation:     c.selectedLocation,
		SuggestionsPanelOpen: c.panelOpen,
	}
	c.mu.Unlock()

	snapshot.Suggestions = c.suggestions.State()
	snapshot.Current = c.current.State()
	return snapshot
}

// Close drops any pending debounced query.
func (c *SearchCoordinator) Close() {
	c.debouncer.Stop()
}
