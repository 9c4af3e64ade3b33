package main

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"ulascansenturk/weather-lookup/internal/display"
	"ulascansenturk/weather-lookup/internal/forecast"
	"ulascansenturk/weather-lookup/internal/service"
)

type screenSource interface {
	Snapshot() service.CoordinatorSnapshot
	ForecastWindow(currentHour int) []forecast.HourlyReading
}

type screen struct {
	out            io.Writer
	minQueryLength int
	now            func() time.Time
}

func (s *screen) render(src screenSource) {
	snapshot := src.Snapshot()

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Search: %s  [°%s]\n", snapshot.Query, snapshot.Unit)

	if snapshot.SuggestionsPanelOpen && utf8.RuneCountInString(snapshot.Query) > s.minQueryLength {
		s.renderSuggestions(&b, snapshot.Suggestions)
	}

	current := snapshot.Current
	switch {
	case current.Loading:
		b.WriteString("Loading weather...\n")
	case current.Error != "":
		fmt.Fprintf(&b, "Error: %s\n", current.Error)
	}

	if current.HasData {
		hour := forecast.LocalHour(&current.Data, s.now())
		s.renderForecast(&b, display.BuildForecastView(&current.Data, src.ForecastWindow(hour), snapshot.Unit))
	}

	io.WriteString(s.out, b.String())
}

func (s *screen) renderSuggestions(b *strings.Builder, state suggestionsState) {
	switch {
	case state.Loading:
		b.WriteString("Searching...\n")
	case state.Error != "":
		fmt.Fprintf(b, "Error: %s\n", state.Error)
	case state.HasData && len(state.Data) == 0:
		b.WriteString("No results found.\n")
	}

	for i, suggestion := range state.Data {
		fmt.Fprintf(b, "  %d. %s\n", i+1, suggestionLabel(suggestion))
	}
}

func (s *screen) renderForecast(b *strings.Builder, view display.ForecastView) {
	fmt.Fprintf(b, "%s\n", view.Location)
	if view.Region != "" {
		fmt.Fprintf(b, "%s\n", view.Region)
	}
	fmt.Fprintf(b, "%s  %s\n", view.Temperature, display.ConditionTitle(view.Condition))
	if view.High != "" {
		fmt.Fprintf(b, "H:%s L:%s\n", view.High, view.Low)
	}
	if view.Icon != "" {
		fmt.Fprintf(b, "%s\n", view.Icon)
	}

	for _, hour := range view.Window {
		fmt.Fprintf(b, "  %s  %-4s  %s  %s\n", hour.Time, hour.Temperature, display.ConditionTitle(hour.Condition), hour.Icon)
	}
}

func suggestionLabel(s forecast.Suggestion) string {
	parts := []string{s.Name}
	if s.Region != "" {
		parts = append(parts, s.Region)
	}
	if s.Country != "" {
		parts = append(parts, s.Country)
	}
	return strings.Join(parts, ", ")
}
