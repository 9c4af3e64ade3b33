package forecast

import (
	"fmt"
	"time"
)

// WindowSize is the number of upcoming hours shown to the user.
const WindowSize = 5

// TimeLayout is the layout of HourlyReading.Time and Location.Localtime.
const TimeLayout = "2006-01-02 15:04"

// HourOfDay returns the local hour encoded in the reading's time string.
func HourOfDay(r HourlyReading) (int, error) {
	return ParseHour(r.Time)
}

// ParseHour extracts the hour from a "YYYY-MM-DD HH:MM" timestamp.
func ParseHour(value string) (int, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid forecast time %q: %w", value, err)
	}
	return t.Hour(), nil
}

// LocalHour is the hour of the location's own clock, or of now when the
// response carries no parseable localtime.
func LocalHour(resp *ForecastResponse, now time.Time) int {
	if resp != nil {
		if h, err := ParseHour(resp.Location.Localtime); err == nil {
			return h
		}
	}
	return now.Hour()
}

// SelectWindow returns the readings for the WindowSize hours following
// currentHour: today's remaining hours first, then the head of tomorrow.
//
// A nil response or one without forecast days yields an empty window. When
// today cannot fill the window the caller must have requested at least two
// forecast days; a missing second day panics.
func SelectWindow(resp *ForecastResponse, currentHour int) []HourlyReading {
	window := make([]HourlyReading, 0, WindowSize)
	if resp == nil || len(resp.Forecast.ForecastDay) == 0 {
		return window
	}
	days := resp.Forecast.ForecastDay

	for _, r := range days[0].Hour {
		h, err := HourOfDay(r)
		if err != nil {
			continue
		}
		if h > currentHour && h <= currentHour+WindowSize {
			window = append(window, r)
		}
	}

	remaining := WindowSize - len(window)
	if remaining <= 0 {
		return window[:WindowSize]
	}

	for _, r := range days[1].Hour {
		if len(window) == WindowSize {
			break
		}
		h, err := HourOfDay(r)
		if err != nil {
			continue
		}
		if h < remaining {
			window = append(window, r)
		}
	}

	return window
}
