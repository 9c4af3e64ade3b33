// Package display turns forecast data into the strings shown to a user.
package display

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"ulascansenturk/weather-lookup/internal/forecast"
)

type HourView struct {
	Time        string `json:"time"`
	Epoch       int64  `json:"time_epoch"`
	Condition   string `json:"condition"`
	Temperature string `json:"temperature"`
	Icon        string `json:"icon"`
}

type ForecastView struct {
	Location    string                   `json:"location"`
	Region      string                   `json:"region,omitempty"`
	Condition   string                   `json:"condition"`
	Icon        string                   `json:"icon"`
	Temperature string                   `json:"temperature"`
	High        string                   `json:"high,omitempty"`
	Low         string                   `json:"low,omitempty"`
	Unit        forecast.TemperatureUnit `json:"unit"`
	Hour        int                      `json:"hour"`
	Window      []HourView               `json:"window"`
}

// TimeLabel returns the HH:MM part of a forecast time.
func TimeLabel(value string) string {
	if _, clock, found := strings.Cut(value, " "); found {
		return clock
	}
	return value
}

// IconURL completes the protocol-relative icon paths WeatherAPI returns.
func IconURL(icon string) string {
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}

// ConditionTitle title-cases upstream condition text for terminal output.
// Views keep the text as WeatherAPI sent it.
func ConditionTitle(text string) string {
	return cases.Title(language.English).String(strings.TrimSpace(text))
}

// LocationLabel renders "Name, Country", dropping whichever part is empty.
func LocationLabel(loc forecast.Location) string {
	switch {
	case loc.Name == "":
		return loc.Country
	case loc.Country == "":
		return loc.Name
	default:
		return loc.Name + ", " + loc.Country
	}
}

func BuildForecastView(resp *forecast.ForecastResponse, window []forecast.HourlyReading, unit forecast.TemperatureUnit) ForecastView {
	view := ForecastView{
		Unit:   unit,
		Window: make([]HourView, 0, len(window)),
	}

	if resp != nil {
		view.Location = LocationLabel(resp.Location)
		view.Region = resp.Location.Region
		view.Condition = resp.Current.Condition.Text
		view.Icon = IconURL(resp.Current.Condition.Icon)
		view.Temperature = forecast.FormatTemperature(resp.Current.TempC, resp.Current.TempF, unit)

		if len(resp.Forecast.ForecastDay) > 0 {
			today := resp.Forecast.ForecastDay[0].Day
			view.High = forecast.FormatTemperature(today.MaxTempC, today.MaxTempF, unit)
			view.Low = forecast.FormatTemperature(today.MinTempC, today.MinTempF, unit)
		}
	}

	for _, reading := range window {
		view.Window = append(view.Window, HourView{
			Time:        TimeLabel(reading.Time),
			Epoch:       reading.TimeEpoch,
			Condition:   reading.Condition.Text,
			Temperature: forecast.FormatTemperature(reading.TempC, reading.TempF, unit),
			Icon:        IconURL(reading.Condition.Icon),
		})
	}

	return view
}
