package service_test

import (
	"fmt"

	"ulascansenturk/weather-lookup/internal/forecast"
)

func sampleForecast(name string, localtime string) *forecast.ForecastResponse {
	resp := &forecast.ForecastResponse{
		Location: forecast.Location{
			Name:      name,
			Region:    "City of London, Greater London",
			Country:   "United Kingdom",
			Localtime: localtime,
		},
		Current: forecast.Current{
			TempC:     20,
			TempF:     68,
			Condition: forecast.Condition{Text: "Partly cloudy", Icon: "//cdn.weatherapi.com/weather/64x64/day/116.png"},
		},
	}

	for _, date := range []string{"2025-02-09", "2025-02-10"} {
		day := forecast.DayForecast{
			Date: date,
			Day:  forecast.DayStats{MaxTempC: 22, MaxTempF: 71.6, MinTempC: 12, MinTempF: 53.6},
		}
		for h := 0; h < 24; h++ {
			day.Hour = append(day.Hour, forecast.HourlyReading{
				Time:      fmt.Sprintf("%s %02d:00", date, h),
				TempC:     float64(h),
				TempF:     float64(h)*1.8 + 32,
				Condition: forecast.Condition{Text: "Clear", Icon: "//cdn.weatherapi.com/weather/64x64/night/113.png"},
			})
		}
		resp.Forecast.ForecastDay = append(resp.Forecast.ForecastDay, day)
	}

	return resp
}

func windowHours(window []forecast.HourlyReading) []int {
	hours := make([]int, 0, len(window))
	for _, r := range window {
		h, err := forecast.HourOfDay(r)
		if err != nil {
			h = -1
		}
		hours = append(hours, h)
	}
	return hours
}
