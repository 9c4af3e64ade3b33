package handlers

import (
	"ulascansenturk/weather-lookup/internal/display"
	"ulascansenturk/weather-lookup/internal/forecast"
)

type SearchResponse struct {
	Query       string                `json:"query"`
	Suggestions []forecast.Suggestion `json:"suggestions"`
}

type ForecastResponse struct {
	display.ForecastView
	Cached bool `json:"cached"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
