package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/forecast"
	"ulascansenturk/weather-lookup/internal/providers"
)

// CurrentHour asks GetForecastWindow to use the location's own clock.
const CurrentHour = -1

var (
	ErrEmptyLocation = errors.New("location cannot be empty")
	ErrEmptyQuery    = errors.New("query cannot be empty")
	ErrAborted       = errors.New("forecast request aborted")
)

type ForecastWindowResponse struct {
	Forecast *forecast.ForecastResponse `json:"forecast"`
	Window   []forecast.HourlyReading   `json:"window"`
	Hour     int                        `json:"hour"`
	Cached   bool                       `json:"cached"`
}

type WeatherService interface {
	SearchLocations(ctx context.Context, query string) ([]forecast.Suggestion, error)
	GetForecastWindow(ctx context.Context, location string, hour int) (ForecastWindowResponse, error)
}

type weatherService struct {
	aggregator ForecastRequestAggregator
	weatherAPI providers.WeatherAPIService
	now        func() time.Time
}

func NewWeatherService(aggregator ForecastRequestAggregator, weatherAPI providers.WeatherAPIService) WeatherService {
	return &weatherService{
		aggregator: aggregator,
		weatherAPI: weatherAPI,
		now:        time.Now,
	}
}

func (s *weatherService) SearchLocations(ctx context.Context, query string) ([]forecast.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	return s.weatherAPI.SearchLocations(ctx, query)
}

func (s *weatherService) GetForecastWindow(ctx context.Context, location string, hour int) (ForecastWindowResponse, error) {
	if strings.TrimSpace(location) == "" {
		return ForecastWindowResponse{}, ErrEmptyLocation
	}

	responseChan, err := s.aggregator.AddRequest(ctx, location)
	if err != nil {
		return ForecastWindowResponse{}, err
	}

	select {
	case result, ok := <-responseChan:
		if !ok {
			return ForecastWindowResponse{}, ErrAborted
		}
		if result.Error != "" {
			return ForecastWindowResponse{}, errors.New(result.Error)
		}

		if hour == CurrentHour {
			hour = s.localHour(result.Forecast)
		}

		return ForecastWindowResponse{
			Forecast: result.Forecast,
			Window:   forecast.SelectWindow(result.Forecast, hour),
			Hour:     hour,
			Cached:   result.Cached,
		}, nil
	case <-ctx.Done():
		return ForecastWindowResponse{}, ctx.Err()
	}
}

func (s *weatherService) localHour(resp *forecast.ForecastResponse) int {
	if resp != nil {
		if _, err := forecast.ParseHour(resp.Location.Localtime); err != nil {
			log.Debug().Err(err).Str("location", resp.Location.Name).Msg("falling back to server clock")
		}
	}
	return forecast.LocalHour(resp, s.now())
}
