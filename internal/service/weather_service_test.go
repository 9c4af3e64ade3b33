package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-lookup/internal/forecast"
	"ulascansenturk/weather-lookup/internal/mocks"
	"ulascansenturk/weather-lookup/internal/service"
)

type WeatherServiceTestSuite struct {
	suite.Suite
	mockAggregator *mocks.MockForecastRequestAggregator
	mockWeatherAPI *mocks.MockWeatherAPIService
	service        service.WeatherService
	ctx            context.Context
}

func (s *WeatherServiceTestSuite) SetupTest() {
	s.mockAggregator = mocks.NewMockForecastRequestAggregator(s.T())
	s.mockWeatherAPI = mocks.NewMockWeatherAPIService(s.T())
	s.service = service.NewWeatherService(s.mockAggregator, s.mockWeatherAPI)
	s.ctx = context.Background()
}

func resultChannel(results ...service.ForecastResult) <-chan service.ForecastResult {
	ch := make(chan service.ForecastResult, len(results))
	for _, r := range results {
		ch <- r
	}
	close(ch)
	return ch
}

func (s *WeatherServiceTestSuite) TestSearchLocations() {
	suggestions := []forecast.Suggestion{
		{ID: 2801268, Name: "London", Region: "City of London, Greater London", Country: "United Kingdom"},
	}
	s.mockWeatherAPI.On("SearchLocations", mock.Anything, "Lon").Return(suggestions, nil)

	result, err := s.service.SearchLocations(s.ctx, "  Lon ")

	s.NoError(err)
	s.Equal(suggestions, result)
}

func (s *WeatherServiceTestSuite) TestSearchLocationsWithEmptyQuery() {
	result, err := s.service.SearchLocations(s.ctx, "   ")

	s.ErrorIs(err, service.ErrEmptyQuery)
	s.Nil(result)
	s.mockWeatherAPI.AssertNotCalled(s.T(), "SearchLocations", mock.Anything, mock.Anything)
}

func (s *WeatherServiceTestSuite) TestSearchLocationsPropagatesError() {
	s.mockWeatherAPI.On("SearchLocations", mock.Anything, "Paris").
		Return(nil, errors.New("weather API returned status code: 500"))

	_, err := s.service.SearchLocations(s.ctx, "Paris")

	s.EqualError(err, "weather API returned status code: 500")
}

func (s *WeatherServiceTestSuite) TestGetForecastWindowWithExplicitHour() {
	resp := sampleForecast("London", "2025-02-09 21:14")
	s.mockAggregator.On("AddRequest", mock.Anything, "London").
		Return(resultChannel(service.ForecastResult{Location: "London", Forecast: resp}), nil)

	result, err := s.service.GetForecastWindow(s.ctx, "London", 10)

	s.Require().NoError(err)
	s.Equal(resp, result.Forecast)
	s.Equal(10, result.Hour)
	s.False(result.Cached)
	s.Equal([]int{11, 12, 13, 14, 15}, windowHours(result.Window))
}

func (s *WeatherServiceTestSuite) TestGetForecastWindowUsesLocationClock() {
	resp := sampleForecast("London", "2025-02-09 21:14")
	s.mockAggregator.On("AddRequest", mock.Anything, "London").
		Return(resultChannel(service.ForecastResult{Location: "London", Forecast: resp, Cached: true}), nil)

	result, err := s.service.GetForecastWindow(s.ctx, "London", service.CurrentHour)

	s.Require().NoError(err)
	s.Equal(21, result.Hour)
	s.True(result.Cached)
	s.Equal([]int{22, 23, 0, 1, 2}, windowHours(result.Window))
}

func (s *WeatherServiceTestSuite) TestGetForecastWindowFallsBackToServerClock() {
	resp := sampleForecast("London", "not a time")
	s.mockAggregator.On("AddRequest", mock.Anything, "London").
		Return(resultChannel(service.ForecastResult{Location: "London", Forecast: resp}), nil)

	before := time.Now().Hour()
	result, err := s.service.GetForecastWindow(s.ctx, "London", service.CurrentHour)
	after := time.Now().Hour()

	s.Require().NoError(err)
	s.Contains([]int{before, after}, result.Hour)
	s.Len(result.Window, forecast.WindowSize)
}

func (s *WeatherServiceTestSuite) TestGetForecastWindowWithEmptyLocation() {
	result, err := s.service.GetForecastWindow(s.ctx, " ", 12)

	s.ErrorIs(err, service.ErrEmptyLocation)
	s.Equal(service.ForecastWindowResponse{}, result)
	s.mockAggregator.AssertNotCalled(s.T(), "AddRequest", mock.Anything, mock.Anything)
}

func (s *WeatherServiceTestSuite) TestGetForecastWindowWithAggregatorError() {
	expectedError := errors.New("aggregator error")
	s.mockAggregator.On("AddRequest", mock.Anything, "Paris").
		Return((<-chan service.ForecastResult)(nil), expectedError)

	result, err := s.service.GetForecastWindow(s.ctx, "Paris", 12)

	s.Equal(expectedError, err)
	s.Equal(service.ForecastWindowResponse{}, result)
}

func (s *WeatherServiceTestSuite) TestGetForecastWindowWithErrorResult() {
	errorMsg := "weather API error: No matching location found. (code 1006)"
	s.mockAggregator.On("AddRequest", mock.Anything, "Atlantis").
		Return(resultChannel(service.ForecastResult{Location: "Atlantis", Error: errorMsg}), nil)

	result, err := s.service.GetForecastWindow(s.ctx, "Atlantis", 12)

	s.EqualError(err, errorMsg)
	s.Equal(service.ForecastWindowResponse{}, result)
}

func (s *WeatherServiceTestSuite) TestGetForecastWindowWhenAggregatorShutsDown() {
	s.mockAggregator.On("AddRequest", mock.Anything, "Oslo").Return(resultChannel(), nil)

	_, err := s.service.GetForecastWindow(s.ctx, "Oslo", 12)

	s.ErrorIs(err, service.ErrAborted)
}

func (s *WeatherServiceTestSuite) TestGetForecastWindowWithContextTimeout() {
	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()

	pending := make(chan service.ForecastResult)
	s.mockAggregator.On("AddRequest", mock.Anything, "Tokyo").
		Return((<-chan service.ForecastResult)(pending), nil)

	result, err := s.service.GetForecastWindow(ctx, "Tokyo", 12)

	s.ErrorIs(err, context.DeadlineExceeded)
	s.Equal(service.ForecastWindowResponse{}, result)
}

func TestWeatherServiceSuite(t *testing.T) {
	suite.Run(t, new(WeatherServiceTestSuite))
}
