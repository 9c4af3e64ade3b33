package forecast_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-lookup/internal/forecast"
)

type SelectWindowTestSuite struct {
	suite.Suite
	twoDays *forecast.ForecastResponse
}

func buildDay(date string, baseEpoch int64) forecast.DayForecast {
	day := forecast.DayForecast{Date: date}
	for h := 0; h < 24; h++ {
		day.Hour = append(day.Hour, forecast.HourlyReading{
			Time:      fmt.Sprintf("%s %02d:00", date, h),
			TimeEpoch: baseEpoch + int64(h*3600),
			TempC:     float64(h),
			TempF:     float64(h)*1.8 + 32,
			Condition: forecast.Condition{Text: "Clear", Icon: "//cdn.weatherapi.com/weather/64x64/night/113.png"},
		})
	}
	return day
}

func buildForecast(days ...forecast.DayForecast) *forecast.ForecastResponse {
	resp := &forecast.ForecastResponse{}
	resp.Location.Name = "London"
	resp.Forecast.ForecastDay = days
	return resp
}

func hoursOf(s *SelectWindowTestSuite, window []forecast.HourlyReading) []int {
	hours := make([]int, 0, len(window))
	for _, r := range window {
		h, err := forecast.HourOfDay(r)
		s.Require().NoError(err)
		hours = append(hours, h)
	}
	return hours
}

func (s *SelectWindowTestSuite) SetupTest() {
	s.twoDays = buildForecast(
		buildDay("2025-02-09", 1739059200),
		buildDay("2025-02-10", 1739145600),
	)
}

func (s *SelectWindowTestSuite) TestNilForecastReturnsEmptyWindow() {
	window := forecast.SelectWindow(nil, 10)

	s.NotNil(window)
	s.Empty(window)
}

func (s *SelectWindowTestSuite) TestForecastWithoutDaysReturnsEmptyWindow() {
	window := forecast.SelectWindow(&forecast.ForecastResponse{}, 10)

	s.Empty(window)
}

func (s *SelectWindowTestSuite) TestEveryHourBeforeTheBoundary() {
	for current := 0; current <= 22; current++ {
		window := forecast.SelectWindow(s.twoDays, current)

		s.Require().Len(window, forecast.WindowSize, "current hour %d", current)

		expected := make([]int, 0, forecast.WindowSize)
		for i := 1; i <= forecast.WindowSize; i++ {
			expected = append(expected, (current+i)%24)
		}
		s.Equal(expected, hoursOf(s, window), "current hour %d", current)

		for i := 1; i < len(window); i++ {
			s.Less(window[i-1].TimeEpoch, window[i].TimeEpoch, "current hour %d", current)
		}
	}
}

func (s *SelectWindowTestSuite) TestMorningStaysWithinToday() {
	window := forecast.SelectWindow(s.twoDays, 8)

	s.Equal([]int{9, 10, 11, 12, 13}, hoursOf(s, window))
	for _, r := range window {
		s.Contains(r.Time, "2025-02-09")
	}
}

func (s *SelectWindowTestSuite) TestLastHourTakesTomorrowHead() {
	window := forecast.SelectWindow(s.twoDays, 23)

	s.Require().Len(window, 5)
	s.Equal([]int{0, 1, 2, 3, 4}, hoursOf(s, window))
	for _, r := range window {
		s.Contains(r.Time, "2025-02-10")
	}
}

func (s *SelectWindowTestSuite) TestEveningSpansDayBoundary() {
	window := forecast.SelectWindow(s.twoDays, 19)

	s.Require().Len(window, 5)
	s.Equal([]int{20, 21, 22, 23, 0}, hoursOf(s, window))
	s.Equal("2025-02-09 23:00", window[3].Time)
	s.Equal("2025-02-10 00:00", window[4].Time)
}

func (s *SelectWindowTestSuite) TestIdempotent() {
	first := forecast.SelectWindow(s.twoDays, 21)
	second := forecast.SelectWindow(s.twoDays, 21)

	s.Equal(first, second)
}

func (s *SelectWindowTestSuite) TestSelectionUsesTimeStringNotEpoch() {
	resp := buildForecast(
		forecast.DayForecast{Hour: []forecast.HourlyReading{
			{Time: "2025-02-09 22:00", TimeEpoch: 1},
			{Time: "2025-02-09 23:00", TimeEpoch: 2},
			{Time: "2025-02-09 00:00", TimeEpoch: 3},
		}},
		forecast.DayForecast{Hour: []forecast.HourlyReading{
			{Time: "2025-02-10 00:00", TimeEpoch: 1},
			{Time: "2025-02-10 01:00", TimeEpoch: 2},
			{Time: "2025-02-10 00:00", TimeEpoch: 3},
		}},
	)

	window := forecast.SelectWindow(resp, 21)

	s.Len(window, 5)
	s.Equal([]int{22, 23, 0, 1, 0}, hoursOf(s, window))
}

func (s *SelectWindowTestSuite) TestShortUpstreamDataYieldsShortWindow() {
	resp := buildForecast(
		forecast.DayForecast{Hour: []forecast.HourlyReading{
			{Time: "2025-02-09 22:00"},
			{Time: "2025-02-09 23:00"},
		}},
		forecast.DayForecast{Hour: []forecast.HourlyReading{
			{Time: "2025-02-10 00:00"},
		}},
	)

	window := forecast.SelectWindow(resp, 21)

	s.Equal([]int{22, 23, 0}, hoursOf(s, window))
}

func (s *SelectWindowTestSuite) TestUnparseableTimesNeverMatch() {
	resp := buildForecast(buildDay("2025-02-09", 0), buildDay("2025-02-10", 0))
	resp.Forecast.ForecastDay[0].Hour[11].Time = "11 o'clock"

	window := forecast.SelectWindow(resp, 10)

	s.Equal([]int{12, 13, 14, 15}, hoursOf(s, window)[:4])
	s.Len(window, 5)
	s.Equal("2025-02-10 00:00", window[4].Time)
}

func (s *SelectWindowTestSuite) TestMissingTomorrowPanicsWhenNeeded() {
	resp := buildForecast(buildDay("2025-02-09", 0))

	s.Panics(func() {
		forecast.SelectWindow(resp, 20)
	})
}

func (s *SelectWindowTestSuite) TestMissingTomorrowIsFineWhenTodaySuffices() {
	resp := buildForecast(buildDay("2025-02-09", 0))

	window := forecast.SelectWindow(resp, 3)

	s.Equal([]int{4, 5, 6, 7, 8}, hoursOf(s, window))
}

func (s *SelectWindowTestSuite) TestParseHour() {
	h, err := forecast.ParseHour("2025-02-09 07:30")
	s.NoError(err)
	s.Equal(7, h)

	_, err = forecast.ParseHour("yesterday")
	s.Error(err)
	s.Contains(err.Error(), "invalid forecast time")
}

func (s *SelectWindowTestSuite) TestLocalHour() {
	now := time.Date(2025, 2, 9, 13, 0, 0, 0, time.UTC)

	s.Equal(21, forecast.LocalHour(&forecast.ForecastResponse{
		Location: forecast.Location{Localtime: "2025-02-09 21:14"},
	}, now))
	s.Equal(13, forecast.LocalHour(&forecast.ForecastResponse{}, now))
	s.Equal(13, forecast.LocalHour(nil, now))
}

func TestSelectWindowSuite(t *testing.T) {
	suite.Run(t, new(SelectWindowTestSuite))
}
