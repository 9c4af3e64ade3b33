package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"ulascansenturk/weather-lookup/internal/forecast"
)

const (
	DefaultSearchURL   = "https://api.weatherapi.com/v1/search.json"
	DefaultForecastURL = "https://api.weatherapi.com/v1/forecast.json"
)

// Param is a single query parameter. Params keeps insertion order so the
// generated query string is deterministic.
type Param struct {
	Key   string
	Value string
}

type Params []Param

// Getter performs an authenticated GET against a WeatherAPI endpoint and
// returns the raw response body.
type Getter interface {
	Get(ctx context.Context, baseURL string, params Params) ([]byte, error)
}

type WeatherAPIService interface {
	Getter
	SearchLocations(ctx context.Context, query string) ([]forecast.Suggestion, error)
	GetForecast(ctx context.Context, location string, days int) (*forecast.ForecastResponse, error)
}

type weatherAPIService struct {
	apiKey      string
	searchURL   string
	forecastURL string
	client      *http.Client
	limiter     *rate.Limiter
}

// NewWeatherAPIService builds a client for WeatherAPI.com. A non-positive rps
// disables outbound rate limiting.
func NewWeatherAPIService(apiKey, searchURL, forecastURL string, rps float64, burst int) WeatherAPIService {
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}

	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst < 1 {
		burst = 1
	}

	return &weatherAPIService{
		apiKey:      apiKey,
		searchURL:   searchURL,
		forecastURL: forecastURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// BuildURL returns baseURL with the API key as the first query parameter
// followed by params in order.
func BuildURL(baseURL, apiKey string, params Params) string {
	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString("?key=")
	b.WriteString(url.QueryEscape(apiKey))
	for _, p := range params {
		b.WriteByte('&')
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

func (s *weatherAPIService) Get(ctx context.Context, baseURL string, params Params) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, BuildURL(baseURL, s.apiKey, params), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	log.Debug().Str("url", baseURL).Int("params", len(params)).Msg("weather API request")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("weather API error: %s (code %d)", apiErr.Error.Message, apiErr.Error.Code)
		}
		return nil, fmt.Errorf("weather API returned status code: %d", resp.StatusCode)
	}

	return body, nil
}

// DecodeJSON unmarshals a response body into T.
func DecodeJSON[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("weather API returned malformed JSON: %w", err)
	}
	return out, nil
}

func (s *weatherAPIService) SearchLocations(ctx context.Context, query string) ([]forecast.Suggestion, error) {
	body, err := s.Get(ctx, s.searchURL, Params{{Key: "q", Value: query}})
	if err != nil {
		return nil, err
	}

	suggestions, err := DecodeJSON[[]forecast.Suggestion](body)
	if err != nil {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []forecast.Suggestion{}
	}
	return suggestions, nil
}

func (s *weatherAPIService) GetForecast(ctx context.Context, location string, days int) (*forecast.ForecastResponse, error) {
	body, err := s.Get(ctx, s.forecastURL, Params{
		{Key: "q", Value: location},
		{Key: "days", Value: strconv.Itoa(days)},
	})
	if err != nil {
		return nil, err
	}

	resp, err := DecodeJSON[forecast.ForecastResponse](body)
	if err != nil {
		return nil, err
	}

	if len(resp.Forecast.ForecastDay) < days {
		return nil, fmt.Errorf("weather API returned %d forecast days, expected %d", len(resp.Forecast.ForecastDay), days)
	}

	return &resp, nil
}
