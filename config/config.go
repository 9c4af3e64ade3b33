package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"ulascansenturk/weather-lookup/internal/providers"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	WeatherAPIKey         string
	WeatherAPISearchURL   string
	WeatherAPIForecastURL string
	WeatherAPIRPS         float64
	WeatherAPIBurst       int

	ForecastDays   int
	MinQueryLength int
	DebounceWait   time.Duration

	MaxQueueSize   int
	MaxWaitTime    time.Duration
	CacheTTL       time.Duration
	FailedCacheTTL time.Duration
}

var ErrMissingAPIKey = errors.New("WEATHER_API_API_KEY is required")

func LoadConfig() (*Config, error) {
	return LoadConfigFromPath(".")
}

// LoadConfigFromPath reads environment variables, then an optional .env file
// in dir for anything the environment does not set.
func LoadConfigFromPath(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-lookup")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 30)
	v.SetDefault("WEATHER_API_SEARCH_URL", providers.DefaultSearchURL)
	v.SetDefault("WEATHER_API_FORECAST_URL", providers.DefaultForecastURL)
	v.SetDefault("WEATHER_API_RPS", 10)
	v.SetDefault("WEATHER_API_BURST", 5)
	v.SetDefault("FORECAST_DAYS", 2)
	v.SetDefault("MIN_QUERY_LENGTH", 2)
	v.SetDefault("DEBOUNCE_WAIT", 300*time.Millisecond)
	v.SetDefault("MAX_QUEUE_SIZE", 10)
	v.SetDefault("MAX_WAIT_TIME", 500*time.Millisecond)
	v.SetDefault("CACHE_TTL", 10*time.Minute)
	v.SetDefault("FAILED_CACHE_TTL", time.Minute)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:           v.GetString("SERVICE_NAME"),
		ServerAddress:         v.GetString("SERVER_ADDRESS"),
		DBName:                v.GetString("DATABASE_NAME"),
		DBPassword:            v.GetString("DATABASE_PASSWORD"),
		DBUser:                v.GetString("DATABASE_USER"),
		DBPort:                v.GetString("DATABASE_PORT"),
		DBHost:                v.GetString("DATABASE_HOST"),
		Env:                   v.GetString("ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		HTTPTimeout:           v.GetInt32("HTTP_TIMEOUT"),
		WeatherAPIKey:         v.GetString("WEATHER_API_API_KEY"),
		WeatherAPISearchURL:   v.GetString("WEATHER_API_SEARCH_URL"),
		WeatherAPIForecastURL: v.GetString("WEATHER_API_FORECAST_URL"),
		WeatherAPIRPS:         v.GetFloat64("WEATHER_API_RPS"),
		WeatherAPIBurst:       v.GetInt("WEATHER_API_BURST"),
		ForecastDays:          v.GetInt("FORECAST_DAYS"),
		MinQueryLength:        v.GetInt("MIN_QUERY_LENGTH"),
		DebounceWait:          v.GetDuration("DEBOUNCE_WAIT"),
		MaxQueueSize:          v.GetInt("MAX_QUEUE_SIZE"),
		MaxWaitTime:           v.GetDuration("MAX_WAIT_TIME"),
		CacheTTL:              v.GetDuration("CACHE_TTL"),
		FailedCacheTTL:        v.GetDuration("FAILED_CACHE_TTL"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.WeatherAPIKey == "" {
		return ErrMissingAPIKey
	}
	// the forecast window reads into tomorrow
	if c.ForecastDays < 2 {
		return fmt.Errorf("FORECAST_DAYS must be at least 2, got %d", c.ForecastDays)
	}
	if c.MaxQueueSize < 1 {
		return fmt.Errorf("MAX_QUEUE_SIZE must be positive, got %d", c.MaxQueueSize)
	}
	if c.MinQueryLength < 0 {
		return fmt.Errorf("MIN_QUERY_LENGTH must not be negative, got %d", c.MinQueryLength)
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DSN is the Postgres connection string for the lookup log.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
