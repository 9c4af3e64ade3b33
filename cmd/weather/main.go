// Command weather is an interactive terminal client: type a location, pick
// one of the suggestions and read its current weather and next five hours.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/config"
	"ulascansenturk/weather-lookup/internal/providers"
	"ulascansenturk/weather-lookup/internal/service"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(logLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := providers.NewWeatherAPIService(
		conf.WeatherAPIKey,
		conf.WeatherAPISearchURL,
		conf.WeatherAPIForecastURL,
		conf.WeatherAPIRPS,
		conf.WeatherAPIBurst,
	)

	changes := make(chan struct{}, 1)
	coordinator := service.NewSearchCoordinator(ctx, client, service.CoordinatorConfig{
		SearchURL:      conf.WeatherAPISearchURL,
		ForecastURL:    conf.WeatherAPIForecastURL,
		MinQueryLength: conf.MinQueryLength,
		ForecastDays:   conf.ForecastDays,
		DebounceWait:   conf.DebounceWait,
		OnChange: func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		},
	})
	defer coordinator.Close()

	a := &app{
		coordinator: coordinator,
		screen: &screen{
			out:            os.Stdout,
			minQueryLength: conf.MinQueryLength,
			now:            time.Now,
		},
		out: os.Stdout,
	}

	fmt.Fprintln(os.Stdout, usage)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			log.Error().Err(err).Msg("failed to read input")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
			a.screen.render(coordinator)
		case line, ok := <-lines:
			if !ok || !a.handle(line) {
				return
			}
		}
	}
}
