package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/weather-lookup/config"
	"ulascansenturk/weather-lookup/internal/api/v1/handlers"
	"ulascansenturk/weather-lookup/internal/db/lookuplog"
	"ulascansenturk/weather-lookup/internal/inmemorycache"
	"ulascansenturk/weather-lookup/internal/providers"
	"ulascansenturk/weather-lookup/internal/service"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
	log.Logger = logger

	ctx, mainCtxStop := context.WithCancel(context.Background())

	db, err := initializeDatabase(conf)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	lookupRepo := lookuplog.NewRepository(db)

	cacheProvider := inmemorycache.NewInMemoryCacheProvider(time.Minute)
	defer cacheProvider.Close()

	weatherAPIService := providers.NewWeatherAPIService(
		conf.WeatherAPIKey,
		conf.WeatherAPISearchURL,
		conf.WeatherAPIForecastURL,
		conf.WeatherAPIRPS,
		conf.WeatherAPIBurst,
	)

	aggregator := service.NewForecastRequestAggregator(
		weatherAPIService,
		cacheProvider,
		lookupRepo,
		conf.ForecastDays,
		conf.MaxQueueSize,
		conf.MaxWaitTime,
		conf.CacheTTL,
		conf.FailedCacheTTL,
	)
	weatherService := service.NewWeatherService(aggregator, weatherAPIService)

	handler := handlers.NewWeatherHandler(weatherService, conf.HTTPTimeoutDuration())

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           handlers.NewRouter(handler, handlers.NewLookupHandler(lookupRepo), logger),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Error().Err(shutdownErr).Msg("server shutdown failed")
		}
		aggregator.Shutdown()
	})

	logger.Info().Str("address", conf.ServerAddress).Msg("started server")

	if serverErr := httpServer.ListenAndServe(); serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		logger.Error().Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func initializeDatabase(conf *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(conf.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&lookuplog.LocationLookup{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
