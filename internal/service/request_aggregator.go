package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/db/lookuplog"
	"ulascansenturk/weather-lookup/internal/forecast"
	"ulascansenturk/weather-lookup/internal/inmemorycache"
	"ulascansenturk/weather-lookup/internal/providers"
)

const upstreamTimeout = 15 * time.Second

type ForecastResult struct {
	Location string                     `json:"location"`
	Forecast *forecast.ForecastResponse `json:"forecast,omitempty"`
	Error    string                     `json:"error,omitempty"`
	Cached   bool                       `json:"cached,omitempty"`
}

// ForecastRequestAggregator coalesces concurrent forecast requests for the
// same location into one upstream fetch.
type ForecastRequestAggregator interface {
	AddRequest(ctx context.Context, location string) (<-chan ForecastResult, error)
	ProcessQueueForTesting(location string)
	Shutdown()
}

type locationQueue struct {
	location string
	channels []chan ForecastResult
	timer    *time.Timer
	closed   bool
	mu       sync.Mutex
}

type forecastAggregator struct {
	weatherAPI     providers.WeatherAPIService
	cache          inmemorycache.Cache
	lookupRepo     lookuplog.Repository
	queues         map[string]*locationQueue
	queueMutex     sync.RWMutex
	forecastDays   int
	maxQueueSize   int
	maxWaitTime    time.Duration
	cacheTTL       time.Duration
	failedCacheTTL time.Duration
}

func NewForecastRequestAggregator(
	weatherAPI providers.WeatherAPIService,
	cache inmemorycache.Cache,
	lookupRepo lookuplog.Repository,
	forecastDays int,
	maxQueueSize int,
	maxWaitTime time.Duration,
	cacheTTL time.Duration,
	failedCacheTTL time.Duration,
) ForecastRequestAggregator {
	return &forecastAggregator{
		weatherAPI:     weatherAPI,
		cache:          cache,
		lookupRepo:     lookupRepo,
		queues:         make(map[string]*locationQueue),
		forecastDays:   forecastDays,
		maxQueueSize:   maxQueueSize,
		maxWaitTime:    maxWaitTime,
		cacheTTL:       cacheTTL,
		failedCacheTTL: failedCacheTTL,
	}
}

func (w *forecastAggregator) AddRequest(ctx context.Context, location string) (<-chan ForecastResult, error) {
	// buffered so processQueue never blocks on a caller that gave up
	responseChan := make(chan ForecastResult, 1)
	key := inmemorycache.Key(location)

	if w.cache != nil {
		cached, found, err := w.cache.Get(key)
		if err != nil {
			log.Warn().Err(err).Str("location", location).Msg("forecast cache read failed")
		} else if found {
			responseChan <- ForecastResult{
				Location: location,
				Forecast: cached.Forecast,
				Error:    cached.Error,
				Cached:   true,
			}
			close(responseChan)
			return responseChan, nil
		}
	}

	for {
		queue := w.queueFor(key, location)

		queue.mu.Lock()
		if queue.closed {
			// drained by processQueue after we looked it up; the next lookup
			// finds its replacement
			queue.mu.Unlock()
			continue
		}

		if len(queue.channels) == 0 {
			queue.timer = time.AfterFunc(w.maxWaitTime, func() {
				w.processQueue(key, queue)
			})
		}

		queue.channels = append(queue.channels, responseChan)

		if len(queue.channels) >= w.maxQueueSize {
			if queue.timer != nil {
				queue.timer.Stop()
				queue.timer = nil
			}
			go w.processQueue(key, queue)
		}
		queue.mu.Unlock()

		return responseChan, nil
	}
}

func (w *forecastAggregator) queueFor(key, location string) *locationQueue {
	w.queueMutex.RLock()
	queue, exists := w.queues[key]
	w.queueMutex.RUnlock()

	if exists {
		return queue
	}

	w.queueMutex.Lock()
	defer w.queueMutex.Unlock()

	queue, exists = w.queues[key]
	if !exists {
		queue = &locationQueue{location: location}
		w.queues[key] = queue
	}
	return queue
}

// processQueue drains queue and answers every channel in it. A drained queue
// is closed for good; later requests for key start a fresh one.
func (w *forecastAggregator) processQueue(key string, queue *locationQueue) {
	queue.mu.Lock()

	if queue.closed || len(queue.channels) == 0 {
		queue.mu.Unlock()
		return
	}

	channels := queue.channels
	location := queue.location
	queue.channels = nil
	queue.closed = true

	if queue.timer != nil {
		queue.timer.Stop()
		queue.timer = nil
	}

	queue.mu.Unlock()

	w.queueMutex.Lock()
	if w.queues[key] == queue {
		delete(w.queues, key)
	}
	w.queueMutex.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), upstreamTimeout)
	defer cancel()

	resp, apiErr := w.weatherAPI.GetForecast(ctx, location, w.forecastDays)
	if apiErr != nil {
		log.Error().Err(apiErr).Str("location", location).Int("requests", len(channels)).Msg("forecast fetch failed")

		w.store(key, &inmemorycache.ForecastCacheData{Error: apiErr.Error()}, w.failedCacheTTL)

		for _, ch := range channels {
			ch <- ForecastResult{
				Location: location,
				Error:    apiErr.Error(),
			}
			close(ch)
		}
		return
	}

	w.store(key, &inmemorycache.ForecastCacheData{Forecast: resp}, w.cacheTTL)

	go func() {
		if w.lookupRepo != nil {
			if err := w.lookupRepo.LogLookup(location, resp.Location.Name, w.forecastDays, len(channels)); err != nil {
				log.Error().Err(err).Str("location", location).Msg("failed to log location lookup")
			}
		}
	}()

	for _, ch := range channels {
		ch <- ForecastResult{
			Location: location,
			Forecast: resp,
		}
		close(ch)
	}
}

func (w *forecastAggregator) store(key string, data *inmemorycache.ForecastCacheData, ttl time.Duration) {
	if w.cache == nil {
		return
	}
	if err := w.cache.Set(key, data, ttl); err != nil {
		log.Warn().Err(err).Str("location", key).Msg("forecast cache write failed")
	}
}

func (w *forecastAggregator) Shutdown() {
	w.queueMutex.Lock()
	defer w.queueMutex.Unlock()

	for _, queue := range w.queues {
		queue.mu.Lock()

		if queue.timer != nil {
			queue.timer.Stop()
			queue.timer = nil
		}
		queue.closed = true

		for _, ch := range queue.channels {
			close(ch)
		}
		queue.channels = nil

		queue.mu.Unlock()
	}

	w.queues = make(map[string]*locationQueue)
}

func (w *forecastAggregator) ProcessQueueForTesting(location string) {
	key := inmemorycache.Key(location)

	w.queueMutex.RLock()
	queue, exists := w.queues[key]
	w.queueMutex.RUnlock()

	if exists {
		w.processQueue(key, queue)
	}
}
