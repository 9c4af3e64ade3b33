package inmemorycache

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"ulascansenturk/weather-lookup/internal/forecast"
)

// ForecastCacheData is either a fetched forecast or the error message of a
// failed fetch, kept for a shorter TTL.
type ForecastCacheData struct {
	Forecast *forecast.ForecastResponse `json:"forecast,omitempty"`
	Error    string                     `json:"error,omitempty"`
}

type cacheEntry struct {
	data       []byte
	expiration time.Time
}

type Cache interface {
	Get(location string) (*ForecastCacheData, bool, error)
	Set(location string, data *ForecastCacheData, ttl time.Duration) error
}

type InMemoryCache struct {
	cache           map[string]cacheEntry
	mutex           sync.Mutex
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

func NewInMemoryCacheProvider(cleanupInterval time.Duration) *InMemoryCache {
	provider := &InMemoryCache{
		cache:           make(map[string]cacheEntry),
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

// Key normalises a location so "London" and " london" share an entry.
func Key(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

func (m *InMemoryCache) Get(location string) (*ForecastCacheData, bool, error) {
	key := Key(location)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[key]
	if !exists {
		return nil, false, nil
	}

	if time.Now().After(entry.expiration) {
		delete(m.cache, key)
		return nil, false, nil
	}

	var data ForecastCacheData
	if err := json.Unmarshal(entry.data, &data); err != nil {
		return nil, false, err
	}

	return &data, true, nil
}

func (m *InMemoryCache) Set(location string, data *ForecastCacheData, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[Key(location)] = cacheEntry{
		data:       jsonData,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

func (m *InMemoryCache) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.cache)
}

// Close stops the cleanup goroutine.
func (m *InMemoryCache) Close() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

func (m *InMemoryCache) startCleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mutex.Lock()
			now := time.Now()
			for k, v := range m.cache {
				if now.After(v.expiration) {
					delete(m.cache, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
