package lookuplog

import (
	"time"

	"gorm.io/gorm"
	"ulascansenturk/weather-lookup/internal/inmemorycache"
)

// Repository records upstream forecast fetches. Locations are stored under
// the same normalised key the forecast cache uses, so "London" and " london"
// read and write the same history.
type Repository interface {
	LogLookup(location, resolvedName string, forecastDays, requestCount int) error
	GetRecentLookup(location string) (*LocationLookup, error)
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

func (r *LookupSQLRepository) LogLookup(location, resolvedName string, forecastDays, requestCount int) error {
	return r.db.Create(&LocationLookup{
		Location:     inmemorycache.Key(location),
		ResolvedName: resolvedName,
		ForecastDays: forecastDays,
		RequestCount: requestCount,
		CreatedAt:    time.Now(),
	}).Error
}

func (r *LookupSQLRepository) GetRecentLookup(location string) (*LocationLookup, error) {
	key := inmemorycache.Key(location)
	if key == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var lookup LocationLookup
	if err := r.db.Where("location = ?", key).Order("created_at DESC").First(&lookup).Error; err != nil {
		return nil, err
	}
	return &lookup, nil
}
