package lookuplog

import (
	"time"
)

// LocationLookup records one upstream forecast fetch and how many client
// requests it served.
type LocationLookup struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Location     string    `json:"location" gorm:"index:idx_lookup_location;index:idx_lookup_location_created_at"`
	ResolvedName string    `json:"resolved_name" gorm:"column:resolved_name"`
	ForecastDays int       `json:"forecast_days" gorm:"column:forecast_days"`
	RequestCount int       `json:"request_count" gorm:"column:request_count"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_lookup_created_at;index:idx_lookup_location_created_at"`
}

func (LocationLookup) TableName() string {
	return "location_lookups"
}
