package models

import (
	"time"
)

// TrackedLocation is one recorded position of a monitored tourist. Recent
// records feed the crowd-density signal and the visitor statistics endpoint.
type TrackedLocation struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ZoneType    ZoneType  `json:"zone_type"`
	IsDangerous bool      `json:"is_dangerous"`
	CheckedAt   time.Time `json:"checked_at"`
}

// Location returns the tracked coordinate as a GeoPoint.
func (t *TrackedLocation) Location() GeoPoint {
	return GeoPoint{Latitude: t.Latitude, Longitude: t.Longitude}
}
