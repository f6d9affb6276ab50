package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertPriority controls the base impact of an alert on the incident signal.
type AlertPriority string

const (
	PriorityNormal   AlertPriority = "normal"
	PriorityHigh     AlertPriority = "high"
	PriorityCritical AlertPriority = "critical"
)

// Alert is a reported safety incident anchored to a coordinate. Active alerts
// within the lookback window feed the incident signal of nearby zones.
type Alert struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Priority    AlertPriority `json:"priority"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Location returns the alert coordinate as a GeoPoint.
func (a *Alert) Location() GeoPoint {
	return GeoPoint{Latitude: a.Latitude, Longitude: a.Longitude}
}
