package models

import (
	"time"

	"github.com/google/uuid"
)

// ZoneType is the categorical terrain classification of a location.
type ZoneType string

const (
	ZoneSafe       ZoneType = "safe"
	ZoneModerate   ZoneType = "moderate"
	ZoneUnsafe     ZoneType = "unsafe"
	ZoneForest     ZoneType = "forest"
	ZoneRestricted ZoneType = "restricted"
)

// SafetyZone is a monitored area registered in storage. The scoring engine
// only reads these; they are managed by an external ingestion process.
type SafetyZone struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	ZoneType  ZoneType  `json:"zone_type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	RiskLevel int       `json:"risk_level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Anchor returns the representative coordinate of the zone.
func (z *SafetyZone) Anchor() GeoPoint {
	return GeoPoint{Latitude: z.Latitude, Longitude: z.Longitude}
}

// ZoneClassification is the result of classifying a raw coordinate. It is a
// computed value produced fresh per query, never persisted.
type ZoneClassification struct {
	ZoneType ZoneType `json:"zone_type"`
	Score    int      `json:"score"`
	Reason   string   `json:"reason"`
}

// NamedArea is a point-anchored area with a fixed buffer radius, used for
// forest reserves and restricted border zones. The source datasets are
// point-radius approximations, not true polygons.
type NamedArea struct {
	Name        string
	State       string
	Anchor      GeoPoint
	Description string
}

// CityAnchor represents a tourist-safe population center.
type CityAnchor struct {
	Name   string
	State  string
	Anchor GeoPoint
}
