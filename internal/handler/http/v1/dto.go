package v1

import (
	"time"

	"github.com/google/uuid"
)

// CheckLocationRequest is a tourist position report.
// @Description Tourist position report
type CheckLocationRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// ClassificationResponse is the categorical evaluation of a coordinate.
// @Description Categorical evaluation of a coordinate
type ClassificationResponse struct {
	ZoneType string `json:"zone_type"`
	Score    int    `json:"score"`
	Reason   string `json:"reason"`
}

// ZoneResponse describes a registered safety zone.
// @Description Registered safety zone
type ZoneResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	ZoneType  string    `json:"zone_type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	RiskLevel int       `json:"risk_level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScoreFactorsResponse is the normalized contribution of each signal.
// @Description Normalized contribution of each signal
type ScoreFactorsResponse struct {
	Incidents       float64 `json:"incidents"`
	News            float64 `json:"news"`
	PoliceProximity float64 `json:"police_proximity"`
	Density         float64 `json:"density"`
	Terrain         float64 `json:"terrain"`
	TimeOfDay       float64 `json:"time_of_day"`
}

// ZoneScoreResponse is the computed safety score of a zone.
// @Description Computed safety score of a zone
type ZoneScoreResponse struct {
	ZoneID      uuid.UUID            `json:"zone_id"`
	Score       float64              `json:"score"`
	Confidence  float64              `json:"confidence"`
	Category    string               `json:"category"`
	Factors     ScoreFactorsResponse `json:"factors"`
	LastUpdated time.Time            `json:"last_updated"`
	Stale       bool                 `json:"stale"`
}

// LocationAssessmentResponse is the full evaluation of a reported position.
// @Description Full evaluation of a reported position
type LocationAssessmentResponse struct {
	Classification        ClassificationResponse `json:"classification"`
	NearestZone           *ZoneResponse          `json:"nearest_zone,omitempty"`
	NearestZoneDistanceKm float64                `json:"nearest_zone_distance_km,omitempty"`
	ZoneScore             *ZoneScoreResponse     `json:"zone_score,omitempty"`
}

// CreateAlertRequest registers a new incident alert.
// @Description Incident alert creation request
type CreateAlertRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=255"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Priority    string  `json:"priority" validate:"required,oneof=normal high critical"`
}

// AlertResponse describes a registered alert.
// @Description Registered incident alert
type AlertResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatsResponse reports visitor statistics.
// @Description Visitor statistics
type StatsResponse struct {
	TouristCount int `json:"tourist_count"`
}
