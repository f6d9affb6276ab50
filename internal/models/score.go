package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoreCategory is the three-way risk bucket derived from a computed score.
type ScoreCategory string

const (
	CategorySafe     ScoreCategory = "safe"
	CategoryModerate ScoreCategory = "moderate"
	CategoryUnsafe   ScoreCategory = "unsafe"
)

// ScoreFactors holds the normalized contribution of each signal, each in [0,1].
// PoliceProximity is inverted distance: 1 means a responder post is on top of
// the zone anchor, 0 means none within the normalization range.
type ScoreFactors struct {
	Incidents       float64 `json:"incidents"`
	News            float64 `json:"news"`
	PoliceProximity float64 `json:"police_proximity"`
	Density         float64 `json:"density"`
	Terrain         float64 `json:"terrain"`
	TimeOfDay       float64 `json:"time_of_day"`
}

// ComputedSafetyScore is the fused risk assessment for one zone. Entries live
// only in the in-process score cache and are rebuilt wholesale on each sweep.
// Confidence is an evidentiary-coverage heuristic, not a statistical
// confidence interval: it grows with the number of distinct signal types that
// contributed non-zero evidence.
type ComputedSafetyScore struct {
	ZoneID      uuid.UUID     `json:"zone_id"`
	Score       float64       `json:"score"`
	Confidence  float64       `json:"confidence"`
	Factors     ScoreFactors  `json:"factors"`
	Category    ScoreCategory `json:"category"`
	LastUpdated time.Time     `json:"last_updated"`
}
