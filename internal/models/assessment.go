package models

// LocationAssessment is the full evaluation of one reported tourist position:
// the terrain classification plus the nearest monitored zone and its cached
// safety score when one is available.
type LocationAssessment struct {
	Classification ZoneClassification
	NearestZone    *SafetyZone
	NearestZoneKm  float64
	ZoneScore      *ComputedSafetyScore
}
