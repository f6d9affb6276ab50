// Package scoring computes the fused safety score of monitored zones from
// time- and space-decayed dynamic signals, and serves the results from an
// in-process cache refreshed by periodic sweeps.
package scoring

import (
	"time"

	"github.com/trailsentry/tourist-safety-api/internal/geo"
	"github.com/trailsentry/tourist-safety-api/internal/models"
)

// Signal weights. They sum to 1.0; police proximity is the only subtractive
// term in the score formula.
const (
	weightIncidents = 0.30
	weightNews      = 0.20
	weightPolice    = 0.20
	weightDensity   = 0.15
	weightTerrain   = 0.10
	weightTimeOfDay = 0.05
)

// Normalization ranges for the raw aggregates.
const (
	incidentRangeMax = 5.0
	newsRangeMax     = 10.0
	policeRangeKm    = 20.0
	densityRangeMax  = 20.0
)

// Lookback windows and cutoffs.
const (
	IncidentLookback = 7 * 24 * time.Hour
	NewsLookback     = 7 * 24 * time.Hour
	DensityLookback  = 24 * time.Hour

	densityCutoffKm    = 2.0
	noResponderKm      = 50.0
	defaultTerrainRisk = 0.5
)

// terrainRisk holds the static risk constant per zone type.
var terrainRisk = map[models.ZoneType]float64{
	models.ZoneSafe:       0.1,
	models.ZoneModerate:   0.5,
	models.ZoneForest:     0.6,
	models.ZoneRestricted: 0.8,
	models.ZoneUnsafe:     0.9,
}

// SignalSet carries one sweep's worth of raw records, read once and shared
// across all zones so every zone observes data from the same instant.
type SignalSet struct {
	Alerts           []*models.Alert
	News             []*models.NewsItem
	ResponderPosts   []*models.ResponderPost
	TrackedLocations []*models.TrackedLocation
}

// ComputeScore fuses the signals around one zone anchor into a bounded score,
// category and confidence estimate. It is pure: all inputs including the
// evaluation time are explicit.
func ComputeScore(anchor models.GeoPoint, zoneType models.ZoneType, now time.Time, signals SignalSet) models.ComputedSafetyScore {
	rawIncidents := incidentSignal(anchor, now, signals.Alerts)
	rawNews := newsSignal(now, signals.News)
	policeKm := nearestResponderKm(anchor, signals.ResponderPosts)
	rawDensity := densitySignal(anchor, signals.TrackedLocations)

	factors := models.ScoreFactors{
		Incidents:       geo.Normalize(rawIncidents, 0, incidentRangeMax),
		News:            geo.Normalize(rawNews, 0, newsRangeMax),
		PoliceProximity: 1 - geo.Normalize(policeKm, 0, policeRangeKm),
		Density:         geo.Normalize(rawDensity, 0, densityRangeMax),
		Terrain:         TerrainRisk(zoneType),
		TimeOfDay:       TimeOfDayRisk(now.Hour()),
	}

	score := 100 * (weightIncidents*factors.Incidents +
		weightNews*factors.News +
		weightTerrain*factors.Terrain +
		weightTimeOfDay*factors.TimeOfDay +
		weightDensity*factors.Density)
	score -= 100 * weightPolice * factors.PoliceProximity
	score = geo.Clamp(score, 0, 100)

	confidence := 0.5
	if rawIncidents > 0 {
		confidence += 0.20
	}
	if rawNews > 0 {
		confidence += 0.15
	}
	if policeKm < noResponderKm {
		confidence += 0.15
	}
	if rawDensity > 0 {
		confidence += 0.10
	}
	confidence = geo.Clamp(confidence, 0, 1)

	return models.ComputedSafetyScore{
		Score:       score,
		Confidence:  confidence,
		Factors:     factors,
		Category:    CategoryForScore(score),
		LastUpdated: now,
	}
}

// CategoryForScore buckets a clamped score into the three-way category.
func CategoryForScore(score float64) models.ScoreCategory {
	switch {
	case score <= 20:
		return models.CategorySafe
	case score <= 50:
		return models.CategoryModerate
	default:
		return models.CategoryUnsafe
	}
}

// TerrainRisk returns the static risk constant for a zone type.
func TerrainRisk(zoneType models.ZoneType) float64 {
	if r, ok := terrainRisk[zoneType]; ok {
		return r
	}
	return defaultTerrainRisk
}

// TimeOfDayRisk returns the risk bucket for an hour of day: late night is the
// riskiest, the evening/dawn transition moderate, daytime lowest.
func TimeOfDayRisk(hour int) float64 {
	switch {
	case hour >= 22 || hour < 6:
		return 0.7
	case hour >= 18 || hour < 7:
		return 0.4
	default:
		return 0.2
	}
}

// incidentSignal sums the decayed impact of recent alerts. Spatial decay is
// applied before temporal decay; the order is fixed for reproducibility.
func incidentSignal(anchor models.GeoPoint, now time.Time, alerts []*models.Alert) float64 {
	var total float64
	for _, a := range alerts {
		impact := alertImpact(a.Priority)
		impact = geo.SpatialDecay(impact, geo.Haversine(a.Location(), anchor))
		impact = geo.TemporalDecay(impact, now.Sub(a.CreatedAt).Hours())
		total += impact
	}
	return total
}

func alertImpact(p models.AlertPriority) float64 {
	switch p {
	case models.PriorityCritical:
		return 2.0
	case models.PriorityHigh:
		return 1.5
	default:
		return 1.0
	}
}

// newsSignal sums the temporally decayed impact of recent news items.
func newsSignal(now time.Time, items []*models.NewsItem) float64 {
	var total float64
	for _, n := range items {
		total += geo.TemporalDecay(newsImpact(n.Category), now.Sub(n.PublishedAt).Hours())
	}
	return total
}

func newsImpact(c models.NewsCategory) float64 {
	switch c {
	case models.NewsEmergency:
		return 1.0
	case models.NewsAlert:
		return 0.8
	case models.NewsSafety:
		return 0.3
	default:
		return 0.5
	}
}

// nearestResponderKm returns the distance to the closest responder post, or
// the no-coverage sentinel when none are registered.
func nearestResponderKm(anchor models.GeoPoint, posts []*models.ResponderPost) float64 {
	nearest := noResponderKm
	for _, p := range posts {
		if d := geo.Haversine(p.Location(), anchor); d < nearest {
			nearest = d
		}
	}
	return nearest
}

// densitySignal counts recently seen tourists near the anchor, spatially
// decayed. Locations beyond the cutoff are excluded before decay applies.
func densitySignal(anchor models.GeoPoint, tracked []*models.TrackedLocation) float64 {
	var total float64
	for _, t := range tracked {
		d := geo.Haversine(t.Location(), anchor)
		if d > densityCutoffKm {
			continue
		}
		total += geo.SpatialDecay(1.0, d)
	}
	return total
}
