// Package geo holds the distance and decay math shared by the zone classifier
// and the safety scoring engine.
package geo

import (
	"math"

	"github.com/trailsentry/tourist-safety-api/internal/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Default half-lives for signal decay.
const (
	TemporalHalfLifeHours = 24.0
	SpatialHalfLifeKm     = 5.0
)

// Haversine returns the great-circle distance between two points in
// kilometers.
func Haversine(a, b models.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180.0
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180.0

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// TemporalDecay halves value every TemporalHalfLifeHours. Negative elapsed
// time (clock skew on freshly written records) is treated as zero so decay
// never amplifies.
func TemporalDecay(value, hoursElapsed float64) float64 {
	if hoursElapsed < 0 {
		hoursElapsed = 0
	}
	return value * math.Exp(math.Ln2/TemporalHalfLifeHours*-hoursElapsed)
}

// SpatialDecay halves value every SpatialHalfLifeKm of distance.
func SpatialDecay(value, distanceKm float64) float64 {
	if distanceKm < 0 {
		distanceKm = 0
	}
	return value * math.Exp(math.Ln2/SpatialHalfLifeKm*-distanceKm)
}

// Normalize maps x linearly into [0,1] over the [min,max] range, clamping at
// both ends.
func Normalize(x, min, max float64) float64 {
	if max <= min {
		return 0
	}
	return Clamp((x-min)/(max-min), 0, 1)
}

// Clamp bounds x to [lo,hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
