package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailsentry/tourist-safety-api/internal/models"
)

var (
	guwahati = models.GeoPoint{Latitude: 26.1445, Longitude: 91.7362}
	shillong = models.GeoPoint{Latitude: 25.5788, Longitude: 91.8933}
)

func TestHaversine_KnownDistance(t *testing.T) {
	d := Haversine(guwahati, shillong)
	assert.InDelta(t, 64.8, d, 1.0)
}

func TestHaversine_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(guwahati, guwahati))
}

func TestHaversine_Symmetric(t *testing.T) {
	assert.InDelta(t, Haversine(guwahati, shillong), Haversine(shillong, guwahati), 1e-9)
}

func TestTemporalDecay_HalfLife(t *testing.T) {
	assert.InDelta(t, 5.0, TemporalDecay(10, TemporalHalfLifeHours), 1e-9)
	assert.InDelta(t, 2.5, TemporalDecay(10, 2*TemporalHalfLifeHours), 1e-9)
}

func TestSpatialDecay_HalfLife(t *testing.T) {
	assert.InDelta(t, 4.0, SpatialDecay(8, SpatialHalfLifeKm), 1e-9)
}

func TestDecay_Monotonic(t *testing.T) {
	hours := []float64{0, 1, 6, 12, 24, 48, 168}
	for i := 1; i < len(hours); i++ {
		prev := TemporalDecay(2.0, hours[i-1])
		cur := TemporalDecay(2.0, hours[i])
		assert.GreaterOrEqual(t, prev, cur, "temporal decay must be non-increasing")
	}

	kms := []float64{0, 0.5, 1, 2, 5, 20}
	for i := 1; i < len(kms); i++ {
		prev := SpatialDecay(2.0, kms[i-1])
		cur := SpatialDecay(2.0, kms[i])
		assert.GreaterOrEqual(t, prev, cur, "spatial decay must be non-increasing")
	}
}

func TestDecay_NeverAmplifies(t *testing.T) {
	for _, h := range []float64{-10, -1, 0, 0.1, 100} {
		assert.LessOrEqual(t, TemporalDecay(3.0, h), 3.0)
	}
	for _, km := range []float64{-5, 0, 0.01, 50} {
		assert.LessOrEqual(t, SpatialDecay(3.0, km), 3.0)
	}
}

func TestDecay_ApproachesButNeverReachesZero(t *testing.T) {
	v := TemporalDecay(1.0, 1000)
	assert.Greater(t, v, 0.0)
	assert.Less(t, v, 1e-9)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.0, Normalize(-1, 0, 5))
	assert.Equal(t, 0.5, Normalize(2.5, 0, 5))
	assert.Equal(t, 1.0, Normalize(99, 0, 5))
	// Degenerate range must not divide by zero.
	assert.Equal(t, 0.0, Normalize(1, 3, 3))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-4, 0, 100))
	assert.Equal(t, 100.0, Clamp(250, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
}
