// Package classifier maps raw coordinates to a categorical zone type using
// nearest-feature checks against curated geographic datasets.
package classifier

import (
	"fmt"

	"github.com/trailsentry/tourist-safety-api/internal/geo"
	"github.com/trailsentry/tourist-safety-api/internal/models"
)

// Distance thresholds in kilometers for each rule.
const (
	restrictedRadiusKm = 10.0
	forestRadiusKm     = 5.0
	cityRadiusKm       = 20.0
	moderateRadiusKm   = 50.0
)

// Base scores per classification outcome.
const (
	scoreOutsideJurisdiction = 0
	scoreRestricted          = 20
	scoreUnsafe              = 40
	scoreForest              = 60
	scoreModerate            = 70
	scoreSafeCity            = 90
)

const reasonOutsideJurisdiction = "outside jurisdiction"

// Classifier decides a zone type for a coordinate. It is pure and safe for
// concurrent use; the dataset is fixed at construction.
type Classifier struct {
	dataset Dataset
}

// New builds a classifier over the given dataset.
func New(dataset Dataset) *Classifier {
	return &Classifier{dataset: dataset}
}

// Default builds a classifier over the built-in Northeast India dataset.
func Default() *Classifier {
	return New(DefaultDataset())
}

// Classify evaluates the rules in strict priority order: jurisdiction bounds,
// restricted border areas, forest reserves, city proximity, moderate
// fallback, unsafe default. A point matching several rules always resolves to
// the earliest one; border safety overrides amenity proximity. It never
// fails: NaN or out-of-range coordinates fall out of the bounds check and
// classify as restricted with score 0.
func (c *Classifier) Classify(p models.GeoPoint) models.ZoneClassification {
	if !c.dataset.Bounds.Contains(p) {
		return models.ZoneClassification{
			ZoneType: models.ZoneRestricted,
			Score:    scoreOutsideJurisdiction,
			Reason:   reasonOutsideJurisdiction,
		}
	}

	for _, area := range c.dataset.RestrictedAreas {
		if geo.Haversine(p, area.Anchor) < restrictedRadiusKm {
			return models.ZoneClassification{
				ZoneType: models.ZoneRestricted,
				Score:    scoreRestricted,
				Reason:   area.Description,
			}
		}
	}

	for _, forest := range c.dataset.Forests {
		if geo.Haversine(p, forest.Anchor) < forestRadiusKm {
			return models.ZoneClassification{
				ZoneType: models.ZoneForest,
				Score:    scoreForest,
				Reason:   fmt.Sprintf("near %s - %s", forest.Name, forest.Description),
			}
		}
	}

	nearestCityKm := -1.0
	for _, city := range c.dataset.Cities {
		d := geo.Haversine(p, city.Anchor)
		if d < cityRadiusKm {
			return models.ZoneClassification{
				ZoneType: models.ZoneSafe,
				Score:    scoreSafeCity,
				Reason:   fmt.Sprintf("near %s, %s - tourist-friendly area", city.Name, city.State),
			}
		}
		if nearestCityKm < 0 || d < nearestCityKm {
			nearestCityKm = d
		}
	}

	if nearestCityKm >= 0 && nearestCityKm < moderateRadiusKm {
		return models.ZoneClassification{
			ZoneType: models.ZoneModerate,
			Score:    scoreModerate,
			Reason:   "rural area with moderate infrastructure",
		}
	}

	return models.ZoneClassification{
		ZoneType: models.ZoneUnsafe,
		Score:    scoreUnsafe,
		Reason:   "remote area with limited infrastructure and connectivity",
	}
}
