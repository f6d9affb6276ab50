package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/trailsentry/tourist-safety-api/internal/classifier"
	"github.com/trailsentry/tourist-safety-api/internal/config"
	"github.com/trailsentry/tourist-safety-api/internal/geo"
	"github.com/trailsentry/tourist-safety-api/internal/models"
	"github.com/trailsentry/tourist-safety-api/internal/webhook"
)

// ErrScoreNotReady is returned when a zone has not been scored by any sweep
// yet.
var ErrScoreNotReady = errors.New("zone score not computed yet")

// ErrZoneNotFound is returned when a zone ID is not registered.
var ErrZoneNotFound = errors.New("zone not found")

// SafetyRepository defines the storage contract the safety service needs.
// The read methods double as the signal feeds consumed by score sweeps.
type SafetyRepository interface {
	ListZones(ctx context.Context) ([]*models.SafetyZone, error)
	ListActiveAlerts(ctx context.Context, since time.Time) ([]*models.Alert, error)
	ListNews(ctx context.Context, since time.Time) ([]*models.NewsItem, error)
	ListResponderPosts(ctx context.Context) ([]*models.ResponderPost, error)
	ListRecentTrackedLocations(ctx context.Context, since time.Time) ([]*models.TrackedLocation, error)

	CreateAlert(ctx context.Context, alert *models.Alert) error
	ListAlerts(ctx context.Context, page, pageSize int) ([]*models.Alert, error)
	SaveTrackedLocation(ctx context.Context, loc *models.TrackedLocation) error
	GetTouristStats(ctx context.Context, minutes int) (int, error)

	GetZonesFromCache(ctx context.Context) ([]*models.SafetyZone, error)
	SetZonesCache(ctx context.Context, zones []*models.SafetyZone) error
}

// ZoneScorer is the slice of the scoring service the safety service uses:
// cache reads and manual sweep triggers. Neither blocks on I/O.
type ZoneScorer interface {
	GetZoneScore(zoneID uuid.UUID) (*models.ComputedSafetyScore, bool)
	IsStale(score *models.ComputedSafetyScore) bool
	TriggerSweep()
}

// SafetyService is the business-logic contract behind the HTTP handlers.
type SafetyService interface {
	CheckLocation(ctx context.Context, userID string, lat, lon float64) (*models.LocationAssessment, error)
	ClassifyPoint(lat, lon float64, hour int, weather string) models.ZoneClassification
	ListZones(ctx context.Context) ([]*models.SafetyZone, error)
	GetZoneScore(ctx context.Context, zoneID uuid.UUID) (*models.ComputedSafetyScore, error)
	IsScoreStale(score *models.ComputedSafetyScore) bool
	CreateAlert(ctx context.Context, alert *models.Alert) error
	ListAlerts(ctx context.Context, page, pageSize int) ([]*models.Alert, error)
	GetStats(ctx context.Context) (int, error)
	TriggerRecompute()
}

type safetyService struct {
	repo       SafetyRepository
	classifier *classifier.Classifier
	scorer     ZoneScorer
	logger     *logrus.Logger
	cfg        *config.Config
	publisher  webhook.Publisher
}

// NewSafetyService wires the safety service.
func NewSafetyService(repo SafetyRepository, cls *classifier.Classifier, scorer ZoneScorer, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) SafetyService {
	return &safetyService{
		repo:       repo,
		classifier: cls,
		scorer:     scorer,
		logger:     logger,
		cfg:        cfg,
		publisher:  publisher,
	}
}

// CheckLocation evaluates a tourist position: classifies the terrain, finds
// the nearest registered zone with its cached score, persists the tracked
// location and raises a webhook event when the tourist entered a dangerous
// area.
func (s *safetyService) CheckLocation(ctx context.Context, userID string, lat, lon float64) (*models.LocationAssessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "CheckLocation",
		"user_id": userID,
	})
	log.Info("Checking tourist location")

	point := models.GeoPoint{Latitude: lat, Longitude: lon}
	classification := s.classifier.Classify(point)

	assessment := &models.LocationAssessment{Classification: classification}

	zones, err := s.zonesWithCache(ctx)
	if err != nil {
		// Classification must still succeed; the nearest-zone enrichment is
		// best effort.
		log.WithError(err).Warn("Failed to load zones for nearest-zone lookup")
	} else if nearest, distKm := nearestZone(point, zones); nearest != nil {
		assessment.NearestZone = nearest
		assessment.NearestZoneKm = distKm
		if score, ok := s.scorer.GetZoneScore(nearest.ID); ok {
			assessment.ZoneScore = score
		}
	}

	dangerous := classification.ZoneType == models.ZoneRestricted || classification.ZoneType == models.ZoneUnsafe

	check := &models.TrackedLocation{
		UserID:      userID,
		Latitude:    lat,
		Longitude:   lon,
		ZoneType:    classification.ZoneType,
		IsDangerous: dangerous,
	}
	if err := s.repo.SaveTrackedLocation(ctx, check); err != nil {
		log.WithError(err).Error("Failed to save tracked location")
		return nil, fmt.Errorf("service: could not save tracked location: %w", err)
	}

	if dangerous {
		event := webhook.Event{
			Type:      webhook.EventDangerZoneEntry,
			Timestamp: time.Now(),
			UserID:    userID,
			Latitude:  lat,
			Longitude: lon,
			ZoneType:  classification.ZoneType,
			Reason:    classification.Reason,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish danger zone event")
		}
	}

	log.WithFields(logrus.Fields{
		"zone_type":    classification.ZoneType,
		"is_dangerous": dangerous,
	}).Info("Location check completed")
	return assessment, nil
}

// ClassifyPoint classifies a coordinate and applies the optional time and
// weather adjustments. Pass hour -1 or an empty weather string to skip an
// adjustment.
func (s *safetyService) ClassifyPoint(lat, lon float64, hour int, weather string) models.ZoneClassification {
	result := s.classifier.Classify(models.GeoPoint{Latitude: lat, Longitude: lon})
	if hour >= 0 && hour <= 23 {
		result.Score = classifier.AdjustForTime(result.Score, hour)
	}
	if weather != "" {
		result.Score = classifier.AdjustForWeather(result.Score, weather)
	}
	return result
}

// ListZones returns the registered zones, read through the Redis cache.
func (s *safetyService) ListZones(ctx context.Context) ([]*models.SafetyZone, error) {
	zones, err := s.zonesWithCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}
	return zones, nil
}

// GetZoneScore returns the cached score for a zone. It validates the zone
// exists so an unknown ID is distinguishable from a not-yet-scored one.
func (s *safetyService) GetZoneScore(ctx context.Context, zoneID uuid.UUID) (*models.ComputedSafetyScore, error) {
	if score, ok := s.scorer.GetZoneScore(zoneID); ok {
		return score, nil
	}

	zones, err := s.zonesWithCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not verify zone: %w", err)
	}
	for _, z := range zones {
		if z.ID == zoneID {
			return nil, ErrScoreNotReady
		}
	}
	return nil, ErrZoneNotFound
}

// IsScoreStale reports whether a score is older than the staleness threshold.
func (s *safetyService) IsScoreStale(score *models.ComputedSafetyScore) bool {
	return s.scorer.IsStale(score)
}

// CreateAlert registers a new incident alert and kicks a sweep so nearby
// zone scores pick it up without waiting for the next scheduled cycle.
func (s *safetyService) CreateAlert(ctx context.Context, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "safety",
		"method":   "CreateAlert",
		"priority": alert.Priority,
	})
	log.Info("Creating alert")

	alert.Status = "active"
	if err := s.repo.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}

	s.scorer.TriggerSweep()

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return nil
}

// ListAlerts returns alerts with pagination.
func (s *safetyService) ListAlerts(ctx context.Context, page, pageSize int) ([]*models.Alert, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	alerts, err := s.repo.ListAlerts(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// GetStats returns the number of distinct tourists seen within the
// configured time window.
func (s *safetyService) GetStats(ctx context.Context) (int, error) {
	count, err := s.repo.GetTouristStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		return 0, fmt.Errorf("service: could not get tourist stats: %w", err)
	}
	return count, nil
}

// TriggerRecompute requests an out-of-schedule score sweep.
func (s *safetyService) TriggerRecompute() {
	s.scorer.TriggerSweep()
}

// zonesWithCache reads zones through the Redis cache: cache errors degrade to
// a direct storage read, and cache write failures are logged only.
func (s *safetyService) zonesWithCache(ctx context.Context) ([]*models.SafetyZone, error) {
	zones, err := s.repo.GetZonesFromCache(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Zone cache read failed; falling back to storage")
	} else if zones != nil {
		return zones, nil
	}

	zones, err = s.repo.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetZonesCache(ctx, zones); err != nil {
		s.logger.WithError(err).Warn("Failed to populate zone cache")
	}
	return zones, nil
}

// nearestZone returns the zone whose anchor is closest to p, with the
// distance in kilometers. Returns nil for an empty zone set.
func nearestZone(p models.GeoPoint, zones []*models.SafetyZone) (*models.SafetyZone, float64) {
	var best *models.SafetyZone
	bestKm := 0.0
	for _, z := range zones {
		d := geo.Haversine(p, z.Anchor())
		if best == nil || d < bestKm {
			best = z
			bestKm = d
		}
	}
	return best, bestKm
}
