package scoring

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/trailsentry/tourist-safety-api/internal/config"
	"github.com/trailsentry/tourist-safety-api/internal/models"
)

// SignalSource provides the batched feed reads a sweep needs. Implemented by
// the postgres repository.
type SignalSource interface {
	ListZones(ctx context.Context) ([]*models.SafetyZone, error)
	ListActiveAlerts(ctx context.Context, since time.Time) ([]*models.Alert, error)
	ListNews(ctx context.Context, since time.Time) ([]*models.NewsItem, error)
	ListResponderPosts(ctx context.Context) ([]*models.ResponderPost, error)
	ListRecentTrackedLocations(ctx context.Context, since time.Time) ([]*models.TrackedLocation, error)
}

// ChangeListener is notified when a sweep moves a zone into a different risk
// category. Notifications run on the sweep goroutine and must not block.
type ChangeListener interface {
	ZoneCategoryChanged(ctx context.Context, zone *models.SafetyZone, previous, current *models.ComputedSafetyScore)
}

type snapshot struct {
	scores  map[uuid.UUID]*models.ComputedSafetyScore
	takenAt time.Time
}

// Service owns the score cache and the sweep scheduler. The cache is written
// only by sweeps and read by arbitrary concurrent callers; each sweep swaps
// in a complete new snapshot, so readers see either the previous sweep's
// state or the new one, never a mix.
type Service struct {
	source   SignalSource
	logger   *logrus.Logger
	cfg      *config.Config
	listener ChangeListener

	snapshot atomic.Pointer[snapshot]
	sweepMu  sync.Mutex
	trigger  chan struct{}
}

// NewService builds the scoring service. listener may be nil.
func NewService(source SignalSource, logger *logrus.Logger, cfg *config.Config, listener ChangeListener) *Service {
	s := &Service{
		source:   source,
		logger:   logger,
		cfg:      cfg,
		listener: listener,
		trigger:  make(chan struct{}, 1),
	}
	s.snapshot.Store(&snapshot{scores: map[uuid.UUID]*models.ComputedSafetyScore{}})
	return s
}

// Start launches the periodic sweep scheduler. It runs until ctx is
// cancelled; an in-flight sweep finishes before the goroutine exits, and the
// cache is left at its last completed state.
func (s *Service) Start(ctx context.Context) {
	s.logger.WithField("interval", s.cfg.SweepInterval.String()).Info("Starting score sweep scheduler")
	go func() {
		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping score sweep scheduler")
				return
			case <-ticker.C:
			case <-s.trigger:
			}
			if err := s.RecomputeAll(ctx); err != nil {
				s.logger.WithError(err).Error("Score sweep failed; cache retains last known state")
			}
		}
	}()
}

// TriggerSweep requests an out-of-schedule sweep. Requests arriving while one
// is already pending are coalesced; the call never blocks.
func (s *Service) TriggerSweep() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// RecomputeAll performs one full sweep: it reads every signal feed once,
// scores all registered zones against that shared dataset, then atomically
// replaces the cache snapshot. Concurrent calls are serialized. A feed read
// failure aborts the sweep and leaves the cache untouched; the periodic
// schedule is the retry mechanism.
func (s *Service) RecomputeAll(ctx context.Context) error {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "scoring",
		"method":  "RecomputeAll",
	})

	now := time.Now()

	zones, err := s.source.ListZones(ctx)
	if err != nil {
		return fmt.Errorf("scoring: could not list zones: %w", err)
	}
	alerts, err := s.source.ListActiveAlerts(ctx, now.Add(-IncidentLookback))
	if err != nil {
		return fmt.Errorf("scoring: could not list alerts: %w", err)
	}
	news, err := s.source.ListNews(ctx, now.Add(-NewsLookback))
	if err != nil {
		return fmt.Errorf("scoring: could not list news: %w", err)
	}
	posts, err := s.source.ListResponderPosts(ctx)
	if err != nil {
		return fmt.Errorf("scoring: could not list responder posts: %w", err)
	}
	tracked, err := s.source.ListRecentTrackedLocations(ctx, now.Add(-DensityLookback))
	if err != nil {
		return fmt.Errorf("scoring: could not list tracked locations: %w", err)
	}

	signals := SignalSet{
		Alerts:           alerts,
		News:             news,
		ResponderPosts:   posts,
		TrackedLocations: tracked,
	}

	prev := s.snapshot.Load()
	next := make(map[uuid.UUID]*models.ComputedSafetyScore, len(zones))

	for _, zone := range zones {
		if math.IsNaN(zone.Latitude) || math.IsNaN(zone.Longitude) {
			log.WithField("zone_id", zone.ID).Warn("Zone has invalid coordinates; keeping previous score")
			if old, ok := prev.scores[zone.ID]; ok {
				next[zone.ID] = old
			}
			continue
		}

		score := ComputeScore(zone.Anchor(), zone.ZoneType, now, signals)
		score.ZoneID = zone.ID
		next[zone.ID] = &score

		if s.listener != nil {
			if old, ok := prev.scores[zone.ID]; ok && old.Category != score.Category {
				s.listener.ZoneCategoryChanged(ctx, zone, old, &score)
			}
		}
	}

	s.snapshot.Store(&snapshot{scores: next, takenAt: now})
	log.WithFields(logrus.Fields{
		"zones":    len(zones),
		"alerts":   len(alerts),
		"news":     len(news),
		"duration": time.Since(now).String(),
	}).Info("Score sweep completed")
	return nil
}

// GetZoneScore returns the cached score for a zone, or false when no sweep
// has scored it yet. It never blocks on I/O; stale entries are still
// returned as the last good value.
func (s *Service) GetZoneScore(zoneID uuid.UUID) (*models.ComputedSafetyScore, bool) {
	score, ok := s.snapshot.Load().scores[zoneID]
	return score, ok
}

// IsStale reports whether a cached score is older than the configured
// staleness threshold.
func (s *Service) IsStale(score *models.ComputedSafetyScore) bool {
	return time.Since(score.LastUpdated) > s.cfg.ScoreStaleness
}
