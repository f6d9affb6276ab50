package webhook

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trailsentry/tourist-safety-api/internal/models"
)

// ZoneStatusNotifier turns zone category changes detected during score sweeps
// into webhook events. It satisfies the scoring service's change listener
// contract.
type ZoneStatusNotifier struct {
	publisher Publisher
	logger    *logrus.Logger
}

// NewZoneStatusNotifier creates a notifier over the given publisher.
func NewZoneStatusNotifier(publisher Publisher, logger *logrus.Logger) *ZoneStatusNotifier {
	return &ZoneStatusNotifier{
		publisher: publisher,
		logger:    logger,
	}
}

// ZoneCategoryChanged enqueues a zone-status event. Publish failures are
// logged and dropped; a sweep must never fail because of notification
// plumbing.
func (n *ZoneStatusNotifier) ZoneCategoryChanged(ctx context.Context, zone *models.SafetyZone, previous, current *models.ComputedSafetyScore) {
	event := Event{
		Type:             EventZoneStatusChanged,
		Timestamp:        time.Now(),
		ZoneID:           zone.ID,
		ZoneName:         zone.Name,
		PreviousCategory: previous.Category,
		CurrentCategory:  current.Category,
		Score:            current.Score,
	}

	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.WithError(err).WithField("zone_id", zone.ID).Error("Failed to publish zone status change event")
	}
}
