package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/trailsentry/tourist-safety-api/internal/models"
)

const (
	webhookQueueKey = "webhook_events"

	// Event types delivered to subscribers.
	EventDangerZoneEntry   = "danger_zone_entry"
	EventZoneStatusChanged = "zone_status_changed"
)

// Event is the payload pushed to webhook subscribers. Danger-entry events
// carry the tourist fields; zone-status events carry the zone fields.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`

	UserID    string          `json:"user_id,omitempty"`
	Latitude  float64         `json:"latitude,omitempty"`
	Longitude float64         `json:"longitude,omitempty"`
	ZoneType  models.ZoneType `json:"zone_type,omitempty"`
	Reason    string          `json:"reason,omitempty"`

	ZoneID           uuid.UUID            `json:"zone_id,omitempty"`
	ZoneName         string               `json:"zone_name,omitempty"`
	PreviousCategory models.ScoreCategory `json:"previous_category,omitempty"`
	CurrentCategory  models.ScoreCategory `json:"current_category,omitempty"`
	Score            float64              `json:"score,omitempty"`
}

// Publisher enqueues webhook events for asynchronous delivery.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher implements Publisher on top of a Redis list queue.
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher creates a RedisPublisher.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes an event onto the delivery queue.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
