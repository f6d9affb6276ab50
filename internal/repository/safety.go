package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/trailsentry/tourist-safety-api/internal/models"
	"github.com/trailsentry/tourist-safety-api/internal/service"
)

const (
	zonesCacheKey = "safety_zones:all"
	zonesCacheTTL = 5 * time.Minute
)

// SafetyRepository implements storage access over PostgreSQL/PostGIS with a
// Redis cache for the zone list.
type SafetyRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

// NewSafetyRepository creates the repository.
func NewSafetyRepository(db *pgxpool.Pool, redisClient *redis.Client) service.SafetyRepository {
	return &SafetyRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ListZones returns all registered safety zones.
func (r *SafetyRepository) ListZones(ctx context.Context) ([]*models.SafetyZone, error) {
	query := `
		SELECT
			id,
			name,
			state,
			zone_type,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			risk_level,
			created_at,
			updated_at
		FROM safety_zones
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.SafetyZone, 0)
	for rows.Next() {
		zone := &models.SafetyZone{}
		err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.State,
			&zone.ZoneType,
			&zone.Latitude,
			&zone.Longitude,
			&zone.RiskLevel,
			&zone.CreatedAt,
			&zone.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zones: %w", err)
	}
	return zones, nil
}

// ListActiveAlerts returns active alerts created at or after since.
func (r *SafetyRepository) ListActiveAlerts(ctx context.Context, since time.Time) ([]*models.Alert, error) {
	query := `
		SELECT
			id,
			title,
			description,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			priority,
			status,
			created_at
		FROM alerts
		WHERE status = 'active' AND created_at >= $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

// ListAlerts returns alerts with pagination, newest first.
func (r *SafetyRepository) ListAlerts(ctx context.Context, page, pageSize int) ([]*models.Alert, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			title,
			description,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			priority,
			status,
			created_at
		FROM alerts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

func scanAlerts(rows pgx.Rows) ([]*models.Alert, error) {
	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.Title,
			&alert.Description,
			&alert.Latitude,
			&alert.Longitude,
			&alert.Priority,
			&alert.Status,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alerts: %w", err)
	}
	return alerts, nil
}

// CreateAlert inserts a new alert.
func (r *SafetyRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (title, description, location, priority, status)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.Title,
		alert.Description,
		alert.Longitude,
		alert.Latitude,
		alert.Priority,
		alert.Status,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// ListNews returns news items published at or after since.
func (r *SafetyRepository) ListNews(ctx context.Context, since time.Time) ([]*models.NewsItem, error) {
	query := `
		SELECT id, title, category, published_at
		FROM news_items
		WHERE published_at >= $1
		ORDER BY published_at DESC;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer rows.Close()

	items := make([]*models.NewsItem, 0)
	for rows.Next() {
		item := &models.NewsItem{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Category, &item.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news: %w", err)
	}
	return items, nil
}

// ListResponderPosts returns all registered responder posts.
func (r *SafetyRepository) ListResponderPosts(ctx context.Context) ([]*models.ResponderPost, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude
		FROM responder_posts;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list responder posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*models.ResponderPost, 0)
	for rows.Next() {
		post := &models.ResponderPost{}
		if err := rows.Scan(&post.ID, &post.Name, &post.Latitude, &post.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan responder post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating responder posts: %w", err)
	}
	return posts, nil
}

// ListRecentTrackedLocations returns tracked locations recorded at or after
// since.
func (r *SafetyRepository) ListRecentTrackedLocations(ctx context.Context, since time.Time) ([]*models.TrackedLocation, error) {
	query := `
		SELECT
			id,
			user_id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			zone_type,
			is_dangerous,
			checked_at
		FROM tracked_locations
		WHERE checked_at >= $1;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent tracked locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.TrackedLocation, 0)
	for rows.Next() {
		loc := &models.TrackedLocation{}
		err := rows.Scan(
			&loc.ID,
			&loc.UserID,
			&loc.Latitude,
			&loc.Longitude,
			&loc.ZoneType,
			&loc.IsDangerous,
			&loc.CheckedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tracked location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracked locations: %w", err)
	}
	return locations, nil
}

// SaveTrackedLocation persists one tourist position record.
func (r *SafetyRepository) SaveTrackedLocation(ctx context.Context, loc *models.TrackedLocation) error {
	query := `
		INSERT INTO tracked_locations (user_id, location, zone_type, is_dangerous)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5) RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		loc.UserID,
		loc.Longitude,
		loc.Latitude,
		loc.ZoneType,
		loc.IsDangerous,
	).Scan(&loc.ID, &loc.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save tracked location: %w", err)
	}
	return nil
}

// GetTouristStats returns the number of distinct tourists who reported a
// position within the last minutes.
func (r *SafetyRepository) GetTouristStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM tracked_locations
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get tourist stats: %w", err)
	}
	return count, nil
}

// GetZonesFromCache tries to read the zone list from Redis. A cache miss
// returns nil, nil.
func (r *SafetyRepository) GetZonesFromCache(ctx context.Context) ([]*models.SafetyZone, error) {
	val, err := r.redisClient.Get(ctx, zonesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zones from cache: %w", err)
	}

	zones := make([]*models.SafetyZone, 0)
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal zones from cache: %w", err)
	}
	return zones, nil
}

// SetZonesCache stores the zone list in Redis.
func (r *SafetyRepository) SetZonesCache(ctx context.Context, zones []*models.SafetyZone) error {
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal zones for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, zonesCacheKey, val, zonesCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set zones in cache: %w", err)
	}
	return nil
}
