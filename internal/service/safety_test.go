package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trailsentry/tourist-safety-api/internal/classifier"
	"github.com/trailsentry/tourist-safety-api/internal/config"
	"github.com/trailsentry/tourist-safety-api/internal/models"
	"github.com/trailsentry/tourist-safety-api/internal/service/mocks"
	"github.com/trailsentry/tourist-safety-api/internal/webhook"
	webhook_mocks "github.com/trailsentry/tourist-safety-api/internal/webhook/mocks"
)

func newTestSafetyService(t *testing.T) (*safetyService, *mocks.MockSafetyRepository, *mocks.MockZoneScorer, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSafetyRepository(ctrl)
	scorerMock := mocks.NewMockZoneScorer(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
	}

	service := NewSafetyService(repoMock, classifier.Default(), scorerMock, logger, cfg, publisherMock)
	return service.(*safetyService), repoMock, scorerMock, publisherMock
}

func TestCheckLocation_Dangerous(t *testing.T) {
	service, repoMock, scorerMock, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	userID := "tourist-42"
	// Inside the Upper Siang restricted buffer.
	lat, lon := 28.5, 94.0

	zone := &models.SafetyZone{
		ID:       uuid.New(),
		Name:     "Upper Siang",
		ZoneType: models.ZoneRestricted,
		Latitude: 28.55, Longitude: 94.0,
	}
	zoneScore := &models.ComputedSafetyScore{
		ZoneID:   zone.ID,
		Score:    72.0,
		Category: models.CategoryUnsafe,
	}

	repoMock.EXPECT().
		GetZonesFromCache(ctx).
		Return([]*models.SafetyZone{zone}, nil).
		Times(1)

	scorerMock.EXPECT().
		GetZoneScore(zone.ID).
		Return(zoneScore, true).
		Times(1)

	repoMock.EXPECT().
		SaveTrackedLocation(ctx, gomock.Any()).
		Do(func(_ context.Context, loc *models.TrackedLocation) {
			assert.True(t, loc.IsDangerous)
			assert.Equal(t, userID, loc.UserID)
			assert.Equal(t, models.ZoneRestricted, loc.ZoneType)
		}).Return(nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.Event) {
			assert.Equal(t, webhook.EventDangerZoneEntry, event.Type)
			assert.Equal(t, userID, event.UserID)
			assert.Equal(t, models.ZoneRestricted, event.ZoneType)
		}).Return(nil).Times(1)

	assessment, err := service.CheckLocation(ctx, userID, lat, lon)

	require.NoError(t, err)
	assert.Equal(t, models.ZoneRestricted, assessment.Classification.ZoneType)
	require.NotNil(t, assessment.NearestZone)
	assert.Equal(t, zone.ID, assessment.NearestZone.ID)
	assert.Equal(t, zoneScore, assessment.ZoneScore)
	assert.Less(t, assessment.NearestZoneKm, 10.0)
}

func TestCheckLocation_Safe_NoWebhook(t *testing.T) {
	service, repoMock, _, publisherMock := newTestSafetyService(t)
	ctx := context.Background()
	userID := "tourist-7"
	// Central Guwahati.
	lat, lon := 26.1445, 91.7362

	// Cache miss, then an empty zone registry.
	repoMock.EXPECT().GetZonesFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListZones(ctx).Return([]*models.SafetyZone{}, nil).Times(1)
	repoMock.EXPECT().SetZonesCache(ctx, gomock.Any()).Return(nil).Times(1)

	repoMock.EXPECT().
		SaveTrackedLocation(ctx, gomock.Any()).
		Do(func(_ context.Context, loc *models.TrackedLocation) {
			assert.False(t, loc.IsDangerous)
		}).Return(nil).Times(1)

	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	assessment, err := service.CheckLocation(ctx, userID, lat, lon)

	require.NoError(t, err)
	assert.Equal(t, models.ZoneSafe, assessment.Classification.ZoneType)
	assert.Nil(t, assessment.NearestZone)
}

func TestCheckLocation_ZoneLookupFailureIsBestEffort(t *testing.T) {
	service, repoMock, _, publisherMock := newTestSafetyService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(nil, fmt.Errorf("redis down")).Times(1)
	repoMock.EXPECT().ListZones(ctx).Return(nil, fmt.Errorf("db down")).Times(1)

	repoMock.EXPECT().SaveTrackedLocation(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	assessment, err := service.CheckLocation(ctx, "tourist-9", 26.1445, 91.7362)

	require.NoError(t, err)
	assert.Equal(t, models.ZoneSafe, assessment.Classification.ZoneType)
	assert.Nil(t, assessment.NearestZone)
}

func TestCheckLocation_SaveFailure(t *testing.T) {
	service, repoMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetZonesFromCache(ctx).Return([]*models.SafetyZone{}, nil).Times(1)
	repoMock.EXPECT().ListZones(ctx).Return([]*models.SafetyZone{}, nil).Times(1)
	repoMock.EXPECT().SetZonesCache(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().SaveTrackedLocation(ctx, gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)

	assessment, err := service.CheckLocation(ctx, "tourist-1", 26.1445, 91.7362)

	require.Error(t, err)
	assert.Nil(t, assessment)
	assert.ErrorContains(t, err, "could not save tracked location")
}

func TestClassifyPoint_Adjustments(t *testing.T) {
	service, _, _, _ := newTestSafetyService(t)

	base := service.ClassifyPoint(26.1445, 91.7362, -1, "")
	assert.Equal(t, models.ZoneSafe, base.ZoneType)
	assert.Equal(t, 90, base.Score)

	night := service.ClassifyPoint(26.1445, 91.7362, 23, "")
	assert.Equal(t, 70, night.Score)

	storm := service.ClassifyPoint(26.1445, 91.7362, -1, "heavy rain")
	assert.Equal(t, 60, storm.Score)

	both := service.ClassifyPoint(26.1445, 91.7362, 23, "heavy rain")
	assert.Equal(t, 40, both.Score)
}

func TestGetZoneScore_FromCache(t *testing.T) {
	service, _, scorerMock, _ := newTestSafetyService(t)
	ctx := context.Background()
	zoneID := uuid.New()
	expected := &models.ComputedSafetyScore{ZoneID: zoneID, Score: 35}

	scorerMock.EXPECT().GetZoneScore(zoneID).Return(expected, true).Times(1)

	score, err := service.GetZoneScore(ctx, zoneID)

	require.NoError(t, err)
	assert.Equal(t, expected, score)
}

func TestGetZoneScore_NotReady(t *testing.T) {
	service, repoMock, scorerMock, _ := newTestSafetyService(t)
	ctx := context.Background()
	zoneID := uuid.New()

	scorerMock.EXPECT().GetZoneScore(zoneID).Return(nil, false).Times(1)
	repoMock.EXPECT().
		GetZonesFromCache(ctx).
		Return([]*models.SafetyZone{{ID: zoneID}}, nil).
		Times(1)

	score, err := service.GetZoneScore(ctx, zoneID)

	require.ErrorIs(t, err, ErrScoreNotReady)
	assert.Nil(t, score)
}

func TestGetZoneScore_NotFound(t *testing.T) {
	service, repoMock, scorerMock, _ := newTestSafetyService(t)
	ctx := context.Background()
	zoneID := uuid.New()

	scorerMock.EXPECT().GetZoneScore(zoneID).Return(nil, false).Times(1)
	repoMock.EXPECT().
		GetZonesFromCache(ctx).
		Return([]*models.SafetyZone{{ID: uuid.New()}}, nil).
		Times(1)

	score, err := service.GetZoneScore(ctx, zoneID)

	require.ErrorIs(t, err, ErrZoneNotFound)
	assert.Nil(t, score)
}

func TestCreateAlert_SetsStatusAndTriggersSweep(t *testing.T) {
	service, repoMock, scorerMock, _ := newTestSafetyService(t)
	ctx := context.Background()
	alert := &models.Alert{
		Title:    "Flash flood",
		Latitude: 26.2, Longitude: 92.9,
		Priority: models.PriorityHigh,
	}

	repoMock.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		}).Times(1)

	scorerMock.EXPECT().TriggerSweep().Times(1)

	err := service.CreateAlert(ctx, alert)

	require.NoError(t, err)
	assert.Equal(t, "active", alert.Status)
	assert.NotEqual(t, uuid.Nil, alert.ID)
}

func TestCreateAlert_RepositoryError(t *testing.T) {
	service, repoMock, scorerMock, _ := newTestSafetyService(t)
	ctx := context.Background()

	repoMock.EXPECT().CreateAlert(ctx, gomock.Any()).Return(fmt.Errorf("constraint violation")).Times(1)
	scorerMock.EXPECT().TriggerSweep().Times(0)

	err := service.CreateAlert(ctx, &models.Alert{Title: "x"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create alert")
}

func TestListAlerts_ClampsPagination(t *testing.T) {
	service, repoMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()
	expected := []*models.Alert{{ID: uuid.New(), Title: "Alert 1"}}

	repoMock.EXPECT().ListAlerts(ctx, 1, 20).Return(expected, nil).Times(1)

	alerts, err := service.ListAlerts(ctx, -3, 500)

	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestListZones_CacheHit(t *testing.T) {
	service, repoMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()
	expected := []*models.SafetyZone{{ID: uuid.New(), Name: "Kaziranga"}}

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(expected, nil).Times(1)

	zones, err := service.ListZones(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, zones)
}

func TestListZones_CacheMissPopulatesCache(t *testing.T) {
	service, repoMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()
	expected := []*models.SafetyZone{{ID: uuid.New(), Name: "Kaziranga"}}

	repoMock.EXPECT().GetZonesFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListZones(ctx).Return(expected, nil).Times(1)
	repoMock.EXPECT().SetZonesCache(ctx, expected).Return(nil).Times(1)

	zones, err := service.ListZones(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, zones)
}

func TestGetStats_Success(t *testing.T) {
	service, repoMock, _, _ := newTestSafetyService(t)
	ctx := context.Background()
	expectedCount := 42

	repoMock.EXPECT().GetTouristStats(ctx, service.cfg.StatsTimeWindowMinutes).Return(expectedCount, nil).Times(1)

	count, err := service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, expectedCount, count)
}

func TestNearestZone(t *testing.T) {
	guwahati := &models.SafetyZone{ID: uuid.New(), Latitude: 26.1445, Longitude: 91.7362}
	shillong := &models.SafetyZone{ID: uuid.New(), Latitude: 25.5788, Longitude: 91.8933}

	nearest, km := nearestZone(models.GeoPoint{Latitude: 26.1, Longitude: 91.7}, []*models.SafetyZone{guwahati, shillong})

	require.NotNil(t, nearest)
	assert.Equal(t, guwahati.ID, nearest.ID)
	assert.Less(t, km, 10.0)

	nearest, _ = nearestZone(models.GeoPoint{}, nil)
	assert.Nil(t, nearest)
}

func TestTriggerRecompute_Delegates(t *testing.T) {
	service, _, scorerMock, _ := newTestSafetyService(t)

	scorerMock.EXPECT().TriggerSweep().Times(1)

	service.TriggerRecompute()
}
