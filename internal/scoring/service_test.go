package scoring

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trailsentry/tourist-safety-api/internal/config"
	"github.com/trailsentry/tourist-safety-api/internal/models"
	"github.com/trailsentry/tourist-safety-api/internal/scoring/mocks"
)

func newTestScoringService(t *testing.T) (*Service, *mocks.MockSignalSource, *mocks.MockChangeListener) {
	ctrl := gomock.NewController(t)
	sourceMock := mocks.NewMockSignalSource(ctrl)
	listenerMock := mocks.NewMockChangeListener(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		SweepInterval:  time.Minute,
		ScoreStaleness: 5 * time.Minute,
	}

	return NewService(sourceMock, logger, cfg, listenerMock), sourceMock, listenerMock
}

func expectEmptyFeeds(sourceMock *mocks.MockSignalSource, zones []*models.SafetyZone) {
	sourceMock.EXPECT().ListZones(gomock.Any()).Return(zones, nil).Times(1)
	sourceMock.EXPECT().ListActiveAlerts(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	sourceMock.EXPECT().ListNews(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	sourceMock.EXPECT().ListResponderPosts(gomock.Any()).Return(nil, nil).Times(1)
	sourceMock.EXPECT().ListRecentTrackedLocations(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
}

func TestGetZoneScore_EmptyBeforeFirstSweep(t *testing.T) {
	service, _, _ := newTestScoringService(t)

	score, ok := service.GetZoneScore(uuid.New())

	assert.False(t, ok)
	assert.Nil(t, score)
}

func TestRecomputeAll_PopulatesCache(t *testing.T) {
	service, sourceMock, _ := newTestScoringService(t)
	ctx := context.Background()
	zone := &models.SafetyZone{
		ID:       uuid.New(),
		Name:     "Guwahati",
		ZoneType: models.ZoneSafe,
		Latitude: 26.1445, Longitude: 91.7362,
	}

	expectEmptyFeeds(sourceMock, []*models.SafetyZone{zone})

	err := service.RecomputeAll(ctx)
	require.NoError(t, err)

	score, ok := service.GetZoneScore(zone.ID)
	require.True(t, ok)
	assert.Equal(t, zone.ID, score.ZoneID)
	assert.Equal(t, models.CategorySafe, score.Category)
	assert.False(t, service.IsStale(score))
}

func TestRecomputeAll_FeedErrorLeavesCacheUntouched(t *testing.T) {
	service, sourceMock, _ := newTestScoringService(t)
	ctx := context.Background()
	zone := &models.SafetyZone{
		ID:       uuid.New(),
		ZoneType: models.ZoneSafe,
		Latitude: 26.1445, Longitude: 91.7362,
	}

	expectEmptyFeeds(sourceMock, []*models.SafetyZone{zone})
	require.NoError(t, service.RecomputeAll(ctx))
	firstScore, ok := service.GetZoneScore(zone.ID)
	require.True(t, ok)

	sourceMock.EXPECT().ListZones(gomock.Any()).Return([]*models.SafetyZone{zone}, nil).Times(1)
	sourceMock.EXPECT().ListActiveAlerts(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("connection refused")).Times(1)

	err := service.RecomputeAll(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not list alerts")

	// The failed sweep must not have replaced the snapshot.
	score, ok := service.GetZoneScore(zone.ID)
	require.True(t, ok)
	assert.Equal(t, firstScore, score)
}

func TestRecomputeAll_InvalidCoordinatesKeepPreviousScore(t *testing.T) {
	service, sourceMock, _ := newTestScoringService(t)
	ctx := context.Background()
	zone := &models.SafetyZone{
		ID:       uuid.New(),
		ZoneType: models.ZoneSafe,
		Latitude: 26.1445, Longitude: 91.7362,
	}

	expectEmptyFeeds(sourceMock, []*models.SafetyZone{zone})
	require.NoError(t, service.RecomputeAll(ctx))
	firstScore, ok := service.GetZoneScore(zone.ID)
	require.True(t, ok)

	// A corrupted ingestion run turned the coordinates into NaN.
	corrupted := &models.SafetyZone{
		ID:       zone.ID,
		ZoneType: zone.ZoneType,
		Latitude: math.NaN(), Longitude: math.NaN(),
	}
	expectEmptyFeeds(sourceMock, []*models.SafetyZone{corrupted})

	require.NoError(t, service.RecomputeAll(ctx))

	score, ok := service.GetZoneScore(zone.ID)
	require.True(t, ok)
	assert.Equal(t, firstScore, score)
}

func TestRecomputeAll_NotifiesOnCategoryChange(t *testing.T) {
	service, sourceMock, listenerMock := newTestScoringService(t)
	ctx := context.Background()
	zone := &models.SafetyZone{
		ID:       uuid.New(),
		Name:     "Guwahati",
		ZoneType: models.ZoneSafe,
		Latitude: 26.1445, Longitude: 91.7362,
	}

	// First sweep: no signals, the safe zone lands in the safe category.
	expectEmptyFeeds(sourceMock, []*models.SafetyZone{zone})
	require.NoError(t, service.RecomputeAll(ctx))

	// Second sweep: a burst of critical alerts on top of the zone pushes the
	// score past the safe threshold.
	alerts := make([]*models.Alert, 5)
	for i := range alerts {
		alerts[i] = &models.Alert{
			Latitude:  zone.Latitude,
			Longitude: zone.Longitude,
			Priority:  models.PriorityCritical,
			CreatedAt: time.Now(),
		}
	}
	sourceMock.EXPECT().ListZones(gomock.Any()).Return([]*models.SafetyZone{zone}, nil).Times(1)
	sourceMock.EXPECT().ListActiveAlerts(gomock.Any(), gomock.Any()).Return(alerts, nil).Times(1)
	sourceMock.EXPECT().ListNews(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	sourceMock.EXPECT().ListResponderPosts(gomock.Any()).Return(nil, nil).Times(1)
	sourceMock.EXPECT().ListRecentTrackedLocations(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	listenerMock.EXPECT().
		ZoneCategoryChanged(gomock.Any(), zone, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ *models.SafetyZone, previous, current *models.ComputedSafetyScore) {
			assert.Equal(t, models.CategorySafe, previous.Category)
			assert.Equal(t, models.CategoryModerate, current.Category)
		}).Times(1)

	require.NoError(t, service.RecomputeAll(ctx))
}

func TestRecomputeAll_NoNotificationWhenCategoryStable(t *testing.T) {
	service, sourceMock, listenerMock := newTestScoringService(t)
	ctx := context.Background()
	zone := &models.SafetyZone{
		ID:       uuid.New(),
		ZoneType: models.ZoneSafe,
		Latitude: 26.1445, Longitude: 91.7362,
	}

	expectEmptyFeeds(sourceMock, []*models.SafetyZone{zone})
	require.NoError(t, service.RecomputeAll(ctx))

	expectEmptyFeeds(sourceMock, []*models.SafetyZone{zone})
	listenerMock.EXPECT().ZoneCategoryChanged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, service.RecomputeAll(ctx))
}

func TestRecomputeAll_DropsUnregisteredZones(t *testing.T) {
	service, sourceMock, _ := newTestScoringService(t)
	ctx := context.Background()
	zone := &models.SafetyZone{
		ID:       uuid.New(),
		ZoneType: models.ZoneSafe,
		Latitude: 26.1445, Longitude: 91.7362,
	}

	expectEmptyFeeds(sourceMock, []*models.SafetyZone{zone})
	require.NoError(t, service.RecomputeAll(ctx))

	// The zone disappears from storage; the next sweep drops its entry.
	expectEmptyFeeds(sourceMock, nil)
	require.NoError(t, service.RecomputeAll(ctx))

	_, ok := service.GetZoneScore(zone.ID)
	assert.False(t, ok)
}

func TestTriggerSweep_NeverBlocks(t *testing.T) {
	service, _, _ := newTestScoringService(t)

	// The scheduler is not running, so nothing drains the channel; repeated
	// triggers must coalesce instead of blocking.
	for i := 0; i < 10; i++ {
		service.TriggerSweep()
	}
}

func TestIsStale(t *testing.T) {
	service, _, _ := newTestScoringService(t)

	fresh := &models.ComputedSafetyScore{LastUpdated: time.Now()}
	old := &models.ComputedSafetyScore{LastUpdated: time.Now().Add(-10 * time.Minute)}

	assert.False(t, service.IsStale(fresh))
	assert.True(t, service.IsStale(old))
}
