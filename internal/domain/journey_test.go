package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garmio/seedgen/internal/domain"
)

func TestFunnelStageFor(t *testing.T) {
	tests := []struct {
		eventType string
		stage     int
	}{
		{domain.EventPostView, 1},
		{domain.EventPostLike, 2},
		{domain.EventPostComment, 2},
		{domain.EventPostShare, 2},
		{domain.EventDMOpen, 3},
		{domain.EventPhotoSent, 3},
		{domain.EventTryonView, 4},
		{domain.EventAddToCart, 4},
		{domain.EventPurchase, 5},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			stage, err := domain.FunnelStageFor(tt.eventType)
			require.NoError(t, err)
			assert.Equal(t, tt.stage, stage)
		})
	}

	_, err := domain.FunnelStageFor("teleport")
	assert.Error(t, err)
}

func TestCustomerJourneyEvent_Validate(t *testing.T) {
	ev := domain.CustomerJourneyEvent{
		ID: "ev-1", WorkspaceID: "ws-1", SessionID: "sess-1", PostID: "post-1",
		EventType: domain.EventDMOpen, FunnelStage: 3,
		DeviceType: "mobile", Geography: "US",
	}
	assert.NoError(t, ev.Validate())

	ev.FunnelStage = 2
	assert.Error(t, ev.Validate(), "stage must match event type")

	ev = domain.CustomerJourneyEvent{ID: "ev-1", WorkspaceID: "ws-1", SessionID: "sess-1", EventType: "unknown"}
	assert.Error(t, ev.Validate())
}

func TestDemandForecast_Validate(t *testing.T) {
	f := domain.DemandForecast{
		ID: "fc-1", WorkspaceID: "ws-1", ProductID: "prod-1",
		HorizonDays: 14, PredictedDemand: 80, ConfidenceLow: 60, ConfidenceHigh: 110,
		ModelVersion: "demand-v2",
	}
	assert.NoError(t, f.Validate())

	bad := f
	bad.HorizonDays = 21
	assert.Error(t, bad.Validate())

	bad = f
	bad.ConfidenceLow = 90
	assert.Error(t, bad.Validate())

	bad = f
	actual := 75
	bad.ActualDemand = &actual
	assert.Error(t, bad.Validate(), "actual_demand is never back-filled")
}

func TestDatasetCountsAndCollections(t *testing.T) {
	ds := &domain.Dataset{
		Workspaces: []*domain.Workspace{{ID: "ws-1"}, {ID: "ws-2"}},
		Products:   []*domain.Product{{ID: "prod-1"}},
	}

	counts := ds.Counts()
	assert.Equal(t, 2, counts[domain.CollectionWorkspaces])
	assert.Equal(t, 1, counts[domain.CollectionProducts])
	assert.Equal(t, 0, counts[domain.CollectionForecasts])
	assert.Len(t, counts, 14)

	collections := ds.Collections()
	assert.Len(t, collections, 14)
	assert.Len(t, collections[domain.CollectionWorkspaces], 2)
	assert.Len(t, collections[domain.CollectionOrders], 0)
	assert.Equal(t, domain.CollectionNames()[0], domain.CollectionWorkspaces)
}
