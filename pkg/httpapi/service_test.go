package httpapi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclab-robotics/gridsearch/pkg/httpapi"
	"github.com/arclab-robotics/gridsearch/pkg/httpapi/controllers"
	"github.com/arclab-robotics/gridsearch/pkg/logger"
)

func newTestService(t *testing.T) *httpapi.Service {
	t.Helper()
	log, err := logger.New()
	require.NoError(t, err)
	return httpapi.NewService(log)
}

func TestPlanFindsPathAcrossEmptyGrid(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Plan(context.Background(), controllers.PlanRequest{
		BoundsXMin: 0, BoundsXMax: 10,
		BoundsYMin: 0, BoundsYMax: 10,
		CellSize: 1, GridResolution: 1,
		Start: controllers.PointDTO{X: 0, Y: 0},
		Goal:  controllers.PointDTO{X: 9, Y: 9},
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(resp.Path), 2)
	assert.Greater(t, resp.Cost, 0.0)
	assert.NotEmpty(t, resp.Polyline)
}

func TestPlanRejectsObstacleBlockedGoal(t *testing.T) {
	svc := newTestService(t)

	// A single obstacle covering the entire map, sealing off the goal.
	obstacle := []controllers.PointDTO{
		{X: -1, Y: -1}, {X: 11, Y: -1}, {X: 11, Y: 11}, {X: -1, Y: 11},
	}
	_, err := svc.Plan(context.Background(), controllers.PlanRequest{
		Obstacles:  [][]controllers.PointDTO{obstacle},
		BoundsXMin: 0, BoundsXMax: 10,
		BoundsYMin: 0, BoundsYMax: 10,
		CellSize: 1, GridResolution: 1,
		Start: controllers.PointDTO{X: 0, Y: 0},
		Goal:  controllers.PointDTO{X: 9, Y: 9},
	})
	assert.Error(t, err)
}

func TestSessionLifecycleRobotMoveAndMapChange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, controllers.CreateSessionRequest{
		BoundsXMin: 0, BoundsXMax: 10,
		BoundsYMin: 0, BoundsYMax: 10,
		CellSize: 1, GridResolution: 1,
		Start:       controllers.PointDTO{X: 0, Y: 0},
		Goal:        controllers.PointDTO{X: 9, Y: 9},
		SensorRange: 3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.SessionID)
	assert.GreaterOrEqual(t, len(created.Plan.Path), 2)

	moved, err := svc.UpdateRobotLoc(ctx, created.SessionID, controllers.RobotLocRequest{
		Location: controllers.PointDTO{X: 1, Y: 1},
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(moved.Path), 1)

	changed, err := svc.ApplyMapChange(ctx, created.SessionID, controllers.MapChangeRequest{
		Readings: []controllers.OccupancyReadingDTO{
			{Location: controllers.PointDTO{X: 5, Y: 5}, Occupied: true},
		},
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(changed.Path), 1)
}

func TestUpdateRobotLocUnknownSessionFails(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.UpdateRobotLoc(context.Background(), "does-not-exist", controllers.RobotLocRequest{})
	assert.Error(t, err)
}

func TestUpdateRobotLocOutOfBoundsLocationFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, controllers.CreateSessionRequest{
		BoundsXMin: 0, BoundsXMax: 10,
		BoundsYMin: 0, BoundsYMax: 10,
		CellSize: 1, GridResolution: 1,
		Start:       controllers.PointDTO{X: 0, Y: 0},
		Goal:        controllers.PointDTO{X: 9, Y: 9},
		SensorRange: 3,
	})
	require.NoError(t, err)

	_, err = svc.UpdateRobotLoc(ctx, created.SessionID, controllers.RobotLocRequest{
		Location: controllers.PointDTO{X: 1000, Y: 1000},
	})
	assert.Error(t, err)
}

func TestPlanBatchAnswersEveryQuery(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.PlanBatch(context.Background(), controllers.BatchPlanRequest{
		BoundsXMin: 0, BoundsXMax: 10,
		BoundsYMin: 0, BoundsYMax: 10,
		CellSize: 1, GridResolution: 1,
		Queries: []controllers.BatchPlanQuery{
			{ID: "corner-to-corner", Start: controllers.PointDTO{X: 0, Y: 0}, Goal: controllers.PointDTO{X: 9, Y: 9}},
			{ID: "adjacent", Start: controllers.PointDTO{X: 0, Y: 0}, Goal: controllers.PointDTO{X: 1, Y: 0}},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	assert.Equal(t, "corner-to-corner", resp.Results[0].ID)
	assert.Empty(t, resp.Results[0].Error)
	assert.GreaterOrEqual(t, len(resp.Results[0].Plan.Path), 2)

	assert.Equal(t, "adjacent", resp.Results[1].ID)
	assert.Empty(t, resp.Results[1].Error)
	assert.GreaterOrEqual(t, len(resp.Results[1].Plan.Path), 2)
}

func TestPlanBatchReportsPerQueryFailureWithoutFailingBatch(t *testing.T) {
	svc := newTestService(t)

	obstacle := []controllers.PointDTO{
		{X: -1, Y: -1}, {X: 11, Y: -1}, {X: 11, Y: 11}, {X: -1, Y: 11},
	}
	resp, err := svc.PlanBatch(context.Background(), controllers.BatchPlanRequest{
		Obstacles:  [][]controllers.PointDTO{obstacle},
		BoundsXMin: 0, BoundsXMax: 10,
		BoundsYMin: 0, BoundsYMax: 10,
		CellSize: 1, GridResolution: 1,
		Queries: []controllers.BatchPlanQuery{
			{ID: "blocked", Start: controllers.PointDTO{X: 0, Y: 0}, Goal: controllers.PointDTO{X: 9, Y: 9}},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.NotEmpty(t, resp.Results[0].Error)
}

func TestSubscribeDeliversEventAfterMapChange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, controllers.CreateSessionRequest{
		BoundsXMin: 0, BoundsXMax: 10,
		BoundsYMin: 0, BoundsYMax: 10,
		CellSize: 1, GridResolution: 1,
		Start:       controllers.PointDTO{X: 0, Y: 0},
		Goal:        controllers.PointDTO{X: 9, Y: 9},
		SensorRange: 3,
	})
	require.NoError(t, err)

	events, unsubscribe, err := svc.Subscribe(created.SessionID)
	require.NoError(t, err)
	defer unsubscribe()

	_, err = svc.ApplyMapChange(ctx, created.SessionID, controllers.MapChangeRequest{
		Readings: []controllers.OccupancyReadingDTO{
			{Location: controllers.PointDTO{X: 4, Y: 4}, Occupied: true},
		},
	})
	require.NoError(t, err)

	select {
	case evt := <-events:
		assert.Equal(t, created.SessionID, evt.SessionID)
	default:
		t.Error("Subscribe() channel had no event after ApplyMapChange()")
	}
}
