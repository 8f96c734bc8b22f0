package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"github.com/arclab-robotics/gridsearch/pkg/apperr"
	"github.com/arclab-robotics/gridsearch/pkg/concurrent"
	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/gridworld"
	"github.com/arclab-robotics/gridsearch/pkg/httpapi/controllers"
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

// defaultBatchWorkers bounds concurrency for a batch plan request that
// doesn't specify Workers, keeping one request from spinning up a worker
// per query on a batch of thousands.
const defaultBatchWorkers = 8

// Service implements controllers.PlanningService: POST /v1/plan answers
// one-shot AStar/ThetaStar queries directly, while a session pairs a
// gridworld.GridGraph with a live search.DStarLite instance a caller
// steers with robot-location and map-change updates, the same replanning
// loop cmd/planner drives from the command line.
type Service struct {
	log *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	id      string
	mu      sync.Mutex
	grid    *gridworld.Grid
	graph   *gridworld.GridGraph
	planner *search.DStarLite
	robotID int
	goalID  int

	subscribersMu sync.Mutex
	subscribers   map[int]chan controllers.ExpandedNodeEvent
	nextSub       int
}

// NewService builds an empty Service with no active sessions.
func NewService(log *zap.Logger) *Service {
	return &Service{
		log:      log,
		sessions: make(map[string]*session),
	}
}

func buildGridGraph(obstacles [][]controllers.PointDTO, xMin, yMin, xMax, yMax, cellSize, gridRes, robotRadius float64) (*gridworld.Grid, *gridworld.GridGraph) {
	width := int((xMax-xMin)/cellSize) + 1
	height := int((yMax-yMin)/cellSize) + 1
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	grid := gridworld.NewGrid(width, height, cellSize, gridRes)
	markObstacles(grid, obstacles, cellSize)

	graph := gridworld.NewGridGraph(grid, robotRadius)
	return grid, graph
}

func markObstacles(grid *gridworld.Grid, obstacles [][]controllers.PointDTO, cellSize float64) {
	for _, verts := range obstacles {
		poly := make(geometry.Polygon, len(verts))
		for i, v := range verts {
			poly[i] = geometry.NewPoint(v.X, v.Y)
		}
		markPolygonCells(grid, poly, cellSize)
	}
}

// markPolygonCells flags every grid cell whose center lies inside poly as
// occupied, scanning poly's bounding box in world units.
func markPolygonCells(grid *gridworld.Grid, poly geometry.Polygon, cellSize float64) {
	if len(poly) == 0 {
		return
	}
	minX, maxX := poly[0].X, poly[0].X
	minY, maxY := poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	x0, y0 := grid.WorldToGrid(geometry.NewPoint(minX, minY))
	x1, y1 := grid.WorldToGrid(geometry.NewPoint(maxX, maxY))
	for y := min(y0, y1); y <= max(y0, y1); y++ {
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			if !grid.InBounds(x, y) {
				continue
			}
			center := grid.GridToWorld(x, y)
			if geometry.PointInsideConvex(center, poly, 0) {
				grid.SetOccupied(x, y, true)
			}
		}
	}
}

func dtoPoints(graph *gridworld.GridGraph, ids []int) []controllers.PointDTO {
	out := make([]controllers.PointDTO, len(ids))
	for i, id := range ids {
		p := graph.Position(id)
		out[i] = controllers.PointDTO{X: p.X, Y: p.Y}
	}
	return out
}

// planResponse builds a controllers.PlanResponse for a path found over
// graph, encoding it both as a point array and as a polyline string.
func planResponse(graph *gridworld.GridGraph, result search.Result, expandedCount int) controllers.PlanResponse {
	points := dtoPoints(graph, result.Path)
	return controllers.PlanResponse{
		Path:     points,
		Polyline: encodePolyline(points),
		Cost:     result.Cost,
		Expanded: expandedCount,
	}
}

func encodePolyline(points []controllers.PointDTO) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Y, p.X}
	}
	return string(polyline.EncodeCoords(coords))
}

// Plan implements controllers.PlanningService.
func (s *Service) Plan(_ context.Context, req controllers.PlanRequest) (controllers.PlanResponse, error) {
	grid, graph := buildGridGraph(req.Obstacles, req.BoundsXMin, req.BoundsYMin, req.BoundsXMax, req.BoundsYMax, req.CellSize, req.GridResolution, req.RobotRadius)

	startID := cellID(grid, graph, req.Start)
	goalID := cellID(grid, graph, req.Goal)

	var result search.Result
	var expanded []int
	var err error
	if req.Algorithm == "theta" {
		ts, buildErr := search.NewThetaStar(graph, startID, goalID, graph)
		if buildErr != nil {
			return controllers.PlanResponse{}, apperr.WrapErrorf(buildErr, apperr.ErrBadParamInput, "building theta* query: %v", buildErr)
		}
		result, err = ts.ComputeShortestPath()
		expanded = ts.GetExpandedNodes()
	} else {
		as, buildErr := search.NewAStar(graph, startID, goalID)
		if buildErr != nil {
			return controllers.PlanResponse{}, apperr.WrapErrorf(buildErr, apperr.ErrBadParamInput, "building a* query: %v", buildErr)
		}
		result, err = as.ComputeShortestPath()
		expanded = as.GetExpandedNodes()
	}
	if err != nil {
		return controllers.PlanResponse{}, apperr.WrapErrorf(err, apperr.ErrNoPath, "planning failed: %v", err)
	}

	return planResponse(graph, result, len(expanded)), nil
}

func cellID(grid *gridworld.Grid, graph *gridworld.GridGraph, p controllers.PointDTO) int {
	x, y := grid.WorldToGrid(geometry.NewPoint(p.X, p.Y))
	if !grid.InBounds(x, y) {
		return -1
	}
	return y*grid.Width() + x
}

// PlanBatch implements controllers.PlanningService: it builds one shared
// grid from req, then answers every query against it concurrently through
// concurrent.RunBatch, one AStar or ThetaStar search per query.
func (s *Service) PlanBatch(_ context.Context, req controllers.BatchPlanRequest) (controllers.BatchPlanResponse, error) {
	grid, graph := buildGridGraph(req.Obstacles, req.BoundsXMin, req.BoundsYMin, req.BoundsXMax, req.BoundsYMax, req.CellSize, req.GridResolution, req.RobotRadius)

	workers := req.Workers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	requests := make([]concurrent.PlanRequest, len(req.Queries))
	for i, q := range req.Queries {
		requests[i] = concurrent.PlanRequest{
			ID:        q.ID,
			Graph:     graph,
			StartID:   cellID(grid, graph, q.Start),
			GoalID:    cellID(grid, graph, q.Goal),
			Algorithm: req.Algorithm,
			LOS:       graph,
		}
	}

	results := concurrent.RunBatch(requests, workers)

	byID := make(map[string]controllers.BatchPlanResult, len(results))
	for _, r := range results {
		if r.Err != nil {
			byID[r.ID] = controllers.BatchPlanResult{ID: r.ID, Error: r.Err.Error()}
			continue
		}
		byID[r.ID] = controllers.BatchPlanResult{ID: r.ID, Plan: planResponse(graph, r.Result, r.Expanded)}
	}

	// RunBatch returns results in completion order, not request order;
	// reassemble them in the order the caller submitted their queries.
	ordered := make([]controllers.BatchPlanResult, len(req.Queries))
	for i, q := range req.Queries {
		ordered[i] = byID[q.ID]
	}

	return controllers.BatchPlanResponse{Results: ordered}, nil
}

// CreateSession implements controllers.PlanningService.
func (s *Service) CreateSession(_ context.Context, req controllers.CreateSessionRequest) (controllers.CreateSessionResponse, error) {
	grid, graph := buildGridGraph(req.Obstacles, req.BoundsXMin, req.BoundsYMin, req.BoundsXMax, req.BoundsYMax, req.CellSize, req.GridResolution, req.RobotRadius)

	startID := cellID(grid, graph, req.Start)
	goalID := cellID(grid, graph, req.Goal)

	planner, err := search.NewDStarLite(graph, startID, goalID)
	if err != nil {
		return controllers.CreateSessionResponse{}, apperr.WrapErrorf(err, apperr.ErrBadParamInput, "building d* lite session: %v", err)
	}

	result, err := planner.ComputeShortestPath()
	if err != nil {
		return controllers.CreateSessionResponse{}, apperr.WrapErrorf(err, apperr.ErrNoPath, "initial plan failed: %v", err)
	}

	id := newSessionID()
	sess := &session{
		id:          id,
		grid:        grid,
		graph:       graph,
		planner:     planner,
		robotID:     startID,
		goalID:      goalID,
		subscribers: make(map[int]chan controllers.ExpandedNodeEvent),
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.log.Info("session created", zap.String("session", id))

	return controllers.CreateSessionResponse{
		SessionID: id,
		Plan:      planResponse(graph, result, len(planner.GetExpandedNodes())),
	}, nil
}

func newSessionID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func (s *Service) getSession(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperr.WrapErrorf(nil, apperr.ErrNotFound, "session %q not found", id)
	}
	return sess, nil
}

// UpdateRobotLoc implements controllers.PlanningService.
func (s *Service) UpdateRobotLoc(_ context.Context, sessionID string, req controllers.RobotLocRequest) (controllers.PlanResponse, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return controllers.PlanResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	newID := cellID(sess.grid, sess.graph, req.Location)
	if err := sess.planner.UpdateRobotLoc(newID); err != nil {
		return controllers.PlanResponse{}, apperr.WrapErrorf(err, apperr.ErrBadParamInput, "robot location %v is outside the session's grid: %v", req.Location, err)
	}
	sess.robotID = newID

	result, err := sess.planner.ComputeShortestPath()
	if err != nil {
		return controllers.PlanResponse{}, apperr.WrapErrorf(err, apperr.ErrNoPath, "replanning after robot move failed: %v", err)
	}

	resp := planResponse(sess.graph, result, len(sess.planner.GetExpandedNodes()))
	sess.publish(sess.graph, result)
	return resp, nil
}

// ApplyMapChange implements controllers.PlanningService.
func (s *Service) ApplyMapChange(_ context.Context, sessionID string, req controllers.MapChangeRequest) (controllers.PlanResponse, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return controllers.PlanResponse{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	readings := make([]gridworld.OccupancyUpdate, len(req.Readings))
	for i, r := range req.Readings {
		x, y := sess.grid.WorldToGrid(geometry.NewPoint(r.Location.X, r.Location.Y))
		readings[i] = gridworld.OccupancyUpdate{X: x, Y: y, Occupied: r.Occupied}
	}

	changedCells := sess.grid.Update(readings)
	edgeChanges := sess.graph.ApplyOccupancyChanges(changedCells)
	if len(edgeChanges) > 0 {
		sess.planner.MapChange(edgeChanges)
	}

	result, err := sess.planner.ComputeShortestPath()
	if err != nil {
		return controllers.PlanResponse{}, apperr.WrapErrorf(err, apperr.ErrNoPath, "replanning after map change failed: %v", err)
	}

	resp := planResponse(sess.graph, result, len(sess.planner.GetExpandedNodes()))
	sess.publish(sess.graph, result)
	return resp, nil
}

// Subscribe implements controllers.PlanningService.
func (s *Service) Subscribe(sessionID string) (<-chan controllers.ExpandedNodeEvent, func(), error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, nil, err
	}

	sess.subscribersMu.Lock()
	id := sess.nextSub
	sess.nextSub++
	ch := make(chan controllers.ExpandedNodeEvent, 8)
	sess.subscribers[id] = ch
	sess.subscribersMu.Unlock()

	unsubscribe := func() {
		sess.subscribersMu.Lock()
		defer sess.subscribersMu.Unlock()
		if existing, ok := sess.subscribers[id]; ok {
			delete(sess.subscribers, id)
			close(existing)
		}
	}
	return ch, unsubscribe, nil
}

// publish fans out the result of a replan to every connected diagnostics
// subscriber. A subscriber whose buffer is full misses this event rather
// than blocking the replanning goroutine; it stays subscribed.
func (sess *session) publish(graph *gridworld.GridGraph, result search.Result) {
	sess.subscribersMu.Lock()
	defer sess.subscribersMu.Unlock()

	if len(sess.subscribers) == 0 {
		return
	}
	event := controllers.ExpandedNodeEvent{
		SessionID: sess.id,
		Expanded:  dtoPoints(graph, sess.planner.GetExpandedNodes()),
		Path:      dtoPoints(graph, result.Path),
	}
	for _, ch := range sess.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
