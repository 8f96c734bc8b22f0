// Package controllers holds the HTTP request/response shapes and
// handlers the router dispatches to, kept separate from the planning
// logic itself (pkg/httpapi's Service) so request decoding/validation
// and the search core stay independently testable.
package controllers

// PointDTO is a world-space coordinate on the wire.
type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlanRequest is the body of POST /v1/plan: a one-shot query against a
// scenario described inline, answered by either AStar or ThetaStar.
type PlanRequest struct {
	Obstacles      [][]PointDTO `json:"obstacles"`
	BoundsXMin     float64      `json:"bounds_x_min"`
	BoundsXMax     float64      `json:"bounds_x_max" validate:"gtfield=BoundsXMin"`
	BoundsYMin     float64      `json:"bounds_y_min"`
	BoundsYMax     float64      `json:"bounds_y_max" validate:"gtfield=BoundsYMin"`
	CellSize       float64      `json:"cell_size" validate:"gt=0"`
	GridResolution float64      `json:"grid_resolution" validate:"gt=0"`
	RobotRadius    float64      `json:"robot_radius" validate:"gte=0"`
	Start          PointDTO     `json:"start"`
	Goal           PointDTO     `json:"goal"`
	Algorithm      string       `json:"algorithm" validate:"omitempty,oneof=astar theta"`
}

// PlanResponse is the body returned by POST /v1/plan and by every session
// mutation that recomputes a path. Polyline carries the same path
// encoded with Google's polyline algorithm, for callers that would
// rather ship one short string than a point array.
type PlanResponse struct {
	Path     []PointDTO `json:"path"`
	Polyline string     `json:"polyline"`
	Cost     float64    `json:"cost"`
	Expanded int        `json:"expanded_nodes"`
}

// CreateSessionRequest is the body of POST /v1/sessions: it describes a
// scenario the way PlanRequest does, but the resulting session persists a
// DStarLite instance the caller can push updates into.
type CreateSessionRequest struct {
	Obstacles      [][]PointDTO `json:"obstacles"`
	BoundsXMin     float64      `json:"bounds_x_min"`
	BoundsXMax     float64      `json:"bounds_x_max" validate:"gtfield=BoundsXMin"`
	BoundsYMin     float64      `json:"bounds_y_min"`
	BoundsYMax     float64      `json:"bounds_y_max" validate:"gtfield=BoundsYMin"`
	CellSize       float64      `json:"cell_size" validate:"gt=0"`
	GridResolution float64      `json:"grid_resolution" validate:"gt=0"`
	RobotRadius    float64      `json:"robot_radius" validate:"gte=0"`
	Start          PointDTO     `json:"start"`
	Goal           PointDTO     `json:"goal"`
	SensorRange    float64      `json:"sensor_range" validate:"gt=0"`
}

// CreateSessionResponse carries the new session's id and its first plan.
type CreateSessionResponse struct {
	SessionID string       `json:"session_id"`
	Plan      PlanResponse `json:"plan"`
}

// RobotLocRequest is the body of POST /v1/sessions/{id}/robot-loc.
type RobotLocRequest struct {
	Location PointDTO `json:"location"`
}

// MapChangeRequest is the body of POST /v1/sessions/{id}/map-change: a
// batch of sensor readings about cells flipping free/occupied, in world
// coordinates.
type MapChangeRequest struct {
	Readings []OccupancyReadingDTO `json:"readings" validate:"required,min=1"`
}

// OccupancyReadingDTO is one cell's reported occupancy state.
type OccupancyReadingDTO struct {
	Location PointDTO `json:"location"`
	Occupied bool     `json:"occupied"`
}

// BatchPlanQuery is one independent start/goal pair inside a
// BatchPlanRequest, answered against the same shared grid.
type BatchPlanQuery struct {
	ID    string   `json:"id" validate:"required"`
	Start PointDTO `json:"start"`
	Goal  PointDTO `json:"goal"`
}

// BatchPlanRequest is the body of POST /v1/plan/batch: a single grid
// description answered against many start/goal queries concurrently,
// rather than rebuilding the grid once per query the way repeated calls
// to POST /v1/plan would.
type BatchPlanRequest struct {
	Obstacles      [][]PointDTO     `json:"obstacles"`
	BoundsXMin     float64          `json:"bounds_x_min"`
	BoundsXMax     float64          `json:"bounds_x_max" validate:"gtfield=BoundsXMin"`
	BoundsYMin     float64          `json:"bounds_y_min"`
	BoundsYMax     float64          `json:"bounds_y_max" validate:"gtfield=BoundsYMin"`
	CellSize       float64          `json:"cell_size" validate:"gt=0"`
	GridResolution float64          `json:"grid_resolution" validate:"gt=0"`
	RobotRadius    float64          `json:"robot_radius" validate:"gte=0"`
	Algorithm      string           `json:"algorithm" validate:"omitempty,oneof=astar theta"`
	Workers        int              `json:"workers" validate:"gte=0"`
	Queries        []BatchPlanQuery `json:"queries" validate:"required,min=1,dive"`
}

// BatchPlanResult is one query's outcome within a BatchPlanResponse. A
// query that failed (no path, out-of-bounds start/goal) carries Error and
// a zero-value Plan rather than failing the whole batch.
type BatchPlanResult struct {
	ID    string       `json:"id"`
	Plan  PlanResponse `json:"plan,omitempty"`
	Error string       `json:"error,omitempty"`
}

// BatchPlanResponse is the body returned by POST /v1/plan/batch.
type BatchPlanResponse struct {
	Results []BatchPlanResult `json:"results"`
}

// ExpandedNodeEvent is one diagnostic frame streamed over the session's
// WebSocket: the set of vertices the most recent ComputeShortestPath call
// touched, for visualizing search progress live.
type ExpandedNodeEvent struct {
	SessionID string     `json:"session_id"`
	Expanded  []PointDTO `json:"expanded"`
	Path      []PointDTO `json:"path"`
}
