package search

import "slices"

// DStarLite is LPAStar run in reverse: the search anchors rhs=0 at the
// planning goal and measures shortest paths back toward the robot, so
// that as the robot moves forward along its own path the search only has
// to retarget its termination vertex rather than restart. It is built on
// the exact same UpdateVertex/ComputeShortestPath machinery as LPAStar;
// the only differences are which vertex is the rhs=0 anchor and the km
// bookkeeping UpdateRobotLoc performs.
type DStarLite struct {
	*LPAStar

	graph       Graph
	lastRobotID int
}

// NewDStarLite builds an incremental search over graph, planning from
// startID (the robot's current location) to goalID (the fixed planning
// target). Internally the underlying LPAStar is anchored at goalID and
// its termination target is startID, so that later calls to
// UpdateRobotLoc can move the termination target without perturbing the
// anchor.
func NewDStarLite(graph Graph, startID, goalID int) (*DStarLite, error) {
	lpa, err := NewLPAStar(graph, goalID, startID)
	if err != nil {
		return nil, err
	}
	return &DStarLite{
		LPAStar:     lpa,
		graph:       graph,
		lastRobotID: startID,
	}, nil
}

// ComputeShortestPath runs the underlying LPAStar and returns the path in
// robot-to-goal order.
func (d *DStarLite) ComputeShortestPath() (Result, error) {
	res, err := d.LPAStar.ComputeShortestPath()
	slices.Reverse(res.Path)
	return res, err
}

// GetPath returns the current path in robot-to-goal order.
func (d *DStarLite) GetPath() ([]int, error) {
	path, err := d.LPAStar.GetPath()
	slices.Reverse(path)
	return path, err
}

// UpdateRobotLoc informs the search that the robot has moved to newRobotID.
// It folds the heuristic distance traveled into km and retargets the
// search's termination vertex, so the next ComputeShortestPath call
// resumes work relative to the robot's new position instead of restarting.
// It returns ErrInvalidQuery, leaving all state untouched, if newRobotID is
// not a valid vertex id in the underlying graph.
func (d *DStarLite) UpdateRobotLoc(newRobotID int) error {
	if newRobotID < 0 || newRobotID >= d.graph.NumNodes() {
		return ErrInvalidQuery
	}
	if newRobotID == d.lastRobotID {
		return nil
	}
	d.AddKm(d.graph.Position(d.lastRobotID).Distance(d.graph.Position(newRobotID)))
	d.lastRobotID = newRobotID
	return d.SetGoal(newRobotID)
}
