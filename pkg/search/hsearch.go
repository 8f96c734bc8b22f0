package search

import "errors"

// ErrNoPath is returned when ComputeShortestPath exhausts the open set
// without ever settling the goal: the goal is unreachable from the start
// in the current graph.
var ErrNoPath = errors.New("search: no path between start and goal")

// ErrInvalidQuery is returned when a search is asked to run with a start
// or goal id outside the graph.
var ErrInvalidQuery = errors.New("search: invalid start or goal vertex")

// Result is what every search in this package hands back: the sequence of
// vertex ids from start to goal inclusive, and its total cost.
type Result struct {
	Path []int
	Cost float64
}

// costFunc relaxes the edge from s to neighbor id with the given edge
// cost, returning the candidate g-value for neighbor. AStar and ThetaStar
// differ only in this function: AStar always relaxes through s, ThetaStar
// first checks whether it can relax through s's parent instead.
type costFunc func(hs *HSearch, s *SearchNode, edge Edge) (parent int, g float64)

// HSearch is the scaffolding shared by AStar and ThetaStar: it owns the
// vertex arena and open set, drives the classic expand-relax-requeue loop,
// and assembles the final path by walking parent pointers. AStar and
// ThetaStar supply only the edge relaxation rule via costFn; everything
// else is identical, which mirrors how the original search family shared
// one base class and varied only ComputeCost.
type HSearch struct {
	graph Graph
	heur  Heuristic
	los   LineOfSight // nil for AStar; required for ThetaStar

	store *VertexStore
	open  *OpenSet

	startID, goalID int
	costFn          costFunc

	expanded []int
}

func newHSearch(graph Graph, startID, goalID int, heur Heuristic, los LineOfSight, cost costFunc) (*HSearch, error) {
	n := graph.NumNodes()
	if startID < 0 || startID >= n || goalID < 0 || goalID >= n {
		return nil, ErrInvalidQuery
	}
	return &HSearch{
		graph:   graph,
		heur:    heur,
		los:     los,
		store:   NewVertexStore(n),
		open:    NewOpenSet(),
		startID: startID,
		goalID:  goalID,
		costFn:  cost,
	}, nil
}

// ComputeShortestPath runs the search to completion: it drains the open
// set, relaxing neighbors via costFn, until the goal is settled or the
// open set empties. It may be called multiple times on the same instance;
// each call starts a fresh VertexStore generation, so previous results do
// not leak into the new one.
func (hs *HSearch) ComputeShortestPath() (Result, error) {
	hs.store.Reset()
	hs.open.Clear()
	hs.expanded = hs.expanded[:0]

	start := hs.store.Get(hs.startID)
	start.G = 0
	start.H = hs.heur(hs.startID)
	start.KeyVal = Key{K1: start.H, K2: 0}
	hs.open.Push(start)

	for !hs.open.Empty() {
		s := hs.open.Pop()
		hs.expanded = append(hs.expanded, s.ID)

		if s.ID == hs.goalID {
			return hs.assembleResult(s), nil
		}

		for _, edge := range hs.graph.Neighbors(s.ID) {
			neighbor := hs.store.Get(edge.To)
			parent, g := hs.costFn(hs, s, edge)
			if g >= neighbor.G {
				continue
			}
			neighbor.G = g
			neighbor.Parent = parent
			neighbor.H = hs.heur(edge.To)
			neighbor.KeyVal = Key{K1: g + neighbor.H, K2: g}
			if hs.open.Contains(neighbor) {
				hs.open.Fix(neighbor)
			} else {
				hs.open.Push(neighbor)
			}
		}
	}

	return Result{}, ErrNoPath
}

func (hs *HSearch) assembleResult(goal *SearchNode) Result {
	return Result{Path: hs.assemblePath(goal.ID), Cost: goal.G}
}

// assemblePath walks parent pointers from id back to the start and
// returns them in start-to-id order.
func (hs *HSearch) assemblePath(id int) []int {
	var rev []int
	for cur := id; cur != -1; {
		rev = append(rev, cur)
		if cur == hs.startID {
			break
		}
		cur = hs.store.Get(cur).Parent
	}
	path := make([]int, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}

// GetPath returns the path assembled during the most recent
// ComputeShortestPath call, or an error if the goal was never settled.
func (hs *HSearch) GetPath() ([]int, error) {
	if !hs.store.Touched(hs.goalID) {
		return nil, ErrNoPath
	}
	goal := hs.store.Get(hs.goalID)
	if goal.Parent == -1 && goal.ID != hs.startID {
		return nil, ErrNoPath
	}
	return hs.assemblePath(hs.goalID), nil
}

// GetExpandedNodes returns, in expansion order, every vertex id popped
// from the open set during the most recent ComputeShortestPath call. It
// exists purely as a diagnostic for callers visualizing or profiling
// search behavior and has no effect on the result.
func (hs *HSearch) GetExpandedNodes() []int {
	out := make([]int, len(hs.expanded))
	copy(out, hs.expanded)
	return out
}
