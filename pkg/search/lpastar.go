package search

import "math"

// LPAStar is Lifelong Planning A*: an incremental search that keeps its
// open set and g/rhs values alive across MapChange calls instead of
// starting over, so a sequence of small edits to the graph only touches
// the vertices whose shortest path actually changed.
//
// A vertex is locally consistent when g and rhs agree; UpdateVertex keeps
// that invariant, and ComputeShortestPath repairs any vertex that becomes
// inconsistent (first by MapChange, later by an earlier repair rippling
// outward) until the goal is consistent and provably optimal.
type LPAStar struct {
	graph Graph
	heur  Heuristic

	store *VertexStore
	open  *OpenSet

	startID, goalID int
	km              float64

	initialized bool
}

// NewLPAStar builds an incremental search over graph from startID to
// goalID. The graph's edges are assumed symmetric, as is standard for a
// grid adjacency graph: Neighbors(u) serves as both the successor and
// predecessor set.
func NewLPAStar(graph Graph, startID, goalID int) (*LPAStar, error) {
	n := graph.NumNodes()
	if startID < 0 || startID >= n || goalID < 0 || goalID >= n {
		return nil, ErrInvalidQuery
	}
	l := &LPAStar{
		graph:   graph,
		heur:    EuclideanHeuristic(graph, goalID),
		store:   NewVertexStore(n),
		open:    NewOpenSet(),
		startID: startID,
		goalID:  goalID,
	}
	l.initialize()
	return l, nil
}

func (l *LPAStar) initialize() {
	l.store.Reset()
	l.open.Clear()
	l.km = 0

	start := l.store.Get(l.startID)
	start.RHS = 0
	start.KeyVal = l.calculateKey(start)
	l.open.Push(start)
	l.initialized = true
}

// calculateKey computes a vertex's current priority: k1 orders by the
// cheaper of its two consistency estimates plus heuristic and the
// accumulated km offset, k2 breaks ties toward the vertex closer to being
// resolved.
func (l *LPAStar) calculateKey(s *SearchNode) Key {
	m := math.Min(s.G, s.RHS)
	return Key{K1: m + l.heur(s.ID) + l.km, K2: m}
}

func (l *LPAStar) edgeCost(from, to int) float64 {
	for _, e := range l.graph.Neighbors(from) {
		if e.To == to {
			return e.Cost
		}
	}
	return math.Inf(1)
}

// updateVertex recomputes u's rhs from its predecessors (u's start vertex
// excepted, since it has no rhs of its own) and repositions it in the open
// set, inserting, moving or removing it as its consistency demands.
func (l *LPAStar) updateVertex(u *SearchNode) {
	if u.ID != l.startID {
		best := math.Inf(1)
		bestParent := -1
		for _, e := range l.graph.Neighbors(u.ID) {
			pred := l.store.Get(e.To)
			if candidate := pred.G + e.Cost; candidate < best {
				best = candidate
				bestParent = pred.ID
			}
		}
		u.RHS = best
		u.Parent = bestParent
	}

	if l.open.Contains(u) {
		l.open.Remove(u)
	}

	if !u.Consistent() {
		u.KeyVal = l.calculateKey(u)
		l.open.Push(u)
	}
}

// ComputeShortestPath drains the open set until the goal is locally
// consistent and its key no longer exceeds the smallest key left in the
// open set, which together certify the goal's g-value is optimal. A popped
// vertex whose stored key is below its recomputed key (as after AddKm or
// SetGoal) is requeued under the new key. Every other vertex popped either
// settles (over-consistent: g adopts rhs and its
// successors are re-evaluated) or is invalidated and requeued
// (under-consistent: g is raised to infinity before the same
// re-evaluation), so a vertex is never left dangling in an intermediate
// state between calls.
func (l *LPAStar) ComputeShortestPath() (Result, error) {
	goal := l.store.Get(l.goalID)

	for !l.open.Empty() {
		top := l.open.Peek()
		if !top.KeyVal.Less(l.calculateKey(goal)) && goal.Consistent() {
			break
		}

		u := l.open.Pop()

		if kNew := l.calculateKey(u); u.KeyVal.Less(kNew) {
			u.KeyVal = kNew
			l.open.Push(u)
			continue
		}

		if u.OverConsistent() {
			u.G = u.RHS
			for _, e := range l.graph.Neighbors(u.ID) {
				l.updateVertex(l.store.Get(e.To))
			}
		} else {
			u.G = math.Inf(1)
			l.updateVertex(u)
			for _, e := range l.graph.Neighbors(u.ID) {
				l.updateVertex(l.store.Get(e.To))
			}
		}
	}

	if math.IsInf(goal.G, 1) {
		return Result{}, ErrNoPath
	}
	return Result{Path: l.assemblePath(l.goalID), Cost: goal.G}, nil
}

func (l *LPAStar) assemblePath(id int) []int {
	var rev []int
	for cur := id; cur != -1; {
		rev = append(rev, cur)
		if cur == l.startID {
			break
		}
		cur = l.store.Get(cur).Parent
	}
	path := make([]int, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return path
}

// GetPath returns the path assembled during the most recent
// ComputeShortestPath call.
func (l *LPAStar) GetPath() ([]int, error) {
	goal := l.store.Get(l.goalID)
	if math.IsInf(goal.G, 1) {
		return nil, ErrNoPath
	}
	return l.assemblePath(l.goalID), nil
}

// EdgeChange describes one edge whose traversal cost changed since the
// last ComputeShortestPath call. A newCost of +Inf represents the edge
// becoming blocked (e.g. the cell it crosses became occupied); a finite
// newCost lower than what it replaces represents an obstacle clearing.
type EdgeChange struct {
	From, To int
	NewCost  float64
}

// MutableGraph is implemented by graphs whose edge costs can change after
// construction, such as an occupancy grid whose cells flip between free
// and occupied. MapChange applies NewCost through this interface before
// touching the search's own bookkeeping, so the two stay in sync: the
// caller never has to remember to push cost edits into the graph itself.
type MutableGraph interface {
	Graph
	SetEdgeCost(from, to int, cost float64)
}

// MapChange applies a batch of edge cost changes and updates every vertex
// whose rhs could be affected, leaving the open set ready for the next
// ComputeShortestPath call to repair only what actually moved.
func (l *LPAStar) MapChange(changes []EdgeChange) {
	mg, mutable := l.graph.(MutableGraph)

	touched := make(map[int]struct{}, len(changes)*2)
	for _, c := range changes {
		if mutable {
			mg.SetEdgeCost(c.From, c.To, c.NewCost)
		}
		touched[c.From] = struct{}{}
		touched[c.To] = struct{}{}
	}
	for id := range touched {
		l.updateVertex(l.store.Get(id))
	}
}

// SetGoal retargets the vertex whose consistency ComputeShortestPath
// terminates on, without disturbing anything already computed. DStarLite
// uses this to move the termination target when the robot moves, leaving
// the rhs anchor (startID) fixed at the planning goal.
func (l *LPAStar) SetGoal(id int) error {
	if id < 0 || id >= l.graph.NumNodes() {
		return ErrInvalidQuery
	}
	l.goalID = id
	l.heur = EuclideanHeuristic(l.graph, id)
	return nil
}

// AddKm increases the heuristic offset folded into every key calculation.
// DStarLite calls this whenever the robot moves, by the heuristic distance
// from its previous location to its new one, which keeps previously
// computed keys comparable to newly computed ones without re-keying the
// entire open set.
func (l *LPAStar) AddKm(delta float64) {
	l.km += delta
}

// GetExpandedNodes reports every vertex id currently holding a node in
// this search's arena, i.e. every vertex discovered since initialize. LPA*
// has no single notion of "expanded this call" the way AStar does, since
// work is amortized across calls, so this reflects cumulative discovery.
func (l *LPAStar) GetExpandedNodes() []int {
	out := make([]int, 0, l.store.Len())
	for id := 0; id < l.store.Len(); id++ {
		if l.store.Touched(id) {
			out = append(out, id)
		}
	}
	return out
}
