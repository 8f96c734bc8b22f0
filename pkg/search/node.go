package search

import "math"

// VertexState tracks where a vertex currently sits relative to the open
// set: never touched, sitting in the open set waiting to be expanded, or
// expanded (settled for AStar/ThetaStar, or consistent and not in the open
// set for LPAStar/DStarLite).
type VertexState int

const (
	// StateNew means the vertex has never been discovered by the current
	// search generation.
	StateNew VertexState = iota
	// StateOpen means the vertex currently has a handle in the open set.
	StateOpen
	// StateClosed means the vertex has been expanded (AStar/ThetaStar) or
	// is locally consistent and sitting outside the open set
	// (LPAStar/DStarLite).
	StateClosed
)

// SearchNode is the per-vertex bookkeeping record the search core
// maintains in its arena, one slot per graph node id. It plays the role
// the original C++ search_node struct played. Searches and the open set
// hold *SearchNode pointers, but every pointer comes from VertexStore.Get,
// which keeps exactly one node per id and search generation, so the open
// set and the arena never hold diverging copies of a vertex.
type SearchNode struct {
	ID int

	// G is the cost of the best known path from the search's source to
	// this vertex. RHS is the one-step lookahead estimate LPAStar and
	// DStarLite use to detect local consistency; AStar and ThetaStar
	// leave it unused (it stays at +Inf).
	G   float64
	RHS float64
	H   float64

	// KeyVal is the priority last computed for this vertex. It is cached
	// on the node so the open set can reorder by identity without
	// recomputing it, and so callers can read a vertex's current key
	// without reaching into the heap.
	KeyVal Key

	// Parent is the id of the predecessor this vertex was reached from,
	// or -1 if it has none yet. ThetaStar may point a vertex directly at
	// its grandparent when a line-of-sight shortcut is taken.
	Parent int

	State VertexState

	// heapIndex is the vertex's current position in the open set's
	// backing slice, or -1 when it is not in the open set. The open set
	// updates this on every swap, giving Fix and Remove O(log n)
	// access without a linear scan.
	heapIndex int

	// generation stamps which search run last touched this slot. The
	// arena only resets a node's fields when it is first touched by a
	// newer generation, so a multi-query VertexStore never needs to be
	// cleared between independent searches.
	generation int
}

func freshNode(id, generation int) *SearchNode {
	return &SearchNode{
		ID:         id,
		G:          math.Inf(1),
		RHS:        math.Inf(1),
		H:          math.Inf(1),
		Parent:     -1,
		State:      StateNew,
		heapIndex:  -1,
		generation: generation,
	}
}

// Consistent reports whether the vertex's rhs and g values agree to
// within the search's tolerance. A locally consistent vertex requires no
// further work unless something later changes its inputs.
func (n *SearchNode) Consistent() bool {
	if math.IsInf(n.G, 1) && math.IsInf(n.RHS, 1) {
		return true
	}
	return closeEnough(n.G, n.RHS)
}

// OverConsistent reports whether g > rhs: the vertex found a cheaper path
// in since it was last settled and needs to propagate that improvement.
func (n *SearchNode) OverConsistent() bool {
	return n.G > n.RHS && !closeEnough(n.G, n.RHS)
}

// UnderConsistent reports whether g < rhs: the vertex's previously best
// path has been invalidated and it needs to find a new one (possibly
// raising its cost to infinity).
func (n *SearchNode) UnderConsistent() bool {
	return n.G < n.RHS && !closeEnough(n.G, n.RHS)
}

func closeEnough(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
