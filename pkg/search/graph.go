package search

import "github.com/arclab-robotics/gridsearch/pkg/geometry"

// Edge describes one outgoing connection from a graph node, as returned by
// Graph.Neighbors.
type Edge struct {
	To   int
	Cost float64
}

// Graph is the abstract read interface every search in this package
// operates over. Grid-backed implementations (pkg/gridworld) and plain
// adjacency-list implementations (pkg/listgraph) both satisfy it; the
// search core never assumes anything about how neighbors were derived.
type Graph interface {
	// NumNodes returns the number of vertices, which the search core uses
	// to size its VertexStore. Node ids are expected to be dense in
	// [0, NumNodes()).
	NumNodes() int
	// Neighbors returns the outgoing edges from id.
	Neighbors(id int) []Edge
	// Position returns the world location of id, used for heuristic
	// evaluation and, by ThetaStar, for line-of-sight tests.
	Position(id int) geometry.Point
}

// LineOfSight is the oracle ThetaStar consults to decide whether a
// straight shortcut between two vertices is collision-free. Grid-backed
// graphs typically implement this by testing the segment against their
// occupied-cell polygons; it is kept as a separate interface so ThetaStar
// can run over any Graph that also happens to support the check.
type LineOfSight interface {
	// Visible reports whether the straight segment between the two
	// vertex ids is unobstructed.
	Visible(fromID, toID int) bool
}

// Heuristic estimates the remaining cost from a vertex to a fixed target.
// AStar and ThetaStar evaluate it each time a vertex's g-value improves;
// LPAStar and DStarLite evaluate it every time a key is recomputed, and
// LPAStar.SetGoal replaces it with one aimed at the new target.
type Heuristic func(id int) float64

// EuclideanHeuristic builds a Heuristic measuring straight-line distance
// in g to targetID, the admissible choice for any graph whose edge costs
// are not shorter than Euclidean distance.
func EuclideanHeuristic(g Graph, targetID int) Heuristic {
	target := g.Position(targetID)
	return func(id int) float64 {
		return g.Position(id).Distance(target)
	}
}
