// Package spatialindex answers "which graph vertex is nearest this world
// point" using an R-tree over vertex positions, so an HTTP query point
// never has to be matched to a graph id by brute-force scanning every
// vertex.
package spatialindex

import (
	"math"

	"github.com/tidwall/rtree"
	"go.uber.org/zap"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

// Index is an R-tree of a graph's vertex positions, each stored as a
// degenerate (zero-area) box at its own coordinates.
type Index struct {
	tr *rtree.RTreeG[int]
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	var tr rtree.RTreeG[int]
	return &Index{tr: &tr}
}

// Build inserts every vertex of graph into the index.
func (idx *Index) Build(graph search.Graph, log *zap.Logger) {
	log.Info("building spatial index", zap.Int("vertices", graph.NumNodes()))
	for id := 0; id < graph.NumNodes(); id++ {
		idx.Insert(id, graph.Position(id))
	}
	log.Info("spatial index built")
}

// Insert adds a single vertex to the index, for incremental graph
// construction.
func (idx *Index) Insert(id int, p geometry.Point) {
	idx.tr.Insert([2]float64{p.X, p.Y}, [2]float64{p.X, p.Y}, id)
}

// SearchWithinRadius returns every vertex id whose position lies within
// radius of query.
func (idx *Index) SearchWithinRadius(query geometry.Point, radius float64) []int {
	min := [2]float64{query.X - radius, query.Y - radius}
	max := [2]float64{query.X + radius, query.Y + radius}

	var results []int
	idx.tr.Search(min, max, func(minB, _ [2]float64, candidate int) bool {
		if geometry.NewPoint(minB[0], minB[1]).Distance(query) <= radius {
			results = append(results, candidate)
		}
		return true
	})
	return results
}

// Nearest returns the id of the vertex closest to query, by probing an
// expanding box around query until it is non-empty or maxRadius is
// exceeded. It reports false if no vertex lies within maxRadius.
func (idx *Index) Nearest(query geometry.Point, maxRadius float64) (id int, ok bool) {
	for radius := math.Min(1.0, maxRadius); ; radius = math.Min(radius*2, maxRadius) {
		bestID, bestDist, found := idx.closestWithin(query, radius)
		if found {
			if radius < maxRadius && bestDist > radius/2 {
				// The closest candidate found so far may not be the
				// true nearest: something just outside this box could
				// be closer. Widen once more before trusting the
				// result.
				widerID, widerDist, widerFound := idx.closestWithin(query, math.Min(radius*2, maxRadius))
				if widerFound && widerDist < bestDist {
					bestID, bestDist = widerID, widerDist
				}
			}
			return bestID, bestDist <= maxRadius
		}
		if radius >= maxRadius {
			return 0, false
		}
	}
}

func (idx *Index) closestWithin(query geometry.Point, radius float64) (id int, dist float64, ok bool) {
	min := [2]float64{query.X - radius, query.Y - radius}
	max := [2]float64{query.X + radius, query.Y + radius}

	bestDist := math.Inf(1)
	bestID := 0
	found := false
	idx.tr.Search(min, max, func(minB, _ [2]float64, candidate int) bool {
		d := geometry.NewPoint(minB[0], minB[1]).Distance(query)
		if d < bestDist {
			bestDist = d
			bestID = candidate
			found = true
		}
		return true
	})
	return bestID, bestDist, found
}
