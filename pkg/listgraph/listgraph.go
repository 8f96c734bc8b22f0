// Package listgraph provides a minimal, fixed-topology graph: a plain
// list of node positions and an adjacency list of edges. It deliberately
// does not sample or connect nodes itself; callers build the topology by
// hand or load it from a scenario file. Random road-map sampling belongs
// to a different concern entirely and has no home here.
package listgraph

import (
	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

// Graph is a fixed adjacency-list graph satisfying search.Graph.
type Graph struct {
	positions []geometry.Point
	adjacency [][]search.Edge
}

// New builds a graph with the given node positions and no edges yet.
func New(positions []geometry.Point) *Graph {
	return &Graph{
		positions: positions,
		adjacency: make([][]search.Edge, len(positions)),
	}
}

// AddEdge connects from and to with the given traversal cost, in one
// direction only. Call it twice, swapping the endpoints, for an
// undirected connection.
func (g *Graph) AddEdge(from, to int, cost float64) {
	g.adjacency[from] = append(g.adjacency[from], search.Edge{To: to, Cost: cost})
}

// AddUndirectedEdge connects a and b in both directions, with cost equal
// to the Euclidean distance between their positions.
func (g *Graph) AddUndirectedEdge(a, b int) {
	cost := g.positions[a].Distance(g.positions[b])
	g.AddEdge(a, b, cost)
	g.AddEdge(b, a, cost)
}

// NumNodes implements search.Graph.
func (g *Graph) NumNodes() int {
	return len(g.positions)
}

// Neighbors implements search.Graph.
func (g *Graph) Neighbors(id int) []search.Edge {
	return g.adjacency[id]
}

// Position implements search.Graph.
func (g *Graph) Position(id int) geometry.Point {
	return g.positions[id]
}

// SetEdgeCost implements search.MutableGraph, updating the cost of the
// from->to edge in place. It is a no-op if no such edge exists.
func (g *Graph) SetEdgeCost(from, to int, cost float64) {
	for i := range g.adjacency[from] {
		if g.adjacency[from][i].To == to {
			g.adjacency[from][i].Cost = cost
		}
	}
}
