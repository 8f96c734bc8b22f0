package gridworld

import (
	"math"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

// GridGraph is an 8-connected graph over all of a Grid's cells: one vertex
// per cell, row-major ids matching the grid's own cellIndex, and an edge
// to each of a cell's up-to-eight neighbors at a cost of either 1 or root2
// times the cell-center spacing (cellSize/gridRes), following the classic occupancy-grid-to-graph construction.
// An edge whose destination cell is occupied, or whose straight path
// between cell centers clips an occupied cell by less than BufferRadius,
// costs +Inf rather than being omitted, so LPAStar and DStarLite can flip
// it back to a finite cost later without rebuilding the graph.
type GridGraph struct {
	grid         *Grid
	bufferRadius float64
	edgeCost     [][]search.Edge
}

// NewGridGraph builds the adjacency for grid. bufferRadius inflates every
// occupied cell for both edge costing and line-of-sight testing, modeling
// a robot with physical extent rather than a point.
func NewGridGraph(grid *Grid, bufferRadius float64) *GridGraph {
	gg := &GridGraph{
		grid:         grid,
		bufferRadius: bufferRadius,
		edgeCost:     make([][]search.Edge, grid.width*grid.height),
	}
	gg.build()
	return gg
}

func (gg *GridGraph) id(x, y int) int {
	return gg.grid.cellIndex(x, y)
}

func (gg *GridGraph) build() {
	g := gg.grid
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			var edges []search.Edge
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if !g.InBounds(nx, ny) {
						continue
					}
					edges = append(edges, search.Edge{
						To:   gg.id(nx, ny),
						Cost: gg.traversalCost(x, y, nx, ny),
					})
				}
			}
			gg.edgeCost[gg.id(x, y)] = edges
		}
	}
}

// traversalCost returns the Euclidean cost between two adjacent cells, or
// +Inf if the destination is occupied or lies within the buffer radius of
// an occupied neighbor.
func (gg *GridGraph) traversalCost(x0, y0, x1, y1 int) float64 {
	if gg.blocked(x0, y0, x1, y1) {
		return math.Inf(1)
	}
	return gg.grid.GridToWorld(x0, y0).Distance(gg.grid.GridToWorld(x1, y1))
}

func (gg *GridGraph) blocked(x0, y0, x1, y1 int) bool {
	g := gg.grid
	if g.Occupied(x1, y1) {
		return true
	}
	if gg.bufferRadius <= 0 {
		return false
	}
	from, to := g.GridToWorld(x0, y0), g.GridToWorld(x1, y1)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			ox, oy := x1+dx, y1+dy
			if !g.InBounds(ox, oy) || !g.Occupied(ox, oy) {
				continue
			}
			if geometry.LineShapeIntersection(from, to, g.CellFootprint(ox, oy), gg.bufferRadius) {
				return true
			}
		}
	}
	return false
}

// NumNodes implements search.Graph.
func (gg *GridGraph) NumNodes() int {
	return gg.grid.width * gg.grid.height
}

// Neighbors implements search.Graph.
func (gg *GridGraph) Neighbors(id int) []search.Edge {
	return gg.edgeCost[id]
}

// Position implements search.Graph.
func (gg *GridGraph) Position(id int) geometry.Point {
	x, y := id%gg.grid.width, id/gg.grid.width
	return gg.grid.GridToWorld(x, y)
}

// SetEdgeCost implements search.MutableGraph. gridworld callers normally
// go through ApplyOccupancyChanges instead, which derives the right set of
// edge costs from a grid update; SetEdgeCost exists so GridGraph also
// satisfies the interface directly for tests and manual edits.
func (gg *GridGraph) SetEdgeCost(from, to int, cost float64) {
	for i := range gg.edgeCost[from] {
		if gg.edgeCost[from][i].To == to {
			gg.edgeCost[from][i].Cost = cost
		}
	}
}

// Visible implements search.LineOfSight: the straight segment between two
// cell centers is visible iff it does not clip the footprint (inflated by
// BufferRadius) of any occupied cell inside the bounding box of the two
// cells; occupied cells outside that box are not tested.
func (gg *GridGraph) Visible(fromID, toID int) bool {
	g := gg.grid
	fromX, fromY := fromID%g.width, fromID/g.width
	toX, toY := toID%g.width, toID/g.width
	from, to := g.GridToWorld(fromX, fromY), g.GridToWorld(toX, toY)

	minX, maxX := minInt(fromX, toX), maxInt(fromX, toX)
	minY, maxY := minInt(fromY, toY), maxInt(fromY, toY)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !g.Occupied(x, y) {
				continue
			}
			if geometry.LineShapeIntersection(from, to, g.CellFootprint(x, y), gg.bufferRadius) {
				return false
			}
		}
	}
	return true
}

// ApplyOccupancyChanges pushes a batch of cell occupancy flips (as
// reported by Grid.Update) into the graph's edge costs and returns the
// search.EdgeChange list a caller should hand to LPAStar.MapChange or
// DStarLite.MapChange.
//
// With a nonzero BufferRadius, blocked() consults not just a destination
// cell's own occupancy but every occupied cell in that destination's
// Moore neighborhood, so flipping cell c can change the cost of any edge
// A->B where B is within one cell of c (not just edges touching c
// itself). ApplyOccupancyChanges therefore recomputes every edge into
// every B in c's Moore neighborhood, from every one of B's own Moore
// neighbors A, for every changed cell c.
func (gg *GridGraph) ApplyOccupancyChanges(changedCells []struct{ X, Y int }) []search.EdgeChange {
	var changes []search.EdgeChange
	g := gg.grid
	seen := make(map[[2]int]bool)

	recomputeEdgesInto := func(bx, by int) {
		if !g.InBounds(bx, by) {
			return
		}
		bID := gg.id(bx, by)
		for ady := -1; ady <= 1; ady++ {
			for adx := -1; adx <= 1; adx++ {
				if adx == 0 && ady == 0 {
					continue
				}
				ax, ay := bx+adx, by+ady
				if !g.InBounds(ax, ay) {
					continue
				}
				aID := gg.id(ax, ay)
				key := [2]int{aID, bID}
				if seen[key] {
					continue
				}
				seen[key] = true
				changes = append(changes, search.EdgeChange{
					From:    aID,
					To:      bID,
					NewCost: gg.traversalCost(ax, ay, bx, by),
				})
			}
		}
	}

	for _, c := range changedCells {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				recomputeEdgesInto(c.X+dx, c.Y+dy)
			}
		}
	}
	return changes
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
