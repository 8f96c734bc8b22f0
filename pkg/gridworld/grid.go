// Package gridworld turns a 2D occupancy grid into the graph and
// collision oracle the search core consumes: cell centers become graph
// vertices, 8-connected adjacency becomes edges, and a cell's occupancy
// state becomes both an edge-cost penalty and a line-of-sight obstacle for
// ThetaStar's shortcut test.
package gridworld

import (
	"math"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
)

// Grid is a dense 2D occupancy map. Cells are addressed in row-major
// order, (0,0) at the grid's origin corner; world coordinates are derived
// from cell coordinates by a fixed cell size and an optional sub-cell
// resolution, following the same ratio-based conversion a metric
// occupancy grid library would use to let a cell be subdivided finer than
// its nominal size.
type Grid struct {
	width, height int
	cellSize      float64
	gridRes       float64
	occupied      []bool
}

// NewGrid builds a width x height grid of free cells. cellSize is the
// base cell size in world units; gridRes divides it, so adjacent cell
// centers lie cellSize/gridRes apart in world coordinates. Each cell holds
// a single occupancy value whatever gridRes is.
func NewGrid(width, height int, cellSize, gridRes float64) *Grid {
	return &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		gridRes:  gridRes,
		occupied: make([]bool, width*height),
	}
}

func (g *Grid) ratio() float64 {
	return g.cellSize / g.gridRes
}

// Width returns the grid's cell width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's cell height.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) names a cell inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) cellIndex(x, y int) int {
	return y*g.width + x
}

// Occupied reports whether the cell at (x, y) is blocked.
func (g *Grid) Occupied(x, y int) bool {
	return g.occupied[g.cellIndex(x, y)]
}

// SetOccupied marks the cell at (x, y) occupied or free, reporting whether
// the call actually changed its state.
func (g *Grid) SetOccupied(x, y int, occupied bool) bool {
	idx := g.cellIndex(x, y)
	changed := g.occupied[idx] != occupied
	g.occupied[idx] = occupied
	return changed
}

// GridToWorld converts a cell coordinate to the world position of its
// center.
func (g *Grid) GridToWorld(x, y int) geometry.Point {
	ratio := g.ratio()
	return geometry.NewPoint((float64(x)+0.5)*ratio, (float64(y)+0.5)*ratio)
}

// WorldToGrid converts a world position to the cell that contains it.
func (g *Grid) WorldToGrid(p geometry.Point) (x, y int) {
	ratio := g.ratio()
	return int(math.Floor(p.X / ratio)), int(math.Floor(p.Y / ratio))
}

// CellFootprint returns the square polygon of a single occupied cell at
// (x, y), used as the obstacle shape ThetaStar's line-of-sight oracle
// tests segments against.
func (g *Grid) CellFootprint(x, y int) geometry.Polygon {
	ratio := g.ratio()
	x0, y0 := float64(x)*ratio, float64(y)*ratio
	x1, y1 := x0+ratio, y0+ratio
	return geometry.Polygon{
		geometry.NewPoint(x0, y0),
		geometry.NewPoint(x1, y0),
		geometry.NewPoint(x1, y1),
		geometry.NewPoint(x0, y1),
	}
}

// OccupancyUpdate is one cell's new occupancy reading, as reported by a
// simulated sensor sweep.
type OccupancyUpdate struct {
	X, Y     int
	Occupied bool
}

// Update applies a batch of occupancy readings and returns the cell
// coordinates of every cell whose free/occupied state actually flipped.
// Readings that confirm a cell's existing state are not reported, mirroring
// how a real sensor sweep repeatedly reports cells that never changed.
func (g *Grid) Update(readings []OccupancyUpdate) []struct{ X, Y int } {
	var changed []struct{ X, Y int }
	for _, r := range readings {
		if !g.InBounds(r.X, r.Y) {
			continue
		}
		if g.SetOccupied(r.X, r.Y, r.Occupied) {
			changed = append(changed, struct{ X, Y int }{r.X, r.Y})
		}
	}
	return changed
}
