package search_test

import (
	"testing"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/listgraph"
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

// grid3x3 builds a 3x3 unit-spaced 8-connected grid graph, ids in row
// major order: (0,0)=0 (1,0)=1 (2,0)=2 (0,1)=3 ... (2,2)=8.
func grid3x3() *listgraph.Graph {
	positions := make([]geometry.Point, 0, 9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			positions = append(positions, geometry.NewPoint(float64(x), float64(y)))
		}
	}
	g := listgraph.New(positions)
	idx := func(x, y int) int { return y*3 + x }
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= 3 || ny < 0 || ny >= 3 {
						continue
					}
					if idx(x, y) < idx(nx, ny) {
						g.AddUndirectedEdge(idx(x, y), idx(nx, ny))
					}
				}
			}
		}
	}
	return g
}

func TestAStarFindsDiagonalShortcut(t *testing.T) {
	g := grid3x3()
	a, err := search.NewAStar(g, 0, 8)
	if err != nil {
		t.Fatalf("NewAStar: %v", err)
	}
	res, err := a.ComputeShortestPath()
	if err != nil {
		t.Fatalf("ComputeShortestPath: %v", err)
	}
	want := 2 * 1.4142135623730951
	if !geometry.CloseEnough(res.Cost, want) {
		t.Errorf("Cost = %v, want %v", res.Cost, want)
	}
	if res.Path[0] != 0 || res.Path[len(res.Path)-1] != 8 {
		t.Errorf("Path = %v, want endpoints 0 and 8", res.Path)
	}
}

func TestAStarNoPath(t *testing.T) {
	positions := []geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(1, 0)}
	g := listgraph.New(positions)
	a, err := search.NewAStar(g, 0, 1)
	if err != nil {
		t.Fatalf("NewAStar: %v", err)
	}
	if _, err := a.ComputeShortestPath(); err != search.ErrNoPath {
		t.Errorf("ComputeShortestPath() err = %v, want ErrNoPath", err)
	}
}

func TestAStarInvalidQuery(t *testing.T) {
	g := grid3x3()
	if _, err := search.NewAStar(g, 0, 42); err != search.ErrInvalidQuery {
		t.Errorf("NewAStar() err = %v, want ErrInvalidQuery", err)
	}
}
