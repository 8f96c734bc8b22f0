package search_test

import (
	"testing"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/listgraph"
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

// grid3x3FourConnected is grid3x3 without diagonal edges, so any shortcut
// ThetaStar finds must come from its line-of-sight relaxation, not from
// the graph's own connectivity.
func grid3x3FourConnected() *listgraph.Graph {
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
			if x+1 < 3 {
				g.AddUndirectedEdge(idx(x, y), idx(x+1, y))
			}
			if y+1 < 3 {
				g.AddUndirectedEdge(idx(x, y), idx(x, y+1))
			}
		}
	}
	return g
}

// clearLineOfSight reports every segment as visible, simulating an
// obstacle-free map.
type clearLineOfSight struct{}

func (clearLineOfSight) Visible(fromID, toID int) bool { return true }

func TestThetaStarCutsCornerUnavailableToAStar(t *testing.T) {
	g := grid3x3FourConnected()

	theta, err := search.NewThetaStar(g, 0, 8, clearLineOfSight{})
	if err != nil {
		t.Fatalf("NewThetaStar: %v", err)
	}
	thetaRes, err := theta.ComputeShortestPath()
	if err != nil {
		t.Fatalf("theta ComputeShortestPath: %v", err)
	}

	a, err := search.NewAStar(g, 0, 8)
	if err != nil {
		t.Fatalf("NewAStar: %v", err)
	}
	aRes, err := a.ComputeShortestPath()
	if err != nil {
		t.Fatalf("astar ComputeShortestPath: %v", err)
	}

	wantTheta := 2 * 1.4142135623730951
	if !geometry.CloseEnough(thetaRes.Cost, wantTheta) {
		t.Errorf("theta cost = %v, want %v", thetaRes.Cost, wantTheta)
	}
	if thetaRes.Cost >= aRes.Cost {
		t.Errorf("theta cost %v should be strictly less than a* cost %v on a 4-connected grid", thetaRes.Cost, aRes.Cost)
	}
}

func TestNewThetaStarRequiresLineOfSight(t *testing.T) {
	g := grid3x3FourConnected()
	if _, err := search.NewThetaStar(g, 0, 8, nil); err != search.ErrInvalidQuery {
		t.Errorf("NewThetaStar() err = %v, want ErrInvalidQuery", err)
	}
}
