package search_test

import (
	"testing"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/listgraph"
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

func TestLPAStarMatchesAStarOnStaticGraph(t *testing.T) {
	g := grid3x3()
	l, err := search.NewLPAStar(g, 0, 8)
	if err != nil {
		t.Fatalf("NewLPAStar: %v", err)
	}
	res, err := l.ComputeShortestPath()
	if err != nil {
		t.Fatalf("ComputeShortestPath: %v", err)
	}
	want := 2 * 1.4142135623730951
	if !geometry.CloseEnough(res.Cost, want) {
		t.Errorf("Cost = %v, want %v", res.Cost, want)
	}
}

func TestLPAStarRepairsAfterMapChange(t *testing.T) {
	g := grid3x3()
	l, err := search.NewLPAStar(g, 0, 8)
	if err != nil {
		t.Fatalf("NewLPAStar: %v", err)
	}
	if _, err := l.ComputeShortestPath(); err != nil {
		t.Fatalf("initial ComputeShortestPath: %v", err)
	}

	// Block the center vertex (id 4) from every neighbor, removing the
	// direct diagonal shortcut and forcing a longer route.
	idx := func(x, y int) int { return y*3 + x }
	var changes []search.EdgeChange
	for _, n := range []int{idx(0, 0), idx(1, 0), idx(2, 0), idx(0, 1), idx(2, 1), idx(0, 2), idx(1, 2), idx(2, 2)} {
		changes = append(changes,
			search.EdgeChange{From: n, To: idx(1, 1), NewCost: 1e18},
			search.EdgeChange{From: idx(1, 1), To: n, NewCost: 1e18})
	}
	l.MapChange(changes)

	res, err := l.ComputeShortestPath()
	if err != nil {
		t.Fatalf("repaired ComputeShortestPath: %v", err)
	}
	unblockedCost := 2 * 1.4142135623730951
	if res.Cost <= unblockedCost {
		t.Errorf("Cost after blocking center = %v, want strictly greater than %v", res.Cost, unblockedCost)
	}
}

func TestLPAStarSetGoalRejectsOutOfRangeVertex(t *testing.T) {
	g := grid3x3()
	l, err := search.NewLPAStar(g, 0, 8)
	if err != nil {
		t.Fatalf("NewLPAStar: %v", err)
	}
	if err := l.SetGoal(-1); err != search.ErrInvalidQuery {
		t.Errorf("SetGoal(-1) error = %v, want ErrInvalidQuery", err)
	}
	if err := l.SetGoal(g.NumNodes()); err != search.ErrInvalidQuery {
		t.Errorf("SetGoal(NumNodes()) error = %v, want ErrInvalidQuery", err)
	}
}

func TestLPAStarNoPath(t *testing.T) {
	positions := []geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(1, 0)}
	g := listgraph.New(positions)
	l, err := search.NewLPAStar(g, 0, 1)
	if err != nil {
		t.Fatalf("NewLPAStar: %v", err)
	}
	if _, err := l.ComputeShortestPath(); err != search.ErrNoPath {
		t.Errorf("ComputeShortestPath() err = %v, want ErrNoPath", err)
	}
}
