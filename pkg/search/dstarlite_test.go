package search_test

import (
	"testing"

	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

func TestDStarLiteMatchesAStarOnStaticGraph(t *testing.T) {
	g := grid3x3()
	d, err := search.NewDStarLite(g, 0, 8)
	if err != nil {
		t.Fatalf("NewDStarLite: %v", err)
	}
	res, err := d.ComputeShortestPath()
	if err != nil {
		t.Fatalf("ComputeShortestPath: %v", err)
	}
	want := 2 * 1.4142135623730951
	if !geometry.CloseEnough(res.Cost, want) {
		t.Errorf("Cost = %v, want %v", res.Cost, want)
	}
	path, err := d.GetPath()
	if err != nil {
		t.Fatalf("GetPath: %v", err)
	}
	if path[0] != 0 || path[len(path)-1] != 8 {
		t.Errorf("Path = %v, want endpoints 0 and 8", path)
	}
}

func TestDStarLiteTracksRobotMovement(t *testing.T) {
	g := grid3x3()
	d, err := search.NewDStarLite(g, 0, 8)
	if err != nil {
		t.Fatalf("NewDStarLite: %v", err)
	}
	if _, err := d.ComputeShortestPath(); err != nil {
		t.Fatalf("initial ComputeShortestPath: %v", err)
	}

	// The robot advances one diagonal step toward the goal.
	d.UpdateRobotLoc(4)

	res, err := d.ComputeShortestPath()
	if err != nil {
		t.Fatalf("ComputeShortestPath after move: %v", err)
	}
	want := 1.4142135623730951
	if !geometry.CloseEnough(res.Cost, want) {
		t.Errorf("Cost after moving to center = %v, want %v", res.Cost, want)
	}
}

func TestDStarLiteUpdateRobotLocRejectsOutOfRangeVertex(t *testing.T) {
	g := grid3x3()
	d, err := search.NewDStarLite(g, 0, 8)
	if err != nil {
		t.Fatalf("NewDStarLite: %v", err)
	}
	if err := d.UpdateRobotLoc(-1); err != search.ErrInvalidQuery {
		t.Errorf("UpdateRobotLoc(-1) error = %v, want ErrInvalidQuery", err)
	}
	if err := d.UpdateRobotLoc(g.NumNodes()); err != search.ErrInvalidQuery {
		t.Errorf("UpdateRobotLoc(NumNodes()) error = %v, want ErrInvalidQuery", err)
	}
}
