package concurrent_test

import (
	"testing"

	"github.com/arclab-robotics/gridsearch/pkg/concurrent"
	"github.com/arclab-robotics/gridsearch/pkg/geometry"
	"github.com/arclab-robotics/gridsearch/pkg/listgraph"
)

func smallGraph() *listgraph.Graph {
	positions := []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 0),
		geometry.NewPoint(1, 1),
		geometry.NewPoint(0, 1),
	}
	g := listgraph.New(positions)
	g.AddUndirectedEdge(0, 1)
	g.AddUndirectedEdge(1, 2)
	g.AddUndirectedEdge(2, 3)
	g.AddUndirectedEdge(3, 0)
	g.AddUndirectedEdge(0, 2)
	return g
}

func TestRunBatchReturnsEveryRequest(t *testing.T) {
	g := smallGraph()
	requests := []concurrent.PlanRequest{
		{ID: "a", Graph: g, StartID: 0, GoalID: 2, Algorithm: "astar"},
		{ID: "b", Graph: g, StartID: 1, GoalID: 3, Algorithm: "astar"},
		{ID: "c", Graph: g, StartID: 0, GoalID: 1, Algorithm: "astar"},
	}

	results := concurrent.RunBatch(requests, 2)
	if len(results) != len(requests) {
		t.Fatalf("RunBatch() returned %d results, want %d", len(results), len(requests))
	}

	byID := make(map[string]concurrent.PlanResult, len(results))
	for _, r := range results {
		byID[r.ID] = r
	}
	for _, req := range requests {
		r, ok := byID[req.ID]
		if !ok {
			t.Errorf("missing result for request %q", req.ID)
			continue
		}
		if r.Err != nil {
			t.Errorf("request %q returned error: %v", req.ID, r.Err)
		}
	}
}
