package concurrent

import (
	"github.com/arclab-robotics/gridsearch/pkg/search"
)

// PlanRequest is one independent start/goal query to run against a shared
// graph. Algorithm selects which search variant answers it.
type PlanRequest struct {
	ID        string
	Graph     search.Graph
	StartID   int
	GoalID    int
	Algorithm string // "astar" or "theta" ("theta" requires LOS)
	LOS       search.LineOfSight
}

// PlanResult is the outcome of one PlanRequest.
type PlanResult struct {
	ID       string
	Result   search.Result
	Expanded int
	Err      error
}

// RunBatch runs every request in requests concurrently across numWorkers
// goroutines, each owning its own search instance, and returns their
// results in the order the workers finish (not request order). The search
// core itself never runs more than one goroutine against a single
// instance: every worker builds its own AStar/ThetaStar before calling
// ComputeShortestPath, matching the core's single-threaded contract.
func RunBatch(requests []PlanRequest, numWorkers int) []PlanResult {
	pool := NewWorkerPool[PlanRequest, PlanResult](numWorkers, len(requests))
	pool.Start(runOne)

	for _, req := range requests {
		pool.AddJob(req)
	}
	pool.Close()
	pool.Wait()

	results := make([]PlanResult, 0, len(requests))
	for res := range pool.CollectResults() {
		results = append(results, res)
	}
	return results
}

func runOne(req PlanRequest) PlanResult {
	switch req.Algorithm {
	case "theta":
		ts, err := search.NewThetaStar(req.Graph, req.StartID, req.GoalID, req.LOS)
		if err != nil {
			return PlanResult{ID: req.ID, Err: err}
		}
		res, err := ts.ComputeShortestPath()
		return PlanResult{ID: req.ID, Result: res, Expanded: len(ts.GetExpandedNodes()), Err: err}
	default:
		as, err := search.NewAStar(req.Graph, req.StartID, req.GoalID)
		if err != nil {
			return PlanResult{ID: req.ID, Err: err}
		}
		res, err := as.ComputeShortestPath()
		return PlanResult{ID: req.ID, Result: res, Expanded: len(as.GetExpandedNodes()), Err: err}
	}
}
