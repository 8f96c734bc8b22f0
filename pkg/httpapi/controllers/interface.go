package controllers

import "context"

// PlanningService is the boundary between the HTTP layer and the search
// core: everything a handler needs, expressed without any httprouter or
// gobwas/ws types leaking in, so controllers stay isolated from the
// search core underneath.
type PlanningService interface {
	// Plan answers a single one-shot query.
	Plan(ctx context.Context, req PlanRequest) (PlanResponse, error)

	// PlanBatch answers many one-shot queries against a single shared
	// grid concurrently, one search per query.
	PlanBatch(ctx context.Context, req BatchPlanRequest) (BatchPlanResponse, error)

	// CreateSession starts a persistent D* Lite session over a scenario
	// and returns its id and initial plan.
	CreateSession(ctx context.Context, req CreateSessionRequest) (CreateSessionResponse, error)

	// UpdateRobotLoc moves a session's robot anchor and returns the
	// replanned path.
	UpdateRobotLoc(ctx context.Context, sessionID string, req RobotLocRequest) (PlanResponse, error)

	// ApplyMapChange folds a batch of occupancy readings into a session's
	// map and returns the replanned path.
	ApplyMapChange(ctx context.Context, sessionID string, req MapChangeRequest) (PlanResponse, error)

	// Subscribe registers a diagnostics listener for a session, returning
	// a channel of expanded-node events and an unsubscribe function. The
	// channel is closed when unsubscribe is called.
	Subscribe(sessionID string) (events <-chan ExpandedNodeEvent, unsubscribe func(), err error)
}
