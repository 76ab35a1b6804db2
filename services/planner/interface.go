package planner

import (
	"context"

	"github.com/ao561/cues-hackathon/models"
)

// PlanningService runs one full orchestration pass: gather context, resolve
// time and place, merge constraints, pick a venue, and generate routes.
type PlanningService interface {
	// Plan produces a recommendation (possibly an explicit infeasibility)
	// for the request. It errors only when context is insufficient or the
	// request itself is malformed.
	Plan(ctx context.Context, req models.PlanRequest) (*models.Recommendation, error)

	// GetPlan retrieves a previously computed recommendation by plan ID.
	GetPlan(ctx context.Context, planID string) (*models.Recommendation, error)
}

// Phraser optionally rewrites a decided recommendation's rationale into a
// conversational summary. It never changes the decision.
type Phraser interface {
	Summarize(ctx context.Context, rec *models.Recommendation) (string, error)
}
