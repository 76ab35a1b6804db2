package planner

import (
	"context"

	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/services/gateway"
	"github.com/ao561/cues-hackathon/utils"

	"go.uber.org/zap"
)

// Orchestrator fans the five context roles out in parallel and settles them
// all before anyone downstream reads a snippet. Roles are independent: no
// role's result feeds another's query. A role that has not answered when the
// deadline fires is recorded as a timeout failure, never silently dropped.
type Orchestrator struct {
	gateways map[models.ProviderRole]*gateway.Gateway
}

// NewOrchestrator wires one gateway per provider role. Missing roles are
// tolerated and simply never contribute.
func NewOrchestrator(gateways ...*gateway.Gateway) *Orchestrator {
	byRole := make(map[models.ProviderRole]*gateway.Gateway, len(gateways))
	for _, g := range gateways {
		byRole[g.Role()] = g
	}
	return &Orchestrator{gateways: byRole}
}

type roleResult struct {
	role     models.ProviderRole
	snippets []models.ContextSnippet
}

// Aggregate collects every role's snippets under the request deadline and
// returns the settled bundle. It fails only when both anchor roles,
// availability and location, produced nothing usable.
func (o *Orchestrator) Aggregate(ctx context.Context, participants []models.Participant, window models.TimeInterval) (*models.ContextBundle, error) {
	logger := utils.GetLogger()

	results := make(chan roleResult, len(o.gateways))
	launched := make(map[models.ProviderRole]bool, len(o.gateways))
	for role, g := range o.gateways {
		launched[role] = true
		go func(role models.ProviderRole, g *gateway.Gateway) {
			results <- roleResult{role: role, snippets: g.Fetch(ctx, participants, window)}
		}(role, g)
	}

	bundle := models.NewContextBundle()
	settled := make(map[models.ProviderRole]bool, len(launched))
	for len(settled) < len(launched) {
		select {
		case res := <-results:
			settled[res.role] = true
			bundle.Add(res.snippets...)
		case <-ctx.Done():
			// Deadline hit with roles still in flight. Mark each pending
			// role as timed out so the bundle stays complete.
			for _, role := range models.AllRoles() {
				if launched[role] && !settled[role] {
					settled[role] = true
					bundle.Add(models.FailedSnippet(role, "", models.FailureTimeout, "context aggregation deadline exceeded"))
					logger.Warn("provider role missed deadline", zap.String("role", string(role)))
				}
			}
		}
	}

	if !bundle.RoleContributed(models.RoleAvailability) && !bundle.RoleContributed(models.RoleLocation) {
		logger.Error("both anchor roles failed",
			zap.Int("participants", len(participants)))
		return bundle, NewInsufficientContextError("neither availability nor location context could be gathered")
	}

	logger.Info("context aggregation settled",
		zap.Float64("confidence", bundle.Confidence()),
		zap.Int("participants", len(participants)))
	return bundle, nil
}
