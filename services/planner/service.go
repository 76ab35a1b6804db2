package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/services/providers"
	"github.com/ao561/cues-hackathon/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	planKeyPrefix = "plan:"
	planTTL       = 24 * time.Hour
)

// DefaultPlanningService is the production planning engine. The orchestrator
// settles the five context roles; venue lookup and routing run afterwards
// because they depend on the resolved region and choice.
type DefaultPlanningService struct {
	orchestrator *Orchestrator
	venues       providers.VenueProvider
	routing      providers.RoutingProvider
	phraser      Phraser       // optional
	cache        *redis.Client // optional, plans are uncached when nil
	deadline     time.Duration
}

// NewPlanningService wires the planning engine. phraser and cache may be nil.
func NewPlanningService(
	orchestrator *Orchestrator,
	venues providers.VenueProvider,
	routing providers.RoutingProvider,
	phraser Phraser,
	cache *redis.Client,
	deadline time.Duration,
) PlanningService {
	return &DefaultPlanningService{
		orchestrator: orchestrator,
		venues:       venues,
		routing:      routing,
		phraser:      phraser,
		cache:        cache,
		deadline:     deadline,
	}
}

func (s *DefaultPlanningService) Plan(ctx context.Context, req models.PlanRequest) (*models.Recommendation, error) {
	logger := utils.GetLogger()

	if len(req.Participants) == 0 {
		return nil, NewInvalidRequestError("at least one participant is required")
	}
	if !req.Window.IsValid() {
		return nil, NewInvalidRequestError("planning window must end after it starts")
	}

	if s.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deadline)
		defer cancel()
	}

	bundle, err := s.orchestrator.Aggregate(ctx, req.Participants, req.Window)
	if err != nil {
		return nil, err
	}

	intervals := ResolveAvailability(bundle.Role(models.RoleAvailability))
	constraints := MergeConstraints(bundle.Role(models.RoleProfile), bundle.Role(models.RoleSentiment))
	region, mode, locationNotes, regionOK := AggregateLocation(bundle.Role(models.RoleLocation), bundle.Role(models.RoleWeather))
	for _, note := range locationNotes {
		constraints.AddNote(note)
	}

	var venues []models.Venue
	if regionOK && len(intervals) > 0 {
		venues, err = s.venues.Candidates(ctx, region, mode, req.Window, req.Query)
		if err != nil {
			logger.Warn("venue lookup failed", zap.Error(err))
			constraints.AddNote(fmt.Sprintf("venue lookup failed: %v", err))
			venues = nil
		}
	}

	rec := Synthesize(intervals, region, mode, regionOK, constraints, venues, bundle.Confidence())

	if !rec.Infeasible {
		origins := originsByParticipant(bundle.Role(models.RoleLocation))
		rec.Routes = GenerateRoutes(ctx, s.routing, req.Participants, origins, *rec.Venue, req.TravelMode)
		for _, route := range rec.Routes {
			if !route.Available {
				rec.Rationale.Notes = append(rec.Rationale.Notes,
					fmt.Sprintf("directions unavailable for %s: %s", route.ParticipantID, route.Detail))
			}
		}
	}

	if s.phraser != nil {
		summary, perr := s.phraser.Summarize(ctx, rec)
		if perr != nil {
			logger.Warn("rationale phrasing failed", zap.Error(perr))
		} else {
			rec.Rationale.Summary = summary
		}
	}

	rec.PlanID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	s.storePlan(ctx, rec)

	logger.Info("plan computed",
		zap.String("planId", rec.PlanID),
		zap.Bool("infeasible", rec.Infeasible),
		zap.Float64("confidence", rec.Confidence))
	return rec, nil
}

func (s *DefaultPlanningService) GetPlan(ctx context.Context, planID string) (*models.Recommendation, error) {
	if s.cache == nil {
		return nil, NewPlanNotFoundError(planID)
	}
	raw, err := s.cache.Get(ctx, planKeyPrefix+planID).Result()
	if err == redis.Nil {
		return nil, NewPlanNotFoundError(planID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %s: %w", planID, err)
	}
	var rec models.Recommendation
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode plan %s: %w", planID, err)
	}
	return &rec, nil
}

// storePlan persists the finished recommendation. Cache trouble never fails
// the request that just succeeded.
func (s *DefaultPlanningService) storePlan(ctx context.Context, rec *models.Recommendation) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		utils.GetLogger().Warn("failed to encode plan", zap.String("planId", rec.PlanID), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, planKeyPrefix+rec.PlanID, payload, planTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache plan", zap.String("planId", rec.PlanID), zap.Error(err))
	}
}

// originsByParticipant indexes the resolved location fixes for routing.
func originsByParticipant(snippets []models.ContextSnippet) map[string]*models.Location {
	origins := make(map[string]*models.Location, len(snippets))
	for _, s := range snippets {
		if !s.Failed && s.Location != nil {
			origins[s.ParticipantID] = s.Location
		}
	}
	return origins
}
