package planner

import (
	"context"
	"sort"
	"sync"

	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/services/providers"
	"github.com/ao561/cues-hackathon/utils"
)

// GenerateRoutes fans out one routing call per participant. A failed route
// never sinks the plan: the participant's entry comes back flagged with the
// failure detail instead. Results are ordered by participant ID.
func GenerateRoutes(
	ctx context.Context,
	routing providers.RoutingProvider,
	participants []models.Participant,
	origins map[string]*models.Location,
	venue models.Venue,
	travelMode string,
) []models.PersonalizedRoute {
	logger := utils.GetLogger().Sugar()

	var wg sync.WaitGroup
	results := make(chan models.PersonalizedRoute, len(participants))

	for _, participant := range participants {
		wg.Add(1)
		go func(p models.Participant) {
			defer wg.Done()
			route, err := routing.Route(ctx, p, origins[p.ID], venue, travelMode)
			if err != nil {
				logger.Warnw("Route generation failed", "participant", p.ID, "error", err)
				results <- models.PersonalizedRoute{
					ParticipantID: p.ID,
					Available:     false,
					Detail:        err.Error(),
				}
				return
			}
			results <- *route
		}(participant)
	}

	wg.Wait()
	close(results)

	routes := make([]models.PersonalizedRoute, 0, len(participants))
	for route := range results {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].ParticipantID < routes[j].ParticipantID
	})
	return routes
}
