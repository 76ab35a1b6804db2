package planner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ao561/cues-hackathon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVenues struct {
	venues    []models.Venue
	err       error
	lastQuery string
}

func (f *fakeVenues) Candidates(ctx context.Context, region models.Region, mode models.SeatingMode, window models.TimeInterval, query string) ([]models.Venue, error) {
	f.lastQuery = query
	return f.venues, f.err
}

func fullContextOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	return NewOrchestrator(allRoleGateways(t,
		okFetcher(models.RoleAvailability,
			availabilitySnippet("alice", iv(t, 18, 0, 21, 0)),
			availabilitySnippet("bob", iv(t, 19, 0, 20, 0)),
		),
		okFetcher(models.RoleLocation,
			locationSnippet("alice", 51.500, -0.100, 25),
			locationSnippet("bob", 51.502, -0.102, 50),
		),
		okFetcher(models.RoleProfile,
			profileSnippet(models.Profile{ParticipantID: "alice", DietaryExclusions: []string{"peanut"}}),
		),
		okFetcher(models.RoleSentiment, sentimentSnippet(
			models.SentimentSignal{ParticipantID: "bob", Food: "sushi", Sentiment: models.SentimentLoved, Mentions: 2, Recency: 0.9},
		)),
		okFetcher(models.RoleWeather, weatherSnippet(models.WeatherClear)),
	)...)
}

func inRegionVenue(id, name string, cuisines ...string) models.Venue {
	v := venue(id, name, cuisines...)
	v.Location = models.GeoPoint{Lat: 51.5005, Lng: -0.1005}
	return v
}

func planRequest(t *testing.T) models.PlanRequest {
	t.Helper()
	return models.PlanRequest{
		Participants: testParticipants(),
		Query:        "dinner tonight",
		Window:       iv(t, 17, 0, 23, 0),
		TravelMode:   "walking",
	}
}

func TestPlanFullFlow(t *testing.T) {
	venues := &fakeVenues{venues: []models.Venue{
		inRegionVenue("v-sushi", "Sushi Bar", "sushi"),
		inRegionVenue("v-nutty", "Nut House", "peanut"),
	}}
	svc := NewPlanningService(fullContextOrchestrator(t), venues, &fakeRouting{}, nil, nil, 5*time.Second)

	rec, err := svc.Plan(context.Background(), planRequest(t))
	require.NoError(t, err)

	require.False(t, rec.Infeasible)
	assert.Equal(t, "v-sushi", rec.Venue.ID)
	assert.Equal(t, iv(t, 19, 0, 20, 0), rec.Window)
	assert.InDelta(t, 1.0, rec.Confidence, 1e-9)
	assert.NotEmpty(t, rec.PlanID)
	assert.False(t, rec.CreatedAt.IsZero())
	require.Len(t, rec.Routes, 2)
	// The free-text query rides along into the venue search.
	assert.Equal(t, "dinner tonight", venues.lastQuery)
}

func TestPlanReducedConfidenceStillSucceeds(t *testing.T) {
	orch := NewOrchestrator(allRoleGateways(t,
		okFetcher(models.RoleAvailability, availabilitySnippet("alice", iv(t, 18, 0, 21, 0))),
		okFetcher(models.RoleLocation, locationSnippet("alice", 51.500, -0.100, 25)),
		okFetcher(models.RoleProfile, profileSnippet(models.Profile{ParticipantID: "alice"})),
		okFetcher(models.RoleSentiment, sentimentSnippet()),
		failingFetcher(models.RoleWeather, models.FailureUnavailable),
	)...)
	venues := &fakeVenues{venues: []models.Venue{inRegionVenue("v-1", "Venue")}}
	svc := NewPlanningService(orch, venues, &fakeRouting{}, nil, nil, 5*time.Second)

	rec, err := svc.Plan(context.Background(), planRequest(t))
	require.NoError(t, err)
	require.False(t, rec.Infeasible)
	assert.InDelta(t, 0.8, rec.Confidence, 1e-9)
	// Failed weather means the indoor default, and the rationale says so.
	assert.Contains(t, rec.Rationale.Notes, "weather unknown, defaulting to indoor seating")
}

func TestPlanInsufficientContext(t *testing.T) {
	orch := NewOrchestrator(allRoleGateways(t,
		failingFetcher(models.RoleAvailability, models.FailureUnavailable),
		failingFetcher(models.RoleLocation, models.FailureUnavailable),
		okFetcher(models.RoleProfile, profileSnippet(models.Profile{ParticipantID: "alice"})),
		okFetcher(models.RoleSentiment, sentimentSnippet()),
		okFetcher(models.RoleWeather, weatherSnippet(models.WeatherClear)),
	)...)
	svc := NewPlanningService(orch, &fakeVenues{}, &fakeRouting{}, nil, nil, 5*time.Second)

	_, err := svc.Plan(context.Background(), planRequest(t))
	require.Error(t, err)
	assert.True(t, IsInsufficientContext(err))
}

func TestPlanVenueLookupFailureBecomesInfeasible(t *testing.T) {
	venues := &fakeVenues{err: fmt.Errorf("places api down")}
	svc := NewPlanningService(fullContextOrchestrator(t), venues, &fakeRouting{}, nil, nil, 5*time.Second)

	rec, err := svc.Plan(context.Background(), planRequest(t))
	require.NoError(t, err)
	assert.True(t, rec.Infeasible)
	assert.Equal(t, models.NoQualifyingVenue, rec.Reason)
}

func TestPlanRouteFailureDoesNotBlock(t *testing.T) {
	venues := &fakeVenues{venues: []models.Venue{inRegionVenue("v-1", "Venue")}}
	routing := &fakeRouting{failFor: map[string]bool{"bob": true}}
	svc := NewPlanningService(fullContextOrchestrator(t), venues, routing, nil, nil, 5*time.Second)

	rec, err := svc.Plan(context.Background(), planRequest(t))
	require.NoError(t, err)
	require.False(t, rec.Infeasible)
	require.Len(t, rec.Routes, 2)
	assert.False(t, rec.Routes[1].Available)
}

func TestPlanValidatesRequest(t *testing.T) {
	svc := NewPlanningService(fullContextOrchestrator(t), &fakeVenues{}, &fakeRouting{}, nil, nil, 5*time.Second)

	_, err := svc.Plan(context.Background(), models.PlanRequest{Window: iv(t, 17, 0, 23, 0)})
	assert.Error(t, err)

	_, err = svc.Plan(context.Background(), models.PlanRequest{
		Participants: testParticipants(),
		Window:       models.TimeInterval{Start: at(t, 23, 0), End: at(t, 17, 0)},
	})
	assert.Error(t, err)
}

func TestGetPlanWithoutCache(t *testing.T) {
	svc := NewPlanningService(fullContextOrchestrator(t), &fakeVenues{}, &fakeRouting{}, nil, nil, 5*time.Second)

	_, err := svc.GetPlan(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsPlanNotFound(err))
}
