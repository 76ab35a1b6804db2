package gateway

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/services/providers"
)

// Role fetchers translate each provider's native contract into snippets.
// Per-participant roles fan out concurrently; a single participant's failure
// becomes that participant's failure snippet, while a wholesale failure (all
// participants down) is returned as an error so the gateway can retry the
// role once.

// AvailabilityFetcher queries free/busy per participant.
type AvailabilityFetcher struct {
	Calendar providers.CalendarProvider
}

func (f *AvailabilityFetcher) Role() models.ProviderRole { return models.RoleAvailability }

func (f *AvailabilityFetcher) Fetch(ctx context.Context, participants []models.Participant, window models.TimeInterval) ([]models.ContextSnippet, error) {
	return fanOut(ctx, f.Role(), participants, func(ctx context.Context, p models.Participant) (models.ContextSnippet, error) {
		free, err := f.Calendar.FreeBusy(ctx, p, window)
		if err != nil {
			return models.ContextSnippet{}, err
		}
		return models.ContextSnippet{Role: models.RoleAvailability, ParticipantID: p.ID, Availability: free}, nil
	})
}

// LocationFetcher resolves each participant's current fix.
type LocationFetcher struct {
	Location providers.LocationProvider
}

func (f *LocationFetcher) Role() models.ProviderRole { return models.RoleLocation }

func (f *LocationFetcher) Fetch(ctx context.Context, participants []models.Participant, window models.TimeInterval) ([]models.ContextSnippet, error) {
	return fanOut(ctx, f.Role(), participants, func(ctx context.Context, p models.Participant) (models.ContextSnippet, error) {
		loc, err := f.Location.CurrentLocation(ctx, p)
		if err != nil {
			return models.ContextSnippet{}, err
		}
		return models.ContextSnippet{Role: models.RoleLocation, ParticipantID: p.ID, Location: loc}, nil
	})
}

// ProfileFetcher loads stored constraints per participant.
type ProfileFetcher struct {
	Profiles providers.ProfileProvider
}

func (f *ProfileFetcher) Role() models.ProviderRole { return models.RoleProfile }

func (f *ProfileFetcher) Fetch(ctx context.Context, participants []models.Participant, window models.TimeInterval) ([]models.ContextSnippet, error) {
	return fanOut(ctx, f.Role(), participants, func(ctx context.Context, p models.Participant) (models.ContextSnippet, error) {
		profile, err := f.Profiles.Profile(ctx, p.ID)
		if err != nil {
			return models.ContextSnippet{}, err
		}
		return models.ContextSnippet{Role: models.RoleProfile, ParticipantID: p.ID, Profile: profile}, nil
	})
}

// SentimentFetcher extracts soft preference signals for the whole group in
// one call.
type SentimentFetcher struct {
	Sentiment providers.SentimentProvider
}

func (f *SentimentFetcher) Role() models.ProviderRole { return models.RoleSentiment }

func (f *SentimentFetcher) Fetch(ctx context.Context, participants []models.Participant, window models.TimeInterval) ([]models.ContextSnippet, error) {
	signals, err := f.Sentiment.Extract(ctx, participants)
	if err != nil {
		return nil, err
	}
	return []models.ContextSnippet{{Role: models.RoleSentiment, Sentiment: signals}}, nil
}

// WeatherFetcher reports the condition at the group's anchor point, which is
// fixed at wiring time so the weather call never waits on the location role.
type WeatherFetcher struct {
	Weather providers.WeatherProvider
	Anchor  models.GeoPoint
}

func (f *WeatherFetcher) Role() models.ProviderRole { return models.RoleWeather }

func (f *WeatherFetcher) Fetch(ctx context.Context, participants []models.Participant, window models.TimeInterval) ([]models.ContextSnippet, error) {
	report, err := f.Weather.Condition(ctx, f.Anchor)
	if err != nil {
		return nil, err
	}
	return []models.ContextSnippet{{Role: models.RoleWeather, Weather: report}}, nil
}

// fanOut runs one call per participant concurrently and settles all of them.
// Deterministic ordering: snippets come back sorted by participant ID.
func fanOut(ctx context.Context, role models.ProviderRole, participants []models.Participant,
	call func(ctx context.Context, p models.Participant) (models.ContextSnippet, error),
) ([]models.ContextSnippet, error) {
	type outcome struct {
		snippet models.ContextSnippet
		err     error
	}

	resultsCh := make(chan outcome, len(participants))
	var wg sync.WaitGroup
	for _, p := range participants {
		wg.Add(1)
		go func(p models.Participant) {
			defer wg.Done()
			snippet, err := call(ctx, p)
			if err != nil {
				snippet = models.FailedSnippet(role, p.ID, providers.Classify(err), err.Error())
			}
			resultsCh <- outcome{snippet: snippet, err: err}
		}(p)
	}
	wg.Wait()
	close(resultsCh)

	var snippets []models.ContextSnippet
	var errs []error
	for r := range resultsCh {
		snippets = append(snippets, r.snippet)
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	// Wholesale failure is reported upward so the gateway can retry.
	if len(errs) == len(participants) && len(participants) > 0 {
		return nil, errors.Join(errs...)
	}

	sort.Slice(snippets, func(i, j int) bool { return snippets[i].ParticipantID < snippets[j].ParticipantID })
	return snippets, nil
}
