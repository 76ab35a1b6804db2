package providers

import (
	"context"

	"github.com/ao561/cues-hackathon/models"
)

// External collaborators consumed by the planning engine. Credential
// acquisition and refresh is each collaborator's own responsibility; the
// engine only sees typed results or errors.

// CalendarProvider answers free/busy queries for one participant.
type CalendarProvider interface {
	FreeBusy(ctx context.Context, participant models.Participant, window models.TimeInterval) ([]models.TimeInterval, error)
}

// LocationProvider resolves a participant's current position fix.
type LocationProvider interface {
	CurrentLocation(ctx context.Context, participant models.Participant) (*models.Location, error)
}

// WeatherProvider reports the categorical condition at a point.
type WeatherProvider interface {
	Condition(ctx context.Context, point models.GeoPoint) (*models.WeatherReport, error)
}

// ProfileProvider returns a participant's stored constraints and preferences.
type ProfileProvider interface {
	Profile(ctx context.Context, participantID string) (*models.Profile, error)
}

// SentimentProvider extracts per-participant soft preference signals from the
// recent chat window.
type SentimentProvider interface {
	Extract(ctx context.Context, participants []models.Participant) ([]models.SentimentSignal, error)
}

// VenueProvider looks up candidate venues inside a region.
type VenueProvider interface {
	Candidates(ctx context.Context, region models.Region, mode models.SeatingMode, window models.TimeInterval, query string) ([]models.Venue, error)
}

// RoutingProvider computes one participant's directions to the venue.
type RoutingProvider interface {
	Route(ctx context.Context, participant models.Participant, origin *models.Location, venue models.Venue, travelMode string) (*models.PersonalizedRoute, error)
}
