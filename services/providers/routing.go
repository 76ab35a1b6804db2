package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/ao561/cues-hackathon/models"
)

const googleDirectionsBase = "https://maps.googleapis.com/maps/api/directions/json"

// GoogleDirectionsProvider computes personalized routes via the Google
// Directions API.
type GoogleDirectionsProvider struct {
	APIKey string
	Client *http.Client
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
			Steps []struct {
				HTMLInstructions string `json:"html_instructions"`
				Distance         struct {
					Text string `json:"text"`
				} `json:"distance"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func (p *GoogleDirectionsProvider) Route(ctx context.Context, participant models.Participant, origin *models.Location, venue models.Venue, travelMode string) (*models.PersonalizedRoute, error) {
	if p.APIKey == "" {
		return nil, NewProviderError(models.FailureUnauthorized, fmt.Errorf("google api key not configured"))
	}
	if travelMode == "" {
		travelMode = "walking"
	}

	params := url.Values{}
	if origin != nil {
		params.Set("origin", fmt.Sprintf("%f,%f", origin.Point.Lat, origin.Point.Lng))
	} else if participant.Address != "" {
		params.Set("origin", participant.Address)
	} else {
		return nil, NewProviderError(models.FailureInvalidQuery,
			fmt.Errorf("no routing origin for participant %s", participant.ID))
	}
	params.Set("destination", fmt.Sprintf("%f,%f", venue.Location.Lat, venue.Location.Lng))
	params.Set("mode", travelMode)
	params.Set("departure_time", "now")
	params.Set("key", p.APIKey)

	var data directionsResponse
	if err := getJSON(ctx, p.Client, googleDirectionsBase, params, &data); err != nil {
		return nil, err
	}

	switch data.Status {
	case "OK":
	case "REQUEST_DENIED":
		return nil, NewProviderError(models.FailureUnauthorized, fmt.Errorf("directions denied: %s", data.Status))
	case "NOT_FOUND", "ZERO_RESULTS", "INVALID_REQUEST":
		return nil, NewProviderError(models.FailureInvalidQuery, fmt.Errorf("no route found: %s", data.Status))
	default:
		return nil, NewProviderError(models.FailureUnavailable, fmt.Errorf("directions failed: %s", data.Status))
	}
	if len(data.Routes) == 0 || len(data.Routes[0].Legs) == 0 {
		return nil, NewProviderError(models.FailureInvalidQuery, fmt.Errorf("empty route for participant %s", participant.ID))
	}

	leg := data.Routes[0].Legs[0]
	steps := make([]string, 0, len(leg.Steps))
	for _, step := range leg.Steps {
		steps = append(steps, fmt.Sprintf("%s (%s)", stripHTML(step.HTMLInstructions), step.Distance.Text))
	}

	return &models.PersonalizedRoute{
		ParticipantID: participant.ID,
		Available:     true,
		DistanceText:  leg.Distance.Text,
		DurationText:  leg.Duration.Text,
		Steps:         steps,
		Polyline:      data.Routes[0].OverviewPolyline.Points,
	}, nil
}

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// stripHTML flattens the API's html_instructions into plain text.
func stripHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
