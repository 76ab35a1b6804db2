package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ao561/cues-hackathon/models"
)

const googleGeocodingBase = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleLocationProvider resolves a participant's registered address to a
// position fix via the Google Geocoding API. Accuracy is inferred from the
// geocoder's location type, so rooftop fixes outweigh approximate ones
// downstream.
type GoogleLocationProvider struct {
	APIKey string
	Client *http.Client
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
			LocationType string `json:"location_type"`
		} `json:"geometry"`
	} `json:"results"`
}

func (p *GoogleLocationProvider) CurrentLocation(ctx context.Context, participant models.Participant) (*models.Location, error) {
	if participant.Address == "" {
		return nil, NewProviderError(models.FailureInvalidQuery,
			fmt.Errorf("participant %s has no known address", participant.ID))
	}
	if p.APIKey == "" {
		return nil, NewProviderError(models.FailureUnauthorized, fmt.Errorf("google api key not configured"))
	}

	params := url.Values{}
	params.Set("address", participant.Address)
	params.Set("key", p.APIKey)

	var data geocodeResponse
	if err := getJSON(ctx, p.Client, googleGeocodingBase, params, &data); err != nil {
		return nil, err
	}

	switch data.Status {
	case "OK":
	case "REQUEST_DENIED":
		return nil, NewProviderError(models.FailureUnauthorized, fmt.Errorf("geocoding denied: %s", data.Status))
	case "ZERO_RESULTS", "INVALID_REQUEST":
		return nil, NewProviderError(models.FailureInvalidQuery, fmt.Errorf("geocoding failed: %s", data.Status))
	default:
		return nil, NewProviderError(models.FailureUnavailable, fmt.Errorf("geocoding failed: %s", data.Status))
	}
	if len(data.Results) == 0 {
		return nil, NewProviderError(models.FailureInvalidQuery,
			fmt.Errorf("no geocoding results for %q", participant.Address))
	}

	first := data.Results[0]
	return &models.Location{
		Point:     models.GeoPoint{Lat: first.Geometry.Location.Lat, Lng: first.Geometry.Location.Lng},
		AccuracyM: accuracyForLocationType(first.Geometry.LocationType),
	}, nil
}

// accuracyForLocationType maps the geocoder's precision class to an accuracy
// radius in metres.
func accuracyForLocationType(locationType string) float64 {
	switch locationType {
	case "ROOFTOP":
		return 25
	case "RANGE_INTERPOLATED":
		return 50
	case "GEOMETRIC_CENTER":
		return 100
	default:
		return 500
	}
}
