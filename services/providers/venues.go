package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ao561/cues-hackathon/models"
)

const googlePlacesBase = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// GooglePlacesProvider looks up candidate restaurants inside a region via the
// Google Places nearby search.
type GooglePlacesProvider struct {
	APIKey string
	Client *http.Client
}

type placesResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string   `json:"place_id"`
		Name     string   `json:"name"`
		Vicinity string   `json:"vicinity"`
		Rating   float64  `json:"rating"`
		Price    int      `json:"price_level"`
		Types    []string `json:"types"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		OpeningHours struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
	} `json:"results"`
}

func (p *GooglePlacesProvider) Candidates(ctx context.Context, region models.Region, mode models.SeatingMode, window models.TimeInterval, query string) ([]models.Venue, error) {
	if p.APIKey == "" {
		return nil, NewProviderError(models.FailureUnauthorized, fmt.Errorf("google api key not configured"))
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", region.Center.Lat, region.Center.Lng))
	params.Set("radius", strconv.Itoa(int(region.RadiusM)))
	params.Set("type", "restaurant")
	if query != "" {
		params.Set("keyword", query)
	}
	params.Set("key", p.APIKey)

	var data placesResponse
	if err := getJSON(ctx, p.Client, googlePlacesBase, params, &data); err != nil {
		return nil, err
	}

	switch data.Status {
	case "OK", "ZERO_RESULTS":
	case "REQUEST_DENIED":
		return nil, NewProviderError(models.FailureUnauthorized, fmt.Errorf("places search denied: %s", data.Status))
	case "INVALID_REQUEST":
		return nil, NewProviderError(models.FailureInvalidQuery, fmt.Errorf("places search failed: %s", data.Status))
	default:
		return nil, NewProviderError(models.FailureUnavailable, fmt.Errorf("places search failed: %s", data.Status))
	}

	venues := make([]models.Venue, 0, len(data.Results))
	for _, place := range data.Results {
		venues = append(venues, models.Venue{
			ID:        place.PlaceID,
			Name:      place.Name,
			Address:   place.Vicinity,
			Location:  models.GeoPoint{Lat: place.Geometry.Location.Lat, Lng: place.Geometry.Location.Lng},
			Cuisines:  cuisinesFromTypes(place.Types),
			PriceTier: place.Price,
			Rating:    place.Rating,
			OpenNow:   place.OpeningHours.OpenNow,
			// Places does not expose seating; leave it unconstrained.
			Seating: models.SeatingEither,
		})
	}
	return venues, nil
}

// cuisinesFromTypes keeps the place types that actually describe cuisine.
func cuisinesFromTypes(types []string) []string {
	var cuisines []string
	for _, t := range types {
		switch t {
		case "restaurant", "food", "point_of_interest", "establishment":
			continue
		}
		cuisines = append(cuisines, strings.ToLower(strings.ReplaceAll(t, "_", " ")))
	}
	return cuisines
}
