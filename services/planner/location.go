package planner

import (
	"math"

	"github.com/ao561/cues-hackathon/models"
)

const (
	minRegionRadiusM = 1500
	regionBufferM    = 500
)

// AggregateLocation computes the candidate meeting region from participant
// fixes and gates the seating mode on weather. Precise fixes dominate vague
// ones: each fix is weighted by the inverse of its accuracy radius.
//
// ok is false when no participant location is known, which downstream turns
// into a NoCandidateRegion outcome.
func AggregateLocation(locationSnippets, weatherSnippets []models.ContextSnippet) (region models.Region, mode models.SeatingMode, notes []string, ok bool) {
	var fixes []models.Location
	for _, s := range locationSnippets {
		if s.Failed || s.Location == nil {
			continue
		}
		fixes = append(fixes, *s.Location)
	}
	if len(fixes) == 0 {
		return models.Region{}, "", nil, false
	}

	var sumLat, sumLng, sumWeight float64
	for _, fix := range fixes {
		accuracy := fix.AccuracyM
		if accuracy < 1 {
			accuracy = 1
		}
		w := 1 / accuracy
		sumLat += fix.Point.Lat * w
		sumLng += fix.Point.Lng * w
		sumWeight += w
	}
	center := models.GeoPoint{Lat: sumLat / sumWeight, Lng: sumLng / sumWeight}

	radius := float64(minRegionRadiusM)
	for _, fix := range fixes {
		if d := haversineM(center, fix.Point) + regionBufferM; d > radius {
			radius = d
		}
	}
	region = models.Region{Center: center, RadiusM: radius}

	mode, weatherNotes := seatingMode(weatherSnippets)
	return region, mode, weatherNotes, true
}

// seatingMode gates indoor/outdoor on the weather snippet. Missing weather
// defaults to indoor, the safer call, and says so.
func seatingMode(weatherSnippets []models.ContextSnippet) (models.SeatingMode, []string) {
	for _, s := range weatherSnippets {
		if s.Failed || s.Weather == nil {
			continue
		}
		switch s.Weather.Condition {
		case models.WeatherPrecipitation:
			return models.SeatingIndoor, []string{"indoor seating required: precipitation expected"}
		case models.WeatherExtremeTemp:
			return models.SeatingIndoor, []string{"indoor seating required: extreme temperature"}
		default:
			return models.SeatingEither, nil
		}
	}
	return models.SeatingIndoor, []string{"weather unknown, defaulting to indoor seating"}
}

// haversineM returns the great-circle distance between two points in metres.
func haversineM(a, b models.GeoPoint) float64 {
	const earthRadiusKm = 6371
	dLat := (b.Lat - a.Lat) * (math.Pi / 180)
	dLng := (b.Lng - a.Lng) * (math.Pi / 180)
	latA := a.Lat * (math.Pi / 180)
	latB := b.Lat * (math.Pi / 180)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c * 1000
}
