package models

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Location is a participant position fix with its reported accuracy.
type Location struct {
	Point     GeoPoint `bson:"point" json:"point"`
	AccuracyM float64  `bson:"accuracyM" json:"accuracyM"`
}

// Region is a circular candidate meeting area.
type Region struct {
	Center  GeoPoint `json:"center"`
	RadiusM float64  `json:"radiusM"`
}

// SeatingMode gates venue selection on weather.
type SeatingMode string

const (
	SeatingIndoor  SeatingMode = "indoor"
	SeatingOutdoor SeatingMode = "outdoor"
	SeatingEither  SeatingMode = "either"
)

// Allows reports whether a venue with the given seating satisfies the mode.
func (m SeatingMode) Allows(venue SeatingMode) bool {
	if m == SeatingEither || venue == SeatingEither {
		return true
	}
	return m == venue
}
