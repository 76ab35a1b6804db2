package models

// Venue is one candidate meeting place with the attributes scoring needs.
type Venue struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Address   string      `json:"address"`
	Location  GeoPoint    `json:"location"`
	Cuisines  []string    `json:"cuisines"`
	PriceTier int         `json:"priceTier"` // 0-4, Google Places price_level scale
	Rating    float64     `json:"rating"`
	OpenNow   bool        `json:"openNow"`
	Seating   SeatingMode `json:"seating"`
}

// ServesCuisine reports whether the venue lists the cuisine, case-insensitively
// matched by the caller's normalization.
func (v Venue) ServesCuisine(cuisine string) bool {
	for _, c := range v.Cuisines {
		if c == cuisine {
			return true
		}
	}
	return false
}

// CandidateWindow pairs a common free interval with the candidate region and
// seating mode; it stays feasible until a constraint falsifies it.
type CandidateWindow struct {
	Window TimeInterval `json:"window"`
	Region Region       `json:"region"`
	Mode   SeatingMode  `json:"mode"`
}
