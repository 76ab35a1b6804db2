package models

// ConstraintKind separates disqualifying rules from ranking preferences.
type ConstraintKind string

const (
	ConstraintHard ConstraintKind = "hard"
	ConstraintSoft ConstraintKind = "soft"
)

// ConstraintType names what a constraint tests on a venue.
type ConstraintType string

const (
	// Hard: venue must not serve the excluded cuisine/ingredient.
	ConstraintExcludeCuisine ConstraintType = "exclude_cuisine"
	// Hard: venue price tier must not exceed MaxPrice.
	ConstraintMaxPrice ConstraintType = "max_price"
	// Soft: venue serving this cuisine scores positively.
	ConstraintPreferCuisine ConstraintType = "prefer_cuisine"
	// Soft: venue serving this cuisine scores negatively.
	ConstraintAvoidCuisine ConstraintType = "avoid_cuisine"
)

// Constraint is one merged rule, attributable to the participants it came from.
type Constraint struct {
	Kind     ConstraintKind `json:"kind"`
	Type     ConstraintType `json:"type"`
	Value    string         `json:"value,omitempty"`
	MaxPrice int            `json:"maxPrice,omitempty"`
	Weight   float64        `json:"weight,omitempty"` // soft constraints only
	Owners   []string       `json:"owners"`
}

// ConstraintSet is the merged, ranked constraint view for one request.
// Hard constraints are never dropped; down-weighted softs are recorded in
// Notes rather than silently discarded.
type ConstraintSet struct {
	Constraints []Constraint `json:"constraints"`
	Notes       []string     `json:"notes,omitempty"`
}

// Hard returns the disqualifying constraints.
func (cs *ConstraintSet) Hard() []Constraint {
	var out []Constraint
	for _, c := range cs.Constraints {
		if c.Kind == ConstraintHard {
			out = append(out, c)
		}
	}
	return out
}

// Soft returns the ranking constraints.
func (cs *ConstraintSet) Soft() []Constraint {
	var out []Constraint
	for _, c := range cs.Constraints {
		if c.Kind == ConstraintSoft {
			out = append(out, c)
		}
	}
	return out
}

// AddNote records a merge decision for the rationale.
func (cs *ConstraintSet) AddNote(note string) {
	cs.Notes = append(cs.Notes, note)
}
