package models

import "time"

// PersonalizedRoute is one participant's directions to the chosen venue.
// A failed routing call leaves Available false; the plan still goes out.
type PersonalizedRoute struct {
	ParticipantID string   `json:"participantId"`
	Available     bool     `json:"available"`
	DistanceText  string   `json:"distanceText,omitempty"`
	DurationText  string   `json:"durationText,omitempty"`
	Steps         []string `json:"steps,omitempty"`
	Polyline      string   `json:"polyline,omitempty"`
	Detail        string   `json:"detail,omitempty"` // failure detail when unavailable
}

// InfeasibleReason explains why no valid plan exists. Infeasibility is a
// first-class outcome, distinct from a system error.
type InfeasibleReason string

const (
	NoCommonAvailability InfeasibleReason = "no_common_availability"
	NoQualifyingVenue    InfeasibleReason = "no_qualifying_venue"
	NoCandidateRegion    InfeasibleReason = "no_candidate_region"
)

// Rationale is the human-readable explanation trail of a decision.
type Rationale struct {
	Satisfied []string `json:"satisfied,omitempty"`
	Violated  []string `json:"violated,omitempty"`
	Notes     []string `json:"notes,omitempty"`
	Summary   string   `json:"summary,omitempty"` // optional LLM phrasing of the decided plan
}

// Recommendation is the final, immutable result of one plan request.
// When Infeasible is set, Venue and Window are empty and Reason explains
// the specific blocker.
type Recommendation struct {
	PlanID     string              `json:"planId"`
	Venue      *Venue              `json:"venue,omitempty"`
	Window     TimeInterval        `json:"window,omitzero"`
	Routes     []PersonalizedRoute `json:"routes,omitempty"`
	Confidence float64             `json:"confidence"`
	Rationale  Rationale           `json:"rationale"`
	Infeasible bool                `json:"infeasible"`
	Reason     InfeasibleReason    `json:"reason,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// PlanRequest is the caller's trigger for one orchestration pass.
type PlanRequest struct {
	Participants []Participant `json:"participants"`
	Query        string        `json:"query"`
	Window       TimeInterval  `json:"window"`
	TravelMode   string        `json:"travelMode,omitempty"` // walking, driving, bicycling, transit
}
