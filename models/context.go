package models

// ProviderRole is one of the five independent context dimensions.
type ProviderRole string

const (
	RoleAvailability ProviderRole = "availability"
	RoleLocation     ProviderRole = "location"
	RoleProfile      ProviderRole = "profile"
	RoleSentiment    ProviderRole = "sentiment"
	RoleWeather      ProviderRole = "weather"
)

// AllRoles lists every provider role in a fixed order.
func AllRoles() []ProviderRole {
	return []ProviderRole{RoleAvailability, RoleLocation, RoleProfile, RoleSentiment, RoleWeather}
}

// RoleCount is the number of context roles, the denominator of the
// confidence score.
const RoleCount = 5

// FailureReason classifies a provider failure.
type FailureReason string

const (
	FailureTimeout      FailureReason = "timeout"
	FailureUnauthorized FailureReason = "unauthorized"
	FailureInvalidQuery FailureReason = "invalid_query"
	FailureUnavailable  FailureReason = "unavailable"
)

// WeatherCondition is the categorical sky state used to gate seating.
type WeatherCondition string

const (
	WeatherClear         WeatherCondition = "clear"
	WeatherPrecipitation WeatherCondition = "precipitation"
	WeatherExtremeTemp   WeatherCondition = "extreme_temperature"
)

// WeatherReport is the weather provider payload.
type WeatherReport struct {
	Condition   WeatherCondition `json:"condition"`
	TempC       float64          `json:"tempC"`
	WindSpeed   float64          `json:"windSpeed"`
	Description string           `json:"description"`
}

// ContextSnippet is one provider's typed result, or its explicit failure,
// for one participant (or for the whole group on group-scoped roles).
type ContextSnippet struct {
	Role          ProviderRole `json:"role"`
	ParticipantID string       `json:"participantId,omitempty"`

	Availability []TimeInterval    `json:"availability,omitempty"`
	Location     *Location         `json:"location,omitempty"`
	Profile      *Profile          `json:"profile,omitempty"`
	Sentiment    []SentimentSignal `json:"sentiment,omitempty"`
	Weather      *WeatherReport    `json:"weather,omitempty"`

	Failed bool          `json:"failed"`
	Reason FailureReason `json:"reason,omitempty"`
	Detail string        `json:"detail,omitempty"`
}

// FailedSnippet builds an explicit failure snippet.
func FailedSnippet(role ProviderRole, participantID string, reason FailureReason, detail string) ContextSnippet {
	return ContextSnippet{
		Role:          role,
		ParticipantID: participantID,
		Failed:        true,
		Reason:        reason,
		Detail:        detail,
	}
}

// ContextBundle maps each provider role to the snippets collected for one
// request. Every role present holds either data or an explicit failure
// marker; a role never has a silent gap. The bundle is owned by its request
// and is fully settled before any resolver reads it.
type ContextBundle struct {
	Snippets map[ProviderRole][]ContextSnippet `json:"snippets"`
}

// NewContextBundle returns an empty bundle.
func NewContextBundle() *ContextBundle {
	return &ContextBundle{Snippets: make(map[ProviderRole][]ContextSnippet)}
}

// Add appends snippets under their role.
func (b *ContextBundle) Add(snippets ...ContextSnippet) {
	for _, s := range snippets {
		b.Snippets[s.Role] = append(b.Snippets[s.Role], s)
	}
}

// Role returns the snippets collected for a role.
func (b *ContextBundle) Role(role ProviderRole) []ContextSnippet {
	return b.Snippets[role]
}

// RoleContributed reports whether at least one non-failed snippet exists for
// the role.
func (b *ContextBundle) RoleContributed(role ProviderRole) bool {
	for _, s := range b.Snippets[role] {
		if !s.Failed {
			return true
		}
	}
	return false
}

// Confidence is the fraction of the five roles that contributed real data.
func (b *ContextBundle) Confidence() float64 {
	contributed := 0
	for _, role := range AllRoles() {
		if b.RoleContributed(role) {
			contributed++
		}
	}
	return float64(contributed) / float64(RoleCount)
}
