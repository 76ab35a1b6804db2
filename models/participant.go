package models

// Participant identifies one member of the group for a single plan request.
// Context about a participant (location, free time, profile, sentiment) is
// sourced fresh from providers each request and carried in the ContextBundle.
type Participant struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	CalendarID string `bson:"calendarId" json:"calendarId,omitempty"`
	// Address is the routing origin fallback when no live fix is available.
	Address string `bson:"address" json:"address,omitempty"`
}

// Profile holds a participant's stored constraints and standing preferences.
// Dietary exclusions and the budget ceiling are hard; standing preferences
// are soft.
type Profile struct {
	ParticipantID       string   `bson:"id" json:"participantId"`
	DietaryExclusions   []string `bson:"dietaryExclusions" json:"dietaryExclusions"`
	BudgetCeiling       int      `bson:"budgetCeiling" json:"budgetCeiling"` // price tier 0-4, 0 = no ceiling
	StandingPreferences []string `bson:"standingPreferences" json:"standingPreferences"`
}

// Sentiment buckets as detected in chat, strongest to weakest.
const (
	SentimentLoved   = "loved"
	SentimentLiked   = "liked"
	SentimentNeutral = "neutral"
	SentimentDislike = "dislike"
	SentimentHated   = "hated"
)

// SentimentSignal is one food preference extracted from recent chat.
type SentimentSignal struct {
	ParticipantID string  `json:"participantId"`
	Food          string  `json:"food"`
	Sentiment     string  `json:"sentiment"`
	Mentions      int     `json:"mentions"`
	Recency       float64 `json:"recency"` // 0-1, 1 = most recent messages
}
