package planner

import (
	"testing"

	"github.com/ao561/cues-hackathon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileSnippet(profile models.Profile) models.ContextSnippet {
	return models.ContextSnippet{Role: models.RoleProfile, ParticipantID: profile.ParticipantID, Profile: &profile}
}

func sentimentSnippet(signals ...models.SentimentSignal) models.ContextSnippet {
	return models.ContextSnippet{Role: models.RoleSentiment, Sentiment: signals}
}

func findConstraint(t *testing.T, cs *models.ConstraintSet, ctype models.ConstraintType, value string) models.Constraint {
	t.Helper()
	for _, c := range cs.Constraints {
		if c.Type == ctype && c.Value == value {
			return c
		}
	}
	t.Fatalf("no %s constraint for %q", ctype, value)
	return models.Constraint{}
}

func TestMergeConstraintsHardNeverDropped(t *testing.T) {
	cs := MergeConstraints(
		[]models.ContextSnippet{
			profileSnippet(models.Profile{ParticipantID: "alice", DietaryExclusions: []string{"Peanut"}}),
			profileSnippet(models.Profile{ParticipantID: "bob", BudgetCeiling: 2}),
		},
		nil,
	)

	hard := cs.Hard()
	require.Len(t, hard, 2)

	exclusion := findConstraint(t, cs, models.ConstraintExcludeCuisine, "peanut")
	assert.Equal(t, models.ConstraintHard, exclusion.Kind)
	assert.Equal(t, []string{"alice"}, exclusion.Owners)

	budget := findConstraint(t, cs, models.ConstraintMaxPrice, "")
	assert.Equal(t, 2, budget.MaxPrice)
	assert.Equal(t, []string{"bob"}, budget.Owners)
}

func TestMergeConstraintsRepeatedMentionsRaiseWeight(t *testing.T) {
	once := MergeConstraints(nil, []models.ContextSnippet{sentimentSnippet(
		models.SentimentSignal{ParticipantID: "alice", Food: "sushi", Sentiment: models.SentimentLoved, Mentions: 1, Recency: 1.0},
	)})
	thrice := MergeConstraints(nil, []models.ContextSnippet{sentimentSnippet(
		models.SentimentSignal{ParticipantID: "alice", Food: "sushi", Sentiment: models.SentimentLoved, Mentions: 3, Recency: 1.0},
	)})

	w1 := findConstraint(t, once, models.ConstraintPreferCuisine, "sushi").Weight
	w3 := findConstraint(t, thrice, models.ConstraintPreferCuisine, "sushi").Weight
	assert.Greater(t, w3, w1)
}

func TestMergeConstraintsWeightCapped(t *testing.T) {
	cs := MergeConstraints(nil, []models.ContextSnippet{sentimentSnippet(
		models.SentimentSignal{ParticipantID: "alice", Food: "pizza", Sentiment: models.SentimentLoved, Mentions: 10, Recency: 1.0},
		models.SentimentSignal{ParticipantID: "bob", Food: "pizza", Sentiment: models.SentimentLoved, Mentions: 10, Recency: 1.0},
	)})

	pref := findConstraint(t, cs, models.ConstraintPreferCuisine, "pizza")
	assert.LessOrEqual(t, pref.Weight, 1.0)
	assert.ElementsMatch(t, []string{"alice", "bob"}, pref.Owners)
}

func TestMergeConstraintsOpposingSoftsBothRetained(t *testing.T) {
	cs := MergeConstraints(nil, []models.ContextSnippet{sentimentSnippet(
		models.SentimentSignal{ParticipantID: "alice", Food: "sushi", Sentiment: models.SentimentLoved, Mentions: 2, Recency: 0.9},
		models.SentimentSignal{ParticipantID: "bob", Food: "sushi", Sentiment: models.SentimentHated, Mentions: 1, Recency: 0.9},
	)})

	prefer := findConstraint(t, cs, models.ConstraintPreferCuisine, "sushi")
	avoid := findConstraint(t, cs, models.ConstraintAvoidCuisine, "sushi")
	assert.Equal(t, []string{"alice"}, prefer.Owners)
	assert.Equal(t, []string{"bob"}, avoid.Owners)
}

func TestMergeConstraintsNeutralSkippedWithNote(t *testing.T) {
	cs := MergeConstraints(nil, []models.ContextSnippet{sentimentSnippet(
		models.SentimentSignal{ParticipantID: "alice", Food: "tacos", Sentiment: models.SentimentNeutral, Mentions: 1, Recency: 0.5},
	)})

	assert.Empty(t, cs.Constraints)
	require.Len(t, cs.Notes, 1)
	assert.Contains(t, cs.Notes[0], "tacos")
}

func TestMergeConstraintsSentimentNeverHard(t *testing.T) {
	cs := MergeConstraints(nil, []models.ContextSnippet{sentimentSnippet(
		models.SentimentSignal{ParticipantID: "alice", Food: "olives", Sentiment: models.SentimentHated, Mentions: 5, Recency: 1.0},
	)})

	assert.Empty(t, cs.Hard())
	avoid := findConstraint(t, cs, models.ConstraintAvoidCuisine, "olives")
	assert.Equal(t, models.ConstraintSoft, avoid.Kind)
}

func TestMergeConstraintsStandingPreferencesAreSoft(t *testing.T) {
	cs := MergeConstraints(
		[]models.ContextSnippet{profileSnippet(models.Profile{ParticipantID: "alice", StandingPreferences: []string{"thai"}})},
		nil,
	)

	pref := findConstraint(t, cs, models.ConstraintPreferCuisine, "thai")
	assert.Equal(t, models.ConstraintSoft, pref.Kind)
	assert.InDelta(t, standingPreferenceWeight, pref.Weight, 1e-9)
}

func TestMergeConstraintsDeterministicOrder(t *testing.T) {
	build := func() *models.ConstraintSet {
		return MergeConstraints(
			[]models.ContextSnippet{
				profileSnippet(models.Profile{ParticipantID: "bob", DietaryExclusions: []string{"shellfish"}}),
				profileSnippet(models.Profile{ParticipantID: "alice", StandingPreferences: []string{"italian", "thai"}}),
			},
			[]models.ContextSnippet{sentimentSnippet(
				models.SentimentSignal{ParticipantID: "carol", Food: "sushi", Sentiment: models.SentimentLiked, Mentions: 1, Recency: 0.8},
			)},
		)
	}

	first := build()
	second := build()
	assert.Equal(t, first.Constraints, second.Constraints)
	assert.Equal(t, models.ConstraintHard, first.Constraints[0].Kind)
}
