package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ao561/cues-hackathon/models"
)

const (
	standingPreferenceWeight = 0.5
	softWeightCap            = 1.0
)

// MergeConstraints combines stored profile constraints (hard) with
// sentiment-derived soft preferences into one ranked set. Hard constraints
// are always included verbatim and owner-tagged. Opposing soft constraints
// are both retained; the synthesizer resolves the tension by net score.
func MergeConstraints(profileSnippets, sentimentSnippets []models.ContextSnippet) *models.ConstraintSet {
	cs := &models.ConstraintSet{}
	merged := make(map[string]*models.Constraint)

	add := func(c models.Constraint) {
		key := fmt.Sprintf("%s|%s|%s|%d", c.Kind, c.Type, c.Value, c.MaxPrice)
		existing, ok := merged[key]
		if !ok {
			copied := c
			merged[key] = &copied
			return
		}
		existing.Owners = append(existing.Owners, c.Owners...)
		if c.Kind == models.ConstraintSoft {
			existing.Weight += c.Weight
			if existing.Weight > softWeightCap {
				existing.Weight = softWeightCap
				cs.AddNote(fmt.Sprintf("soft constraint %s %q capped at weight %.1f", existing.Type, existing.Value, softWeightCap))
			}
		}
	}

	for _, s := range profileSnippets {
		if s.Failed || s.Profile == nil {
			continue
		}
		profile := s.Profile
		for _, exclusion := range profile.DietaryExclusions {
			add(models.Constraint{
				Kind:   models.ConstraintHard,
				Type:   models.ConstraintExcludeCuisine,
				Value:  strings.ToLower(exclusion),
				Owners: []string{profile.ParticipantID},
			})
		}
		if profile.BudgetCeiling > 0 {
			add(models.Constraint{
				Kind:     models.ConstraintHard,
				Type:     models.ConstraintMaxPrice,
				MaxPrice: profile.BudgetCeiling,
				Owners:   []string{profile.ParticipantID},
			})
		}
		for _, pref := range profile.StandingPreferences {
			add(models.Constraint{
				Kind:   models.ConstraintSoft,
				Type:   models.ConstraintPreferCuisine,
				Value:  strings.ToLower(pref),
				Weight: standingPreferenceWeight,
				Owners: []string{profile.ParticipantID},
			})
		}
	}

	for _, s := range sentimentSnippets {
		if s.Failed {
			continue
		}
		for _, signal := range s.Sentiment {
			c, ok := constraintFromSignal(signal)
			if !ok {
				cs.AddNote(fmt.Sprintf("neutral mention of %q by %s not weighted", signal.Food, signal.ParticipantID))
				continue
			}
			add(c)
		}
	}

	for _, c := range merged {
		sort.Strings(c.Owners)
		cs.Constraints = append(cs.Constraints, *c)
	}
	// Deterministic order: hard before soft, then by type and value.
	sort.Slice(cs.Constraints, func(i, j int) bool {
		a, b := cs.Constraints[i], cs.Constraints[j]
		if a.Kind != b.Kind {
			return a.Kind == models.ConstraintHard
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Value < b.Value
	})
	return cs
}

// constraintFromSignal turns a sentiment signal into a weighted soft
// constraint. Sentiment alone never produces a hard constraint; only stored
// profile exclusions disqualify.
func constraintFromSignal(signal models.SentimentSignal) (models.Constraint, bool) {
	var ctype models.ConstraintType
	var strength float64
	switch signal.Sentiment {
	case models.SentimentLoved:
		ctype, strength = models.ConstraintPreferCuisine, 1.0
	case models.SentimentLiked:
		ctype, strength = models.ConstraintPreferCuisine, 0.7
	case models.SentimentDislike:
		ctype, strength = models.ConstraintAvoidCuisine, 0.7
	case models.SentimentHated:
		ctype, strength = models.ConstraintAvoidCuisine, 1.0
	default:
		return models.Constraint{}, false
	}

	weight := repetitionWeight(signal.Mentions) * strength * (0.5 + 0.5*signal.Recency)
	if weight > softWeightCap {
		weight = softWeightCap
	}
	return models.Constraint{
		Kind:   models.ConstraintSoft,
		Type:   ctype,
		Value:  strings.ToLower(signal.Food),
		Weight: weight,
		Owners: []string{signal.ParticipantID},
	}, true
}

// repetitionWeight grows with repeated mentions and caps out: one mention is
// a hint, several are a theme.
func repetitionWeight(mentions int) float64 {
	if mentions < 1 {
		mentions = 1
	}
	w := 0.4 + 0.2*float64(mentions-1)
	if w > softWeightCap {
		w = softWeightCap
	}
	return w
}
