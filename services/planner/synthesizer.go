package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ao561/cues-hackathon/models"
)

// Synthesize scores candidate venues against the merged constraint set and
// the common free intervals, and selects a winner or declares infeasibility.
// Hard-constraint violation disqualifies a venue outright; only soft
// constraints rank the qualifiers. Output is fully deterministic: ties fall
// back to the lexicographically smallest venue ID.
func Synthesize(
	intervals []models.TimeInterval,
	region models.Region,
	mode models.SeatingMode,
	regionOK bool,
	cs *models.ConstraintSet,
	venues []models.Venue,
	confidence float64,
) *models.Recommendation {
	rec := &models.Recommendation{
		Confidence: confidence,
		Rationale:  models.Rationale{Notes: append([]string(nil), cs.Notes...)},
	}

	if !regionOK {
		rec.Infeasible = true
		rec.Reason = models.NoCandidateRegion
		rec.Rationale.Notes = append(rec.Rationale.Notes, "no participant location could be determined")
		return rec
	}
	if len(intervals) == 0 {
		rec.Infeasible = true
		rec.Reason = models.NoCommonAvailability
		rec.Rationale.Notes = append(rec.Rationale.Notes, "no overlapping free time across participants")
		return rec
	}

	candidate := models.CandidateWindow{Window: chooseWindow(intervals), Region: region, Mode: mode}
	hard := cs.Hard()
	soft := cs.Soft()

	type scored struct {
		venue models.Venue
		score float64
	}
	var qualifying []scored

	for _, venue := range venues {
		if haversineM(candidate.Region.Center, venue.Location) > candidate.Region.RadiusM {
			continue
		}
		if !candidate.Mode.Allows(venue.Seating) {
			continue
		}

		if violations := hardViolations(venue, hard); len(violations) > 0 {
			rec.Rationale.Violated = append(rec.Rationale.Violated,
				fmt.Sprintf("%s disqualified: %s", venue.Name, strings.Join(violations, "; ")))
			continue
		}
		qualifying = append(qualifying, scored{venue: venue, score: softScore(venue, soft)})
	}

	if len(qualifying) == 0 {
		rec.Infeasible = true
		rec.Reason = models.NoQualifyingVenue
		rec.Rationale.Notes = append(rec.Rationale.Notes, "no venue in the candidate region satisfies every hard constraint")
		return rec
	}

	sort.Slice(qualifying, func(i, j int) bool {
		if qualifying[i].score != qualifying[j].score {
			return qualifying[i].score > qualifying[j].score
		}
		return qualifying[i].venue.ID < qualifying[j].venue.ID
	})

	winner := qualifying[0].venue
	rec.Venue = &winner
	rec.Window = candidate.Window
	explain(rec, winner, hard, soft)
	return rec
}

// chooseWindow picks the longest common interval; equal lengths prefer the
// earliest start.
func chooseWindow(intervals []models.TimeInterval) models.TimeInterval {
	best := intervals[0]
	for _, iv := range intervals[1:] {
		if iv.Duration() > best.Duration() {
			best = iv
		}
	}
	return best
}

// hardViolations lists why a venue fails any disqualifying constraint.
func hardViolations(venue models.Venue, hard []models.Constraint) []string {
	var violations []string
	for _, c := range hard {
		switch c.Type {
		case models.ConstraintExcludeCuisine:
			if venue.ServesCuisine(c.Value) {
				violations = append(violations,
					fmt.Sprintf("serves %s excluded by %s", c.Value, strings.Join(c.Owners, ", ")))
			}
		case models.ConstraintMaxPrice:
			if venue.PriceTier > c.MaxPrice {
				violations = append(violations,
					fmt.Sprintf("price tier %d exceeds budget of %s", venue.PriceTier, strings.Join(c.Owners, ", ")))
			}
		}
	}
	return violations
}

// softScore is the net weighted preference score for a qualifying venue.
func softScore(venue models.Venue, soft []models.Constraint) float64 {
	score := 0.0
	for _, c := range soft {
		serves := venue.ServesCuisine(c.Value)
		switch c.Type {
		case models.ConstraintPreferCuisine:
			if serves {
				score += c.Weight
			}
		case models.ConstraintAvoidCuisine:
			if serves {
				score -= c.Weight
			}
		}
	}
	return score
}

// explain records which constraints the chosen venue satisfies or tramples.
func explain(rec *models.Recommendation, venue models.Venue, hard, soft []models.Constraint) {
	for _, c := range hard {
		switch c.Type {
		case models.ConstraintExcludeCuisine:
			rec.Rationale.Satisfied = append(rec.Rationale.Satisfied,
				fmt.Sprintf("avoids %s (required by %s)", c.Value, strings.Join(c.Owners, ", ")))
		case models.ConstraintMaxPrice:
			rec.Rationale.Satisfied = append(rec.Rationale.Satisfied,
				fmt.Sprintf("within budget of %s", strings.Join(c.Owners, ", ")))
		}
	}
	for _, c := range soft {
		serves := venue.ServesCuisine(c.Value)
		switch {
		case c.Type == models.ConstraintPreferCuisine && serves:
			rec.Rationale.Satisfied = append(rec.Rationale.Satisfied,
				fmt.Sprintf("serves %s preferred by %s (weight %.2f)", c.Value, strings.Join(c.Owners, ", "), c.Weight))
		case c.Type == models.ConstraintAvoidCuisine && serves:
			rec.Rationale.Violated = append(rec.Rationale.Violated,
				fmt.Sprintf("serves %s which %s would rather avoid (weight %.2f)", c.Value, strings.Join(c.Owners, ", "), c.Weight))
		case c.Type == models.ConstraintAvoidCuisine && !serves:
			rec.Rationale.Satisfied = append(rec.Rationale.Satisfied,
				fmt.Sprintf("avoids %s disliked by %s", c.Value, strings.Join(c.Owners, ", ")))
		}
	}
}
