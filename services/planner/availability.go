package planner

import (
	"sort"
	"time"

	"github.com/ao561/cues-hackathon/models"
)

// ResolveAvailability intersects per-participant free intervals into the
// ordered common free intervals. Participants whose availability snippet
// failed do not constrain the intersection; the reduced confidence is
// tracked by the bundle, not here.
//
// An empty result is a valid outcome, not an error.
func ResolveAvailability(snippets []models.ContextSnippet) []models.TimeInterval {
	var participants [][]models.TimeInterval
	for _, s := range snippets {
		if s.Failed {
			continue
		}
		participants = append(participants, s.Availability)
	}
	if len(participants) == 0 {
		return nil
	}
	return intersectAll(participants)
}

// boundary is one interval edge in the sweep.
type boundary struct {
	at    time.Time
	delta int // +1 interval opens, -1 interval closes
}

// intersectAll performs a multi-way interval intersection with a sweep over
// sorted boundaries: an output interval is open exactly while every
// participant has an interval open.
func intersectAll(participants [][]models.TimeInterval) []models.TimeInterval {
	var boundaries []boundary
	for _, free := range participants {
		for _, iv := range free {
			if !iv.IsValid() {
				continue
			}
			boundaries = append(boundaries, boundary{at: iv.Start, delta: +1})
			boundaries = append(boundaries, boundary{at: iv.End, delta: -1})
		}
	}
	sort.Slice(boundaries, func(i, j int) bool {
		if boundaries[i].at.Equal(boundaries[j].at) {
			// Close before open at the same instant: half-open intervals
			// touching at a point share no time.
			return boundaries[i].delta < boundaries[j].delta
		}
		return boundaries[i].at.Before(boundaries[j].at)
	})

	need := len(participants)
	open := 0
	var common []models.TimeInterval
	var start time.Time
	for _, b := range boundaries {
		wasAll := open == need
		open += b.delta
		if !wasAll && open == need {
			start = b.at
		}
		if wasAll && open < need {
			common = append(common, models.TimeInterval{Start: start, End: b.at})
		}
	}
	return coalesce(common)
}

// coalesce merges intervals that touch end-to-start. A participant's free
// list may legally contain back-to-back intervals, which the sweep would
// otherwise split into fragments at the shared boundary; the merged result
// keeps every output interval maximal.
func coalesce(intervals []models.TimeInterval) []models.TimeInterval {
	if len(intervals) < 2 {
		return intervals
	}
	merged := intervals[:1]
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.Start.Equal(last.End) {
			last.End = iv.End
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
