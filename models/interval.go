package models

import "time"

// TimeInterval represents a half-open [Start, End) time block.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns the interval length.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsValid reports whether the interval has positive length.
func (i TimeInterval) IsValid() bool {
	return i.End.After(i.Start)
}

// Intersect returns the overlap of two intervals; ok is false when they are disjoint.
func (i TimeInterval) Intersect(other TimeInterval) (TimeInterval, bool) {
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := i.End
	if other.End.Before(end) {
		end = other.End
	}
	if !end.After(start) {
		return TimeInterval{}, false
	}
	return TimeInterval{Start: start, End: end}, true
}
