package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, startHour, endHour int) TimeInterval {
	t.Helper()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return TimeInterval{Start: day.Add(time.Duration(startHour) * time.Hour), End: day.Add(time.Duration(endHour) * time.Hour)}
}

func TestIntervalIntersect(t *testing.T) {
	overlap, ok := interval(t, 18, 21).Intersect(interval(t, 19, 20))
	require.True(t, ok)
	assert.Equal(t, interval(t, 19, 20), overlap)
}

func TestIntervalIntersectDisjoint(t *testing.T) {
	_, ok := interval(t, 9, 10).Intersect(interval(t, 11, 12))
	assert.False(t, ok)
}

func TestIntervalIntersectTouching(t *testing.T) {
	// Half-open: [9,10) and [10,11) share no time.
	_, ok := interval(t, 9, 10).Intersect(interval(t, 10, 11))
	assert.False(t, ok)
}

func TestIntervalIsValid(t *testing.T) {
	assert.True(t, interval(t, 9, 10).IsValid())
	assert.False(t, interval(t, 10, 10).IsValid())
	assert.False(t, interval(t, 10, 9).IsValid())
}

func TestSeatingModeAllows(t *testing.T) {
	assert.True(t, SeatingEither.Allows(SeatingOutdoor))
	assert.True(t, SeatingIndoor.Allows(SeatingEither))
	assert.True(t, SeatingIndoor.Allows(SeatingIndoor))
	assert.False(t, SeatingIndoor.Allows(SeatingOutdoor))
}
