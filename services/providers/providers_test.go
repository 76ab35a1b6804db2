package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ao561/cues-hackathon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayInterval(t *testing.T, startHour, endHour int) models.TimeInterval {
	t.Helper()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return models.TimeInterval{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestFreeGapsBetweenBusyBlocks(t *testing.T) {
	free := FreeGaps(dayInterval(t, 9, 18), []models.TimeInterval{
		dayInterval(t, 10, 11),
		dayInterval(t, 14, 15),
	})

	require.Len(t, free, 3)
	assert.Equal(t, dayInterval(t, 9, 10), free[0])
	assert.Equal(t, dayInterval(t, 11, 14), free[1])
	assert.Equal(t, dayInterval(t, 15, 18), free[2])
}

func TestFreeGapsFullyFree(t *testing.T) {
	free := FreeGaps(dayInterval(t, 9, 18), nil)
	require.Len(t, free, 1)
	assert.Equal(t, dayInterval(t, 9, 18), free[0])
}

func TestFreeGapsFullyBusy(t *testing.T) {
	free := FreeGaps(dayInterval(t, 9, 18), []models.TimeInterval{dayInterval(t, 8, 19)})
	assert.Empty(t, free)
}

func TestFreeGapsUnsortedOverlappingBusy(t *testing.T) {
	free := FreeGaps(dayInterval(t, 9, 18), []models.TimeInterval{
		dayInterval(t, 14, 16),
		dayInterval(t, 10, 12),
		dayInterval(t, 11, 13),
	})

	require.Len(t, free, 3)
	assert.Equal(t, dayInterval(t, 9, 10), free[0])
	assert.Equal(t, dayInterval(t, 13, 14), free[1])
	assert.Equal(t, dayInterval(t, 16, 18), free[2])
}

func TestFreeGapsIgnoresZeroLengthBusy(t *testing.T) {
	// A zero-length block carves nothing out and must not split the day
	// into back-to-back fragments.
	free := FreeGaps(dayInterval(t, 9, 18), []models.TimeInterval{
		dayInterval(t, 12, 12),
	})

	require.Len(t, free, 1)
	assert.Equal(t, dayInterval(t, 9, 18), free[0])
}

func TestFreeGapsClipsBusyToWindow(t *testing.T) {
	free := FreeGaps(dayInterval(t, 9, 18), []models.TimeInterval{
		dayInterval(t, 7, 10),
		dayInterval(t, 17, 22),
	})

	require.Len(t, free, 1)
	assert.Equal(t, dayInterval(t, 10, 17), free[0])
}

func TestCategorizeWeather(t *testing.T) {
	cases := []struct {
		name      string
		condition string
		tempC     float64
		rain1h    float64
		snow1h    float64
		want      models.WeatherCondition
	}{
		{"clear sky", "clear", 20, 0, 0, models.WeatherClear},
		{"rain", "rain", 15, 0, 0, models.WeatherPrecipitation},
		{"drizzle", "drizzle", 15, 0, 0, models.WeatherPrecipitation},
		{"thunderstorm", "thunderstorm", 22, 0, 0, models.WeatherPrecipitation},
		{"recent rainfall", "clouds", 18, 0.4, 0, models.WeatherPrecipitation},
		{"recent snowfall", "clouds", -2, 0, 1.1, models.WeatherPrecipitation},
		{"freezing", "clear", -5, 0, 0, models.WeatherExtremeTemp},
		{"scorching", "clear", 38, 0, 0, models.WeatherExtremeTemp},
		{"warm but fine", "clouds", 30, 0, 0, models.WeatherClear},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, categorize(tc.condition, tc.tempC, tc.rain1h, tc.snow1h))
		})
	}
}

func TestCuisinesFromTypes(t *testing.T) {
	cuisines := cuisinesFromTypes([]string{"japanese_restaurant", "restaurant", "food", "point_of_interest", "establishment"})
	assert.Equal(t, []string{"japanese restaurant"}, cuisines)

	assert.Nil(t, cuisinesFromTypes([]string{"restaurant", "establishment"}))
}

func TestAccuracyForLocationType(t *testing.T) {
	assert.Less(t, accuracyForLocationType("ROOFTOP"), accuracyForLocationType("RANGE_INTERPOLATED"))
	assert.Less(t, accuracyForLocationType("RANGE_INTERPOLATED"), accuracyForLocationType("GEOMETRIC_CENTER"))
	assert.Less(t, accuracyForLocationType("GEOMETRIC_CENTER"), accuracyForLocationType("APPROXIMATE"))
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Turn left onto Main St",
		stripHTML(`Turn <b>left</b> onto <div style="font-size:0.9em">Main St</div>`))
}

func TestClassifyAndTransient(t *testing.T) {
	transientErr := NewProviderError(models.FailureUnavailable, fmt.Errorf("upstream down"))
	assert.Equal(t, models.FailureUnavailable, Classify(transientErr))
	assert.True(t, IsTransient(transientErr))

	authErr := NewProviderError(models.FailureUnauthorized, fmt.Errorf("bad key"))
	assert.Equal(t, models.FailureUnauthorized, Classify(authErr))
	assert.False(t, IsTransient(authErr))

	queryErr := NewProviderError(models.FailureInvalidQuery, fmt.Errorf("no such address"))
	assert.False(t, IsTransient(queryErr))

	assert.Equal(t, models.FailureTimeout, Classify(context.DeadlineExceeded))
	assert.False(t, IsTransient(context.DeadlineExceeded))

	// Unclassified network errors are retryable.
	raw := errors.New("connection refused")
	assert.Equal(t, models.FailureUnavailable, Classify(raw))
	assert.True(t, IsTransient(raw))
}

func TestProviderErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewProviderError(models.FailureUnavailable, inner)
	assert.True(t, errors.Is(err, inner))
}
