package gateway

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/services/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedFetcher returns each scripted outcome in order; the last one
// repeats.
type scriptedFetcher struct {
	role  models.ProviderRole
	errs  []error
	calls int32
}

func (f *scriptedFetcher) Role() models.ProviderRole { return f.role }

func (f *scriptedFetcher) Fetch(ctx context.Context, participants []models.Participant, window models.TimeInterval) ([]models.ContextSnippet, error) {
	call := int(atomic.AddInt32(&f.calls, 1)) - 1
	if call >= len(f.errs) {
		call = len(f.errs) - 1
	}
	if err := f.errs[call]; err != nil {
		return nil, err
	}
	return []models.ContextSnippet{{Role: f.role, ParticipantID: "alice"}}, nil
}

func window() models.TimeInterval {
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	return models.TimeInterval{Start: start, End: start.Add(4 * time.Hour)}
}

func TestFetchSuccessNoRetry(t *testing.T) {
	fetcher := &scriptedFetcher{role: models.RoleWeather, errs: []error{nil}}
	g := New(fetcher, time.Second)

	snippets := g.Fetch(context.Background(), nil, window())
	require.Len(t, snippets, 1)
	assert.False(t, snippets[0].Failed)
	assert.EqualValues(t, 0, g.Retries())
	assert.EqualValues(t, 1, atomic.LoadInt32(&fetcher.calls))
}

func TestFetchRetriesTransientOnce(t *testing.T) {
	fetcher := &scriptedFetcher{role: models.RoleWeather, errs: []error{
		providers.NewProviderError(models.FailureUnavailable, fmt.Errorf("connection reset")),
		nil,
	}}
	g := New(fetcher, time.Second)

	snippets := g.Fetch(context.Background(), nil, window())
	require.Len(t, snippets, 1)
	assert.False(t, snippets[0].Failed)
	assert.EqualValues(t, 1, g.Retries())
	assert.EqualValues(t, 2, atomic.LoadInt32(&fetcher.calls))
}

func TestFetchNeverRetriesUnauthorized(t *testing.T) {
	fetcher := &scriptedFetcher{role: models.RoleAvailability, errs: []error{
		providers.NewProviderError(models.FailureUnauthorized, fmt.Errorf("credentials rejected")),
		nil,
	}}
	g := New(fetcher, time.Second)

	snippets := g.Fetch(context.Background(), nil, window())
	require.Len(t, snippets, 1)
	assert.True(t, snippets[0].Failed)
	assert.Equal(t, models.FailureUnauthorized, snippets[0].Reason)
	assert.EqualValues(t, 0, g.Retries())
	assert.EqualValues(t, 1, atomic.LoadInt32(&fetcher.calls))
}

func TestFetchNeverRetriesInvalidQuery(t *testing.T) {
	fetcher := &scriptedFetcher{role: models.RoleLocation, errs: []error{
		providers.NewProviderError(models.FailureInvalidQuery, fmt.Errorf("bad address")),
	}}
	g := New(fetcher, time.Second)

	snippets := g.Fetch(context.Background(), nil, window())
	require.Len(t, snippets, 1)
	assert.Equal(t, models.FailureInvalidQuery, snippets[0].Reason)
	assert.EqualValues(t, 1, atomic.LoadInt32(&fetcher.calls))
}

func TestFetchExhaustedRetryYieldsFailureSnippet(t *testing.T) {
	wrapped := providers.NewProviderError(models.FailureUnavailable, fmt.Errorf("still down"))
	fetcher := &scriptedFetcher{role: models.RoleSentiment, errs: []error{wrapped, wrapped}}
	g := New(fetcher, time.Second)

	snippets := g.Fetch(context.Background(), nil, window())
	require.Len(t, snippets, 1)
	assert.True(t, snippets[0].Failed)
	assert.Equal(t, models.FailureUnavailable, snippets[0].Reason)
	assert.Equal(t, models.RoleSentiment, snippets[0].Role)
	assert.EqualValues(t, 2, atomic.LoadInt32(&fetcher.calls))
}

func TestFetchCancelledContextReportsTimeout(t *testing.T) {
	fetcher := &scriptedFetcher{role: models.RoleWeather, errs: []error{
		providers.NewProviderError(models.FailureUnavailable, fmt.Errorf("slow upstream")),
	}}
	g := New(fetcher, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snippets := g.Fetch(ctx, nil, window())
	require.Len(t, snippets, 1)
	assert.True(t, snippets[0].Failed)
	assert.Equal(t, models.FailureTimeout, snippets[0].Reason)
}
