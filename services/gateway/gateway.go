package gateway

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ao561/cues-hackathon/models"
	"github.com/ao561/cues-hackathon/services/providers"
	"github.com/ao561/cues-hackathon/utils"

	"go.uber.org/zap"
)

// Fetcher adapts one provider client to the uniform gateway contract.
type Fetcher interface {
	Role() models.ProviderRole
	Fetch(ctx context.Context, participants []models.Participant, window models.TimeInterval) ([]models.ContextSnippet, error)
}

// Gateway wraps one context role's provider with a bounded timeout, a single
// jittered retry on transient failure, and result normalization: the caller
// only ever observes snippets, never an error. The retry counter is the only
// state that survives a call.
type Gateway struct {
	fetcher Fetcher
	timeout time.Duration

	mu      sync.Mutex // serializes retry backoff for this role
	retries uint64
}

// New builds a gateway for one provider role.
func New(fetcher Fetcher, timeout time.Duration) *Gateway {
	return &Gateway{fetcher: fetcher, timeout: timeout}
}

// Role returns the wrapped provider role.
func (g *Gateway) Role() models.ProviderRole {
	return g.fetcher.Role()
}

// Retries returns the process-wide retry count for this gateway.
func (g *Gateway) Retries() uint64 {
	return atomic.LoadUint64(&g.retries)
}

// Fetch performs the provider call under the role timeout. Transient
// failures (network, 5xx) get exactly one retry after a jittered backoff;
// authorization and malformed-query failures do not. Exhausted attempts
// produce an explicit failure snippet carrying the reason code.
func (g *Gateway) Fetch(ctx context.Context, participants []models.Participant, window models.TimeInterval) []models.ContextSnippet {
	snippets, err := g.attempt(ctx, participants, window)
	if err == nil {
		return snippets
	}

	if providers.IsTransient(err) && ctx.Err() == nil {
		utils.GetLogger().Debug("provider call failed, retrying",
			zap.String("role", string(g.Role())), zap.Error(err))
		g.backoff(ctx)
		if ctx.Err() == nil {
			snippets, err = g.attempt(ctx, participants, window)
			if err == nil {
				return snippets
			}
		}
	}

	reason := providers.Classify(err)
	if ctx.Err() != nil {
		reason = models.FailureTimeout
	}
	utils.GetLogger().Warn("provider role failed",
		zap.String("role", string(g.Role())),
		zap.String("reason", string(reason)),
		zap.Error(err))
	return []models.ContextSnippet{models.FailedSnippet(g.Role(), "", reason, err.Error())}
}

func (g *Gateway) attempt(ctx context.Context, participants []models.Participant, window models.TimeInterval) ([]models.ContextSnippet, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.fetcher.Fetch(ctx, participants, window)
}

// backoff sleeps for a jittered interval before the retry, respecting
// cancellation. Jitter never affects output content, only timing.
func (g *Gateway) backoff(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	atomic.AddUint64(&g.retries, 1)

	const base = 200 * time.Millisecond
	jitter := time.Duration(rand.Int63n(int64(base)))
	select {
	case <-time.After(base + jitter):
	case <-ctx.Done():
	}
}
