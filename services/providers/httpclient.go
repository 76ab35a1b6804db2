package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ao561/cues-hackathon/models"
)

// getJSON issues a GET with the request context and decodes the JSON body.
// HTTP-level failures are normalized into ProviderError reasons.
func getJSON(ctx context.Context, client *http.Client, base string, params url.Values, out any) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return NewProviderError(models.FailureInvalidQuery, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return NewProviderError(models.FailureTimeout, err)
		}
		return NewProviderError(models.FailureUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return NewProviderError(reasonFromStatus(resp.StatusCode),
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, base))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewProviderError(models.FailureUnavailable, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
