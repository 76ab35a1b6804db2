package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ao561/cues-hackathon/models"
)

// ProviderError carries the normalized failure reason for a provider call.
type ProviderError struct {
	Reason models.FailureReason
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err with a failure reason.
func NewProviderError(reason models.FailureReason, err error) error {
	return &ProviderError{Reason: reason, Err: err}
}

// Transient reports whether the failure is worth one retry.
// Authorization and malformed-query failures are not.
func (e *ProviderError) Transient() bool {
	return e.Reason == models.FailureTimeout || e.Reason == models.FailureUnavailable
}

// Classify maps any provider call error onto a failure reason.
func Classify(err error) models.FailureReason {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Reason
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return models.FailureTimeout
	}
	return models.FailureUnavailable
}

// IsTransient reports whether err should be retried once.
func IsTransient(err error) bool {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Transient()
	}
	// Raw network errors without classification count as transient.
	return !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled)
}

// reasonFromStatus maps an HTTP status to a failure reason.
func reasonFromStatus(status int) models.FailureReason {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return models.FailureUnauthorized
	case status == http.StatusBadRequest || status == http.StatusNotFound:
		return models.FailureInvalidQuery
	case status == http.StatusRequestTimeout || status == http.StatusGatewayTimeout:
		return models.FailureTimeout
	default:
		return models.FailureUnavailable
	}
}
