package planner

import (
	"errors"
	"fmt"
)

// PlanError is a fatal planning failure. Domain infeasibility is not an
// error; it travels in the Recommendation itself.
type PlanError struct {
	Code    string
	Message string
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	codeInsufficientContext = "insufficientContext"
	codeInvalidRequest      = "invalidRequest"
	codePlanNotFound        = "planNotFound"
)

// NewInvalidRequestError signals a malformed plan request.
func NewInvalidRequestError(detail string) error {
	return &PlanError{
		Code:    codeInvalidRequest,
		Message: detail,
	}
}

// NewPlanNotFoundError signals an unknown or expired plan ID.
func NewPlanNotFoundError(planID string) error {
	return &PlanError{
		Code:    codePlanNotFound,
		Message: fmt.Sprintf("no plan found for id %s", planID),
	}
}

// IsPlanNotFound reports whether err is the unknown-plan case.
func IsPlanNotFound(err error) bool {
	var perr *PlanError
	return errors.As(err, &perr) && perr.Code == codePlanNotFound
}

// NewInsufficientContextError signals that both the availability and the
// location roles failed, so neither time nor place can be reasoned about.
func NewInsufficientContextError(detail string) error {
	return &PlanError{
		Code:    codeInsufficientContext,
		Message: detail,
	}
}

// IsInsufficientContext reports whether err is the fatal missing-context case.
func IsInsufficientContext(err error) bool {
	var perr *PlanError
	return errors.As(err, &perr) && perr.Code == codeInsufficientContext
}
