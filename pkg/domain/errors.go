package domain

import (
	"errors"
	"fmt"
)

// ValidationError is the caller's fault: a required parameter is missing or
// malformed. It always maps to a 4xx and is never retried or logged as a
// system fault.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

// NewValidationError reports a missing or malformed caller input.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// UpstreamError is a transport, status or payload-shape failure from a
// specific provider. At most one outbound attempt is made per invocation, so
// an UpstreamError always corresponds to exactly one failed call.
type UpstreamError struct {
	Provider string
	// Status is the upstream HTTP status, 0 for transport-level failures.
	Status  int
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream returned status %d: %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// DependencyError marks an aggregation stage that was never attempted because
// a stage it depends on failed. No outbound call was made.
type DependencyError struct {
	Stage     string
	DependsOn string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s skipped: depends on failed stage %s", e.Stage, e.DependsOn)
}

// ErrorSource names the provider or stage an error originated from, for slot
// annotations and problem-details responses.
func ErrorSource(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Provider
	}
	var de *DependencyError
	if errors.As(err, &de) {
		return de.DependsOn
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return "request"
	}
	return "internal"
}
