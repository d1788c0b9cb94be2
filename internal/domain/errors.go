package domain

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedProviderError is returned when a provider name does not match
// any registered adapter. This is a client-input error and must not be
// retried.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported payment provider: %s", e.Provider)
}

// ValidationError aggregates every violation found in a payment request so
// callers can report all problems at once instead of one per round trip.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid payment request: " + strings.Join(e.Violations, ", ")
}

// ConfigurationError signals missing provider credentials or endpoint
// configuration. Fatal and operator-fixable, never retryable.
type ConfigurationError struct {
	Provider string
	Missing  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("provider %s is not configured: missing %s", e.Provider, e.Missing)
}

// ProviderAPIError covers non-success provider responses and transport-level
// failures. The original cause, when any, is preserved for diagnostics.
type ProviderAPIError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderAPIError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

func (e *ProviderAPIError) Unwrap() error { return e.Cause }

// ResponseAssemblyError signals that a provider replied with success but the
// payload was incomplete or malformed — provider contract drift.
type ResponseAssemblyError struct {
	Provider string
	Cause    error
}

func (e *ResponseAssemblyError) Error() string {
	return fmt.Sprintf("%s returned an invalid response: %v", e.Provider, e.Cause)
}

func (e *ResponseAssemblyError) Unwrap() error { return e.Cause }

// ProcessingError is the stable operational failure surfaced to callers for
// anything that is not a client-input error. The underlying cause is kept
// for logging.
type ProcessingError struct {
	Cause error
}

func (e *ProcessingError) Error() string { return "payment processing failed" }

func (e *ProcessingError) Unwrap() error { return e.Cause }

// IsClientError reports whether err originates from bad client input
// (unknown provider or malformed request fields). Client errors map to 4xx
// at the HTTP boundary and are never wrapped or retried.
func IsClientError(err error) bool {
	var unsupported *UnsupportedProviderError
	var validation *ValidationError
	return errors.As(err, &unsupported) || errors.As(err, &validation)
}
