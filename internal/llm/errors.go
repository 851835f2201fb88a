package llm

import (
	"errors"
	"fmt"
)

// ProviderError wraps a failure from a model provider together with a
// recoverability classification. Transient errors are transport/service
// failures the caller may recover from (for the estimator, by switching to
// the fallback calculation); non-transient errors are programming or
// configuration mistakes that must propagate.
type ProviderError struct {
	Provider  string
	Op        string
	Transient bool
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps a network/API-class failure
func NewTransientError(provider, op string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Op: op, Transient: true, Err: err}
}

// NewConfigError wraps a non-recoverable configuration or usage failure
func NewConfigError(provider, op string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Op: op, Transient: false, Err: err}
}

// IsTransient reports whether err is a recoverable provider failure
func IsTransient(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Transient
}
