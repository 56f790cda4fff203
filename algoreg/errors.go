package algoreg

import (
	"github.com/cockroachdb/errors"
)

// ErrNotAvailable is returned when no registered maker satisfies a request:
// the base name is unknown, or an explicitly requested provider is not
// registered for it. It is a normal outcome, not a construction failure;
// callers decide whether it is fatal in their context.
var ErrNotAvailable = errors.New("algoreg: no implementation available")

// ConstructionError reports that a selected maker ran but failed to produce
// an instance. It carries the canonical form of the requested spec and wraps
// the original cause.
type ConstructionError struct {
	// Spec is the canonical form of the request, e.g. "HMAC(SHA-256)".
	Spec string
	// Provider is the provider whose maker failed, if one was explicitly
	// requested; empty when the provider was chosen by policy.
	Provider string

	cause error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	if e.Provider != "" {
		return "creating \"" + e.Spec + "\" via provider \"" + e.Provider + "\" failed: " + e.cause.Error()
	}
	return "creating \"" + e.Spec + "\" failed: " + e.cause.Error()
}

// Unwrap returns the original cause.
func (e *ConstructionError) Unwrap() error {
	return e.cause
}
