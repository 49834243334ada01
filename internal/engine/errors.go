package engine

import "errors"

// Error taxonomy for the orchestration engine. Every failure propagates
// immediately to the caller; nothing is retried or suppressed, and no
// partial result survives a failed call. Mapping to HTTP responses is the
// boundary layer's job.
var (
	// ErrConfiguration marks an unknown function name or composition mode.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation marks a gate contract violation: bad shape, NaN/Inf,
	// non-binary output, or a length mismatch.
	ErrValidation = errors.New("validation error")

	// ErrDataUnavailable marks an asset resolution failure.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrExecution marks a registry function failing internally.
	ErrExecution = errors.New("execution error")
)
