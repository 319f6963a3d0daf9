package generators

import "errors"

var (
	// ErrRetryable marks failures worth another attempt: rate limits,
	// transient unavailability, empty completions.
	ErrRetryable = errors.New("retryable")

	// ErrNoOutput reports a stream that ended without a single
	// non-thought part.
	ErrNoOutput = errors.New("no output")
)
