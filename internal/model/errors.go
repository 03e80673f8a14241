package model

import "errors"

// Error taxonomy shared by all components.
// Component packages wrap these with more specific errors so callers can use
// errors.Is() to decide how to react without knowing every failure mode.
var (
	// ErrInvalidInput is returned for input that cannot be processed:
	// an empty password, an empty hint set, or a year range whose start
	// is after its end.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIO is returned when the output destination cannot be written.
	ErrIO = errors.New("i/o error")

	// ErrExternalUnavailable is returned by external scorers that are missing
	// or failed. The analyzer absorbs it and degrades to entropy-only output;
	// it is never fatal.
	ErrExternalUnavailable = errors.New("external scorer unavailable")
)
