package ballotproof

import "errors"

// Errors returned by the ballot input building operations. All of them are
// structural and input-dependent: nothing is retried internally, every error
// surfaces immediately to the caller with enough context to fix the input.
var (
	// ErrParse is returned when a numeric input cannot be parsed as a
	// decimal or hexadecimal integer.
	ErrParse = errors.New("malformed numeric input")
	// ErrInvalidScalar is returned when a seed or field value lies outside
	// the valid scalar range.
	ErrInvalidScalar = errors.New("scalar outside the valid range")
	// ErrInvalidPoint is returned when the encryption public key is not a
	// valid point on the curve.
	ErrInvalidPoint = errors.New("public key is not a valid curve point")
	// ErrCapacityExceeded is returned when more active fields are provided
	// than the circuit capacity.
	ErrCapacityExceeded = errors.New("too many ballot fields")
	// ErrBackendNotInitialized is returned when an operation is attempted
	// on a builder whose arithmetic backend has not been initialized.
	ErrBackendNotInitialized = errors.New("arithmetic backend not initialized")
)
