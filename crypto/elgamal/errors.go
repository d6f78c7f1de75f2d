package elgamal

import "fmt"

var (
	// ErrInvalidCurveType is returned when a ballot references an
	// unsupported curve type.
	ErrInvalidCurveType = fmt.Errorf("invalid curve type")
	// ErrInvalidPoint is returned when a provided public key or ciphertext
	// coordinate pair is not a valid point on the curve.
	ErrInvalidPoint = fmt.Errorf("point is not on the curve")
)
