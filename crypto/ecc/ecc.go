// Package ecc defines the elliptic curve point abstraction used by the
// ballot encryption layer. Implementations wrap a concrete BabyJubJub
// backend (gnark-crypto or iden3) behind a common interface, so the rest of
// the code never depends on a particular library or point representation.
//
// All coordinates crossing this interface (Point, SetPoint, BigInts and the
// JSON encoding) are expressed in the standard twisted Edwards convention.
// Backends that store points in another form are responsible for converting
// at the boundary.
package ecc

import (
	"math/big"

	"github.com/vocdoni/davinci-ballotproof/types"
)

// Point represents a point on an elliptic curve. Implementations are
// mutable: operations store their result in the receiver.
type Point interface {
	// New returns a new point on the same curve, set to the identity.
	New() Point
	// Order returns the order of the curve subgroup.
	Order() *big.Int
	// Add computes a+b and stores the result in the receiver.
	Add(a, b Point)
	// SafeAdd is like Add but safe for concurrent use of the receiver.
	SafeAdd(a, b Point)
	// ScalarMult computes scalar*a and stores the result in the receiver.
	ScalarMult(a Point, scalar *big.Int)
	// ScalarBaseMult computes scalar*G and stores the result in the receiver.
	ScalarBaseMult(scalar *big.Int)
	// Equal reports whether the receiver and a represent the same point.
	Equal(a Point) bool
	// Neg stores the negation of a in the receiver.
	Neg(a Point)
	// SetZero sets the receiver to the identity element.
	SetZero()
	// Set copies a into the receiver.
	Set(a Point)
	// SetGenerator sets the receiver to the subgroup generator.
	SetGenerator()
	// IsOnCurve reports whether the point satisfies the curve equation.
	IsOnCurve() bool
	// Point returns the affine coordinates in standard twisted Edwards form.
	Point() (*big.Int, *big.Int)
	// SetPoint sets the point from standard twisted Edwards coordinates and
	// returns it.
	SetPoint(x, y *big.Int) Point
	// BigInts returns the affine coordinates as a two element slice.
	BigInts() []*big.Int
	// Marshal serializes the point to its compressed byte representation.
	Marshal() []byte
	// Unmarshal deserializes the point from its compressed byte
	// representation.
	Unmarshal(buf []byte) error
	// MarshalJSON and UnmarshalJSON encode the point as a JSON coordinate
	// pair of decimal strings.
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(buf []byte) error
	// String returns a human readable representation of the point.
	String() string
	// Type returns the identifier of the backing curve implementation.
	Type() string
}

// PointEC is the JSON representation of a curve point as a coordinate pair.
type PointEC struct {
	X types.BigInt `json:"x"`
	Y types.BigInt `json:"y"`
}
