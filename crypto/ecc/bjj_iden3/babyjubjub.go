// Package bjj implements the BabyJubJub elliptic curve operations using the
// iden3 library. It provides a wrapper around the iden3 implementation to
// conform to the ecc.Point interface. The iden3 backend works natively in
// the standard twisted Edwards form, so no coordinate conversion is needed.
package bjj

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sync"

	"github.com/iden3/go-iden3-crypto/babyjub"
	"github.com/iden3/go-iden3-crypto/constants"

	curve "github.com/vocdoni/davinci-ballotproof/crypto/ecc"
	"github.com/vocdoni/davinci-ballotproof/types"
)

// CurveType is the identifier for the BabyJubJub curve implementation using
// the iden3 library.
const CurveType = "bjj_iden3"

// BJJ is the affine representation of the BabyJubJub group element.
type BJJ struct {
	inner *babyjub.Point
	lock  sync.Mutex
}

// New creates a new BJJ point (identity element by default).
func New() curve.Point {
	return &BJJ{inner: babyjub.NewPoint()}
}

// New creates a new BJJ point (identity element by default).
func (g *BJJ) New() curve.Point {
	return &BJJ{inner: babyjub.NewPoint()}
}

// Order returns the order of the BabyJubJub curve subgroup.
func (g *BJJ) Order() *big.Int {
	return new(big.Int).Set(babyjub.SubOrder)
}

// Add computes the addition of two curve points and stores the result in the
// receiver.
func (g *BJJ) Add(a, b curve.Point) {
	g.inner = g.inner.Projective().Add(a.(*BJJ).inner.Projective(), b.(*BJJ).inner.Projective()).Affine()
}

// SafeAdd performs thread-safe addition of two curve points.
func (g *BJJ) SafeAdd(a, b curve.Point) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Add(a, b)
}

// ScalarMult computes the scalar multiplication of a point and stores the
// result in the receiver.
func (g *BJJ) ScalarMult(a curve.Point, scalar *big.Int) {
	g.inner = g.inner.Mul(scalar, a.(*BJJ).inner)
}

// ScalarBaseMult computes the scalar multiplication of the base point and
// stores the result in the receiver.
func (g *BJJ) ScalarBaseMult(scalar *big.Int) {
	g.inner = g.inner.Mul(scalar, babyjub.B8)
}

// Equal checks if two curve points are equal.
func (g *BJJ) Equal(a curve.Point) bool {
	return g.inner.X.Cmp(a.(*BJJ).inner.X) == 0 && g.inner.Y.Cmp(a.(*BJJ).inner.Y) == 0
}

// Neg computes the negation of a curve point and stores the result in the
// receiver. On a twisted Edwards curve the negation of (x, y) is (-x, y).
func (g *BJJ) Neg(a curve.Point) {
	g.Set(a)
	g.inner.X.Neg(g.inner.X)
	g.inner.X.Mod(g.inner.X, constants.Q)
}

// SetZero sets the point to the identity element (0, 1).
func (g *BJJ) SetZero() {
	g.inner.X.SetInt64(0)
	g.inner.Y.SetInt64(1)
}

// Set copies the value from another curve point.
func (g *BJJ) Set(a curve.Point) {
	g.inner.X.Set(a.(*BJJ).inner.X)
	g.inner.Y.Set(a.(*BJJ).inner.Y)
}

// SetGenerator sets the point to the base generator of the curve.
func (g *BJJ) SetGenerator() {
	g.inner.X.Set(babyjub.B8.X)
	g.inner.Y.Set(babyjub.B8.Y)
}

// IsOnCurve reports whether the point satisfies the twisted Edwards curve
// equation a*x^2 + y^2 = 1 + d*x^2*y^2 over the base field.
func (g *BJJ) IsOnCurve() bool {
	x2 := new(big.Int).Mul(g.inner.X, g.inner.X)
	x2.Mod(x2, constants.Q)
	y2 := new(big.Int).Mul(g.inner.Y, g.inner.Y)
	y2.Mod(y2, constants.Q)

	lhs := new(big.Int).Mul(babyjub.A, x2)
	lhs.Add(lhs, y2)
	lhs.Mod(lhs, constants.Q)

	rhs := new(big.Int).Mul(babyjub.D, x2)
	rhs.Mul(rhs, y2)
	rhs.Add(rhs, big.NewInt(1))
	rhs.Mod(rhs, constants.Q)

	return lhs.Cmp(rhs) == 0
}

// Marshal compresses and serializes the point to a byte slice.
func (g *BJJ) Marshal() []byte {
	b := g.inner.Compress()
	return b[:]
}

// Unmarshal deserializes and decompresses a point from a byte slice.
func (g *BJJ) Unmarshal(buf []byte) error {
	b32 := [32]byte{}
	copy(b32[:], buf)
	_, err := g.inner.Decompress(b32)
	return err
}

// MarshalJSON serializes the elliptic curve element into a JSON byte slice.
func (g *BJJ) MarshalJSON() ([]byte, error) {
	points := &curve.PointEC{
		X: types.BigInt(*g.inner.X),
		Y: types.BigInt(*g.inner.Y),
	}
	return json.Marshal(points)
}

// UnmarshalJSON deserializes the elliptic curve element from a JSON byte slice.
func (g *BJJ) UnmarshalJSON(buf []byte) error {
	if g.inner == nil {
		g.inner = babyjub.NewPoint()
	}
	points := &curve.PointEC{}
	if err := json.Unmarshal(buf, points); err != nil {
		return err
	}
	g.inner.X = points.X.MathBigInt()
	g.inner.Y = points.Y.MathBigInt()
	return nil
}

// String returns a string representation of the point.
func (g *BJJ) String() string {
	return fmt.Sprintf("%s,%s", g.inner.X.String(), g.inner.Y.String())
}

// Point returns the x and y coordinates of the point in standard twisted
// Edwards form (the iden3 native form).
func (g *BJJ) Point() (*big.Int, *big.Int) {
	return new(big.Int).Set(g.inner.X), new(big.Int).Set(g.inner.Y)
}

// SetPoint sets the point to the given standard twisted Edwards coordinates
// and returns the point.
func (g *BJJ) SetPoint(x, y *big.Int) curve.Point {
	p := &BJJ{inner: babyjub.NewPoint()}
	p.inner.X.Set(x)
	p.inner.Y.Set(y)
	return p
}

// BigInts returns the x and y coordinates of the point as a slice of big.Int.
func (g *BJJ) BigInts() []*big.Int {
	x, y := g.Point()
	return []*big.Int{x, y}
}

// Type returns the curve type identifier.
func (g *BJJ) Type() string {
	return CurveType
}
