// Package curves is a registry of the supported ecc.Point implementations.
package curves

import (
	"slices"

	"github.com/vocdoni/davinci-ballotproof/crypto/ecc"
	bjj_gnark "github.com/vocdoni/davinci-ballotproof/crypto/ecc/bjj_gnark"
	bjj_iden3 "github.com/vocdoni/davinci-ballotproof/crypto/ecc/bjj_iden3"
)

// New creates a new instance of a Point implementation based on the provided
// type string. If the type is not supported, it will panic. The supported
// types are listed by the Curves() function; use IsValid() to check a type
// without risking a panic.
func New(curveType string) ecc.Point {
	switch curveType {
	case bjj_gnark.CurveType:
		return bjj_gnark.New()
	case bjj_iden3.CurveType:
		return bjj_iden3.New()
	default:
		panic("unsupported curve type: " + curveType)
	}
}

// Curves returns a list of supported curve types.
func Curves() []string {
	return []string{
		bjj_gnark.CurveType,
		bjj_iden3.CurveType,
	}
}

// IsValid reports whether the given curve type is supported.
func IsValid(curveType string) bool {
	return slices.Contains(Curves(), curveType)
}
