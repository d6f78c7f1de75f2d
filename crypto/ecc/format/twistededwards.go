// Package format provides helper functions to transform points (x, y)
// between the standard TwistedEdwards form and the Reduced TwistedEdwards
// form of BabyJubJub. These functions are required because gnark uses the
// reduced formula while iden3/circom use the standard one; both describe the
// same group, related by a fixed public scaling constant.
// See https://github.com/bellesmarta/baby_jubjub for more information.
package format

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	scalingFactor, _ = new(big.Int).SetString("6360561867910373094066688120553762416144456282423235903351243436111059670888", 10)
	negScalingFactor fr.Element
	negScalingInv    fr.Element
)

func init() {
	var f fr.Element
	f.SetBigInt(scalingFactor)
	negScalingFactor.Neg(&f)
	negScalingInv.Inverse(&negScalingFactor)
}

// FromRTEtoTE converts a point from Reduced TwistedEdwards to TwistedEdwards
// coordinates (from gnark to iden3). It applies the transformation:
//
//	x = x'/(-f)
//	y = y'
func FromRTEtoTE(x, y *big.Int) (*big.Int, *big.Int) {
	xRTE := new(fr.Element)
	xRTE.SetBigInt(x)
	xTE := new(fr.Element)
	xTE.Mul(xRTE, &negScalingInv)
	return xTE.BigInt(new(big.Int)), y
}

// FromTEtoRTE converts a point from TwistedEdwards to Reduced TwistedEdwards
// coordinates (from iden3 to gnark). It applies the transformation:
//
//	x' = x*(-f)
//	y' = y
func FromTEtoRTE(x, y *big.Int) (*big.Int, *big.Int) {
	xTE := new(fr.Element)
	xTE.SetBigInt(x)
	xRTE := new(fr.Element)
	xRTE.Mul(xTE, &negScalingFactor)
	return xRTE.BigInt(new(big.Int)), y
}
