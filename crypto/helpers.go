// Package crypto provides cryptographic utilities and helper functions
// shared by the ballot encryption layer. It includes functions for working
// with finite fields and fixed-size serialization.
package crypto

import "math/big"

// SerializedFieldLen is the standard size in bytes for serialized field
// elements.
const SerializedFieldLen = 32 // bytes

// BigToFF function returns the finite field representation of the big.Int
// provided. It uses the curve scalar field to represent the provided number.
func BigToFF(field, iv *big.Int) *big.Int {
	z := big.NewInt(0)
	if c := iv.Cmp(field); c == 0 {
		return z
	} else if c != 1 && iv.Cmp(z) != -1 {
		return iv
	}
	return z.Mod(iv, field)
}

// PadField pads the input byte slice to SerializedFieldLen bytes. If the
// input is shorter, it prepends zeros; if it is longer, it truncates to the
// last SerializedFieldLen bytes.
func PadField(input []byte) []byte {
	if len(input) > SerializedFieldLen {
		return input[len(input)-SerializedFieldLen:]
	}
	out := make([]byte, SerializedFieldLen)
	copy(out[SerializedFieldLen-len(input):], input)
	return out
}
