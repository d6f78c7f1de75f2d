package types

import "fmt"

// Point coordinate conventions for the BabyJubJub curve. The same point can
// be expressed in the standard twisted Edwards form (used by the circom
// toolchain and iden3) or in the reduced twisted Edwards form (used by
// gnark). A key encrypted under the wrong convention is silently wrong, so
// every public key value carries an explicit tag and the conversion happens
// in exactly one place (crypto/ecc/format).
const (
	ConventionStandard = "standard"
	ConventionReduced  = "reduced"
)

// EncryptionKey holds the coordinates of a process encryption public key
// together with the coordinate convention they are expressed in. An empty
// convention means standard.
type EncryptionKey struct {
	X          *BigInt `json:"x"`
	Y          *BigInt `json:"y"`
	Convention string  `json:"convention,omitempty"`
}

// Validate checks that both coordinates are present and the convention tag
// is known.
func (k *EncryptionKey) Validate() error {
	if k == nil || k.X == nil || k.Y == nil {
		return fmt.Errorf("encryption key coordinates are required")
	}
	switch k.Convention {
	case "", ConventionStandard, ConventionReduced:
		return nil
	default:
		return fmt.Errorf("unknown coordinate convention %q", k.Convention)
	}
}

// IsReduced reports whether the key coordinates are in the reduced twisted
// Edwards convention.
func (k *EncryptionKey) IsReduced() bool {
	return k.Convention == ConventionReduced
}
