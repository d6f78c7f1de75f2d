// Package params defines the protocol constants shared by the ballot
// encryption layer and the external proving circuits. Changing any of
// these values requires a coordinated protocol version bump.
package params

import "github.com/consensys/gnark-crypto/ecc"

const (
	// FieldsPerBallot is the number of fields in a ballot. Shorter field
	// lists are zero-padded on the right up to this capacity.
	FieldsPerBallot = 8
	// MaxValuePerBallotField is the maximum value per field in a ballot.
	MaxValuePerBallotField = 2 << 16
	// VoteIDBits is the number of least-significant bits kept from the
	// vote identifier hash.
	VoteIDBits = 160
)

// Curves
const (
	// BallotProofCurve is the curve whose scalar field hosts all the
	// ballot proof arithmetic (BabyJubJub base field).
	BallotProofCurve = ecc.BN254
)
