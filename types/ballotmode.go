package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/vocdoni/davinci-ballotproof/types/params"
)

// BallotMode is the struct to define the rules of a ballot. It is supplied by
// the caller per voting process and defines the validity bounds the proving
// circuit enforces. The declared field order is part of the protocol
// contract: Serialize must emit the values in exactly this order.
type BallotMode struct {
	NumFields      uint8   `json:"numFields"`
	UniqueValues   bool    `json:"uniqueValues"`
	MaxValue       *BigInt `json:"maxValue"`
	MinValue       *BigInt `json:"minValue"`
	MaxValueSum    *BigInt `json:"maxValueSum"`
	MinValueSum    *BigInt `json:"minValueSum"`
	CostExponent   uint8   `json:"costExponent"`
	CostFromWeight bool    `json:"costFromWeight"`
}

// Validate checks the ballot mode for structural consistency. It does not
// check any ballot field values; that is the job of the proving circuit.
func (b *BallotMode) Validate() error {
	if int(b.NumFields) > params.FieldsPerBallot {
		return fmt.Errorf("numFields %d is greater than max size %d", b.NumFields, params.FieldsPerBallot)
	}
	if b.MaxValue == nil {
		return fmt.Errorf("maxValue is nil")
	}
	if b.MinValue == nil {
		return fmt.Errorf("minValue is nil")
	}
	if b.MaxValueSum == nil {
		return fmt.Errorf("maxValueSum is nil")
	}
	if b.MinValueSum == nil {
		return fmt.Errorf("minValueSum is nil")
	}
	if b.MinValue.MathBigInt().Cmp(b.MaxValue.MathBigInt()) > 0 {
		return fmt.Errorf("minValue %s is greater than maxValue %s", b.MinValue.String(), b.MaxValue.String())
	}
	if b.MinValueSum.MathBigInt().Cmp(b.MaxValueSum.MathBigInt()) > 0 {
		return fmt.Errorf("minValueSum %s is greater than maxValueSum %s", b.MinValueSum.String(), b.MaxValueSum.String())
	}
	return nil
}

// Serialize returns the ballot mode parameters as big integers in their
// declared order, the form consumed by the circuit inputs hash. Booleans
// are encoded as 0 or 1, nil values as 0.
func (b *BallotMode) Serialize() []*big.Int {
	boolToBig := func(v bool) *big.Int {
		if v {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}
	bigOrZero := func(v *BigInt) *big.Int {
		if v == nil {
			return big.NewInt(0)
		}
		return v.MathBigInt()
	}
	return []*big.Int{
		new(big.Int).SetUint64(uint64(b.NumFields)),
		boolToBig(b.UniqueValues),
		bigOrZero(b.MaxValue),
		bigOrZero(b.MinValue),
		bigOrZero(b.MaxValueSum),
		bigOrZero(b.MinValueSum),
		new(big.Int).SetUint64(uint64(b.CostExponent)),
		boolToBig(b.CostFromWeight),
	}
}

// String returns a string representation of the BallotMode
func (b *BallotMode) String() string {
	data, err := json.Marshal(b)
	if err != nil {
		return ""
	}
	return string(data)
}
