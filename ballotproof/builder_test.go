package ballotproof

import (
	"encoding/json"
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	bjj "github.com/vocdoni/davinci-ballotproof/crypto/ecc/bjj_gnark"
	"github.com/vocdoni/davinci-ballotproof/crypto/ecc/curves"
	"github.com/vocdoni/davinci-ballotproof/crypto/ecc/format"
	"github.com/vocdoni/davinci-ballotproof/crypto/elgamal"
	"github.com/vocdoni/davinci-ballotproof/types"
	"github.com/vocdoni/davinci-ballotproof/types/params"
)

const testSeed = "12345678901234567890"

func testEncryptionKey(t *testing.T) *types.EncryptionKey {
	t.Helper()
	pub, _, err := elgamal.GenerateKey(curves.New(bjj.CurveType))
	qt.Assert(t, err, qt.IsNil)
	x, y := pub.Point()
	return &types.EncryptionKey{
		X: (*types.BigInt)(x),
		Y: (*types.BigInt)(y),
	}
}

func testInputs(t *testing.T) *BallotProofInputs {
	t.Helper()
	k, err := new(types.BigInt).SetString(testSeed)
	qt.Assert(t, err, qt.IsNil)
	return &BallotProofInputs{
		ProcessID:     big.NewInt(123).Bytes(),
		Address:       big.NewInt(456).Bytes(),
		EncryptionKey: testEncryptionKey(t),
		K:             k,
		BallotMode: &types.BallotMode{
			NumFields:    2,
			MaxValue:     types.NewInt(16),
			MinValue:     types.NewInt(0),
			MaxValueSum:  types.NewInt(32),
			MinValueSum:  types.NewInt(0),
			CostExponent: 1,
		},
		Weight:      types.NewInt(1),
		FieldValues: []*types.BigInt{types.NewInt(1), types.NewInt(2)},
	}
}

func TestGenerateBallotProofInputs(t *testing.T) {
	c := qt.New(t)

	inputs := testInputs(t)
	result, err := GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.IsNil)

	ci := result.CircuitInputs
	c.Assert(ci.NumFields, qt.Equals, "2")
	c.Assert(ci.Weight, qt.Equals, "1")
	c.Assert(ci.K, qt.Equals, testSeed)
	c.Assert(ci.ProcessID, qt.Equals, "123")
	c.Assert(ci.Address, qt.Equals, "456")

	// field values are padded with zeros up to the ballot capacity
	c.Assert(ci.Fields, qt.HasLen, params.FieldsPerBallot)
	c.Assert(ci.Fields[0], qt.Equals, "1")
	c.Assert(ci.Fields[1], qt.Equals, "2")
	for i := 2; i < params.FieldsPerBallot; i++ {
		c.Assert(ci.Fields[i], qt.Equals, "0")
	}

	// four coordinates per ciphertext, one ciphertext per field
	c.Assert(ci.Cipherfields, qt.HasLen, params.FieldsPerBallot*4)
	c.Assert(ci.PK, qt.HasLen, 2)

	// the vote identifier fits in 160 bits
	voteID, ok := new(big.Int).SetString(ci.VoteID, 10)
	c.Assert(ok, qt.IsTrue)
	c.Assert(voteID.BitLen() <= params.VoteIDBits, qt.IsTrue)
	c.Assert(result.VoteID, qt.HasLen, params.VoteIDBits/8)
	c.Assert(result.InputsHash.String(), qt.Equals, ci.InputsHash)

	// the ballot ciphertexts and the circuit signals must agree
	ballotInts := result.Ballot.BigInts()
	for i, v := range ballotInts {
		c.Assert(ci.Cipherfields[i], qt.Equals, v.String())
	}
}

func TestGenerateDeterministic(t *testing.T) {
	c := qt.New(t)

	inputs := testInputs(t)
	first, err := GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.IsNil)
	second, err := GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.IsNil)

	firstJSON, err := json.Marshal(first)
	c.Assert(err, qt.IsNil)
	secondJSON, err := json.Marshal(second)
	c.Assert(err, qt.IsNil)
	c.Assert(string(firstJSON), qt.Equals, string(secondJSON))
}

func TestGenerateRandomSeed(t *testing.T) {
	c := qt.New(t)

	inputs := testInputs(t)
	inputs.K = nil
	first, err := GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.IsNil)
	c.Assert(first.CircuitInputs.K, qt.Not(qt.Equals), "")
	c.Assert(first.CircuitInputs.K, qt.Not(qt.Equals), "0")

	second, err := GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.IsNil)
	c.Assert(first.CircuitInputs.K, qt.Not(qt.Equals), second.CircuitInputs.K)
	c.Assert(first.VoteID.Equal(second.VoteID), qt.IsFalse)
}

func TestGenerateCapacityExceeded(t *testing.T) {
	c := qt.New(t)

	inputs := testInputs(t)
	inputs.FieldValues = make([]*types.BigInt, params.FieldsPerBallot+1)
	for i := range inputs.FieldValues {
		inputs.FieldValues[i] = types.NewInt(1)
	}
	_, err := GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.ErrorIs, ErrCapacityExceeded)
}

func TestGenerateInvalidScalar(t *testing.T) {
	c := qt.New(t)

	field := params.BallotProofCurve.ScalarField()

	inputs := testInputs(t)
	inputs.K = (*types.BigInt)(new(big.Int).Set(field))
	_, err := GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.ErrorIs, ErrInvalidScalar)

	inputs = testInputs(t)
	inputs.K = types.NewInt(0)
	_, err = GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.ErrorIs, ErrInvalidScalar)

	inputs = testInputs(t)
	inputs.FieldValues = []*types.BigInt{(*types.BigInt)(big.NewInt(-1))}
	_, err = GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.ErrorIs, ErrInvalidScalar)

	inputs = testInputs(t)
	inputs.Weight = nil
	_, err = GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.ErrorIs, ErrInvalidScalar)
}

func TestGenerateInvalidPoint(t *testing.T) {
	c := qt.New(t)

	inputs := testInputs(t)
	inputs.EncryptionKey = &types.EncryptionKey{
		X: types.NewInt(1),
		Y: types.NewInt(2),
	}
	_, err := GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.ErrorIs, ErrInvalidPoint)
}

func TestGenerateMissingInputs(t *testing.T) {
	c := qt.New(t)

	_, err := GenerateBallotProofInputs(nil)
	c.Assert(err, qt.ErrorIs, ErrParse)

	inputs := testInputs(t)
	inputs.BallotMode = nil
	_, err = GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.ErrorIs, ErrParse)

	inputs = testInputs(t)
	inputs.EncryptionKey = nil
	_, err = GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.ErrorIs, ErrParse)

	inputs = testInputs(t)
	inputs.EncryptionKey.Convention = "projective"
	_, err = GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.ErrorIs, ErrParse)
}

func TestGenerateConventionEquivalence(t *testing.T) {
	c := qt.New(t)

	standard := testInputs(t)
	reduced := testInputs(t)
	xRTE, yRTE := format.FromTEtoRTE(
		standard.EncryptionKey.X.MathBigInt(),
		standard.EncryptionKey.Y.MathBigInt(),
	)
	reduced.EncryptionKey = &types.EncryptionKey{
		X:          (*types.BigInt)(xRTE),
		Y:          (*types.BigInt)(yRTE),
		Convention: types.ConventionReduced,
	}

	fromStandard, err := GenerateBallotProofInputs(standard)
	c.Assert(err, qt.IsNil)
	fromReduced, err := GenerateBallotProofInputs(reduced)
	c.Assert(err, qt.IsNil)

	c.Assert(fromStandard.InputsHash.Equal(fromReduced.InputsHash), qt.IsTrue)
	c.Assert(fromStandard.Ballot.Serialize(), qt.DeepEquals, fromReduced.Ballot.Serialize())
	c.Assert(fromStandard.CircuitInputs.PK, qt.DeepEquals, fromReduced.CircuitInputs.PK)
}

func TestGenerateUninitializedBuilder(t *testing.T) {
	c := qt.New(t)

	var b *Builder
	_, err := b.GenerateBallotProofInputs(testInputs(t))
	c.Assert(err, qt.ErrorIs, ErrBackendNotInitialized)

	_, err = NewBuilder("unknown_curve")
	c.Assert(err, qt.ErrorIs, ErrBackendNotInitialized)
}

func TestResultJSONRoundTrip(t *testing.T) {
	c := qt.New(t)

	result, err := GenerateBallotProofInputs(testInputs(t))
	c.Assert(err, qt.IsNil)

	data, err := json.Marshal(result)
	c.Assert(err, qt.IsNil)
	restored := &BallotProofResult{}
	c.Assert(json.Unmarshal(data, restored), qt.IsNil)

	c.Assert(restored.ProcessID.Equal(result.ProcessID), qt.IsTrue)
	c.Assert(restored.Address.Equal(result.Address), qt.IsTrue)
	c.Assert(restored.VoteID.Equal(result.VoteID), qt.IsTrue)
	c.Assert(restored.InputsHash.Equal(result.InputsHash), qt.IsTrue)
	c.Assert(restored.Ballot.Serialize(), qt.DeepEquals, result.Ballot.Serialize())
	c.Assert(restored.CircuitInputs, qt.DeepEquals, result.CircuitInputs)
}

func TestParseBallotProofInputs(t *testing.T) {
	c := qt.New(t)

	_, err := ParseBallotProofInputs([]byte(`{not json`))
	c.Assert(err, qt.ErrorIs, ErrParse)

	data, err := json.Marshal(testInputs(t))
	c.Assert(err, qt.IsNil)
	parsed, err := ParseBallotProofInputs(data)
	c.Assert(err, qt.IsNil)
	c.Assert(parsed.Weight.String(), qt.Equals, "1")
	c.Assert(parsed.FieldValues, qt.HasLen, 2)
}
