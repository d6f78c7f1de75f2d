package ballotproof

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/davinci-ballotproof/types"
	"github.com/vocdoni/davinci-ballotproof/types/params"
)

func TestVoteID(t *testing.T) {
	c := qt.New(t)

	processID := types.HexBytes(big.NewInt(123).Bytes())
	address := common.BytesToAddress(big.NewInt(456).Bytes())
	k, err := new(types.BigInt).SetString(testSeed)
	c.Assert(err, qt.IsNil)

	first, err := VoteID(processID, address, k)
	c.Assert(err, qt.IsNil)
	second, err := VoteID(processID, address, k)
	c.Assert(err, qt.IsNil)
	c.Assert(first.Equal(second), qt.IsTrue)
	c.Assert(first.MathBigInt().BitLen() <= params.VoteIDBits, qt.IsTrue)

	// any change in the triple changes the identifier
	otherK, err := VoteID(processID, address, types.NewInt(999))
	c.Assert(err, qt.IsNil)
	c.Assert(first.Equal(otherK), qt.IsFalse)
	otherProcess, err := VoteID(types.HexBytes{0xff}, address, k)
	c.Assert(err, qt.IsNil)
	c.Assert(first.Equal(otherProcess), qt.IsFalse)

	_, err = VoteID(processID, address, nil)
	c.Assert(err, qt.ErrorIs, ErrInvalidScalar)
}

func TestVoteIDBytes(t *testing.T) {
	c := qt.New(t)

	encoded := VoteIDBytes(types.NewInt(456))
	c.Assert(encoded, qt.HasLen, voteIDSize)
	c.Assert(encoded.BigInt().Equal(types.NewInt(456)), qt.IsTrue)
}

func TestBallotInputsHash(t *testing.T) {
	c := qt.New(t)

	inputs := testInputs(t)
	result, err := GenerateBallotProofInputs(inputs)
	c.Assert(err, qt.IsNil)

	// out of field values are rejected
	field := params.BallotProofCurve.ScalarField()
	tooBig := (*types.BigInt)(new(big.Int).Set(field))
	_, err = BallotInputsHash(inputs.ProcessID, inputs.BallotMode, nil,
		inputs.Address, tooBig, result.Ballot, inputs.Weight)
	c.Assert(err, qt.IsNotNil)
	_, err = BallotInputsHash(inputs.ProcessID, inputs.BallotMode, nil,
		inputs.Address, result.VoteID.BigInt(), result.Ballot, tooBig)
	c.Assert(err, qt.IsNotNil)
}
