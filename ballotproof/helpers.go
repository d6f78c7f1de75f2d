package ballotproof

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vocdoni/davinci-ballotproof/crypto"
	"github.com/vocdoni/davinci-ballotproof/crypto/ecc"
	"github.com/vocdoni/davinci-ballotproof/crypto/elgamal"
	"github.com/vocdoni/davinci-ballotproof/crypto/hash/poseidon"
	"github.com/vocdoni/davinci-ballotproof/types"
	"github.com/vocdoni/davinci-ballotproof/types/params"
)

// voteIDSize is the size in bytes of an encoded vote identifier.
const voteIDSize = params.VoteIDBits / 8

// VoteID computes the unique identifier of a vote as the least significant
// 160 bits of Poseidon(processID, address, k), with every input reduced to
// the ballot proof scalar field first. The same (processID, address, k)
// triple always yields the same identifier, on any host.
func VoteID(processID types.HexBytes, address common.Address, k *types.BigInt) (*types.BigInt, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: missing k", ErrInvalidScalar)
	}
	field := params.BallotProofCurve.ScalarField()
	ffProcessID := crypto.BigToFF(field, new(big.Int).SetBytes(processID))
	ffAddress := crypto.BigToFF(field, new(big.Int).SetBytes(address.Bytes()))
	ffK := crypto.BigToFF(field, k.MathBigInt())
	h, err := poseidon.Hash(ffProcessID, ffAddress, ffK)
	if err != nil {
		return nil, fmt.Errorf("failed to hash vote identifier: %w", err)
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), params.VoteIDBits), big.NewInt(1))
	return (*types.BigInt)(h.And(h, mask)), nil
}

// VoteIDBytes returns the fixed-size big-endian encoding of a vote
// identifier.
func VoteIDBytes(voteID *types.BigInt) types.HexBytes {
	out := make(types.HexBytes, voteIDSize)
	b := voteID.Bytes()
	copy(out[voteIDSize-len(b):], b)
	return out
}

// BallotInputsHash computes the unique compact hash that binds together all
// the public inputs of a ballot proof. The ordered input list is:
//
//	processID, ballotMode (serialized), encryptionKey.X, encryptionKey.Y,
//	address, voteID, ballot (serialized), weight
//
// All values are reduced to the ballot proof scalar field. The order is part
// of the contract with the proving circuit.
func BallotInputsHash(
	processID types.HexBytes,
	ballotMode *types.BallotMode,
	encryptionKey ecc.Point,
	address types.HexBytes,
	voteID *types.BigInt,
	ballot *elgamal.Ballot,
	weight *types.BigInt,
) (*types.BigInt, error) {
	field := params.BallotProofCurve.ScalarField()
	if voteID == nil || !voteID.IsInField(field) {
		return nil, fmt.Errorf("vote identifier is not a valid field element")
	}
	if weight == nil || !weight.IsInField(field) {
		return nil, fmt.Errorf("weight is not a valid field element")
	}
	pkX, pkY := encryptionKey.Point()
	inputs := []*big.Int{crypto.BigToFF(field, new(big.Int).SetBytes(processID))}
	inputs = append(inputs, ballotMode.Serialize()...)
	inputs = append(inputs, pkX, pkY)
	inputs = append(inputs, crypto.BigToFF(field, new(big.Int).SetBytes(address)))
	inputs = append(inputs, voteID.MathBigInt())
	inputs = append(inputs, ballot.BigInts()...)
	inputs = append(inputs, weight.MathBigInt())
	h, err := poseidon.MultiPoseidon(inputs...)
	if err != nil {
		return nil, fmt.Errorf("failed to hash ballot inputs: %w", err)
	}
	return (*types.BigInt)(h), nil
}
