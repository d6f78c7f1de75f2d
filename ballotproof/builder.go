// Package ballotproof provides the inputs generation for the ballot proof
// circuit. It encrypts the ballot fields with deterministic ElGamal
// randomness, derives the vote identifier and binds every public value into
// a single inputs hash, producing the exact signal set the circom artifact
// consumes.
package ballotproof

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vocdoni/davinci-ballotproof/crypto"
	"github.com/vocdoni/davinci-ballotproof/crypto/ecc"
	bjj "github.com/vocdoni/davinci-ballotproof/crypto/ecc/bjj_gnark"
	"github.com/vocdoni/davinci-ballotproof/crypto/ecc/curves"
	"github.com/vocdoni/davinci-ballotproof/crypto/ecc/format"
	"github.com/vocdoni/davinci-ballotproof/crypto/elgamal"
	"github.com/vocdoni/davinci-ballotproof/log"
	"github.com/vocdoni/davinci-ballotproof/types"
	"github.com/vocdoni/davinci-ballotproof/types/params"
)

// Builder generates ballot proof inputs over a fixed curve backend. A nil
// Builder is not usable; create one with NewBuilder or use the process-wide
// DefaultBuilder. Builders are safe for concurrent use: building inputs
// shares no mutable state between calls.
type Builder struct {
	curveType   string
	scalarField *big.Int
}

// NewBuilder creates a Builder over the given curve backend. The curve
// parameters are loaded eagerly so the first Generate call pays no
// initialization cost.
func NewBuilder(curveType string) (*Builder, error) {
	if !curves.IsValid(curveType) {
		return nil, fmt.Errorf("%w: unsupported curve type %q", ErrBackendNotInitialized, curveType)
	}
	// force the one-shot curve parameter initialization now
	curves.New(curveType)
	return &Builder{
		curveType:   curveType,
		scalarField: params.BallotProofCurve.ScalarField(),
	}, nil
}

var (
	defaultBuilder     *Builder
	defaultBuilderErr  error
	defaultBuilderOnce sync.Once
)

// DefaultBuilder returns the process-wide Builder over the gnark BabyJubJub
// backend, initializing it on first use.
func DefaultBuilder() (*Builder, error) {
	defaultBuilderOnce.Do(func() {
		defaultBuilder, defaultBuilderErr = NewBuilder(bjj.CurveType)
	})
	return defaultBuilder, defaultBuilderErr
}

// GenerateBallotProofInputs builds the inputs for a ballot proof using the
// process-wide default Builder.
func GenerateBallotProofInputs(inputs *BallotProofInputs) (*BallotProofResult, error) {
	b, err := DefaultBuilder()
	if err != nil {
		return nil, err
	}
	return b.GenerateBallotProofInputs(inputs)
}

// GenerateBallotProofInputs validates the provided inputs, encrypts the
// ballot fields and assembles the circuit inputs. The field list is
// zero-padded on the right up to the ballot capacity; shorter lists are
// accepted, longer ones are rejected. If no encryption seed k is provided,
// a cryptographically random one is generated and reported back through the
// circuit inputs.
func (b *Builder) GenerateBallotProofInputs(inputs *BallotProofInputs) (*BallotProofResult, error) {
	if b == nil || b.scalarField == nil {
		return nil, ErrBackendNotInitialized
	}
	if inputs == nil {
		return nil, fmt.Errorf("%w: missing inputs", ErrParse)
	}
	if inputs.BallotMode == nil {
		return nil, fmt.Errorf("%w: missing ballot mode", ErrParse)
	}
	if err := inputs.BallotMode.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(inputs.FieldValues) > params.FieldsPerBallot {
		return nil, fmt.Errorf("%w: got %d fields, capacity is %d",
			ErrCapacityExceeded, len(inputs.FieldValues), params.FieldsPerBallot)
	}
	if inputs.Weight == nil || !inputs.Weight.IsInField(b.scalarField) {
		return nil, fmt.Errorf("%w: weight must be a valid field element", ErrInvalidScalar)
	}

	// pad the field values with zeros up to the ballot capacity
	fields := [params.FieldsPerBallot]*big.Int{}
	for i := range fields {
		fields[i] = big.NewInt(0)
	}
	for i, v := range inputs.FieldValues {
		if v == nil || !v.IsInField(b.scalarField) {
			return nil, fmt.Errorf("%w: field value at index %d", ErrInvalidScalar, i)
		}
		fields[i].Set(v.MathBigInt())
	}

	// resolve the encryption seed, generating a fresh one if absent
	k := new(big.Int)
	if inputs.K != nil {
		k.Set(inputs.K.MathBigInt())
		if k.Sign() <= 0 || k.Cmp(b.scalarField) >= 0 {
			return nil, fmt.Errorf("%w: k must be in (0, scalar field)", ErrInvalidScalar)
		}
	} else {
		randK, err := elgamal.RandK()
		if err != nil {
			return nil, fmt.Errorf("failed to generate random k: %w", err)
		}
		k.Set(randK)
	}

	pubKey, err := b.encryptionPoint(inputs.EncryptionKey)
	if err != nil {
		return nil, err
	}

	ballot, err := elgamal.NewBallot(pubKey).Encrypt(fields, pubKey, k)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt ballot: %w", err)
	}

	address := common.BytesToAddress(inputs.Address)
	voteID, err := VoteID(inputs.ProcessID, address, (*types.BigInt)(k))
	if err != nil {
		return nil, err
	}
	inputsHash, err := BallotInputsHash(inputs.ProcessID, inputs.BallotMode,
		pubKey, address.Bytes(), voteID, ballot, inputs.Weight)
	if err != nil {
		return nil, err
	}

	ffProcessID := crypto.BigToFF(b.scalarField, new(big.Int).SetBytes(inputs.ProcessID))
	ffAddress := crypto.BigToFF(b.scalarField, new(big.Int).SetBytes(address.Bytes()))
	pkX, pkY := pubKey.Point()
	mode := inputs.BallotMode.Serialize()

	voteIDBytes := VoteIDBytes(voteID)
	log.Debugw("ballot proof inputs generated",
		"processId", inputs.ProcessID.String(),
		"address", address.Hex(),
		"voteId", voteIDBytes.String())

	return &BallotProofResult{
		ProcessID:  inputs.ProcessID,
		Address:    address.Bytes(),
		Ballot:     ballot,
		VoteID:     voteIDBytes,
		InputsHash: inputsHash,
		CircuitInputs: &CircuitInputs{
			Fields:         bigIntsToStrings(fields[:]),
			NumFields:      mode[0].String(),
			UniqueValues:   mode[1].String(),
			MaxValue:       mode[2].String(),
			MinValue:       mode[3].String(),
			MaxValueSum:    mode[4].String(),
			MinValueSum:    mode[5].String(),
			CostExponent:   mode[6].String(),
			CostFromWeight: mode[7].String(),
			Address:        ffAddress.String(),
			Weight:         inputs.Weight.String(),
			ProcessID:      ffProcessID.String(),
			PK:             []string{pkX.String(), pkY.String()},
			K:              k.String(),
			Cipherfields:   bigIntsToStrings(ballot.BigInts()),
			VoteID:         voteID.String(),
			InputsHash:     inputsHash.String(),
		},
	}, nil
}

// encryptionPoint validates the provided encryption key, normalizes its
// coordinates to the standard twisted Edwards convention and returns it as a
// point on the builder's curve.
func (b *Builder) encryptionPoint(key *types.EncryptionKey) (ecc.Point, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: missing encryption key", ErrParse)
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	x, y := key.X.MathBigInt(), key.Y.MathBigInt()
	if key.IsReduced() {
		x, y = format.FromRTEtoTE(x, y)
	}
	point := curves.New(b.curveType).SetPoint(x, y)
	if !point.IsOnCurve() {
		return nil, fmt.Errorf("%w: (%s, %s)", ErrInvalidPoint, x.String(), y.String())
	}
	return point, nil
}
