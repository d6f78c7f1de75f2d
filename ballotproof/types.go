package ballotproof

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/vocdoni/davinci-ballotproof/crypto/elgamal"
	"github.com/vocdoni/davinci-ballotproof/types"
)

// BallotProofInputs is the user-provided request to build the inputs for a
// ballot proof. All numeric values cross this boundary as decimal or
// 0x-prefixed strings, never as native floats or language integers.
type BallotProofInputs struct {
	ProcessID     types.HexBytes       `json:"processId"`
	Address       types.HexBytes       `json:"address"`
	EncryptionKey *types.EncryptionKey `json:"encryptionKey"`
	// K is the encryption seed. If empty, a random one is generated.
	K           *types.BigInt     `json:"k,omitempty"`
	BallotMode  *types.BallotMode `json:"ballotMode"`
	Weight      *types.BigInt     `json:"weight"`
	FieldValues []*types.BigInt   `json:"fieldValues"`
}

// ParseBallotProofInputs decodes a JSON-encoded BallotProofInputs. Malformed
// JSON or malformed numeric values are reported as ErrParse.
func ParseBallotProofInputs(data []byte) (*BallotProofInputs, error) {
	inputs := &BallotProofInputs{}
	if err := json.Unmarshal(data, inputs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return inputs, nil
}

// CircuitInputs is the ordered set of public and private signals consumed by
// the ballot proof circuit. Every value is a decimal string; the JSON key
// names and their order are part of the contract with the circuit artifact
// and cannot change independently.
type CircuitInputs struct {
	Fields         []string `json:"fields"`
	NumFields      string   `json:"num_fields"`
	UniqueValues   string   `json:"unique_values"`
	MaxValue       string   `json:"max_value"`
	MinValue       string   `json:"min_value"`
	MaxValueSum    string   `json:"max_value_sum"`
	MinValueSum    string   `json:"min_value_sum"`
	CostExponent   string   `json:"cost_exponent"`
	CostFromWeight string   `json:"cost_from_weight"`
	Address        string   `json:"address"`
	Weight         string   `json:"weight"`
	ProcessID      string   `json:"process_id"`
	PK             []string `json:"pk"`
	K              string   `json:"k"`
	Cipherfields   []string `json:"cipherfields"`
	VoteID         string   `json:"vote_id"`
	InputsHash     string   `json:"inputs_hash"`
}

// BallotProofResult is the result of building the inputs for a ballot proof.
// It includes the encrypted ballot, the vote identifier, the inputs hash and
// the ready-to-use circuit inputs.
type BallotProofResult struct {
	ProcessID     types.HexBytes  `json:"processId"`
	Address       types.HexBytes  `json:"address"`
	Ballot        *elgamal.Ballot `json:"ballot"`
	VoteID        types.HexBytes  `json:"voteId"`
	InputsHash    *types.BigInt   `json:"inputsHash"`
	CircuitInputs *CircuitInputs  `json:"circuitInputs"`
}

// String returns a string representation of the result.
func (r *BallotProofResult) String() string {
	data, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return string(data)
}

// bigIntsToStrings converts a slice of big.Ints to their decimal string
// representation, the form the circom toolchain consumes.
func bigIntsToStrings(values []*big.Int) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
