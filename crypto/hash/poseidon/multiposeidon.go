// Package poseidon provides the Poseidon-based hash functions used by the
// ballot encryption layer: a multi-input hash that mirrors the chunking rule
// of the proving circuit, and a deterministic hash chain for deriving the
// per-field encryption randomness from a single seed.
package poseidon

import (
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
)

// maxInputs is the per-call input arity limit of the circuit's Poseidon
// component. The chunking in MultiPoseidon must match it exactly.
const maxInputs = 16

// Hash computes the Poseidon hash of the provided inputs. It returns an
// error if no inputs are provided or any input is nil.
func Hash(inputs ...*big.Int) (*big.Int, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no inputs provided")
	}
	for i, v := range inputs {
		if v == nil {
			return nil, fmt.Errorf("nil input at index %d", i)
		}
	}
	return poseidon.Hash(inputs)
}

// MultiPoseidon computes the Poseidon hash of a variable number of big.Int
// inputs. It handles large numbers of inputs by chunking them into groups of
// 16, hashing each chunk, and then recursively hashing the resulting hashes
// together. The chunking mirrors the hashing primitive of the proving
// circuit, which has a fixed per-call input-arity limit of 16; any deviation
// here invalidates every proof.
func MultiPoseidon(inputs ...*big.Int) (*big.Int, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no inputs provided")
	}

	// For 16 or fewer inputs, hash directly
	if len(inputs) <= maxInputs {
		return Hash(inputs...)
	}

	numChunks := (len(inputs) + maxInputs - 1) / maxInputs
	hashes := make([]*big.Int, 0, numChunks)
	for i := 0; i < len(inputs); i += maxInputs {
		end := min(i+maxInputs, len(inputs))
		h, err := Hash(inputs[i:end]...)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}

	// Recursively hash the chunk hashes if they still exceed the arity limit
	if len(hashes) > maxInputs {
		return MultiPoseidon(hashes...)
	}
	return Hash(hashes...)
}

// Chain derives n+1 values where out[0] = seed and out[i+1] = Hash(out[i]).
// It is total and deterministic: the same seed and n always produce the same
// chain, so a whole ballot's randomness can be reproduced or audited from a
// single seed.
func Chain(seed *big.Int, n int) ([]*big.Int, error) {
	if seed == nil {
		return nil, fmt.Errorf("nil seed")
	}
	out := make([]*big.Int, n+1)
	out[0] = new(big.Int).Set(seed)
	for i := 0; i < n; i++ {
		h, err := Hash(out[i])
		if err != nil {
			return nil, err
		}
		out[i+1] = h
	}
	return out, nil
}
