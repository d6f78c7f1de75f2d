package elgamal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"

	gelgamal "github.com/vocdoni/gnark-crypto-primitives/elgamal"

	"github.com/vocdoni/davinci-ballotproof/crypto/ecc"
	"github.com/vocdoni/davinci-ballotproof/crypto/ecc/curves"
	"github.com/vocdoni/davinci-ballotproof/crypto/hash/poseidon"
	"github.com/vocdoni/davinci-ballotproof/types/params"
)

// SerializedBallotSize is the size in bytes of a serialized Ballot.
const SerializedBallotSize = params.FieldsPerBallot * SizeCiphertext

// Ballot is the encryption of one vote: a fixed-size array with one
// ciphertext per ballot field.
type Ballot struct {
	CurveType   string                              `json:"curveType,omitempty"`
	Ciphertexts [params.FieldsPerBallot]*Ciphertext `json:"ciphertexts"`
}

// NewBallot creates a new Ballot for the given curve.
func NewBallot(curve ecc.Point) *Ballot {
	z := &Ballot{
		CurveType:   curve.Type(),
		Ciphertexts: [params.FieldsPerBallot]*Ciphertext{},
	}
	for i := range z.Ciphertexts {
		z.Ciphertexts[i] = NewCiphertext(curve)
	}
	return z
}

// Valid method checks if the Ballot is valid. A ballot is valid if all its
// Ciphertexts are valid (not nil) and the CurveType is supported.
func (z *Ballot) Valid() bool {
	for _, c := range z.Ciphertexts {
		if c == nil {
			return false
		}
	}
	return curves.IsValid(z.CurveType)
}

// IsZero checks if the Ballot is zero, meaning all Ciphertexts are zero.
func (z *Ballot) IsZero() bool {
	if !curves.IsValid(z.CurveType) {
		return false
	}
	curve := curves.New(z.CurveType)
	for _, c := range z.Ciphertexts {
		if !c.IsZero(curve) {
			return false
		}
	}
	return true
}

// Encrypt encrypts a message using the public key provided as elliptic
// curve point. The randomness k can be provided or nil to generate a new
// one. Each ciphertext uses a different k derived from the previous one
// using the Poseidon hash chain: field i is encrypted with chain element
// i+1, where chain element 0 is the provided k itself.
func (z *Ballot) Encrypt(message [params.FieldsPerBallot]*big.Int, publicKey ecc.Point, k *big.Int) (*Ballot, error) {
	var err error
	if k == nil {
		k, err = RandK()
		if err != nil {
			return nil, fmt.Errorf("elgamal encryption failed: %w", err)
		}
	}
	chain, err := poseidon.Chain(k, params.FieldsPerBallot)
	if err != nil {
		return nil, err
	}
	for i := range z.Ciphertexts {
		if _, err := z.Ciphertexts[i].Encrypt(message[i], publicKey, chain[i+1]); err != nil {
			return nil, err
		}
	}
	return z, nil
}

// EncryptedZero returns a new ballot with all fields set to the encrypted
// zero point using the provided encryption key and k.
func (z *Ballot) EncryptedZero(publicKey ecc.Point, k *big.Int) (*Ballot, error) {
	encZero := NewBallot(publicKey)
	for i := range encZero.Ciphertexts {
		if _, err := encZero.Ciphertexts[i].Encrypt(big.NewInt(0), publicKey, k); err != nil {
			return nil, err
		}
	}
	return encZero, nil
}

// Add adds two Ballots and stores the result in the receiver, which is also
// returned.
func (z *Ballot) Add(x, y *Ballot) *Ballot {
	for i := range z.Ciphertexts {
		z.Ciphertexts[i].Add(x.Ciphertexts[i], y.Ciphertexts[i])
	}
	return z
}

// BigInts returns a slice with N*4 big.Ints: the coordinates of each
// Ciphertext as C1.X, C1.Y, C2.X, C2.Y in field order, in standard twisted
// Edwards form. The order is part of the protocol contract with the
// proving circuit.
func (z *Ballot) BigInts() []*big.Int {
	list := make([]*big.Int, 0, params.FieldsPerBallot*4)
	for _, c := range z.Ciphertexts {
		c1x, c1y := c.C1.Point()
		c2x, c2y := c.C2.Point()
		list = append(list, c1x, c1y, c2x, c2y)
	}
	return list
}

// SetBigInts sets the Ballot from a slice of N*4 big.Ints, representing each
// Ciphertext as C1.X, C1.Y, C2.X, C2.Y in standard twisted Edwards form.
// It returns an error if the input is invalid.
func (z *Ballot) SetBigInts(list []*big.Int) (*Ballot, error) {
	if !curves.IsValid(z.CurveType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCurveType, z.CurveType)
	}
	if len(list) != params.FieldsPerBallot*4 {
		return nil, fmt.Errorf("expected %d big.Ints, got %d", params.FieldsPerBallot*4, len(list))
	}
	z.Ciphertexts = [params.FieldsPerBallot]*Ciphertext{}
	for i := range z.Ciphertexts {
		c1x, c1y := list[i*4], list[i*4+1]
		c2x, c2y := list[i*4+2], list[i*4+3]
		z.Ciphertexts[i] = &Ciphertext{
			C1: curves.New(z.CurveType).SetPoint(c1x, c1y),
			C2: curves.New(z.CurveType).SetPoint(c2x, c2y),
		}
	}
	return z, nil
}

// Serialize returns a slice of len N*4*32 bytes, representing each
// Ciphertext as C1.X, C1.Y, C2.X, C2.Y in standard twisted Edwards form.
func (z *Ballot) Serialize() []byte {
	var buf bytes.Buffer
	for _, c := range z.Ciphertexts {
		buf.Write(c.Serialize())
	}
	return buf.Bytes()
}

// Deserialize reconstructs a Ballot from a slice of bytes. The input must
// be of len N*4*32 bytes (otherwise it returns an error), representing each
// Ciphertext as C1.X, C1.Y, C2.X, C2.Y in standard twisted Edwards form.
func (z *Ballot) Deserialize(data []byte) error {
	if len(data) != SerializedBallotSize {
		return fmt.Errorf("invalid input length for Ballot: got %d bytes, expected %d bytes", len(data), SerializedBallotSize)
	}
	for i := range z.Ciphertexts {
		if err := z.Ciphertexts[i].Deserialize(data[i*SizeCiphertext : (i+1)*SizeCiphertext]); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalJSON reconstructs a Ballot from its JSON encoding. The curve
// type must be decoded first so the ciphertext points can be allocated on
// the right curve.
func (z *Ballot) UnmarshalJSON(data []byte) error {
	var raw struct {
		CurveType   string            `json:"curveType"`
		Ciphertexts []json.RawMessage `json:"ciphertexts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !curves.IsValid(raw.CurveType) {
		return fmt.Errorf("%w: %s", ErrInvalidCurveType, raw.CurveType)
	}
	if len(raw.Ciphertexts) != params.FieldsPerBallot {
		return fmt.Errorf("expected %d ciphertexts, got %d", params.FieldsPerBallot, len(raw.Ciphertexts))
	}
	z.CurveType = raw.CurveType
	curve := curves.New(raw.CurveType)
	for i, rawCiphertext := range raw.Ciphertexts {
		z.Ciphertexts[i] = NewCiphertext(curve)
		if err := z.Ciphertexts[i].Unmarshal(rawCiphertext); err != nil {
			return err
		}
	}
	return nil
}

// String returns a string representation of the Ballot.
func (z *Ballot) String() string {
	b, err := json.Marshal(z)
	if b == nil || err != nil {
		return ""
	}
	return string(b)
}

// ToGnark returns the ballot ciphertexts as the structs used by gnark, with
// the points in reduced twisted Edwards form.
func (z *Ballot) ToGnark() *[params.FieldsPerBallot]gelgamal.Ciphertext {
	gz := &[params.FieldsPerBallot]gelgamal.Ciphertext{}
	for i := range z.Ciphertexts {
		gz[i] = *z.Ciphertexts[i].ToGnark()
	}
	return gz
}
