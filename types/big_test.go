package types

import (
	"encoding/json"
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBigIntJSON(t *testing.T) {
	c := qt.New(t)

	// marshals as a decimal string
	v := new(BigInt).SetUint64(12345)
	data, err := json.Marshal(v)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, `"12345"`)

	// accepts both quoted and bare numeric representations
	var fromString, fromNumber BigInt
	c.Assert(json.Unmarshal([]byte(`"678"`), &fromString), qt.IsNil)
	c.Assert(json.Unmarshal([]byte(`678`), &fromNumber), qt.IsNil)
	c.Assert(fromString.Equal(&fromNumber), qt.IsTrue)

	c.Assert(json.Unmarshal([]byte(`"not a number"`), &fromString), qt.IsNotNil)
}

func TestBigIntSetString(t *testing.T) {
	c := qt.New(t)

	dec, err := new(BigInt).SetString("255")
	c.Assert(err, qt.IsNil)
	hex, err := new(BigInt).SetString("0xff")
	c.Assert(err, qt.IsNil)
	c.Assert(dec.Equal(hex), qt.IsTrue)

	_, err = new(BigInt).SetString("0xzz")
	c.Assert(err, qt.IsNotNil)
	_, err = new(BigInt).SetString("12.5")
	c.Assert(err, qt.IsNotNil)
}

func TestBigIntFieldHelpers(t *testing.T) {
	c := qt.New(t)

	field := big.NewInt(100)
	c.Assert(new(BigInt).SetUint64(99).IsInField(field), qt.IsTrue)
	c.Assert(new(BigInt).SetUint64(100).IsInField(field), qt.IsFalse)
	c.Assert((*BigInt)(big.NewInt(-1)).IsInField(field), qt.IsFalse)

	c.Assert(new(BigInt).SetUint64(100).ToFF(field).String(), qt.Equals, "0")
	c.Assert(new(BigInt).SetUint64(105).ToFF(field).String(), qt.Equals, "5")
	c.Assert(new(BigInt).SetUint64(42).ToFF(field).String(), qt.Equals, "42")
}
