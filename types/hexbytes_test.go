package types

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestHexBytesJSON(t *testing.T) {
	c := qt.New(t)

	b := HexBytes{0x01, 0x23, 0xab}
	data, err := json.Marshal(b)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, `"0x0123ab"`)

	var decoded HexBytes
	c.Assert(json.Unmarshal(data, &decoded), qt.IsNil)
	c.Assert(decoded.Equal(b), qt.IsTrue)

	// the 0x prefix is optional on input
	c.Assert(json.Unmarshal([]byte(`"0123ab"`), &decoded), qt.IsNil)
	c.Assert(decoded.Equal(b), qt.IsTrue)

	c.Assert(json.Unmarshal([]byte(`"0xzz"`), &decoded), qt.IsNotNil)
}

func TestHexBytesPadTrim(t *testing.T) {
	c := qt.New(t)

	b := HexBytes{0x04, 0x56}
	padded := b.LeftPad(4)
	c.Assert(padded.Equal(HexBytes{0x00, 0x00, 0x04, 0x56}), qt.IsTrue)
	c.Assert(padded.BigInt().Equal(b.BigInt()), qt.IsTrue)
	c.Assert(padded.LeftTrim().Equal(b), qt.IsTrue)
}

func TestHexStringToHexBytes(t *testing.T) {
	c := qt.New(t)

	b, err := HexStringToHexBytes("0x0456")
	c.Assert(err, qt.IsNil)
	c.Assert(b.Equal(HexBytes{0x04, 0x56}), qt.IsTrue)

	_, err = HexStringToHexBytes("0xnothex")
	c.Assert(err, qt.IsNotNil)
}
