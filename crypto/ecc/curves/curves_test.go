package curves

import (
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"

	bjj_gnark "github.com/vocdoni/davinci-ballotproof/crypto/ecc/bjj_gnark"
	bjj_iden3 "github.com/vocdoni/davinci-ballotproof/crypto/ecc/bjj_iden3"
)

func TestRegistry(t *testing.T) {
	c := qt.New(t)

	c.Assert(IsValid(bjj_gnark.CurveType), qt.IsTrue)
	c.Assert(IsValid(bjj_iden3.CurveType), qt.IsTrue)
	c.Assert(IsValid("unknown"), qt.IsFalse)
	c.Assert(Curves(), qt.HasLen, 2)

	for _, curveType := range Curves() {
		p := New(curveType)
		c.Assert(p.Type(), qt.Equals, curveType)
	}

	c.Assert(func() { New("unknown") }, qt.PanicMatches, "unsupported curve type.*")
}

// Both backends implement the same group, so the same scalar multiple of the
// generator must have identical standard twisted Edwards coordinates.
func TestBackendsAgree(t *testing.T) {
	c := qt.New(t)

	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(123456789),
	}
	for _, k := range scalars {
		g := New(bjj_gnark.CurveType)
		g.ScalarBaseMult(k)
		i := New(bjj_iden3.CurveType)
		i.ScalarBaseMult(k)

		gx, gy := g.Point()
		ix, iy := i.Point()
		c.Assert(gx.Cmp(ix), qt.Equals, 0)
		c.Assert(gy.Cmp(iy), qt.Equals, 0)
		c.Assert(g.IsOnCurve(), qt.IsTrue)
		c.Assert(i.IsOnCurve(), qt.IsTrue)
	}
}

func TestPointOperations(t *testing.T) {
	c := qt.New(t)

	for _, curveType := range Curves() {
		curve := New(curveType)

		// identity
		zero := curve.New()
		zero.SetZero()
		x, y := zero.Point()
		c.Assert(x.Sign(), qt.Equals, 0)
		c.Assert(y.Cmp(big.NewInt(1)), qt.Equals, 0)

		// 2*G == G + G
		double := curve.New()
		double.ScalarBaseMult(big.NewInt(2))
		gen := curve.New()
		gen.SetGenerator()
		sum := curve.New()
		sum.Add(gen, gen)
		c.Assert(double.Equal(sum), qt.IsTrue)

		// G + (-G) == 0
		neg := curve.New()
		neg.Neg(gen)
		identity := curve.New()
		identity.Add(gen, neg)
		c.Assert(identity.Equal(zero), qt.IsTrue)

		// SetPoint/Point round trip
		px, py := double.Point()
		restored := curve.New().SetPoint(px, py)
		c.Assert(restored.Equal(double), qt.IsTrue)
		c.Assert(restored.IsOnCurve(), qt.IsTrue)
	}
}
