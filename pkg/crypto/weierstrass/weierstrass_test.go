// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENCE file.

package weierstrass

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var curve = Stark()

// randomPoint returns k·G for a random non-zero scalar k.
func randomPoint(t testing.TB) AffinePoint {
	t.Helper()
	for {
		k, err := rand.Int(rand.Reader, curve.N)
		require.NoError(t, err)
		if k.Sign() != 0 {
			return curve.Generator().ScalarMult(k)
		}
	}
}

// BenchmarkAdd runs a benchmark on the Jacobian addition of two
// distinct points.
func BenchmarkAdd(b *testing.B) {
	p, q := FromAffine(randomPoint(b)), FromAffine(randomPoint(b))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = p.Add(q)
	}
}

// BenchmarkDouble runs a benchmark on the Jacobian doubling.
func BenchmarkDouble(b *testing.B) {
	p := FromAffine(randomPoint(b))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = p.Double()
	}
}

func TestStarkParams(t *testing.T) {
	p := new(big.Int).Lsh(big.NewInt(1), 251)
	p.Add(p, new(big.Int).Lsh(big.NewInt(17), 192))
	p.Add(p, big.NewInt(1))

	assert.Equal(t, 0, curve.P.Cmp(p), "P = 2²⁵¹ + 17·2¹⁹² + 1")
	assert.Equal(t, 0, curve.A.Cmp(big.NewInt(1)))
	assert.Equal(t, 252, curve.BitSize)
	assert.Equal(t, 252, curve.N.BitLen())
	assert.True(t, curve.IsOnCurve(curve.Generator()))

	// Stark hands out copies.
	mutated := Stark()
	mutated.P.SetInt64(7)
	assert.Equal(t, 0, Stark().P.Cmp(p))
}

// TestOffCurve checks whether a point that is not on a curve can be
// detected.
func TestOffCurve(t *testing.T) {
	p := NewAffinePoint(big.NewInt(1), big.NewInt(1))
	assert.False(t, curve.IsOnCurve(p), "point off curve is claimed to be on the curve")

	_, err := FromHex(p.ToHex())
	assert.ErrorIs(t, err, ErrInvalidArgument, "decoding a point not on the curve succeeded")
}

// TestInfinity checks whether the point operations return valid values
// when some input value is ∞.
func TestInfinity(t *testing.T) {
	inf := curve.Generator().ScalarMult(curve.N)
	assert.True(t, inf.IsInfinity(), "G^n != ∞")

	inf = curve.Generator().ScalarMult(big.NewInt(0))
	assert.True(t, inf.IsInfinity(), "G^0 != ∞")

	assert.True(t, inf.Double().IsInfinity(), "2∞ != ∞")
	assert.True(t, inf.Negate().IsInfinity(), "-∞ != ∞")
	assert.True(t, FromAffine(inf).IsZero())
	assert.True(t, FromAffine(inf).Equal(JacobianZero()))

	g := curve.Generator()
	assert.True(t, g.Add(inf).Equal(g), "x+∞ != x")
	assert.True(t, inf.Add(g).Equal(g), "∞+x != x")
	assert.True(t, g.Subtract(g).IsInfinity(), "x-x != ∞")

	assert.False(t, curve.IsOnCurve(inf), "IsOnCurve(∞) == true")
	assert.False(t, JacobianZero().Equal(FromAffine(g)))
	assert.False(t, FromAffine(g).Equal(JacobianZero()))
}

// TestInvalidCoordinates tests big.Int values that are not valid field
// elements (negative or bigger than P). They are expected to return
// false from IsOnCurve.
func TestInvalidCoordinates(t *testing.T) {
	p := curve.P
	pt := randomPoint(t)
	x, y := pt.X(), pt.Y()

	checkIsOnCurveFalse := func(name string, x, y *big.Int) {
		if curve.IsOnCurve(AffinePoint{x: x, y: y}) {
			t.Errorf("IsOnCurve(%s) unexpectedly returned true", name)
		}
	}

	checkIsOnCurveFalse("-x, y", new(big.Int).Neg(x), y)
	checkIsOnCurveFalse("x, -y", x, new(big.Int).Neg(y))
	checkIsOnCurveFalse("x-P, y", new(big.Int).Sub(x, p), y)
	checkIsOnCurveFalse("x, y-P", x, new(big.Int).Sub(y, p))
	checkIsOnCurveFalse("x+P, y", new(big.Int).Add(x, p), y)
	checkIsOnCurveFalse("x, y+P", x, new(big.Int).Add(y, p))

	// NewAffinePoint reduces its input, so x+P becomes a valid point.
	assert.True(t, curve.IsOnCurve(NewAffinePoint(new(big.Int).Add(x, p), y)))
}

// TestMarshal checks whether a point can be serialised correctly.
func TestMarshal(t *testing.T) {
	g := curve.Generator()
	want := "04" +
		"01ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca" +
		"005668060aa49730b7be4801df46ec62de53ecd11abe43a32873000c36e8dc1f"
	assert.Equal(t, want, g.ToHex())
	assert.Equal(t, "01ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca", g.ToHexX())
	assert.Len(t, g.ToRawX(), FieldSize)
	assert.Equal(t, byte(0x01), g.ToRawX()[0])

	decoded, err := FromHex("0x" + want)
	require.NoError(t, err)
	assert.True(t, decoded.Equal(g))

	pt := randomPoint(t)
	decoded, err = FromHex(pt.ToHex())
	require.NoError(t, err)
	assert.True(t, decoded.Equal(pt))

	for name, input := range map[string]string{
		"not hex":        "zz",
		"too short":      want[:len(want)-2],
		"wrong marker":   "02" + want[2:],
		"x not in field": "04" + "0800000000000011000000000000000000000000000000000000000000000001" + want[66:],
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromHex(input)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
