// Package weierstrass implements the group law of the STARK curve, a
// short Weierstrass curve over the field of p = 2²⁵¹ + 17·2¹⁹² + 1, in
// affine and Jacobian coordinates.
package weierstrass

import "math/big"

// CurveParams contains the parameters of a short Weierstrass curve
// y² = x³ + A·x + B over the prime field 𝔽ₚ.
type CurveParams struct {
	P       *big.Int // the order of the underlying field
	N       *big.Int // the order of the base point
	A       *big.Int // the linear coefficient of the curve equation
	B       *big.Int // the constant of the curve equation
	Gx, Gy  *big.Int // (x,y) of the base point
	BitSize int      // the size of the underlying field
	Name    string   // the canonical name of the curve
}

// stark holds the process-wide STARK curve parameters. It is never
// mutated; callers that need the values get copies from Stark.
var stark = newStark()

func newStark() *CurveParams {
	c := CurveParams{Name: "STARK", BitSize: 252, A: big.NewInt(1)}
	c.B, _ = new(big.Int).SetString("6f21413efbe40de150e596d72f7a8c5609ad26c15c915c1f4cdfcb99cee9e89", 16)
	c.Gx, _ = new(big.Int).SetString("1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca", 16)
	c.Gy, _ = new(big.Int).SetString("5668060aa49730b7be4801df46ec62de53ecd11abe43a32873000c36e8dc1f", 16)
	c.N, _ = new(big.Int).SetString("800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f", 16)
	c.P, _ = new(big.Int).SetString("800000000000011000000000000000000000000000000000000000000000001", 16)
	return &c
}

// Stark returns the parameters of the STARK curve as described in
// https://docs.starkware.co/starkex-v4/crypto/stark-curve. Each call
// returns a fresh copy so the shared parameters cannot be modified.
func Stark() *CurveParams {
	return &CurveParams{
		P:       new(big.Int).Set(stark.P),
		N:       new(big.Int).Set(stark.N),
		A:       new(big.Int).Set(stark.A),
		B:       new(big.Int).Set(stark.B),
		Gx:      new(big.Int).Set(stark.Gx),
		Gy:      new(big.Int).Set(stark.Gy),
		BitSize: stark.BitSize,
		Name:    stark.Name,
	}
}

// Generator returns the base point G of the curve.
func (c *CurveParams) Generator() AffinePoint {
	return AffinePoint{x: new(big.Int).Set(c.Gx), y: new(big.Int).Set(c.Gy)}
}

// IsOnCurve reports whether p satisfies y² = x³ + A·x + B with both
// coordinates reduced. The point at infinity is not on the curve.
func (c *CurveParams) IsOnCurve(p AffinePoint) bool {
	if p.IsInfinity() {
		return false
	}
	if p.x.Sign() < 0 || p.x.Cmp(c.P) >= 0 || p.y.Sign() < 0 || p.y.Cmp(c.P) >= 0 {
		return false
	}

	y2 := new(big.Int).Mul(p.y, p.y)
	y2.Mod(y2, c.P)

	rhs := new(big.Int).Mul(p.x, p.x)
	rhs.Mul(rhs, p.x)
	ax := new(big.Int).Mul(c.A, p.x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.B)
	rhs.Mod(rhs, c.P)

	return rhs.Cmp(y2) == 0
}
