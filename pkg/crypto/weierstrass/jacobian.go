package weierstrass

import (
	"fmt"
	"math/big"
)

// JacobianPoint is a point on the STARK curve in Jacobian coordinates.
// For a given (x, y) position on the curve, the Jacobian coordinates
// are (x1, y1, z1) where x = x1/z1² and y = y1/z1³. Any triple with
// z1 = 0 is the point at infinity.
//
// A JacobianPoint is an immutable value: every operation allocates the
// coordinates of its result.
type JacobianPoint struct {
	x, y, z *big.Int
}

// JacobianZero returns the point at infinity, (0, 1, 0).
func JacobianZero() JacobianPoint {
	return JacobianPoint{x: big.NewInt(0), y: big.NewInt(1), z: big.NewInt(0)}
}

// NewJacobianPoint returns the point (x, y, z). The coordinates are
// reduced modulo P.
func NewJacobianPoint(x, y, z *big.Int) JacobianPoint {
	return JacobianPoint{x: modP(x), y: modP(y), z: modP(z)}
}

// FromAffine lifts p into Jacobian coordinates. The affine sentinel
// (0, 0) maps to the Jacobian zero.
func FromAffine(p AffinePoint) JacobianPoint {
	if p.IsInfinity() {
		return JacobianZero()
	}
	return JacobianPoint{x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y), z: big.NewInt(1)}
}

// X returns a copy of the raw x coordinate.
func (p JacobianPoint) X() *big.Int { return new(big.Int).Set(p.x) }

// Y returns a copy of the raw y coordinate.
func (p JacobianPoint) Y() *big.Int { return new(big.Int).Set(p.y) }

// Z returns a copy of the raw z coordinate.
func (p JacobianPoint) Z() *big.Int { return new(big.Int).Set(p.z) }

// IsZero reports whether p is the point at infinity.
func (p JacobianPoint) IsZero() bool {
	return p.z.Sign() == 0
}

// Equal reports whether p and q represent the same affine point. The
// denominators are cleared by cross-multiplication so no inversion is
// needed and the comparison stays defined at infinity.
func (p JacobianPoint) Equal(q JacobianPoint) bool {
	z1z1 := modP(new(big.Int).Mul(p.z, p.z))
	z2z2 := modP(new(big.Int).Mul(q.z, q.z))

	u1 := modP(new(big.Int).Mul(p.x, z2z2))
	u2 := modP(new(big.Int).Mul(q.x, z1z1))

	s1 := modP(new(big.Int).Mul(p.y, q.z))
	s1 = modP(s1.Mul(s1, z2z2))
	s2 := modP(new(big.Int).Mul(q.y, p.z))
	s2 = modP(s2.Mul(s2, z1z1))

	return u1.Cmp(u2) == 0 && s1.Cmp(s2) == 0
}

// Negate returns -p.
func (p JacobianPoint) Negate() JacobianPoint {
	return JacobianPoint{
		x: new(big.Int).Set(p.x),
		y: modP(new(big.Int).Neg(p.y)),
		z: new(big.Int).Set(p.z),
	}
}

// Double returns 2p.
func (p JacobianPoint) Double() JacobianPoint {
	if p.IsZero() {
		return JacobianZero()
	}

	// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#doubling-dbl-2007-bl
	xx := modP(new(big.Int).Mul(p.x, p.x))
	yy := modP(new(big.Int).Mul(p.y, p.y))
	yyyy := modP(new(big.Int).Mul(yy, yy))
	zz := modP(new(big.Int).Mul(p.z, p.z))

	s := new(big.Int).Add(p.x, yy)
	s.Mul(s, s)
	s.Sub(s, xx)
	s.Sub(s, yyyy)
	s = modP(s.Lsh(s, 1))

	m := new(big.Int).Mul(zz, zz)
	m.Mul(m, stark.A)
	m.Add(m, new(big.Int).Mul(big.NewInt(3), xx))
	m = modP(m)

	t := new(big.Int).Mul(m, m)
	t.Sub(t, new(big.Int).Lsh(s, 1))
	t = modP(t)

	y3 := new(big.Int).Sub(s, t)
	y3.Mul(y3, m)
	y3.Sub(y3, new(big.Int).Lsh(yyyy, 3))
	y3 = modP(y3)

	z3 := new(big.Int).Add(p.y, p.z)
	z3.Mul(z3, z3)
	z3.Sub(z3, yy)
	z3.Sub(z3, zz)
	z3 = modP(z3)

	return JacobianPoint{x: t, y: y3, z: z3}
}

// Add returns p + q.
//
// An operand whose raw x or y coordinate is zero is treated as the
// point at infinity and the other operand is returned unchanged. This
// matches the canonical zero (0, 1, 0), but it would also swallow a
// finite intermediate that happens to have a zero coordinate.
func (p JacobianPoint) Add(q JacobianPoint) JacobianPoint {
	if q.IsZero() {
		return p
	}
	if p.IsZero() {
		return q
	}
	if q.x.Sign() == 0 || q.y.Sign() == 0 {
		return p
	}
	if p.x.Sign() == 0 || p.y.Sign() == 0 {
		return q
	}

	// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#addition-add-1998-cmo-2
	z1z1 := modP(new(big.Int).Mul(p.z, p.z))
	z2z2 := modP(new(big.Int).Mul(q.z, q.z))
	u1 := modP(new(big.Int).Mul(p.x, z2z2))
	u2 := modP(new(big.Int).Mul(q.x, z1z1))

	s1 := modP(new(big.Int).Mul(p.y, q.z))
	s1 = modP(s1.Mul(s1, z2z2))
	s2 := modP(new(big.Int).Mul(q.y, p.z))
	s2 = modP(s2.Mul(s2, z1z1))

	h := modP(new(big.Int).Sub(u2, u1))
	r := modP(new(big.Int).Sub(s2, s1))
	if h.Sign() == 0 {
		if r.Sign() == 0 {
			return p.Double()
		}
		return JacobianZero()
	}

	hh := modP(new(big.Int).Mul(h, h))
	hhh := modP(new(big.Int).Mul(h, hh))
	v := modP(new(big.Int).Mul(u1, hh))

	x3 := new(big.Int).Mul(r, r)
	x3.Sub(x3, hhh)
	x3.Sub(x3, new(big.Int).Lsh(v, 1))
	x3 = modP(x3)

	y3 := new(big.Int).Sub(v, x3)
	y3.Mul(y3, r)
	y3.Sub(y3, new(big.Int).Mul(s1, hhh))
	y3 = modP(y3)

	z3 := new(big.Int).Mul(p.z, q.z)
	z3.Mul(z3, h)
	z3 = modP(z3)

	return JacobianPoint{x: x3, y: y3, z: z3}
}

// ToAffine projects p back to affine coordinates. The point at infinity
// maps to the affine sentinel (0, 0).
func (p JacobianPoint) ToAffine() AffinePoint {
	if p.IsZero() {
		return Infinity()
	}

	iz1 := mustInvertP(p.z)
	iz2 := modP(new(big.Int).Mul(iz1, iz1))
	iz3 := modP(new(big.Int).Mul(iz2, iz1))

	ax := modP(new(big.Int).Mul(p.x, iz2))
	ay := modP(new(big.Int).Mul(p.y, iz3))
	if zz := modP(new(big.Int).Mul(p.z, iz1)); zz.Cmp(big.NewInt(1)) != 0 {
		panic(fmt.Errorf("%w: z·z⁻¹ = %s", ErrInternalInvariant, zz))
	}
	return AffinePoint{x: ax, y: ay}
}

// ScalarMult returns k·p computed by double-and-add over the bits of k
// from the least significant. Negative scalars multiply -p.
func (p JacobianPoint) ScalarMult(k *big.Int) JacobianPoint {
	n := new(big.Int).Set(k)
	base := p
	if n.Sign() < 0 {
		n.Neg(n)
		base = base.Negate()
	}

	acc := JacobianZero()
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			acc = acc.Add(base)
		}
		base = base.Double()
	}
	return acc
}

func (p JacobianPoint) String() string {
	return fmt.Sprintf("(%#x, %#x, %#x)", p.x, p.y, p.z)
}
