package weierstrass

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidArgument indicates an input that is outside the domain
	// of an operation, such as inverting zero.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotInvertible indicates that an element shares a factor with
	// the modulus. It cannot happen for non-zero elements of a prime
	// field.
	ErrNotInvertible = errors.New("element is not invertible")
	// ErrInternalInvariant is the panic value used when the curve
	// arithmetic produces a result that violates its own invariants.
	ErrInternalInvariant = errors.New("internal invariant violation")
)

// Mod returns the representative of a in [0, modulus). The modulus must
// be positive; Mod panics with an error wrapping [ErrInvalidArgument]
// otherwise.
func Mod(a, modulus *big.Int) *big.Int {
	if modulus.Sign() <= 0 {
		panic(fmt.Errorf("%w: modulus %s is not positive", ErrInvalidArgument, modulus))
	}
	r := new(big.Int).Rem(a, modulus)
	if r.Sign() < 0 {
		r.Add(r, modulus)
	}
	return r
}

// modP reduces a into [0, P) for the STARK field prime.
func modP(a *big.Int) *big.Int {
	return Mod(a, stark.P)
}

// Invert returns the inverse of a modulo modulus using the extended
// Euclidean algorithm. The result lies in [0, modulus).
func Invert(a, modulus *big.Int) (*big.Int, error) {
	if a.Sign() == 0 || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: cannot invert %s modulo %s", ErrInvalidArgument, a, modulus)
	}

	// Invariant: x·a₀ ≡ b and u·a₀ ≡ a (mod modulus).
	r := Mod(a, modulus)
	b := new(big.Int).Set(modulus)
	x, u := big.NewInt(0), big.NewInt(1)
	q, rem := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		q.QuoRem(b, r, rem)
		m := new(big.Int).Mul(u, q)
		m.Sub(x, m)
		b, r = r, new(big.Int).Set(rem)
		x, u = u, m
	}

	if b.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNotInvertible, a, modulus, b)
	}
	return Mod(x, modulus), nil
}

// mustInvertP inverts a non-zero element of the STARK field. Failure
// means a zero denominator reached the conversion, which is a bug.
func mustInvertP(a *big.Int) *big.Int {
	inv, err := Invert(a, stark.P)
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrInternalInvariant, err))
	}
	return inv
}
