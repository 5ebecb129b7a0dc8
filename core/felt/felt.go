package felt

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

type Felt struct {
	val fp.Element
}

func NewFelt(element *fp.Element) *Felt {
	return &Felt{
		val: *element,
	}
}

// ErrNotCanonical is returned when a value does not lie in [0, p).
var ErrNotCanonical = errors.New("value is not a canonical field element")

// Impl returns the underlying field element type
func (z *Felt) Impl() *fp.Element {
	return &z.val
}

// SetBigInt sets z to v if v is a canonical field element, i.e. it lies in
// [0, p). Unlike the underlying implementation it never reduces v.
func (z *Felt) SetBigInt(v *big.Int) (*Felt, error) {
	if v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return z, ErrNotCanonical
	}
	z.val.SetBigInt(v)
	return z, nil
}

// BigInt returns the regular (non-Montgomery) value of z as a new big.Int
func (z *Felt) BigInt() *big.Int {
	return z.val.BigInt(new(big.Int))
}

// SetString forwards the call to underlying field element implementation
func (z *Felt) SetString(number string) (*Felt, error) {
	_, err := z.val.SetString(number)
	return z, err
}

// SetUint64 forwards the call to underlying field element implementation
func (z *Felt) SetUint64(v uint64) *Felt {
	z.val.SetUint64(v)
	return z
}

// SetRandom forwards the call to underlying field element implementation
func (z *Felt) SetRandom() (*Felt, error) {
	_, err := z.val.SetRandom()
	return z, err
}

// String returns the 0x-prefixed hex representation of z without leading zeros
func (z *Felt) String() string {
	return "0x" + z.val.Text(16)
}

// Equal forwards the call to underlying field element implementation
func (z *Felt) Equal(x *Felt) bool {
	return z.val.Equal(&x.val)
}
