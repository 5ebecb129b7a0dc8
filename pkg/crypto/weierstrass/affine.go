package weierstrass

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const (
	// FieldSize is the length in bytes of a serialised field element.
	FieldSize = 32
	// uncompressed is the marker byte of the uncompressed point
	// encoding.
	uncompressed = 0x04
)

// AffinePoint is a point on the STARK curve in affine coordinates. The
// pair (0, 0) is not on the curve and stands for the point at infinity.
//
// The arithmetic methods lift both operands to Jacobian coordinates,
// operate there and project the result back.
type AffinePoint struct {
	x, y *big.Int
}

// Infinity returns the affine sentinel (0, 0).
func Infinity() AffinePoint {
	return AffinePoint{x: big.NewInt(0), y: big.NewInt(0)}
}

// NewAffinePoint returns the point (x, y) with both coordinates reduced
// modulo P. It does not check that the point is on the curve; use
// [CurveParams.IsOnCurve] for that.
func NewAffinePoint(x, y *big.Int) AffinePoint {
	return AffinePoint{x: modP(x), y: modP(y)}
}

// X returns a copy of the x coordinate.
func (p AffinePoint) X() *big.Int { return new(big.Int).Set(p.x) }

// Y returns a copy of the y coordinate.
func (p AffinePoint) Y() *big.Int { return new(big.Int).Set(p.y) }

// IsInfinity reports whether p is the sentinel (0, 0).
func (p AffinePoint) IsInfinity() bool {
	return p.x.Sign() == 0 && p.y.Sign() == 0
}

// Equal reports whether p and q have identical coordinates.
func (p AffinePoint) Equal(q AffinePoint) bool {
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Negate returns -p.
func (p AffinePoint) Negate() AffinePoint {
	return FromAffine(p).Negate().ToAffine()
}

// Double returns 2p.
func (p AffinePoint) Double() AffinePoint {
	return FromAffine(p).Double().ToAffine()
}

// Add returns p + q.
func (p AffinePoint) Add(q AffinePoint) AffinePoint {
	return FromAffine(p).Add(FromAffine(q)).ToAffine()
}

// Subtract returns p - q.
func (p AffinePoint) Subtract(q AffinePoint) AffinePoint {
	return FromAffine(p).Add(FromAffine(q).Negate()).ToAffine()
}

// ScalarMult returns k·p.
func (p AffinePoint) ScalarMult(k *big.Int) AffinePoint {
	return FromAffine(p).ScalarMult(k).ToAffine()
}

// ToRawX returns the 32-byte big-endian encoding of the x coordinate.
func (p AffinePoint) ToRawX() []byte {
	return p.x.FillBytes(make([]byte, FieldSize))
}

// ToHexX returns the x coordinate as 64 lowercase hex characters.
func (p AffinePoint) ToHexX() string {
	return hex.EncodeToString(p.ToRawX())
}

// Bytes returns the uncompressed encoding 0x04 || x || y.
func (p AffinePoint) Bytes() []byte {
	out := make([]byte, 1+2*FieldSize)
	out[0] = uncompressed
	p.x.FillBytes(out[1 : 1+FieldSize])
	p.y.FillBytes(out[1+FieldSize:])
	return out
}

// ToHex returns the hex form of [AffinePoint.Bytes].
func (p AffinePoint) ToHex() string {
	return hex.EncodeToString(p.Bytes())
}

// FromHex decodes an uncompressed point produced by [AffinePoint.ToHex].
// An optional 0x prefix is accepted. Coordinates must be reduced and the
// point must lie on the curve.
func FromHex(s string) (AffinePoint, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return AffinePoint{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if len(b) != 1+2*FieldSize || b[0] != uncompressed {
		return AffinePoint{}, fmt.Errorf("%w: not an uncompressed point encoding", ErrInvalidArgument)
	}

	p := AffinePoint{
		x: new(big.Int).SetBytes(b[1 : 1+FieldSize]),
		y: new(big.Int).SetBytes(b[1+FieldSize:]),
	}
	if !stark.IsOnCurve(p) {
		return AffinePoint{}, fmt.Errorf("%w: point is not on the curve", ErrInvalidArgument)
	}
	return p, nil
}

func (p AffinePoint) String() string {
	return fmt.Sprintf("(%#x, %#x)", p.x, p.y)
}
