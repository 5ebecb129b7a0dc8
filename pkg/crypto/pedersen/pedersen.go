// Package pedersen implements the Starknet variant of the Pedersen
// hash function.
package pedersen

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/NethermindEth/starknet-pedersen/pkg/crypto/weierstrass"
)

var (
	// ErrInvalidArgument indicates an input value that is not a field
	// element with p = 2²⁵¹ + 17·2¹⁹² + 1.
	ErrInvalidArgument = weierstrass.ErrInvalidArgument
	// ErrSamePointCollision indicates that a table point coincided with
	// the accumulator while folding an element. It does not happen with
	// the published constants.
	ErrSamePointCollision = errors.New("same point collision")
)

// fieldPrime is P of the STARK curve.
var fieldPrime = weierstrass.Stark().P

// ParseFieldElement parses a decimal or 0x-prefixed hexadecimal string
// and checks that the value lies in [0, p). Signs are not accepted.
func ParseFieldElement(s string) (*big.Int, error) {
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}

	v, ok := new(big.Int), false
	if !strings.HasPrefix(digits, "+") && !strings.HasPrefix(digits, "-") {
		v, ok = v.SetString(digits, base)
	}
	if !ok {
		return nil, fmt.Errorf("%w: cannot parse %q as a field element", ErrInvalidArgument, s)
	}
	if err := checkArg(v); err != nil {
		return nil, err
	}
	return v, nil
}

func checkArg(v *big.Int) error {
	if v == nil {
		return fmt.Errorf("%w: nil field element", ErrInvalidArgument)
	}
	if v.Sign() < 0 || v.Cmp(fieldPrime) >= 0 {
		return fmt.Errorf("%w: %s is not in [0, p)", ErrInvalidArgument, v)
	}
	return nil
}

// single folds the bits of value into point, adding table[j] for every
// set bit j. The accumulator is never doubled.
func single(point weierstrass.JacobianPoint, value *big.Int, table []weierstrass.JacobianPoint) (weierstrass.JacobianPoint, error) {
	if err := checkArg(value); err != nil {
		return weierstrass.JacobianPoint{}, err
	}
	for j := 0; j < ElementBits; j++ {
		pt := table[j]
		if pt.X().Cmp(point.X()) == 0 {
			// notest
			return weierstrass.JacobianPoint{}, fmt.Errorf("%w: bit %d", ErrSamePointCollision, j)
		}
		if value.Bit(j) == 1 {
			point = point.Add(pt)
		}
	}
	return point, nil
}

func digest(a, b *big.Int) (weierstrass.AffinePoint, error) {
	point, err := single(weierstrass.FromAffine(points[0]), a, table1)
	if err != nil {
		return weierstrass.AffinePoint{}, err
	}
	point, err = single(point, b, table2)
	if err != nil {
		return weierstrass.AffinePoint{}, err
	}
	return point.ToAffine(), nil
}

// Digest returns a field element that is the result of hashing an input
// (a, b) ∈ 𝔽²ₚ where p = 2²⁵¹ + 17·2¹⁹² + 1. It returns an error if
// (a, b) ∉ 𝔽²ₚ. The inputs are not modified.
func Digest(a, b *big.Int) (*big.Int, error) {
	point, err := digest(a, b)
	if err != nil {
		return nil, err
	}
	return point.X(), nil
}

// ArrayDigest returns a field element that is the result of hashing an
// array of field elements. This is generally used to overcome the
// limitation of the [Digest] function which has an upper bound on the
// amount of field elements that can be hashed. See the [array hashing]
// section of the Starknet documentation for more details.
//
// [array hashing]: https://docs.starknet.io/architecture-and-concepts/cryptography/hash-functions/#array_hashing
func ArrayDigest(data ...*big.Int) (*big.Int, error) {
	currentHash := new(big.Int)
	for i, item := range data {
		partialResult, err := Digest(currentHash, item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		currentHash = partialResult
	}
	return Digest(currentHash, big.NewInt(int64(len(data))))
}

// Hash hashes two field elements given as decimal or 0x-prefixed hex
// strings and returns the digest as 0x-prefixed lowercase hex without
// leading zeros.
func Hash(x, y string) (string, error) {
	a, err := ParseFieldElement(x)
	if err != nil {
		return "", err
	}
	b, err := ParseFieldElement(y)
	if err != nil {
		return "", err
	}
	point, err := digest(a, b)
	if err != nil {
		return "", err
	}
	return trimHex(point.ToHexX()), nil
}

// HashOnElements hashes a sequence of field elements given as strings
// by chaining [Hash] from zero and finally hashing in the length of the
// sequence. An empty sequence hashes to Hash("0", "0").
func HashOnElements(elements []string) (string, error) {
	data := make([]*big.Int, len(elements))
	for i, e := range elements {
		v, err := ParseFieldElement(e)
		if err != nil {
			return "", fmt.Errorf("element %d: %w", i, err)
		}
		data[i] = v
	}
	h, err := ArrayDigest(data...)
	if err != nil {
		return "", err
	}
	return "0x" + h.Text(16), nil
}

// trimHex turns a fixed-width hex string into its 0x-prefixed form with
// redundant leading zeros removed.
func trimHex(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return "0x" + s
}
