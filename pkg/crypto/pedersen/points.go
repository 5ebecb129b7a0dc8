package pedersen

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/big"
	"slices"

	"github.com/NethermindEth/starknet-pedersen/pkg/crypto/weierstrass"
)

const (
	// ElementBits is the number of bits of a field element consumed by
	// the hash.
	ElementBits = 252
	// LowPartBits is the number of low bits of an element that are
	// multiplied by the first point of a pair. The remaining high bits
	// use the second point.
	LowPartBits = 248
)

var (
	// b is a byte array that represents the file that contains the
	// constant points, points.json.
	//go:embed points.json
	b []byte
	// points holds the shift point P0 followed by the four base points
	// P1..P4.
	points [5]weierstrass.AffinePoint
	// table1 and table2 hold the doubling tables of (P1, P2) and
	// (P3, P4) respectively.
	table1, table2 []weierstrass.JacobianPoint
)

func init() {
	var hex [5][2]string
	if err := json.Unmarshal(b, &hex); err != nil {
		panic(fmt.Errorf("decode points.json: %w", err))
	}
	for i, p := range hex {
		x, okX := new(big.Int).SetString(p[0], 16)
		y, okY := new(big.Int).SetString(p[1], 16)
		if !okX || !okY {
			panic(fmt.Sprintf("malformed constant point %d", i))
		}
		points[i] = weierstrass.NewAffinePoint(x, y)
	}
	table1 = Precompute(points[1], points[2])
	table2 = Precompute(points[3], points[4])
}

// Precompute returns the doubling table used to fold one field element
// into the hash: entry i is 2ⁱ·p1 for i < 248 and 2ⁱ⁻²⁴⁸·p2 for the
// last four entries.
func Precompute(p1, p2 weierstrass.AffinePoint) []weierstrass.JacobianPoint {
	out := make([]weierstrass.JacobianPoint, 0, ElementBits)
	p := weierstrass.FromAffine(p1)
	for range LowPartBits {
		out = append(out, p)
		p = p.Double()
	}
	p = weierstrass.FromAffine(p2)
	for range ElementBits - LowPartBits {
		out = append(out, p)
		p = p.Double()
	}
	return out
}

// Points returns the constant points: the shift point followed by the
// base points of the two tables.
func Points() [5]weierstrass.AffinePoint {
	return points
}

// Tables returns copies of the two precomputed doubling tables.
func Tables() (t1, t2 []weierstrass.JacobianPoint) {
	return slices.Clone(table1), slices.Clone(table2)
}
