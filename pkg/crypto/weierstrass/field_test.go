package weierstrass

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	p := Stark().P
	tests := map[string]struct {
		a, modulus, want *big.Int
	}{
		"already reduced":   {big.NewInt(5), big.NewInt(7), big.NewInt(5)},
		"positive":          {big.NewInt(12), big.NewInt(7), big.NewInt(5)},
		"negative":          {big.NewInt(-2), big.NewInt(7), big.NewInt(5)},
		"negative multiple": {big.NewInt(-14), big.NewInt(7), big.NewInt(0)},
		"p mod p":           {new(big.Int).Set(p), p, big.NewInt(0)},
		"-1 mod p":          {big.NewInt(-1), p, new(big.Int).Sub(p, big.NewInt(1))},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := Mod(test.a, test.modulus)
			assert.Equal(t, 0, got.Cmp(test.want), "got %s, want %s", got, test.want)
		})
	}
}

func TestModNonPositiveModulus(t *testing.T) {
	for _, modulus := range []*big.Int{big.NewInt(0), big.NewInt(-7)} {
		t.Run(modulus.String(), func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "Mod did not panic")
				err, ok := r.(error)
				require.True(t, ok, "panic value %v is not an error", r)
				assert.ErrorIs(t, err, ErrInvalidArgument)
			}()
			Mod(big.NewInt(5), modulus)
		})
	}
}

func TestInvert(t *testing.T) {
	p := Stark().P
	half, _ := new(big.Int).SetString("400000000000008800000000000000000000000000000000000000000000001", 16)
	inv12345, _ := new(big.Int).SetString("2793091378955007236559075641969455085984818846083012146945613139159070432010", 10)

	tests := map[string]struct {
		a, modulus, want *big.Int
	}{
		"small modulus": {big.NewInt(3), big.NewInt(7), big.NewInt(5)},
		"two mod p":     {big.NewInt(2), p, half},
		"12345 mod p":   {big.NewInt(12345), p, inv12345},
		"one":           {big.NewInt(1), p, big.NewInt(1)},
		"negative":      {big.NewInt(-4), big.NewInt(7), big.NewInt(5)},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Invert(test.a, test.modulus)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(test.want), "got %s, want %s", got, test.want)
		})
	}

	t.Run("random elements", func(t *testing.T) {
		for range 32 {
			a, err := rand.Int(rand.Reader, p)
			require.NoError(t, err)
			if a.Sign() == 0 {
				continue
			}
			inv, err := Invert(a, p)
			require.NoError(t, err)
			assert.True(t, inv.Sign() >= 0 && inv.Cmp(p) < 0)
			prod := Mod(new(big.Int).Mul(a, inv), p)
			assert.Equal(t, 0, prod.Cmp(big.NewInt(1)))
		}
	})
}

func TestInvertErrors(t *testing.T) {
	p := Stark().P

	_, err := Invert(big.NewInt(0), p)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Invert(big.NewInt(3), big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Invert(big.NewInt(3), big.NewInt(-7))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Invert(big.NewInt(4), big.NewInt(8))
	assert.ErrorIs(t, err, ErrNotInvertible)

	// A non-zero multiple of the modulus reduces to zero.
	_, err = Invert(new(big.Int).Lsh(p, 1), p)
	assert.ErrorIs(t, err, ErrNotInvertible)
}
