package crypto

import (
	"errors"
	"fmt"

	"github.com/NethermindEth/starknet-pedersen/core/felt"
	pedersenhash "github.com/NethermindEth/starknet-pedersen/pkg/crypto/pedersen"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultCacheSize is the number of Pedersen results memoised by
// [Pedersen] until [ResizeCache] is called.
const DefaultCacheSize = 1 << 16

var ErrInvalidCacheSize = errors.New("cache size must be positive")

// PedersenArray implements [Pedersen array hashing].
//
// [Pedersen array hashing]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#array_hashing
func PedersenArray(elems ...*felt.Felt) *felt.Felt {
	var digest PedersenDigest
	return digest.Update(elems...).Finish()
}

type lruKey struct {
	x, y felt.Felt
}

var lruPedersen, _ = lru.New[lruKey, felt.Felt](DefaultCacheSize)

var pedersenCache = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pedersen_cache_total",
	Help: "Pedersen hash cache lookups partitioned by whether they hit.",
}, []string{"hit"})

// ResizeCache changes the number of memoised Pedersen results and
// returns how many entries were evicted.
func ResizeCache(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCacheSize, size)
	}
	return lruPedersen.Resize(size), nil
}

// Pedersen implements the [Pedersen hash].
//
// [Pedersen hash]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#pedersen_hash
func Pedersen(a, b *felt.Felt) *felt.Felt {
	key := lruKey{
		x: *a, y: *b,
	}

	if res, ok := lruPedersen.Get(key); ok {
		pedersenCache.WithLabelValues("true").Inc()
		return &res
	}

	result := pedersen(a, b)
	lruPedersen.Add(key, *result)
	pedersenCache.WithLabelValues("false").Inc()
	return result
}

// pedersen hashes two felts without consulting the cache. Felts are
// always reduced, so the only failure left is the same-point collision,
// which cannot happen with the published constants.
func pedersen(a, b *felt.Felt) *felt.Felt {
	hash, err := pedersenhash.Digest(a.BigInt(), b.BigInt())
	if err != nil {
		panic(err)
	}
	result, err := new(felt.Felt).SetBigInt(hash)
	if err != nil {
		panic(err)
	}
	return result
}

var _ Digest = (*PedersenDigest)(nil)

type PedersenDigest struct {
	digest felt.Felt
	count  uint64
}

func (d *PedersenDigest) Update(elems ...*felt.Felt) Digest {
	for idx := range elems {
		d.digest = *pedersen(&d.digest, elems[idx])
	}
	d.count += uint64(len(elems))
	return d
}

func (d *PedersenDigest) Finish() *felt.Felt {
	d.digest = *pedersen(&d.digest, new(felt.Felt).SetUint64(d.count))
	result := d.digest
	return &result
}
