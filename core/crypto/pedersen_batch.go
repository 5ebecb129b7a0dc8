package crypto

import (
	"github.com/NethermindEth/starknet-pedersen/core/felt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sourcegraph/conc/iter"
)

var batchPairs = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pedersen_batch_pairs_total",
	Help: "Number of pairs hashed through PedersenBatch.",
})

// PedersenBatch hashes every pair independently using at most workers
// goroutines. The i-th result is Pedersen(pairs[i][0], pairs[i][1]).
func PedersenBatch(pairs [][2]*felt.Felt, workers int) []*felt.Felt {
	if workers < 1 {
		workers = 1
	}

	mapper := iter.Mapper[[2]*felt.Felt, *felt.Felt]{MaxGoroutines: workers}
	out := mapper.Map(pairs, func(pair *[2]*felt.Felt) *felt.Felt {
		return Pedersen(pair[0], pair[1])
	})
	batchPairs.Add(float64(len(pairs)))
	return out
}
