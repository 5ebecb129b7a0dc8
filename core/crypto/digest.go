package crypto

import "github.com/NethermindEth/starknet-pedersen/core/felt"

// Digest accumulates field elements and produces a single hash once
// all of them have been added.
type Digest interface {
	Update(...*felt.Felt) Digest
	Finish() *felt.Felt
}
