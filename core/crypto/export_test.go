package crypto

var (
	PedersenCacheLookups = pedersenCache
	BatchPairs           = batchPairs
)
