package ingestion

import (
	"math/rand"
	"sort"
)

// sampleSeed fixes the sampling RNG so repeated loads of the same source
// select the same subset.
const sampleSeed = 42

// sampleIndices returns the row indices to load. When size is zero or the
// source fits, every index is returned. Otherwise a seeded partial
// Fisher-Yates shuffle picks size rows without replacement; the result is
// sorted ascending so store order stays aligned with original row order.
func sampleIndices(total, size int) []int {
	indices := make([]int, total)
	for i := range indices {
		indices[i] = i
	}
	if size <= 0 || total <= size {
		return indices
	}

	rng := rand.New(rand.NewSource(sampleSeed))
	for i := 0; i < size; i++ {
		j := i + rng.Intn(total-i)
		indices[i], indices[j] = indices[j], indices[i]
	}
	indices = indices[:size]
	sort.Ints(indices)
	return indices
}
