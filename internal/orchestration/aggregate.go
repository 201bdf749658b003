package orchestration

import (
	"math"
	"math/big"
	"slices"
	"time"
)

// DefaultTopK is how many of the largest primes the summary reports by
// default.
const DefaultTopK = 10

// Summary is the immutable aggregate of a completed run.
type Summary struct {
	// Elapsed is the wall time of the sieve-plus-sort phase, excluding I/O.
	Elapsed time.Duration
	// Count is the total number of primes found.
	Count int
	// Sum is the arithmetic sum of all found primes. A big.Int accumulator
	// keeps the sum exact for any configurable range; sums of 64-bit primes
	// can exceed 2^63 long before the range bound does.
	Sum *big.Int
	// TopK holds the K largest primes in ascending order (all of them when
	// Count < K).
	TopK []int64
	// Primes is the full ascending prime list, available for display and
	// persistence by output collaborators.
	Primes []int64
}

// Summarize sorts the merged result collection ascending and derives the
// summary statistics. The slice is sorted in place: ownership of the
// collection transfers to the aggregator once all workers have joined.
// Elapsed is measured against startedAt after the sort completes, so it
// covers the sieve-plus-sort phase and excludes any subsequent I/O.
// An empty collection yields Count 0, Sum 0 and an empty TopK.
func Summarize(primes []int64, k int, startedAt time.Time) Summary {
	slices.Sort(primes)
	elapsed := time.Since(startedAt)

	if k > len(primes) {
		k = len(primes)
	}
	topK := append([]int64(nil), primes[len(primes)-k:]...)

	return Summary{
		Elapsed: elapsed,
		Count:   len(primes),
		Sum:     sumInt64s(primes),
		TopK:    topK,
		Primes:  primes,
	}
}

// sumInt64s adds the values into a big.Int. Partial sums accumulate in a
// uint64 and fold into the big accumulator only when the next addition could
// overflow, which keeps the big.Int allocation count tiny even for millions
// of primes.
func sumInt64s(values []int64) *big.Int {
	sum := new(big.Int)
	var partial uint64
	tmp := new(big.Int)
	for _, v := range values {
		uv := uint64(v)
		if partial > math.MaxUint64-uv {
			sum.Add(sum, tmp.SetUint64(partial))
			partial = 0
		}
		partial += uv
	}
	if partial > 0 {
		sum.Add(sum, tmp.SetUint64(partial))
	}
	return sum
}
