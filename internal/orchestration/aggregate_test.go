package orchestration

import (
	"math"
	"math/big"
	"slices"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		primes  []int64
		k       int
		count   int
		sum     string
		topK    []int64
	}{
		{
			name:   "empty collection",
			primes: nil,
			k:      DefaultTopK,
			count:  0,
			sum:    "0",
			topK:   []int64{},
		},
		{
			name:   "primes up to 30",
			primes: []int64{29, 2, 23, 3, 19, 5, 17, 7, 13, 11},
			k:      DefaultTopK,
			count:  10,
			sum:    "129",
			topK:   []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29},
		},
		{
			name: "top k smaller than count",
			primes: []int64{
				97, 2, 89, 3, 83, 5, 79, 7, 73, 11, 71, 13, 67, 17, 61, 19,
				59, 23, 53, 29, 47, 31, 43, 37, 41,
			},
			k:     DefaultTopK,
			count: 25,
			sum:   "1060",
			topK:  []int64{53, 59, 61, 67, 71, 73, 79, 83, 89, 97},
		},
		{
			name:   "k larger than count",
			primes: []int64{5, 2, 3},
			k:      10,
			count:  3,
			sum:    "10",
			topK:   []int64{2, 3, 5},
		},
		{
			name:   "k zero",
			primes: []int64{2, 3, 5},
			k:      0,
			count:  3,
			sum:    "10",
			topK:   []int64{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := Summarize(tt.primes, tt.k, time.Now())
			if s.Count != tt.count {
				t.Errorf("Count = %d, want %d", s.Count, tt.count)
			}
			if s.Sum.String() != tt.sum {
				t.Errorf("Sum = %s, want %s", s.Sum, tt.sum)
			}
			if !slices.Equal(s.TopK, tt.topK) {
				t.Errorf("TopK = %v, want %v", s.TopK, tt.topK)
			}
			if !slices.IsSorted(s.Primes) {
				t.Errorf("Primes not sorted ascending: %v", s.Primes)
			}
			if s.Elapsed < 0 {
				t.Errorf("Elapsed = %v, want >= 0", s.Elapsed)
			}
		})
	}
}

// TestSummarizeSumExceedsInt64 exercises the exact summation path: a handful
// of values near MaxInt64 overflows any 64-bit accumulator but must still sum
// exactly.
func TestSummarizeSumExceedsInt64(t *testing.T) {
	t.Parallel()
	values := []int64{math.MaxInt64, math.MaxInt64, math.MaxInt64}
	s := Summarize(values, 2, time.Now())

	want := new(big.Int).SetInt64(math.MaxInt64)
	want.Mul(want, big.NewInt(3))
	if s.Sum.Cmp(want) != 0 {
		t.Errorf("Sum = %s, want %s", s.Sum, want)
	}
	if len(s.TopK) != 2 {
		t.Errorf("len(TopK) = %d, want 2", len(s.TopK))
	}
}

// TestSummarizeSortsInPlace documents that ownership of the collection passes
// to the aggregator: the caller's slice is reordered.
func TestSummarizeSortsInPlace(t *testing.T) {
	t.Parallel()
	primes := []int64{7, 2, 5, 3}
	s := Summarize(primes, 2, time.Now())
	if !slices.Equal(primes, []int64{2, 3, 5, 7}) {
		t.Errorf("input slice = %v, want sorted in place", primes)
	}
	if &s.Primes[0] != &primes[0] {
		t.Error("Summary.Primes is not the caller's slice")
	}
}
