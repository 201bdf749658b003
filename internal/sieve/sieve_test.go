package sieve

import (
	"slices"
	"testing"
)

// primesBetween filters a full sieve down to [lo, hi], used as the oracle
// for segment tests.
func primesBetween(lo, hi int64) []int64 {
	var out []int64
	for _, p := range BasePrimes(hi) {
		if p >= lo {
			out = append(out, p)
		}
	}
	return out
}

func TestBasePrimes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		limit int64
		want  []int64
	}{
		{"negative limit", -5, nil},
		{"zero", 0, nil},
		{"one", 1, nil},
		{"two", 2, []int64{2}},
		{"ten", 10, []int64{2, 3, 5, 7}},
		{"thirty", 30, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
		{"prime limit", 31, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BasePrimes(tt.limit)
			if !slices.Equal(got, tt.want) {
				t.Errorf("BasePrimes(%d) = %v, want %v", tt.limit, got, tt.want)
			}
		})
	}
}

func TestBasePrimesCounts(t *testing.T) {
	t.Parallel()
	// pi(n) reference values
	tests := []struct {
		limit int64
		count int
	}{
		{100, 25},
		{1000, 168},
		{10000, 1229},
		{100000, 9592},
	}
	for _, tt := range tests {
		if got := len(BasePrimes(tt.limit)); got != tt.count {
			t.Errorf("len(BasePrimes(%d)) = %d, want %d", tt.limit, got, tt.count)
		}
	}
}

func TestBasePrimesSortedNoDuplicates(t *testing.T) {
	t.Parallel()
	primes := BasePrimes(10000)
	for i := 1; i < len(primes); i++ {
		if primes[i] <= primes[i-1] {
			t.Fatalf("primes not strictly ascending at index %d: %d <= %d", i, primes[i], primes[i-1])
		}
	}
}

func TestSqrtBound(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int64
		want int64
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{99, 9},
		{100, 10},
		{10_000_000_000, 100_000},
	}
	for _, tt := range tests {
		if got := SqrtBound(tt.n); got != tt.want {
			t.Errorf("SqrtBound(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	// The defining property must hold even where float sqrt rounds
	for _, n := range []int64{1 << 52, 1<<52 + 1, 1<<62 - 1} {
		r := SqrtBound(n)
		if r*r > n {
			t.Errorf("SqrtBound(%d) = %d overshoots: r*r = %d", n, r, r*r)
		}
		if (r+1)*(r+1) <= n {
			t.Errorf("SqrtBound(%d) = %d undershoots", n, r)
		}
	}
}

func TestSegment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		lo, hi int64
		want   []int64
	}{
		{"full range from one", 1, 30, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
		{"includes zero and one", 0, 10, []int64{2, 3, 5, 7}},
		{"empty interval", 10, 9, nil},
		{"single prime", 13, 13, []int64{13}},
		{"single composite", 14, 14, nil},
		{"value one alone", 1, 1, nil},
		// 121 = 11*11 sits in range; first multiple must use p*p, not a
		// smaller in-range multiple
		{"prime square in segment", 120, 130, []int64{127}},
		{"mid range", 100, 200, primesBetween(100, 200)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			base := BasePrimes(SqrtBound(tt.hi))
			got := Segment(tt.lo, tt.hi, base, nil)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Segment(%d, %d) = %v, want %v", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestSegmentProgressCallback(t *testing.T) {
	t.Parallel()
	var reports []float64
	Segment(1, 10000, BasePrimes(100), func(v float64) {
		reports = append(reports, v)
	})

	if len(reports) == 0 {
		t.Fatal("expected progress reports")
	}
	if last := reports[len(reports)-1]; last != 1.0 {
		t.Errorf("final progress = %f, want 1.0", last)
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] < reports[i-1] {
			t.Errorf("progress regressed at report %d: %f < %f", i, reports[i], reports[i-1])
		}
	}
	for _, v := range reports {
		if v < 0 || v > 1 {
			t.Errorf("progress out of range: %f", v)
		}
	}
}

func TestSegmentLargeOffsets(t *testing.T) {
	t.Parallel()
	// A narrow window far from the origin exercises the ceil(lo/p)*p path
	// for every base prime.
	lo, hi := int64(999_900), int64(1_000_100)
	base := BasePrimes(SqrtBound(hi))
	got := Segment(lo, hi, base, nil)
	want := primesBetween(lo, hi)
	if !slices.Equal(got, want) {
		t.Errorf("Segment(%d, %d) mismatch:\n got %v\nwant %v", lo, hi, got, want)
	}
}
