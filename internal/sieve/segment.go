package sieve

import "github.com/agbru/primecalc/internal/progress"

// progressStrides is the number of progress callbacks a segment scan emits.
const progressStrides = 16

// Segment returns all primes in the inclusive interval [lo, hi], in ascending
// order, given base primes covering every prime up to sqrt(hi). The interval
// is sieved locally with a boolean slice of size hi-lo+1, so memory is bounded
// by the segment size regardless of the magnitude of lo and hi.
//
// For each base prime p, marking starts at the first multiple of p that is
// both >= lo and >= p*p:
//
//	first = max(p*p, ceil(lo/p)*p)
//
// The p*p floor is the segmented analogue of the base-sieve optimization;
// when p*p falls below lo the first in-range multiple is used instead. Getting
// this formula wrong silently produces false primes, so it is cross-checked
// by the property tests against a plain full-range sieve.
//
// report, when non-nil, receives coarse scan progress in [0,1]. A nil
// callback is valid and adds no overhead beyond the nil checks.
//
// Returns nil when hi < lo. Values 0 and 1 are never reported as prime even
// when they fall inside the interval.
func Segment(lo, hi int64, base []int64, report progress.Callback) []int64 {
	if hi < lo {
		return nil
	}

	isPrime := make([]bool, hi-lo+1)
	for i := range isPrime {
		isPrime[i] = true
	}

	for _, p := range base {
		first := p * p
		if first > hi {
			// base is ascending; no later prime can mark anything here
			break
		}
		if m := ((lo + p - 1) / p) * p; m > first {
			first = m
		}
		for j := first; j <= hi; j += p {
			isPrime[j-lo] = false
		}
	}

	stride := (hi-lo)/progressStrides + 1
	span := float64(hi - lo + 1)

	primes := make([]int64, 0, primeCountEstimate(hi)-primeCountEstimate(lo))
	for v := lo; v <= hi; v++ {
		if v > 1 && isPrime[v-lo] {
			primes = append(primes, v)
		}
		if report != nil && (v-lo)%stride == stride-1 {
			report(float64(v-lo+1) / span)
		}
	}
	if report != nil {
		report(1.0)
	}
	return primes
}
