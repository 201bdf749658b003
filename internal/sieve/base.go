// Package sieve implements the segmented Sieve of Eratosthenes that powers
// primecalc: a classic base sieve up to the square root of the range end,
// and an independent per-segment sieve driven by those base primes.
package sieve

import "math"

// BasePrimes returns all primes up to and including limit, in ascending
// order, using the classic Sieve of Eratosthenes. It returns an empty slice
// for limit < 2.
//
// Marking for each prime i starts at i*i because every smaller multiple of i
// has a prime factor below i and was already eliminated; the outer loop stops
// once i*i exceeds limit for the same reason.
func BasePrimes(limit int64) []int64 {
	if limit < 2 {
		return nil
	}

	isPrime := make([]bool, limit+1)
	for i := range isPrime {
		isPrime[i] = true
	}
	isPrime[0], isPrime[1] = false, false

	for i := int64(2); i*i <= limit; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			isPrime[j] = false
		}
	}

	primes := make([]int64, 0, primeCountEstimate(limit))
	for i := int64(2); i <= limit; i++ {
		if isPrime[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// SqrtBound returns floor(sqrt(n)) for n >= 0, corrected for floating-point
// rounding at large n. Base primes up to this bound are sufficient to
// eliminate every composite in [2, n].
func SqrtBound(n int64) int64 {
	if n < 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// primeCountEstimate approximates pi(n) for slice pre-allocation.
// Overshoots slightly rather than reallocating.
func primeCountEstimate(n int64) int64 {
	if n < 17 {
		return 8
	}
	return int64(float64(n) / (math.Log(float64(n)) - 1.2))
}
