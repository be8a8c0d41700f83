package nt

import "github.com/bits-and-blooms/bitset"

// Primes returns all primes up to and including max, by Eratosthenes' sieve.
func Primes(max int) []int64 {
	if max < 2 {
		panic("nt: Primes requires max >= 2")
	}
	composite := bitset.New(uint(max + 1))
	var primes []int64
	for n := 2; n <= max; n++ {
		if composite.Test(uint(n)) {
			continue
		}
		primes = append(primes, int64(n))
		for m := n * n; m <= max; m += n {
			composite.Set(uint(m))
		}
	}
	return primes
}
