// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package nt holds the low-level number-theory utilities consumed by the field
// constructors: a probabilistic primality test, integer gcd and factorization,
// and a prime sieve.
package nt

import (
	"math/big"
	"math/rand"
)

// smallPrimes pre-screens Miller-Rabin candidates.
var smallPrimes = [...]int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43}

// MaybePrime returns true if n passes `rounds` rounds of the Miller-Rabin
// primality test (and is probably prime), false if n is proved composite.
func MaybePrime(n int64, rounds int) bool {
	if n < 2 {
		return false
	}
	for _, p := range smallPrimes {
		if n < p*p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	r, s := 0, n-1
	for s%2 == 0 {
		r++
		s /= 2
	}
	bn := big.NewInt(n)
	bn1 := big.NewInt(n - 1)
	bs := big.NewInt(s)
	x := new(big.Int)
	for i := 0; i < rounds; i++ {
		a := big.NewInt(2 + rand.Int63n(n-3))
		x.Exp(a, bs, bn)
		if x.Cmp(big.NewInt(1)) == 0 || x.Cmp(bn1) == 0 {
			continue
		}
		witness := true
		for j := 0; j < r-1; j++ {
			x.Exp(x, big.NewInt(2), bn)
			if x.Cmp(bn1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}

// Gcd returns the greatest common divisor of a and b, mimicking the zero
// conventions of math/big: Gcd(a, 0) == a and Gcd(0, b) == b.
func Gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// PrimePower is one term p^multiplicity of an integer factorization.
type PrimePower struct {
	P            int64
	Multiplicity int
}

// FactorInt computes the prime factorization of n > 1 by trial division.
func FactorInt(n int64) []PrimePower {
	if n <= 1 {
		panic("nt: FactorInt requires n > 1")
	}
	var factors []PrimePower
	m := 0
	for n%2 == 0 {
		n /= 2
		m++
	}
	if m > 0 {
		factors = append(factors, PrimePower{P: 2, Multiplicity: m})
	}
	for p := int64(3); p*p <= n; p += 2 {
		m = 0
		for n%p == 0 {
			n /= p
			m++
		}
		if m > 0 {
			factors = append(factors, PrimePower{P: p, Multiplicity: m})
		}
	}
	if n > 2 {
		factors = append(factors, PrimePower{P: n, Multiplicity: 1})
	}
	return factors
}

// Comb is C(n, k), the number of ways to pick k items among n.
func Comb(n, k int) int64 {
	if k > n {
		panic("nt: Comb requires k <= n")
	}
	res := int64(1)
	for i := n - k + 1; i <= n; i++ {
		res *= int64(i)
	}
	for i := int64(2); i <= int64(k); i++ {
		res /= i
	}
	return res
}

// Bincoeff returns the coefficients of (1 + x)^n.
func Bincoeff(n int) []int64 {
	res := make([]int64, n+1)
	for i := 0; i <= n; i++ {
		res[i] = Comb(n, i)
	}
	return res
}
