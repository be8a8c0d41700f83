package nt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybePrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 101, 7919, 104729}
	for _, p := range primes {
		assert.True(t, MaybePrime(p, 5), "%d should test prime", p)
	}
	composites := []int64{0, 1, 4, 9, 15, 91, 561, 7917, 104730}
	for _, n := range composites {
		assert.False(t, MaybePrime(n, 5), "%d should test composite", n)
	}
}

func TestGcd(t *testing.T) {
	assert.EqualValues(t, 6, Gcd(12, 18))
	assert.EqualValues(t, 1, Gcd(17, 31))
	assert.EqualValues(t, 12, Gcd(12, 0))
	assert.EqualValues(t, 12, Gcd(0, 12))
	assert.EqualValues(t, 6, Gcd(-12, 18))
}

func TestPrimes(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, Primes(30))
	assert.Equal(t, []int64{2}, Primes(2))
	assert.Panics(t, func() { Primes(1) })
}

func TestFactorInt(t *testing.T) {
	factors := FactorInt(360)
	require.Len(t, factors, 3)
	assert.Equal(t, PrimePower{P: 2, Multiplicity: 3}, factors[0])
	assert.Equal(t, PrimePower{P: 3, Multiplicity: 2}, factors[1])
	assert.Equal(t, PrimePower{P: 5, Multiplicity: 1}, factors[2])

	factors = FactorInt(97)
	require.Len(t, factors, 1)
	assert.Equal(t, PrimePower{P: 97, Multiplicity: 1}, factors[0])
}

func TestComb(t *testing.T) {
	assert.EqualValues(t, 1, Comb(5, 0))
	assert.EqualValues(t, 10, Comb(5, 2))
	assert.EqualValues(t, 252, Comb(10, 5))
}

func TestBincoeff(t *testing.T) {
	assert.Equal(t, []int64{1, 4, 6, 4, 1}, Bincoeff(4))
	assert.Equal(t, []int64{1}, Bincoeff(0))
}
