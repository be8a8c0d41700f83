package gaussint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imath-go/imath/algebra"
)

func TestBasics(t *testing.T) {
	r := Ring{}
	assert.EqualValues(t, 0, r.Characteristic())
	assert.Equal(t, "GaussianIntegerRing", r.String())
	assert.Equal(t, "i", r.RootSymbol())

	n := r.New(2, -3)
	assert.Equal(t, Int{X: 2, Y: 3}, n.Conjugate())
	assert.EqualValues(t, 13, n.Norm())
	assert.False(t, n.IsZero())
	assert.True(t, r.asGauss(r.Zero()).IsZero())
}

func TestArithmetic(t *testing.T) {
	r := Ring{}
	a, b := r.New(1, 1), r.New(2, -1)

	assert.Equal(t, r.New(3, 0), r.Add(a, b))
	assert.Equal(t, r.New(-1, -1), r.Neg(a))
	// (1+i)(2-i) == 3+i
	assert.Equal(t, r.New(3, 1), r.Mul(a, b))
	// (1+i)^2 == 2i
	assert.Equal(t, r.New(0, 2), r.Mul(a, a))
	// multiplying by the conjugate realizes the norm
	assert.Equal(t, r.New(5, 0), r.Mul(b, b.Conjugate()))

	p, err := r.Pow(a, 4)
	require.NoError(t, err)
	assert.Equal(t, r.New(-4, 0), p)
}

func TestQuoRem(t *testing.T) {
	r := Ring{}

	q, rem, err := r.QuoRem(r.New(3, 3), r.New(1, 1))
	require.NoError(t, err)
	assert.Equal(t, r.New(3, 0), q)
	assert.True(t, r.asGauss(rem).IsZero())

	// a == b*q + rem for divisions that run to completion
	pairs := []struct{ a, b Int }{
		{r.New(5, 5), r.New(1, 1)},
		{r.New(0, 2), r.New(1, 1)},
		{r.New(4, 6), r.New(2, 0)},
	}
	for _, tc := range pairs {
		q, rem, err := r.QuoRem(tc.a, tc.b)
		require.NoError(t, err)
		back := r.Add(r.Mul(tc.b, q), rem)
		assert.True(t, r.Equal(back, tc.a), "%s != %s * %s + %s", tc.a, tc.b, q, rem)
	}

	_, _, err = r.QuoRem(r.New(1, 0), r.Zero())
	var domainErr *algebra.DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestRendering(t *testing.T) {
	r := Ring{}
	assert.Equal(t, "1 + i", r.New(1, 1).String())
	assert.Equal(t, "(1+i)", r.New(1, 1).ShortString())
	assert.Equal(t, "-3", r.New(-3, 0).ShortString())
	assert.Equal(t, "0", r.asGauss(r.Zero()).String())
}

func TestParse(t *testing.T) {
	r := Ring{}

	cases := []struct {
		in   string
		want Int
	}{
		{"1 + 2i", r.New(1, 2)},
		{"-3i", r.New(0, -3)},
		{"i^2", r.New(-1, 0)},
		{"0", r.New(0, 0)},
	}
	for _, tc := range cases {
		got, err := r.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, n := range []Int{r.New(2, -3), r.New(0, 1), r.New(-1, -1)} {
		got, err := r.Parse(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	_, err := r.Parse("1 +")
	var domainErr *algebra.DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestPolynomialOverGaussianIntegers(t *testing.T) {
	r := Ring{}
	p := r.Polynomial(r.New(1, 1), r.New(0, 1)) // (1+i) + iz
	assert.Equal(t, "(1+i) + (i)z", p.String())

	lin := r.LinearPolynomial(r.New(0, 1))
	sq := lin.Mul(lin)
	// (z - i)^2 == -1 - 2iz + z^2
	assert.True(t, r.Equal(sq.Coefficient(0), r.New(-1, 0)))
	assert.True(t, r.Equal(sq.Coefficient(1), r.New(0, -2)))
	assert.True(t, r.Equal(sq.Coefficient(2), r.New(1, 0)))
}
