package integers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/polynomial"
)

func TestRingBasics(t *testing.T) {
	r := Ring{}
	assert.EqualValues(t, 0, r.Characteristic())
	assert.Equal(t, Int(5), r.Add(Int(2), Int(3)))
	assert.Equal(t, Int(-6), r.Mul(Int(2), Int(-3)))
	assert.Equal(t, Int(-2), r.Neg(Int(2)))
	assert.Equal(t, Int(12), r.ExtMul(4, Int(3)))

	p, err := r.Pow(Int(2), 10)
	require.NoError(t, err)
	assert.Equal(t, Int(1024), p)
}

func TestQuoRemFloorDivision(t *testing.T) {
	r := Ring{}
	cases := []struct {
		a, b, q, rem int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
	}
	for _, tc := range cases {
		q, rem, err := r.QuoRem(Int(tc.a), Int(tc.b))
		require.NoError(t, err)
		assert.Equal(t, Int(tc.q), q, "%d // %d", tc.a, tc.b)
		assert.Equal(t, Int(tc.rem), rem, "%d %% %d", tc.a, tc.b)
	}

	_, _, err := r.QuoRem(Int(1), Int(0))
	var domainErr *algebra.DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestPolynomialOverZ(t *testing.T) {
	r := Ring{}
	p := r.Polynomial(-1, 0, 1) // X^2 - 1
	assert.Equal(t, "-1 + X^2", p.String())

	a := r.Polynomial(1, 1)
	b := r.Polynomial(-1, 1)
	assert.True(t, a.Mul(b).Equal(p))

	q, err := p.Div(a)
	require.NoError(t, err)
	assert.True(t, q.Equal(b))

	// 2X + 1 does not divide X^2 evenly over Z
	_, _, err = r.Polynomial(0, 0, 1).LongDivision(r.Polynomial(1, 2))
	var domainErr *algebra.DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestMakeMonicOverZ(t *testing.T) {
	r := Ring{}

	p := r.Polynomial(2, 4, 2)
	monic, err := p.MakeMonic()
	require.NoError(t, err)
	assert.True(t, monic.Equal(r.Polynomial(1, 2, 1)))

	_, err = r.Polynomial(1, 2).MakeMonic()
	var domainErr *algebra.DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestGcdOverZ(t *testing.T) {
	r := Ring{}
	a := r.Polynomial(1, 1)
	p := a.Mul(a).Mul(r.Polynomial(-1, 1))
	g, err := polynomial.Gcd(p, a.Mul(r.Polynomial(-1, 1)))
	require.NoError(t, err)
	monic, err := g.MakeMonic()
	require.NoError(t, err)
	assert.True(t, monic.Equal(a.Mul(r.Polynomial(-1, 1))))
}
