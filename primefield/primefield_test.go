package primefield

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imath-go/imath/algebra"
)

func TestNew(t *testing.T) {
	f, err := New(17)
	require.NoError(t, err)
	assert.EqualValues(t, 17, f.Characteristic())
	assert.EqualValues(t, 17, f.Order())
	assert.Equal(t, "PrimeField(17)", f.String())
	assert.Len(t, f.Elements(), 17)

	_, err = New(15)
	require.Error(t, err)
	_, err = New(1)
	require.Error(t, err)
}

func TestCarrier(t *testing.T) {
	f, err := New(7)
	require.NoError(t, err)
	for n := int64(-3); n <= 3; n++ {
		assert.True(t, f.Contains(n))
		_, err := f.FromInt(n)
		assert.NoError(t, err)
	}
	for _, n := range []int64{-4, 4, 7, 10} {
		assert.False(t, f.Contains(n))
		_, err := f.FromInt(n)
		var domainErr *algebra.DomainError
		assert.ErrorAs(t, err, &domainErr, "FromInt(%d) should reject out-of-carrier values", n)
	}
}

func TestCharacteristicTwo(t *testing.T) {
	f, err := New(2)
	require.NoError(t, err)
	assert.True(t, f.Contains(0))
	assert.True(t, f.Contains(1))
	assert.False(t, f.Contains(-1))

	one := f.One()
	assert.True(t, algebra.IsZero(f, f.Add(one, one)))
	assert.True(t, f.Equal(one, f.Neg(one)))
}

func TestArithmetic(t *testing.T) {
	f, err := New(5)
	require.NoError(t, err)
	two := f.MustElement(2)
	assert.Equal(t, f.MustElement(-1), f.Add(two, two))
	assert.Equal(t, f.MustElement(1), f.Mul(two, f.MustElement(-2)))
	assert.Equal(t, f.MustElement(-2), f.Neg(two))
	assert.Equal(t, f.MustElement(1), f.ExtMul(3, two))
	// the multiplier reduces modulo p, negative values included
	assert.Equal(t, f.MustElement(-2), f.ExtMul(-1, two))
	assert.Equal(t, f.MustElement(2), f.ExtMul(-4, two))
	assert.True(t, algebra.IsZero(f, f.ExtMul(-5, two)))

	inv, err := f.Inv(two)
	require.NoError(t, err)
	assert.Equal(t, f.MustElement(-2), inv)

	cube, err := f.Pow(two, 3)
	require.NoError(t, err)
	assert.Equal(t, f.MustElement(-2), cube)
}

func TestDivisionByZero(t *testing.T) {
	f, err := New(11)
	require.NoError(t, err)
	var domainErr *algebra.DomainError

	_, err = f.Inv(f.Zero())
	assert.ErrorAs(t, err, &domainErr)
	_, err = f.Div(f.One(), f.Zero())
	assert.ErrorAs(t, err, &domainErr)
	_, _, err = f.QuoRem(f.One(), f.Zero())
	assert.ErrorAs(t, err, &domainErr)
}

func TestFieldAxioms(t *testing.T) {
	f, err := New(17)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	elem := gen.Int64Range(-8, 8).Map(func(n int64) Element { return f.MustElement(n) })

	properties.Property("addition commutes", prop.ForAll(
		func(a, b Element) bool {
			return f.Equal(f.Add(a, b), f.Add(b, a))
		}, elem, elem))

	properties.Property("addition associates", prop.ForAll(
		func(a, b, c Element) bool {
			return f.Equal(f.Add(f.Add(a, b), c), f.Add(a, f.Add(b, c)))
		}, elem, elem, elem))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b Element) bool {
			return f.Equal(f.Mul(a, b), f.Mul(b, a))
		}, elem, elem))

	properties.Property("multiplication associates", prop.ForAll(
		func(a, b, c Element) bool {
			return f.Equal(f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c)))
		}, elem, elem, elem))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c Element) bool {
			return f.Equal(f.Mul(a, f.Add(b, c)), f.Add(f.Mul(a, b), f.Mul(a, c)))
		}, elem, elem, elem))

	properties.Property("additive identity and inverse", prop.ForAll(
		func(a Element) bool {
			return f.Equal(f.Add(a, f.Zero()), a) &&
				algebra.IsZero(f, f.Add(a, f.Neg(a)))
		}, elem))

	properties.Property("multiplicative inverse for non-zero elements", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() {
				return true
			}
			inv, err := f.Inv(a)
			return err == nil && algebra.IsOne(f, f.Mul(a, inv))
		}, elem))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestExhaustiveInverse(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 7, 11, 13} {
		f, err := New(p)
		require.NoError(t, err)
		for _, e := range f.Elements() {
			if e.IsZero() {
				continue
			}
			inv, err := f.Inv(e)
			require.NoError(t, err)
			assert.True(t, algebra.IsOne(f, f.Mul(e, inv)))
		}
	}
}

func TestFrobeniusReciprocal(t *testing.T) {
	f, err := New(7)
	require.NoError(t, err)
	// a -> a^p is the identity on a prime field, so the reciprocal is too
	for _, e := range f.Elements() {
		r, err := f.FrobeniusReciprocal(e)
		require.NoError(t, err)
		assert.True(t, f.Equal(e, r))
	}
}

func TestGenerateIrreducible(t *testing.T) {
	f, err := New(5, WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	for _, degree := range []int{2, 3, 4} {
		p, err := f.GenerateIrreducible(degree)
		require.NoError(t, err)
		assert.Equal(t, degree, p.Degree())
		assert.True(t, p.IsMonic())
		irr, err := p.CheckIrreducibility()
		require.NoError(t, err)
		assert.True(t, irr, "%s should be irreducible", p)
	}
}

func TestGenerateIrreducibleExhaustion(t *testing.T) {
	f, err := New(5, WithRand(rand.New(rand.NewSource(42))), WithMaxRetries(0))
	require.NoError(t, err)

	_, err = f.GenerateIrreducible(1)
	var exhausted *algebra.ExhaustionError
	assert.ErrorAs(t, err, &exhausted)
}

func TestPolynomialFactory(t *testing.T) {
	f, err := New(3)
	require.NoError(t, err)
	p, err := f.PolynomialFromInts(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "1 + X^2", p.String())

	lin := f.LinearPolynomial(f.MustElement(1))
	assert.Equal(t, "-1 + X", lin.String())
}
