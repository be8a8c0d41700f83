package finitefield

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/primefield"
)

func newF4(t *testing.T, opts ...Option) *Field {
	t.Helper()
	pf, err := primefield.New(2)
	require.NoError(t, err)
	minPoly, err := pf.PolynomialFromInts(1, 1, 1)
	require.NoError(t, err)
	f, err := New(2, minPoly, opts...)
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	f := newF4(t)
	assert.EqualValues(t, 2, f.Characteristic())
	assert.EqualValues(t, 4, f.Order())
	assert.Equal(t, 2, f.Dimension())
	assert.Equal(t, "FiniteField(2^2)", f.String())
	assert.Len(t, f.Elements(), 4)
	assert.False(t, f.HasValidGenerator())
}

func TestNewRejectsBadMinimalPolynomial(t *testing.T) {
	pf, err := primefield.New(2)
	require.NoError(t, err)

	reducible, err := pf.PolynomialFromInts(1, 0, 1)
	require.NoError(t, err)
	_, err = New(2, reducible)
	require.Error(t, err)

	wrongDegree, err := pf.PolynomialFromInts(1, 1, 1)
	require.NoError(t, err)
	_, err = New(3, wrongDegree)
	require.Error(t, err)
}

func TestRootSquares(t *testing.T) {
	f := newF4(t)
	j, err := f.ElementFromInts(0, 1)
	require.NoError(t, err)
	onePlusJ, err := f.ElementFromInts(1, 1)
	require.NoError(t, err)
	assert.True(t, f.Equal(f.Mul(j, j), onePlusJ), "j*j == 1+j in the order-4 field")
}

func TestGeneratorValidation(t *testing.T) {
	f := newF4(t, WithGenerator(0, 1))
	require.True(t, f.HasValidGenerator())
	gen, ok := f.Generator()
	require.True(t, ok)
	assert.EqualValues(t, 3, f.ElementOrder(gen))

	// 1 generates nothing
	pf, err := primefield.New(2)
	require.NoError(t, err)
	minPoly, err := pf.PolynomialFromInts(1, 1, 1)
	require.NoError(t, err)
	_, err = New(2, minPoly, WithGenerator(1, 0))
	require.Error(t, err)
}

func TestDualMultiplication(t *testing.T) {
	for _, order := range []int64{4, 8, 9, 16, 25, 27} {
		plain, err := buildStandard(order)
		require.NoError(t, err)
		f1 := plain.(*Field)

		params, ok := standardExtensions[order]
		require.True(t, ok)
		pf, err := primefield.New(params.characteristic)
		require.NoError(t, err)
		minPoly, err := pf.PolynomialFromInts(params.minPoly...)
		require.NoError(t, err)
		f2, err := New(params.dimension, minPoly)
		require.NoError(t, err)
		require.False(t, f2.HasValidGenerator())
		require.True(t, f1.HasValidGenerator())

		values := func(e Element) []int64 {
			coords := e.Coordinates()
			vals := make([]int64, len(coords))
			for i, c := range coords {
				vals[i] = c.Value()
			}
			return vals
		}
		for _, a := range f1.Elements() {
			for _, b := range f1.Elements() {
				x := f1.Mul(a, b).(Element)
				a2, err := f2.ElementFromInts(values(a)...)
				require.NoError(t, err)
				b2, err := f2.ElementFromInts(values(b)...)
				require.NoError(t, err)
				y := f2.Mul(a2, b2).(Element)
				if diff := cmp.Diff(values(x), values(y)); diff != "" {
					t.Errorf("order %d: %s * %s disagrees between the generator table and polynomial reduction:\n%s",
						order, a, b, diff)
				}
			}
		}
	}
}

func TestFieldAxiomsExhaustive(t *testing.T) {
	f9, err := Lookup(9)
	require.NoError(t, err)
	f := f9.(*Field)

	for _, a := range f.Elements() {
		assert.True(t, f.Equal(f.Add(a, f.Zero()), a))
		assert.True(t, algebra.IsZero(f, f.Add(a, f.Neg(a))))
		assert.True(t, f.Equal(f.Mul(a, f.One()), a))
		if a.IsZero() {
			_, err := f.Inv(a)
			var domainErr *algebra.DomainError
			assert.ErrorAs(t, err, &domainErr)
			continue
		}
		inv, err := f.Inv(a)
		require.NoError(t, err)
		assert.True(t, algebra.IsOne(f, f.Mul(a, inv)))
	}
}

func TestExtMul(t *testing.T) {
	f9, err := Lookup(9)
	require.NoError(t, err)
	f := f9.(*Field)

	for _, a := range f.Elements() {
		assert.True(t, f.Equal(f.ExtMul(-1, a), f.Neg(a)))
		assert.True(t, f.Equal(f.ExtMul(4, a), a))
		assert.True(t, algebra.IsZero(f, f.ExtMul(3, a)))
	}
}

func TestInverseWithoutGenerator(t *testing.T) {
	f := newF4(t)
	for _, a := range f.Elements() {
		if a.IsZero() {
			continue
		}
		inv, err := f.Inv(a)
		require.NoError(t, err)
		assert.True(t, algebra.IsOne(f, f.Mul(a, inv)))
	}
}

func TestFrobenius(t *testing.T) {
	f27, err := Lookup(27)
	require.NoError(t, err)
	f := f27.(*Field)

	p := f.Characteristic()
	for _, a := range f.Elements() {
		r, err := f.FrobeniusReciprocal(a)
		require.NoError(t, err)
		back, err := f.Pow(r, p)
		require.NoError(t, err)
		assert.True(t, f.Equal(back, a), "(a^(1/p))^p == a for %s", a)
	}
}

func TestElementOrder(t *testing.T) {
	f25, err := Lookup(25)
	require.NoError(t, err)
	f := f25.(*Field)

	assert.EqualValues(t, 1, f.ElementOrder(f.One().(Element)))
	for _, a := range f.Elements() {
		if a.IsZero() {
			continue
		}
		n := f.ElementOrder(a)
		assert.Zero(t, 24%n, "element order %d must divide 24", n)
		pow, err := f.Pow(a, n)
		require.NoError(t, err)
		assert.True(t, algebra.IsOne(f, pow))
	}
}

func TestFindGenerator(t *testing.T) {
	f := newF4(t)
	gen, err := f.FindGenerator(true)
	require.NoError(t, err)
	require.True(t, f.HasValidGenerator())
	assert.EqualValues(t, 3, f.ElementOrder(gen))
}

func TestLookup(t *testing.T) {
	for _, order := range []int64{2, 3, 4, 8, 9, 16, 23, 25, 27} {
		f, err := Lookup(order)
		require.NoError(t, err)
		fin, ok := f.(algebra.Finite)
		require.True(t, ok)
		assert.EqualValues(t, order, fin.Order())
	}

	// the cache returns the same instance
	a, err := Lookup(9)
	require.NoError(t, err)
	b, err := Lookup(9)
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = Lookup(6)
	require.Error(t, err)
}

func TestElementFromInts(t *testing.T) {
	f := newF4(t)

	e, err := f.ElementFromInts(1)
	require.NoError(t, err)
	assert.True(t, e.IsScalar())

	_, err = f.ElementFromInts(1, 0, 1)
	require.Error(t, err, "too many coordinates")

	_, err = f.ElementFromInts(2)
	require.Error(t, err, "2 is outside the carrier of F2")
}

func TestStringRendering(t *testing.T) {
	f9, err := Lookup(9)
	require.NoError(t, err)
	f := f9.(*Field)

	e, err := f.ElementFromInts(1, -1)
	require.NoError(t, err)
	assert.Equal(t, "1 - j", e.String())
	assert.Equal(t, "(1-j)", e.ShortString())

	s, err := f.ElementFromInts(-1)
	require.NoError(t, err)
	assert.Equal(t, "-1", s.ShortString())
}
