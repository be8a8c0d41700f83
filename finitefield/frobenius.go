package finitefield

import "github.com/imath-go/imath/algebra"

// FrobeniusReciprocal returns the p-th root of a. The Frobenius endomorphism
// x -> x^p is linear over the prime field, so the root of a = sum a_i * b_i
// is sum a_i * root(b_i) with the basis roots read from the precomputed
// table.
func (f *Field) FrobeniusReciprocal(a algebra.Element) (algebra.Element, error) {
	ea := f.asElement(a)
	res := f.Zero()
	for i, c := range ea.vector {
		res = f.Add(res, f.scalarMul(c.Value(), f.frobenius[i]))
	}
	return res, nil
}

// FrobeniusMap returns a copy of the basis p-th-root table.
func (f *Field) FrobeniusMap() []Element {
	res := make([]Element, len(f.frobenius))
	copy(res, f.frobenius)
	return res
}

// scalarMul multiplies x by the scalar embedding of the prime field value c.
func (f *Field) scalarMul(c int64, x Element) Element {
	scalar := f.Scalar(f.primeField.MustElement(c))
	return f.Mul(scalar, x).(Element)
}
