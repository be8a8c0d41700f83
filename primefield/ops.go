package primefield

import "github.com/imath-go/imath/algebra"

// FromInt casts an integer into a field element. The input must already be a
// canonical carrier member: no reduction modulo p is performed and any other
// value is a DomainError.
func (f *Field) FromInt(n int64) (algebra.Element, error) {
	if !f.Contains(n) {
		return nil, algebra.Errorf("%d does not belong to the additive group of %s", n, f)
	}
	return Element{field: f, value: n}, nil
}

// MustElement is FromInt for trusted literals; it panics on a non-member.
func (f *Field) MustElement(n int64) Element {
	e, err := f.FromInt(n)
	if err != nil {
		panic(err)
	}
	return e.(Element)
}

// Zero returns the additive neutral.
func (f *Field) Zero() algebra.Element { return Element{field: f, value: 0} }

// One returns the multiplicative neutral.
func (f *Field) One() algebra.Element { return Element{field: f, value: 1} }

// Add returns a + b.
func (f *Field) Add(a, b algebra.Element) algebra.Element {
	return Element{field: f, value: f.rawAdd(f.asElement(a).value, f.asElement(b).value)}
}

// Neg returns the additive inverse of a.
func (f *Field) Neg(a algebra.Element) algebra.Element {
	return Element{field: f, value: f.rawNeg(f.asElement(a).value)}
}

// Mul returns a * b.
func (f *Field) Mul(a, b algebra.Element) algebra.Element {
	return Element{field: f, value: f.rawMul(f.asElement(a).value, f.asElement(b).value)}
}

// ExtMul returns the n-th iterated sum a + ... + a. The multiplier reduces
// modulo the characteristic, so negative n yields iterated subtraction.
func (f *Field) ExtMul(n int64, a algebra.Element) algebra.Element {
	v := f.asElement(a).value
	n %= f.characteristic
	if n < 0 {
		n += f.characteristic
	}
	if v == 0 || n == 0 {
		return f.Zero()
	}
	res := v
	for i := n - 1; i > 0; i-- {
		res = f.rawAdd(res, v)
	}
	return Element{field: f, value: res}
}

// Inv returns the multiplicative inverse of a, a DomainError for zero.
func (f *Field) Inv(a algebra.Element) (algebra.Element, error) {
	v, err := f.rawInv(f.asElement(a).value)
	if err != nil {
		return nil, err
	}
	return Element{field: f, value: v}, nil
}

// Div returns a / b, a DomainError when b is the additive zero.
func (f *Field) Div(a, b algebra.Element) (algebra.Element, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return nil, err
	}
	return f.Mul(a, inv), nil
}

// Pow returns a^n by square-and-multiply.
func (f *Field) Pow(a algebra.Element, n int64) (algebra.Element, error) {
	return algebra.Pow(f, f.asElement(a), n)
}

// QuoRem returns (a/b, 0): division in a field is exact.
func (f *Field) QuoRem(a, b algebra.Element) (algebra.Element, algebra.Element, error) {
	q, err := f.Div(a, b)
	if err != nil {
		return nil, nil, err
	}
	return q, f.Zero(), nil
}

// Equal reports whether a and b are the same element.
func (f *Field) Equal(a, b algebra.Element) bool {
	return f.asElement(a).value == f.asElement(b).value
}

// FrobeniusReciprocal returns the p-th root of a. The Frobenius endomorphism
// is the identity on a prime field.
func (f *Field) FrobeniusReciprocal(a algebra.Element) (algebra.Element, error) {
	return f.asElement(a), nil
}
