package finitefield

import (
	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/polynomial"
	"github.com/imath-go/imath/primefield"
)

// FromInt embeds a canonical prime field literal as a scalar of the
// extension.
func (f *Field) FromInt(n int64) (algebra.Element, error) {
	return f.ElementFromInts(n)
}

// ElementFromInts builds an element from coordinate literals, lowest basis
// vector first. Missing trailing coordinates default to zero; every literal
// must be a canonical carrier member of the prime field.
func (f *Field) ElementFromInts(coords ...int64) (Element, error) {
	if len(coords) > f.dimension {
		return Element{}, algebra.Errorf("%d coordinates exceed the dimension of %s", len(coords), f)
	}
	vector := make([]primefield.Element, f.dimension)
	for i := range vector {
		if i < len(coords) {
			c, err := f.primeField.FromInt(coords[i])
			if err != nil {
				return Element{}, err
			}
			vector[i] = c.(primefield.Element)
		} else {
			vector[i] = f.primeField.MustElement(0)
		}
	}
	return Element{field: f, vector: vector}, nil
}

// ElementFromCoords builds an element from prime field coordinates, padding
// with zeros.
func (f *Field) ElementFromCoords(coords ...primefield.Element) (Element, error) {
	if len(coords) > f.dimension {
		return Element{}, algebra.Errorf("%d coordinates exceed the dimension of %s", len(coords), f)
	}
	vector := make([]primefield.Element, f.dimension)
	for i := range vector {
		if i < len(coords) {
			vector[i] = coords[i]
		} else {
			vector[i] = f.primeField.MustElement(0)
		}
	}
	return Element{field: f, vector: vector}, nil
}

// Scalar embeds a prime field element as a scalar of the extension.
func (f *Field) Scalar(c primefield.Element) Element {
	e, err := f.ElementFromCoords(c)
	if err != nil {
		panic(err)
	}
	return e
}

// Zero returns the additive neutral.
func (f *Field) Zero() algebra.Element {
	e, _ := f.ElementFromInts()
	return e
}

// One returns the multiplicative neutral.
func (f *Field) One() algebra.Element {
	e, _ := f.ElementFromInts(1)
	return e
}

// Add returns the coordinate-wise sum a + b.
func (f *Field) Add(a, b algebra.Element) algebra.Element {
	ea, eb := f.asElement(a), f.asElement(b)
	vector := make([]primefield.Element, f.dimension)
	for i := range vector {
		vector[i] = f.primeField.Add(ea.vector[i], eb.vector[i]).(primefield.Element)
	}
	return Element{field: f, vector: vector}
}

// Neg returns the coordinate-wise additive inverse.
func (f *Field) Neg(a algebra.Element) algebra.Element {
	ea := f.asElement(a)
	vector := make([]primefield.Element, f.dimension)
	for i := range vector {
		vector[i] = f.primeField.Neg(ea.vector[i]).(primefield.Element)
	}
	return Element{field: f, vector: vector}
}

// Mul multiplies a and b, through the discrete-log tables when a validated
// generator exists, and by representative-polynomial multiplication modulo
// the minimal polynomial otherwise.
func (f *Field) Mul(a, b algebra.Element) algebra.Element {
	ea, eb := f.asElement(a), f.asElement(b)
	if f.HasValidGenerator() {
		return f.mulViaGenerator(ea, eb)
	}
	return f.mulModPoly(ea, eb)
}

// mulViaGenerator adds discrete-log exponents modulo the multiplicative group
// order. Zero sits outside the cyclic group and short-circuits.
func (f *Field) mulViaGenerator(a, b Element) Element {
	if a.IsZero() || b.IsZero() {
		return f.Zero().(Element)
	}
	groupOrder := f.Order() - 1
	exp := f.elementExponents[a.key()] + f.elementExponents[b.key()]
	if exp > groupOrder {
		exp -= groupOrder
	}
	return f.generatorPowers[exp]
}

// mulModPoly converts both operands to their representative polynomials,
// multiplies, and reduces modulo the minimal polynomial.
func (f *Field) mulModPoly(a, b Element) Element {
	pa := f.PolynomialFromElement(a)
	pb := f.PolynomialFromElement(b)
	r, err := pa.Mul(pb).Mod(f.minPoly)
	if err != nil {
		panic("finitefield: reduction modulo the minimal polynomial failed: " + err.Error())
	}
	e, err := f.ElementFromPolynomial(r)
	if err != nil {
		panic(err)
	}
	return e
}

// ExtMul returns the n-th iterated sum a + ... + a. The multiplier reduces
// modulo the characteristic, so negative n yields iterated subtraction.
func (f *Field) ExtMul(n int64, a algebra.Element) algebra.Element {
	ea := f.asElement(a)
	n %= f.Characteristic()
	if n < 0 {
		n += f.Characteristic()
	}
	res := f.Zero()
	for i := int64(0); i < n; i++ {
		res = f.Add(res, ea)
	}
	return res
}

// Pow returns a^n by square-and-multiply.
func (f *Field) Pow(a algebra.Element, n int64) (algebra.Element, error) {
	return algebra.Pow(f, f.asElement(a), n)
}

// Inv returns the multiplicative inverse: exponent negation with a generator,
// an extended-Euclid inversion against the minimal polynomial without one.
// Zero has no inverse and is a DomainError.
func (f *Field) Inv(a algebra.Element) (algebra.Element, error) {
	ea := f.asElement(a)
	if ea.IsZero() {
		return nil, algebra.Errorf("division by zero in %s", f)
	}
	if f.HasValidGenerator() {
		exp := f.elementExponents[ea.key()]
		groupOrder := f.Order() - 1
		inv := groupOrder - exp
		if inv == 0 {
			inv = groupOrder
		}
		return f.generatorPowers[inv], nil
	}
	return f.invModPoly(ea)
}

// invModPoly runs the extended Euclidean algorithm on the representative
// polynomial against the minimal polynomial.
func (f *Field) invModPoly(a Element) (algebra.Element, error) {
	pa := f.PolynomialFromElement(a)
	if pa.IsNull() || pa.Equal(f.minPoly) {
		return nil, algebra.Errorf("%s has no inverse in %s", a, f)
	}
	t := pa.Null()
	newT := pa.Unit()
	r := f.minPoly.Copy()
	newR := pa
	for !newR.IsNull() {
		q, rem, err := r.LongDivision(newR)
		if err != nil {
			return nil, err
		}
		r, newR = newR, rem
		t, newT = newT, t.Sub(q.Mul(newT))
	}
	if r.Degree() != 0 {
		// either the minimal polynomial is not irreducible or a is a
		// multiple of it
		return nil, algebra.Errorf("%s has no inverse in %s", a, f)
	}
	scaled, err := t.DivConstant(r.Constant())
	if err != nil {
		return nil, err
	}
	return f.ElementFromPolynomial(scaled)
}

// Div returns a / b.
func (f *Field) Div(a, b algebra.Element) (algebra.Element, error) {
	ea, eb := f.asElement(a), f.asElement(b)
	if eb.IsZero() {
		return nil, algebra.Errorf("division by zero in %s", f)
	}
	if ea.IsZero() {
		return f.Zero(), nil
	}
	inv, err := f.Inv(eb)
	if err != nil {
		return nil, err
	}
	return f.Mul(ea, inv), nil
}

// QuoRem returns (a/b, 0): division in a field is exact.
func (f *Field) QuoRem(a, b algebra.Element) (algebra.Element, algebra.Element, error) {
	q, err := f.Div(a, b)
	if err != nil {
		return nil, nil, err
	}
	return q, f.Zero(), nil
}

// Equal is the coordinate-wise comparison.
func (f *Field) Equal(a, b algebra.Element) bool {
	ea, eb := f.asElement(a), f.asElement(b)
	for i := range ea.vector {
		if ea.vector[i].Value() != eb.vector[i].Value() {
			return false
		}
	}
	return true
}

// PolynomialFromElement returns the representative polynomial of e over the
// prime field, in the root symbol.
func (f *Field) PolynomialFromElement(e Element) *polynomial.Polynomial {
	coeffs := make([]algebra.Element, f.dimension)
	for i, c := range e.vector {
		coeffs[i] = c
	}
	return polynomial.New(f.primeField, coeffs, f.rootSymbol)
}

// ElementFromPolynomial converts a representative polynomial of degree below
// the dimension back into an element.
func (f *Field) ElementFromPolynomial(p *polynomial.Polynomial) (Element, error) {
	pf, ok := p.Ring().(*primefield.Field)
	if !ok || pf.Characteristic() != f.Characteristic() {
		return Element{}, algebra.Errorf("polynomial %s is not defined over %s", p, f.primeField)
	}
	if !p.IsNull() && p.Degree() > f.dimension-1 {
		return Element{}, algebra.Errorf("polynomial %s exceeds the dimension of %s", p, f)
	}
	vector := make([]primefield.Element, f.dimension)
	for i := range vector {
		vector[i] = p.Coefficient(i).(primefield.Element)
	}
	return Element{field: f, vector: vector}, nil
}
