package primefield

import (
	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/polynomial"
)

// Polynomial builds a polynomial over the field from its coefficients, lowest
// degree first.
func (f *Field) Polynomial(coeffs ...algebra.Element) *polynomial.Polynomial {
	for i, c := range coeffs {
		coeffs[i] = f.asElement(c)
	}
	return polynomial.New(f, coeffs, "X")
}

// PolynomialFromInts builds a polynomial from canonical integer literals.
func (f *Field) PolynomialFromInts(ints ...int64) (*polynomial.Polynomial, error) {
	return polynomial.FromInts(f, "X", ints...)
}

// LinearPolynomial returns the polynomial X - e.
func (f *Field) LinearPolynomial(e algebra.Element) *polynomial.Polynomial {
	return f.Polynomial(f.Neg(e), f.One())
}

// RandomElement draws a uniform element of the field.
func (f *Field) RandomElement() Element {
	return Element{field: f, value: f.carrier[f.rnd.Intn(len(f.carrier))]}
}

// RandomPolynomial draws a uniform monic polynomial of the given degree.
func (f *Field) RandomPolynomial(degree int) *polynomial.Polynomial {
	coeffs := make([]algebra.Element, degree)
	for i := range coeffs {
		coeffs[i] = f.RandomElement()
	}
	p := polynomial.New(f, coeffs, "X")
	return p.Add(p.Monic(degree))
}

// GenerateIrreducible searches for a monic irreducible polynomial of the
// given degree by drawing random candidates. The search is probabilistic and
// bounded: exhausting the budget is an ExhaustionError.
func (f *Field) GenerateIrreducible(degree int) (*polynomial.Polynomial, error) {
	maxRetries := f.maxRetries
	if degree/2 > maxRetries {
		maxRetries = degree / 2
	}
	attempts := 0
	for retry := 0; retry < maxRetries; retry++ {
		for try := 0; try <= degree; try++ {
			attempts++
			p := f.RandomPolynomial(degree)
			ok, err := p.CheckIrreducibility()
			if err != nil {
				return nil, err
			}
			if ok {
				return p, nil
			}
		}
	}
	return nil, algebra.Exhaustedf(
		"could not find an irreducible polynomial of degree %d over %s in %d attempts",
		degree, f, attempts)
}
