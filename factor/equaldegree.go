package factor

import (
	"fmt"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/debug"
	"github.com/imath-go/imath/polynomial"
)

// EqualDegree is the Cantor-Zassenhaus randomized splitting. The input must
// be a monic square-free product of nbFactors >= 2 irreducible polynomials of
// degree maxDegree each; a degree mismatch is a programmer error and panics.
//
// Each round draws a random polynomial a of degree < nbFactors*maxDegree and
// tries to split every still-composite piece, first by gcd with a directly,
// then by gcd with a^((q^d-1)/2) + 1. A round that splits nothing consumes
// one retry; the budget (2*r*d unless overridden) exhausting is an
// ExhaustionError, as the algorithm is Las Vegas rather than
// guaranteed-terminating.
func (fz *Factorization) EqualDegree(nbFactors, maxDegree int) ([]Factor, error) {
	r, d := nbFactors, maxDegree
	f, err := fz.poly.MakeMonic()
	if err != nil {
		return nil, err
	}
	if f.Degree() != r*d {
		panic(fmt.Sprintf("factor: degree of %s mismatches input parameters %d, %d", f, r, d))
	}
	if r < 2 {
		panic("factor: equal-degree splitting needs at least 2 factors")
	}
	src, ok := fz.ring.(randomPolynomialSource)
	if !ok {
		return nil, algebra.Errorf("%s cannot draw random polynomials", fz.ring)
	}

	q := algebra.OrderOf(fz.ring)
	m := int64(1)
	for i := 0; i < d; i++ {
		m *= q
	}
	m = (m - 1) / 2

	maxRetries := fz.retryBudget
	if maxRetries < 0 {
		maxRetries = 2 * r * d
	}

	var final []*polynomial.Polynomial
	pending := []*polynomial.Polynomial{f}

	for retries := 0; len(final) < r; {
		if retries >= maxRetries {
			return nil, algebra.Exhaustedf("unable to find %d degree %d factors for %s in %d retries",
				r, d, f, retries)
		}
		a := src.RandomPolynomial(f.Degree() - 1)
		ap, err := a.PowMod(m, f)
		if err != nil {
			return nil, err
		}
		ap = ap.Add(ap.Unit())

		progress := false
		next := pending[:0]
		for _, piece := range pending {
			g, err := splitter(piece, a, ap)
			if err != nil {
				return nil, err
			}
			if g == nil {
				next = append(next, piece)
				continue
			}
			progress = true
			rest, err := piece.Div(g)
			if err != nil {
				return nil, err
			}
			if rest, err = rest.MakeMonic(); err != nil {
				return nil, err
			}
			for _, part := range []*polynomial.Polynomial{g, rest} {
				debug.Assert(part.Degree()%d == 0, "equal-degree split must produce degrees that are multiples of the factor degree")
				if part.Degree() == d {
					final = append(final, part)
				} else {
					next = append(next, part)
				}
			}
		}
		pending = next
		if !progress {
			retries++
		}
	}

	factors := make([]Factor, len(final))
	for i, g := range final {
		factors[i] = Factor{Value: g, Multiplicity: 1}
	}
	return factors, nil
}

// splitter returns a monic proper divisor of piece exposed by the random
// candidate a, or nil when this candidate does not split the piece.
func splitter(piece, a, ap *polynomial.Polynomial) (*polynomial.Polynomial, error) {
	g, err := polynomial.Gcd(piece, a)
	if err != nil {
		return nil, err
	}
	if g, err = g.MakeMonic(); err != nil {
		return nil, err
	}
	if !g.IsUnit() && !g.Equal(piece) {
		return g, nil
	}
	if ap.IsNull() {
		return nil, nil
	}
	if g, err = polynomial.Gcd(piece, ap); err != nil {
		return nil, err
	}
	if g, err = g.MakeMonic(); err != nil {
		return nil, err
	}
	if !g.IsUnit() && !g.Equal(piece) {
		return g, nil
	}
	return nil, nil
}
