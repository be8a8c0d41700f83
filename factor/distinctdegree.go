package factor

import (
	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/polynomial"
)

// DistinctDegree groups the irreducible factors of a square-free monic
// polynomial by their degree: for increasing i, gcd(f, X^(q^i) - X) collects
// the product of every irreducible factor of degree dividing i that is still
// left. Each returned Factor has multiplicity 1 and MaxDegree set to the
// common degree of its components; the leftover after the loop, if any, is a
// single irreducible factor of its own degree.
func (fz *Factorization) DistinctDegree() ([]Factor, error) {
	f, err := fz.poly.MakeMonic()
	if err != nil {
		return nil, err
	}
	q := algebra.OrderOf(fz.ring)
	var factors []Factor

	fp := f.Copy()
	x := f.Monic(1)
	// h accumulates X^(q^i) modulo the shrinking fp
	h := x.Copy()
	for i := 1; fp.Degree() >= 2*i; i++ {
		if h, err = h.PowMod(q, fp); err != nil {
			return nil, err
		}
		g, err := polynomial.Gcd(fp, h.Sub(x))
		if err != nil {
			return nil, err
		}
		monic, err := g.MakeMonic()
		if err != nil {
			return nil, err
		}
		if !monic.IsAbsUnit() {
			factors = append(factors, Factor{Value: monic, Multiplicity: 1, MaxDegree: i})
		}
		if fp, err = fp.Div(g); err != nil {
			return nil, err
		}
		if h, err = h.Mod(fp); err != nil {
			return nil, err
		}
	}

	if !fp.IsAbsUnit() && fp.Degree() > 0 {
		monic, err := fp.MakeMonic()
		if err != nil {
			return nil, err
		}
		factors = append(factors, Factor{Value: monic, Multiplicity: 1, MaxDegree: fp.Degree()})
	}
	if len(factors) == 0 {
		factors = append(factors, Factor{Value: f, Multiplicity: 1, MaxDegree: f.Degree()})
	}
	return factors, nil
}
