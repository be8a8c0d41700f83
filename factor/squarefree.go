package factor

import "github.com/imath-go/imath/polynomial"

// SquareFree is the square-free factorization of a monic polynomial over a
// field of prime characteristic. It returns the square-free part and the
// repeated factors with their multiplicities: factors of multiplicity not
// divisible by the characteristic are stripped through gcd chains with the
// derivative; what remains has a zero derivative, is a perfect p-th power,
// and recurses through its p-th root with multiplicities scaled by p.
func (fz *Factorization) SquareFree() (*polynomial.Polynomial, []Factor, error) {
	f, err := fz.poly.MakeMonic()
	if err != nil {
		return nil, nil, err
	}
	q := int(fz.ring.Characteristic())

	var factors []Factor
	deriv := f.FormalDerivative()
	var g *polynomial.Polynomial
	if !deriv.IsNull() {
		if g, err = polynomial.Gcd(f, deriv); err != nil {
			return nil, nil, err
		}
		if g.IsAbsUnit() {
			return f, nil, nil
		}
		w, err := f.Div(g)
		if err != nil {
			return nil, nil, err
		}
		for i := 1; !w.IsAbsUnit(); i++ {
			y, err := polynomial.Gcd(w, g)
			if err != nil {
				return nil, nil, err
			}
			factorPart, err := w.Div(y)
			if err != nil {
				return nil, nil, err
			}
			if factorPart.Degree() > 0 {
				monic, err := factorPart.MakeMonic()
				if err != nil {
					return nil, nil, err
				}
				factors = append(factors, Factor{Value: monic, Multiplicity: i})
			}
			if g, err = g.Div(y); err != nil {
				return nil, nil, err
			}
			w = y
		}
	} else {
		g = f.Copy()
	}

	if !g.IsAbsUnit() {
		// g is the product of all factors of multiplicity divisible by the
		// characteristic: take its p-th root and split that instead.
		root, err := g.FrobeniusReciprocal()
		if err != nil {
			return nil, nil, err
		}
		sqf, sub, err := New(root).SquareFree()
		if err != nil {
			return nil, nil, err
		}
		for _, sf := range sub {
			monic, err := sf.Value.MakeMonic()
			if err != nil {
				return nil, nil, err
			}
			factors = append(factors, Factor{Value: monic, Multiplicity: sf.Multiplicity * q})
		}
		if sqf.Degree() > 0 {
			monic, err := sqf.MakeMonic()
			if err != nil {
				return nil, nil, err
			}
			factors = append(factors, Factor{Value: monic, Multiplicity: q})
		}
	}

	// the square-free part is what remains of f after the repeated factors
	// are divided out; multiplicity-1 factors stay in it
	sqf := f.Copy()
	kept := factors[:0]
	for _, fact := range factors {
		if fact.Multiplicity > 1 {
			if sqf, err = sqf.Div(fact.Value.Pow(fact.Multiplicity)); err != nil {
				return nil, nil, err
			}
			kept = append(kept, fact)
		}
	}
	return sqf, kept, nil
}
