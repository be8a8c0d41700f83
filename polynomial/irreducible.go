package polynomial

import "github.com/imath-go/imath/algebra"

// FormalDerivative returns the term-wise derivative of p. Terms whose degree
// is a multiple of the characteristic correctly vanish through ExtMul.
func (p *Polynomial) FormalDerivative() *Polynomial {
	res := p.Null()
	for deg, c := range p.coeffs {
		if deg > 0 {
			res.setTerm(deg-1, p.ring.ExtMul(int64(deg), c))
		}
	}
	return res
}

// CheckIrreducibility reports whether p is irreducible over its base field of
// order q: for i up to deg(p)/2 it computes X^(q^i) mod p and tests that
// gcd(p, X^(q^i) - X) is trivial. An early zero term or a non-trivial gcd
// proves reducibility.
func (p *Polynomial) CheckIrreducibility() (bool, error) {
	q := algebra.OrderOf(p.ring)
	if p.ring.Characteristic() == 0 {
		return false, algebra.Errorf("cannot check polynomial irreducibility over %s", p.ring)
	}
	x := p.Monic(1)
	term := x.Copy()
	for i := 0; i < p.Degree()/2; i++ {
		var err error
		term, err = term.PowMod(q, p)
		if err != nil {
			return false, err
		}
		diff := term.Sub(x)
		if diff.IsNull() {
			return false, nil
		}
		g, err := Gcd(p, diff)
		if err != nil {
			return false, err
		}
		if g.Degree() > 0 {
			return false, nil
		}
	}
	return true, nil
}

// FrobeniusReciprocal returns the p-th root of the polynomial: if it can be
// written R^(p*m) with p the characteristic, the root is R^m. The formal
// derivative must be zero, i.e. the polynomial must literally be a perfect
// p-th power, and every surviving exponent must be a multiple of the
// characteristic.
func (p *Polynomial) FrobeniusReciprocal() (*Polynomial, error) {
	fr, ok := p.ring.(algebra.FrobeniusRing)
	if !ok || p.ring.Characteristic() == 0 {
		return nil, algebra.Errorf("%s does not support taking the p-th root of a polynomial", p.ring)
	}
	if !p.FormalDerivative().IsNull() {
		return nil, algebra.Errorf("polynomial %s is not a %d-th power", p, p.ring.Characteristic())
	}
	char := int(p.ring.Characteristic())
	res := p.Null()
	for deg, c := range p.coeffs {
		root, err := fr.FrobeniusReciprocal(c)
		if err != nil {
			return nil, err
		}
		if deg == 0 {
			res = res.AddConstant(root)
			continue
		}
		if deg%char != 0 {
			return nil, algebra.Errorf("term of degree %d survives in a %d-th power", deg, char)
		}
		res = res.Add(p.Monic(deg / char).MulConstant(root))
	}
	return res, nil
}

// Evaluate computes p(k) as the remainder of p by the linear polynomial X - k.
func (p *Polynomial) Evaluate(k algebra.Element) (algebra.Element, error) {
	linear := p.Null()
	linear.setTerm(0, p.ring.Neg(k))
	linear.setTerm(1, p.ring.One())
	r, err := p.Mod(linear)
	if err != nil {
		return nil, err
	}
	return r.Trailing(), nil
}
