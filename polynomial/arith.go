package polynomial

import "github.com/imath-go/imath/algebra"

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	res := q.Copy()
	res.indeterminate = p.indeterminate
	for deg, c := range p.coeffs {
		if rc, ok := res.coeffs[deg]; ok {
			res.setTerm(deg, p.ring.Add(rc, c))
		} else {
			res.setTerm(deg, c)
		}
	}
	return res
}

// AddConstant returns p + k for a ring element k.
func (p *Polynomial) AddConstant(k algebra.Element) *Polynomial {
	res := p.Copy()
	res.setTerm(0, p.ring.Add(res.Coefficient(0), k))
	return res
}

// Neg returns the additive inverse of p.
func (p *Polynomial) Neg() *Polynomial {
	res := p.Null()
	for deg, c := range p.coeffs {
		res.setTerm(deg, p.ring.Neg(c))
	}
	return res
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return p.Add(q.Neg())
}

// Mul returns the product p * q, the convolution of the two sparse maps.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	res := p.Null()
	if p.IsNull() || q.IsNull() {
		return res
	}
	for degQ, cQ := range q.coeffs {
		for degP, cP := range p.coeffs {
			deg := degP + degQ
			t := p.ring.Mul(cQ, cP)
			if rc, ok := res.coeffs[deg]; ok {
				res.setTerm(deg, p.ring.Add(rc, t))
			} else {
				res.setTerm(deg, t)
			}
		}
	}
	return res
}

// MulConstant returns k * p, the external product of the coefficient module.
func (p *Polynomial) MulConstant(k algebra.Element) *Polynomial {
	res := p.Null()
	if algebra.IsZero(p.ring, k) {
		return res
	}
	for deg, c := range p.coeffs {
		res.setTerm(deg, p.ring.Mul(k, c))
	}
	return res
}

// Pow returns p raised to the n-th power, n >= 0, by iterative
// square-and-multiply.
func (p *Polynomial) Pow(n int) *Polynomial {
	if n < 0 {
		panic("polynomial: negative exponent")
	}
	switch {
	case p.IsUnit() || n == 0:
		return p.Unit()
	case n == 1:
		return p.Copy()
	case p.IsNull():
		return p.Null()
	}
	res := p.Unit()
	sq := p.Copy()
	for n > 0 {
		if n&1 == 1 {
			res = res.Mul(sq)
		}
		sq = sq.Mul(sq)
		n >>= 1
	}
	return res
}

// PowMod returns p^n mod m. The intermediate results are reduced at every
// step, which keeps the irreducibility and distinct-degree loops polynomial
// in the degree of m rather than in q^i.
func (p *Polynomial) PowMod(n int64, m *Polynomial) (*Polynomial, error) {
	if n < 0 {
		panic("polynomial: negative exponent")
	}
	if n == 0 {
		return p.Unit(), nil
	}
	res := p.Unit()
	_, sq, err := p.LongDivision(m)
	if err != nil {
		return nil, err
	}
	for n > 0 {
		if n&1 == 1 {
			if _, res, err = res.Mul(sq).LongDivision(m); err != nil {
				return nil, err
			}
		}
		if _, sq, err = sq.Mul(sq).LongDivision(m); err != nil {
			return nil, err
		}
		n >>= 1
	}
	return res, nil
}
