// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package polynomial

import "github.com/imath-go/imath/algebra"

// LongDivision is the Euclidean division of p by divisor according to
// decreasing degrees, returning (quotient, remainder). At each step the
// remainder's leading coefficient must be exactly divisible by the divisor's
// leading coefficient in the base ring; over a ring such as the integers this
// is not always the case and the division fails with a DomainError.
func (p *Polynomial) LongDivision(divisor *Polynomial) (*Polynomial, *Polynomial, error) {
	if divisor.IsNull() {
		return nil, nil, algebra.Errorf("polynomial division by the zero polynomial over %s", p.ring)
	}
	quotient := p.Null()
	remainder := p.Copy()
	for !remainder.IsNull() && remainder.Degree() >= divisor.Degree() {
		deg := remainder.Degree() - divisor.Degree()
		c, rem, err := p.ring.QuoRem(remainder.Leading(), divisor.Leading())
		if err != nil {
			return nil, nil, err
		}
		if !algebra.IsZero(p.ring, rem) {
			return nil, nil, algebra.Errorf("%s is not divisible by %s in %s",
				remainder.Leading(), divisor.Leading(), p.ring)
		}
		term := p.Monic(deg).MulConstant(c)
		quotient = quotient.Add(term)
		remainder = remainder.Sub(divisor.Mul(term))
	}
	return quotient, remainder, nil
}

// LongDivisionReversed divides p by divisor according to increasing degrees,
// matching terms by valuation instead of degree. Rings without an ordinary
// leading-term convention, such as the Gaussian integers, divide this way.
func (p *Polynomial) LongDivisionReversed(divisor *Polynomial) (*Polynomial, *Polynomial, error) {
	if divisor.IsNull() {
		return nil, nil, algebra.Errorf("polynomial division by the zero polynomial over %s", p.ring)
	}
	quotient := p.Null()
	remainder := p.Copy()
	for !remainder.IsNull() && remainder.Valuation() <= divisor.Degree() {
		deg := remainder.Valuation() - divisor.Valuation()
		c, rem, err := p.ring.QuoRem(remainder.Trailing(), divisor.Trailing())
		if err != nil {
			return nil, nil, err
		}
		if !algebra.IsZero(p.ring, rem) {
			return nil, nil, algebra.Errorf("%s is not divisible by %s in %s",
				remainder.Trailing(), divisor.Trailing(), p.ring)
		}
		term := p.Monic(deg).MulConstant(c)
		quotient = quotient.Add(term)
		remainder = remainder.Sub(divisor.Mul(term))
	}
	return quotient, remainder, nil
}

// Div returns the quotient of the long division of p by divisor.
func (p *Polynomial) Div(divisor *Polynomial) (*Polynomial, error) {
	q, _, err := p.LongDivision(divisor)
	return q, err
}

// Mod returns the remainder of the long division of p by divisor.
func (p *Polynomial) Mod(divisor *Polynomial) (*Polynomial, error) {
	_, r, err := p.LongDivision(divisor)
	return r, err
}

// DivConstant divides every coefficient of p by a non-zero element of a base
// field.
func (p *Polynomial) DivConstant(k algebra.Element) (*Polynomial, error) {
	f, ok := p.ring.(algebra.Field)
	if !ok {
		return nil, algebra.Errorf("cannot divide coefficients by a constant over %s", p.ring)
	}
	inv, err := f.Inv(k)
	if err != nil {
		return nil, err
	}
	return p.MulConstant(inv), nil
}

// Gcd returns a greatest common divisor of p and q by the iterative Euclidean
// algorithm. The result is not normalized; callers wanting a monic gcd apply
// MakeMonic.
func Gcd(p, q *Polynomial) (*Polynomial, error) {
	a, b := p.Copy(), q.Copy()
	for !b.IsNull() {
		_, r, err := a.LongDivision(b)
		if err != nil {
			return nil, err
		}
		a, b = b, r
	}
	return a, nil
}

// MakeMonic normalizes p to a monic polynomial: over a field it divides by the
// leading coefficient; over the integers it divides by the gcd of the
// coefficients and fails with a DomainError if the result is still not monic.
func (p *Polynomial) MakeMonic() (*Polynomial, error) {
	if p.IsMonic() {
		return p.Copy(), nil
	}
	if p.IsNull() {
		return nil, algebra.Errorf("the zero polynomial cannot be made monic")
	}
	if p.ring.Characteristic() != 0 {
		return p.DivConstant(p.Leading())
	}
	g := p.Leading()
	for _, c := range p.coeffs {
		g = elementGcd(p.ring, g, c)
	}
	res := p.Null()
	for deg, c := range p.coeffs {
		q, _, err := p.ring.QuoRem(c, g)
		if err != nil {
			return nil, err
		}
		res.setTerm(deg, q)
	}
	if !res.IsMonic() {
		return nil, algebra.Errorf("polynomial %s over %s cannot be made monic", p, p.ring)
	}
	return res, nil
}

// elementGcd runs the Euclidean algorithm on ring elements through QuoRem.
func elementGcd(r algebra.Ring, a, b algebra.Element) algebra.Element {
	for !algebra.IsZero(r, b) {
		_, rem, err := r.QuoRem(a, b)
		if err != nil {
			panic("polynomial: gcd over a ring without remainders: " + err.Error())
		}
		a, b = b, rem
	}
	return a
}
