// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package polynomial implements a sparse univariate polynomial ring over any
// algebra.Ring. Coefficients are indexed by degree and the representation is
// canonical: no stored coefficient is the ring's additive zero.
package polynomial

import (
	"sort"
	"strconv"
	"strings"

	"github.com/imath-go/imath/algebra"
)

// Polynomial is an element of R[X] for a base ring R. The zero polynomial has
// an empty coefficient map and, by convention, degree 0. Values are immutable
// once returned: every operation builds a fresh polynomial.
type Polynomial struct {
	ring          algebra.Ring
	coeffs        map[int]algebra.Element
	indeterminate string
}

// New builds a polynomial from a dense coefficient slice, lowest degree first.
// Zero coefficients are dropped.
func New(ring algebra.Ring, coeffs []algebra.Element, indeterminate string) *Polynomial {
	if indeterminate == "" {
		indeterminate = "X"
	}
	p := &Polynomial{ring: ring, coeffs: make(map[int]algebra.Element), indeterminate: indeterminate}
	for deg, c := range coeffs {
		if !algebra.IsZero(ring, c) {
			p.coeffs[deg] = c
		}
	}
	return p
}

// FromInts builds a polynomial from integer literals, lowest degree first.
// Each literal must be accepted by the ring's FromInt.
func FromInts(ring algebra.Ring, indeterminate string, ints ...int64) (*Polynomial, error) {
	coeffs := make([]algebra.Element, len(ints))
	for i, n := range ints {
		c, err := ring.FromInt(n)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return New(ring, coeffs, indeterminate), nil
}

// Ring returns the base ring of the polynomial.
func (p *Polynomial) Ring() algebra.Ring { return p.ring }

// Indeterminate returns the symbol used to render the polynomial.
func (p *Polynomial) Indeterminate() string { return p.indeterminate }

// Null returns the zero polynomial over the same ring.
func (p *Polynomial) Null() *Polynomial {
	return &Polynomial{ring: p.ring, coeffs: make(map[int]algebra.Element), indeterminate: p.indeterminate}
}

// Monic returns the single-term monic polynomial X^degree.
func (p *Polynomial) Monic(degree int) *Polynomial {
	res := p.Null()
	res.setTerm(degree, p.ring.One())
	return res
}

// Unit returns the constant polynomial 1.
func (p *Polynomial) Unit() *Polynomial { return p.Monic(0) }

// Copy returns a copy of p.
func (p *Polynomial) Copy() *Polynomial {
	res := p.Null()
	for deg, c := range p.coeffs {
		res.coeffs[deg] = c
	}
	return res
}

// Degree returns the degree of p. The degree of the zero polynomial is 0 by
// convention (rigorously it would be negative infinity).
func (p *Polynomial) Degree() int {
	deg := 0
	for d := range p.coeffs {
		if d > deg {
			deg = d
		}
	}
	return deg
}

// Valuation returns the degree of the non-zero term of lowest degree. It
// panics on the zero polynomial, whose valuation is undefined.
func (p *Polynomial) Valuation() int {
	if p.IsNull() {
		panic("polynomial: valuation of the zero polynomial is undefined")
	}
	first := true
	val := 0
	for d := range p.coeffs {
		if first || d < val {
			val = d
			first = false
		}
	}
	return val
}

// Coefficient returns the coefficient of the term of the given degree, or the
// ring's zero when the term is absent.
func (p *Polynomial) Coefficient(degree int) algebra.Element {
	if c, ok := p.coeffs[degree]; ok {
		return c
	}
	return p.ring.Zero()
}

// Coefficients returns the dense coefficient slice, lowest degree first.
func (p *Polynomial) Coefficients() []algebra.Element {
	res := make([]algebra.Element, p.Degree()+1)
	for i := range res {
		res[i] = p.Coefficient(i)
	}
	return res
}

// Leading returns the coefficient of the term of highest degree.
func (p *Polynomial) Leading() algebra.Element {
	if p.IsNull() {
		return p.ring.Zero()
	}
	return p.coeffs[p.Degree()]
}

// Trailing returns the coefficient of the non-zero term of lowest degree.
func (p *Polynomial) Trailing() algebra.Element {
	if p.IsNull() {
		return p.ring.Zero()
	}
	return p.coeffs[p.Valuation()]
}

// Constant returns the coefficient of the term of degree 0.
func (p *Polynomial) Constant() algebra.Element { return p.Coefficient(0) }

// Len returns the number of non-zero terms.
func (p *Polynomial) Len() int { return len(p.coeffs) }

// IsNull reports whether p is the zero polynomial.
func (p *Polynomial) IsNull() bool { return len(p.coeffs) == 0 }

// IsConstant reports whether p is non-zero of degree 0.
func (p *Polynomial) IsConstant() bool { return p.Degree() == 0 && !p.IsNull() }

// IsUnit reports whether p is the constant polynomial 1.
func (p *Polynomial) IsUnit() bool {
	return p.IsConstant() && algebra.IsOne(p.ring, p.Constant())
}

// IsAbsUnit reports whether p is the constant polynomial 1 or -1.
func (p *Polynomial) IsAbsUnit() bool {
	if !p.IsConstant() {
		return false
	}
	c := p.Constant()
	return algebra.IsOne(p.ring, c) || p.ring.Equal(c, p.ring.Neg(p.ring.One()))
}

// IsMonic reports whether the leading coefficient is the ring's one.
func (p *Polynomial) IsMonic() bool {
	return !p.IsNull() && algebra.IsOne(p.ring, p.Leading())
}

// Equal is the term-wise comparison of two polynomials.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for deg, c := range p.coeffs {
		qc, ok := q.coeffs[deg]
		if !ok || !p.ring.Equal(c, qc) {
			return false
		}
	}
	return true
}

// setTerm maintains the canonical representation: writing a zero coefficient
// deletes the term.
func (p *Polynomial) setTerm(deg int, c algebra.Element) {
	if algebra.IsZero(p.ring, c) {
		delete(p.coeffs, deg)
	} else {
		p.coeffs[deg] = c
	}
}

// shortFormatter is implemented by elements that have a compact rendering for
// use as a polynomial coefficient, e.g. (1+j) for an extension field element.
type shortFormatter interface {
	ShortString() string
}

func coefficientString(c algebra.Element) string {
	if sf, ok := c.(shortFormatter); ok {
		return sf.ShortString()
	}
	return c.String()
}

// String renders the polynomial in increasing degree order, e.g. 1 + X + X^2.
// The rendering round-trips through polyparse for any expressible polynomial.
func (p *Polynomial) String() string {
	if p.IsNull() {
		return "0"
	}
	degrees := make([]int, 0, len(p.coeffs))
	for d := range p.coeffs {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)

	var sb strings.Builder
	for _, deg := range degrees {
		c := p.coeffs[deg]
		if deg == 0 {
			sb.WriteString(coefficientString(c))
			continue
		}
		sb.WriteString(p.formatCoefficient(c, sb.Len() > 0))
		sb.WriteString(p.indeterminate)
		if deg > 1 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(deg))
		}
	}
	return sb.String()
}

// formatCoefficient renders a non-constant term's coefficient, folding the
// sign into the separating operator and omitting unit coefficients.
func (p *Polynomial) formatCoefficient(c algebra.Element, inner bool) string {
	sc := coefficientString(c)
	negative := strings.HasPrefix(sc, "-")
	unit := algebra.IsOne(p.ring, c) || p.ring.Equal(c, p.ring.Neg(p.ring.One()))

	var sb strings.Builder
	if inner {
		if negative {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		if !unit {
			if negative {
				sb.WriteString(sc[1:])
			} else {
				sb.WriteString(sc)
			}
		}
	} else {
		if negative {
			sb.WriteString("-")
		}
		if !unit {
			if negative {
				sb.WriteString(sc[1:])
			} else {
				sb.WriteString(sc)
			}
		}
	}
	return sb.String()
}
