// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package gaussint implements the ring of Gaussian integers Z[i]. An element
// x + iy is handled through its representative polynomial x + iy over Z, and
// quotient/remainder are computed by the valuation-based reversed long
// division modulo i^2 + 1. The ring is not generic infrastructure; it exists
// to give Z[X]-style polynomials a second integral domain with a non-trivial
// division rule.
package gaussint

import (
	"strings"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/integers"
	"github.com/imath-go/imath/polynomial"
	"github.com/imath-go/imath/polyparse"
)

// Int is a Gaussian integer x + iy.
type Int struct {
	X, Y int64
}

// Conjugate returns x - iy.
func (n Int) Conjugate() Int { return Int{X: n.X, Y: -n.Y} }

// Norm returns the multiplicative norm x^2 + y^2.
func (n Int) Norm() int64 { return n.X*n.X + n.Y*n.Y }

// IsZero reports whether n is 0.
func (n Int) IsZero() bool { return n.X == 0 && n.Y == 0 }

func (n Int) String() string {
	return representative(n).String()
}

// ShortString is the compact coefficient rendering, e.g. (1+2i).
func (n Int) ShortString() string {
	if n.Y == 0 {
		return integers.Int(n.X).String()
	}
	return "(" + strings.ReplaceAll(n.String(), " ", "") + ")"
}

// Ring is the ring of Gaussian integers. The zero value is ready to use.
type Ring struct{}

func (Ring) String() string { return "GaussianIntegerRing" }

// RootSymbol returns the symbol of the adjoined root i.
func (Ring) RootSymbol() string { return "i" }

// basePolynomial is i^2 + 1, irreducible over Z.
func basePolynomial() *polynomial.Polynomial {
	return integers.Ring{}.Polynomial(1, 0, 1)
}

func representative(n Int) *polynomial.Polynomial {
	p, _ := polynomial.FromInts(integers.Ring{}, "i", n.X, n.Y)
	return p
}

// FromInt embeds n as the real Gaussian integer n + 0i.
func (Ring) FromInt(n int64) (algebra.Element, error) { return Int{X: n}, nil }

// New builds the element x + iy.
func (Ring) New(x, y int64) Int { return Int{X: x, Y: y} }

// Zero returns 0.
func (Ring) Zero() algebra.Element { return Int{} }

// One returns 1.
func (Ring) One() algebra.Element { return Int{X: 1} }

// Characteristic of Z[i] is 0.
func (Ring) Characteristic() int64 { return 0 }

// Add returns a + b.
func (r Ring) Add(a, b algebra.Element) algebra.Element {
	ga, gb := r.asGauss(a), r.asGauss(b)
	return Int{X: ga.X + gb.X, Y: ga.Y + gb.Y}
}

// Neg returns -a.
func (r Ring) Neg(a algebra.Element) algebra.Element {
	ga := r.asGauss(a)
	return Int{X: -ga.X, Y: -ga.Y}
}

// Mul returns a * b.
func (r Ring) Mul(a, b algebra.Element) algebra.Element {
	ga, gb := r.asGauss(a), r.asGauss(b)
	return Int{X: ga.X*gb.X - ga.Y*gb.Y, Y: ga.X*gb.Y + ga.Y*gb.X}
}

// ExtMul returns n * a.
func (r Ring) ExtMul(n int64, a algebra.Element) algebra.Element {
	return r.Mul(Int{X: n}, a)
}

// Pow returns a^n, n >= 0.
func (r Ring) Pow(a algebra.Element, n int64) (algebra.Element, error) {
	return algebra.Pow(r, a, n)
}

// QuoRem divides a by b through the representative polynomials: a reversed
// long division over Z, with quotient and remainder reduced modulo i^2 + 1.
func (r Ring) QuoRem(a, b algebra.Element) (algebra.Element, algebra.Element, error) {
	ga, gb := r.asGauss(a), r.asGauss(b)
	if gb.IsZero() {
		return nil, nil, algebra.Errorf("division by zero in %s", r)
	}
	q, rem, err := representative(ga).LongDivisionReversed(representative(gb))
	if err != nil {
		return nil, nil, err
	}
	base := basePolynomial()
	if q, err = q.Mod(base); err != nil {
		return nil, nil, err
	}
	if rem, err = rem.Mod(base); err != nil {
		return nil, nil, err
	}
	gq, err := r.fromPolynomial(q)
	if err != nil {
		return nil, nil, err
	}
	grem, err := r.fromPolynomial(rem)
	if err != nil {
		return nil, nil, err
	}
	return gq, grem, nil
}

// Equal reports whether a and b are the same Gaussian integer.
func (r Ring) Equal(a, b algebra.Element) bool {
	return r.asGauss(a) == r.asGauss(b)
}

// Parse reads a Gaussian integer from its algebraic rendering in the root
// symbol, e.g. "1 + 2i" or "-3i". Powers of i are reduced modulo i^2 + 1.
func (r Ring) Parse(expression string) (Int, error) {
	p, err := polyparse.Parse(expression, integers.Ring{}, polyparse.WithIndeterminate(r.RootSymbol()))
	if err != nil {
		return Int{}, err
	}
	if p, err = p.Mod(basePolynomial()); err != nil {
		return Int{}, err
	}
	return r.fromPolynomial(p)
}

// Polynomial builds a polynomial over Z[i], lowest degree first. The default
// indeterminate is z to keep it distinct from the root symbol i.
func (r Ring) Polynomial(coeffs ...Int) *polynomial.Polynomial {
	elems := make([]algebra.Element, len(coeffs))
	for i, c := range coeffs {
		elems[i] = c
	}
	return polynomial.New(r, elems, "z")
}

// LinearPolynomial returns the polynomial z - e.
func (r Ring) LinearPolynomial(e algebra.Element) *polynomial.Polynomial {
	return polynomial.New(r, []algebra.Element{r.Neg(e), r.One()}, "z")
}

func (r Ring) fromPolynomial(p *polynomial.Polynomial) (Int, error) {
	if !p.IsNull() && p.Degree() > 1 {
		return Int{}, algebra.Errorf("%s is not a valid Gaussian integer", p)
	}
	x := p.Coefficient(0).(integers.Int)
	y := p.Coefficient(1).(integers.Int)
	return Int{X: x.Value(), Y: y.Value()}, nil
}

func (r Ring) asGauss(a algebra.Element) Int {
	n, ok := a.(Int)
	if !ok {
		panic("gaussint: foreign element used in the Gaussian integer ring")
	}
	return n
}
