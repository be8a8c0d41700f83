// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package integers adapts the ring of integers Z to the algebra contract, so
// that polynomials from Z[X] share the generic polynomial machinery. Division
// is Euclidean: polynomial long division over Z fails whenever a leading
// coefficient is not exactly divisible.
package integers

import (
	"strconv"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/polynomial"
)

// Int is an integer as a ring element.
type Int int64

func (n Int) String() string { return strconv.FormatInt(int64(n), 10) }

// Value returns the underlying integer.
func (n Int) Value() int64 { return int64(n) }

// Ring is the ring of integers. The zero value is ready to use.
type Ring struct{}

func (Ring) String() string { return "IntegerRing" }

// FromInt casts n into a ring element; every integer is a member.
func (Ring) FromInt(n int64) (algebra.Element, error) { return Int(n), nil }

// Zero returns 0.
func (Ring) Zero() algebra.Element { return Int(0) }

// One returns 1.
func (Ring) One() algebra.Element { return Int(1) }

// Characteristic of Z is 0.
func (Ring) Characteristic() int64 { return 0 }

// Add returns a + b.
func (r Ring) Add(a, b algebra.Element) algebra.Element {
	return r.asInt(a) + r.asInt(b)
}

// Neg returns -a.
func (r Ring) Neg(a algebra.Element) algebra.Element { return -r.asInt(a) }

// Mul returns a * b.
func (r Ring) Mul(a, b algebra.Element) algebra.Element {
	return r.asInt(a) * r.asInt(b)
}

// ExtMul returns n * a.
func (r Ring) ExtMul(n int64, a algebra.Element) algebra.Element {
	return Int(n) * r.asInt(a)
}

// Pow returns a^n, n >= 0.
func (r Ring) Pow(a algebra.Element, n int64) (algebra.Element, error) {
	return algebra.Pow(r, a, n)
}

// QuoRem is the floor division of a by b, with divmod conventions: the
// remainder takes the sign of the divisor.
func (r Ring) QuoRem(a, b algebra.Element) (algebra.Element, algebra.Element, error) {
	ia, ib := r.asInt(a), r.asInt(b)
	if ib == 0 {
		return nil, nil, algebra.Errorf("division by zero in %s", r)
	}
	q := ia / ib
	rem := ia % ib
	if rem != 0 && (rem < 0) != (ib < 0) {
		q--
		rem += ib
	}
	return q, rem, nil
}

// Equal reports whether a and b are the same integer.
func (r Ring) Equal(a, b algebra.Element) bool { return r.asInt(a) == r.asInt(b) }

// Polynomial builds a polynomial of Z[X] from integer literals, lowest
// degree first.
func (r Ring) Polynomial(ints ...int64) *polynomial.Polynomial {
	p, _ := polynomial.FromInts(r, "X", ints...)
	return p
}

// LinearPolynomial returns the polynomial X - e.
func (r Ring) LinearPolynomial(e algebra.Element) *polynomial.Polynomial {
	return polynomial.New(r, []algebra.Element{r.Neg(e), r.One()}, "X")
}

func (r Ring) asInt(a algebra.Element) Int {
	n, ok := a.(Int)
	if !ok {
		panic("integers: foreign element used in the integer ring")
	}
	return n
}
