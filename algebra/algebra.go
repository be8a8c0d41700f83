// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package algebra defines the domain contract shared by every coefficient ring
// in this module: prime fields, their finite extensions, the ring of integers
// and the Gaussian integers. The polynomial ring and the factorization
// algorithms are written against these interfaces only.
package algebra

import "fmt"

// Element is an element of a Ring. Concrete types are owned by their ring;
// mixing elements from different rings is a programmer error and panics.
type Element interface {
	fmt.Stringer
}

// Ring is an integral domain: an abelian group for addition, a semi-group for
// multiplication, with an exact quotient/remainder. A polynomial ring is
// defined over any Ring.
type Ring interface {
	fmt.Stringer

	// FromInt casts an integer into an element of the ring. Fields with a
	// canonical carrier reject integers outside of it with a DomainError
	// rather than reducing them.
	FromInt(n int64) (Element, error)

	// Zero is the additive neutral, One the multiplicative neutral.
	Zero() Element
	One() Element

	// Characteristic is 0 for infinite rings, p for fields of characteristic p.
	Characteristic() int64

	Add(a, b Element) Element
	Neg(a Element) Element
	Mul(a, b Element) Element

	// ExtMul is the n-th iterated sum a + ... + a.
	ExtMul(n int64, a Element) Element

	// Pow raises a to the n-th power, n >= 0.
	Pow(a Element, n int64) (Element, error)

	// QuoRem returns the quotient and remainder of a by b. Over a field the
	// remainder is always zero; division by zero is a DomainError.
	QuoRem(a, b Element) (Element, Element, error)

	Equal(a, b Element) bool
}

// Field is a Ring where every non-zero element has a multiplicative inverse.
type Field interface {
	Ring

	Inv(a Element) (Element, error)
	Div(a, b Element) (Element, error)
}

// FrobeniusRing is a positive-characteristic ring that can take the p-th root
// of an element, i.e. invert the Frobenius endomorphism a -> a^p.
type FrobeniusRing interface {
	Ring

	FrobeniusReciprocal(a Element) (Element, error)
}

// Finite is implemented by rings with finitely many elements.
type Finite interface {
	Order() int64
}

// OrderOf returns the number of elements of a finite ring, falling back to
// the characteristic when the ring does not report an order. For a prime
// field both agree; for an extension field the order p^d is the right base
// for the Frobenius power maps.
func OrderOf(r Ring) int64 {
	if f, ok := r.(Finite); ok {
		return f.Order()
	}
	return r.Characteristic()
}

// IsZero reports whether a is the additive neutral of r.
func IsZero(r Ring, a Element) bool {
	return r.Equal(a, r.Zero())
}

// IsOne reports whether a is the multiplicative neutral of r.
func IsOne(r Ring, a Element) bool {
	return r.Equal(a, r.One())
}

// Sub returns a - b.
func Sub(r Ring, a, b Element) Element {
	return r.Add(a, r.Neg(b))
}

// Pow is iterative square-and-multiply over ring elements. It backs the Pow
// method of the concrete rings.
func Pow(r Ring, a Element, n int64) (Element, error) {
	if n < 0 {
		return nil, Errorf("negative exponent %d in %s", n, r)
	}
	switch {
	case n == 0:
		return r.One(), nil
	case n == 1:
		return a, nil
	case IsZero(r, a) || IsOne(r, a):
		return a, nil
	}
	res := r.One()
	sq := a
	for n > 0 {
		if n&1 == 1 {
			res = r.Mul(res, sq)
		}
		sq = r.Mul(sq, sq)
		n >>= 1
	}
	return res, nil
}
