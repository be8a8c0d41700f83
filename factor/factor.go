// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package factor implements the factorization of polynomials over a finite
// field into irreducible components: the square-free decomposition, the
// distinct-degree split, the randomized equal-degree (Cantor-Zassenhaus)
// split, and the orchestrator combining the three into a full factorization.
package factor

import (
	"fmt"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/polynomial"
)

// Factor wraps a polynomial together with its multiplicity in a
// factorization. MaxDegree stays 0 until a distinct-degree pass has
// established the common degree of the group's irreducible components.
type Factor struct {
	Value        *polynomial.Polynomial
	Multiplicity int
	MaxDegree    int
}

// IsIrreducible reports whether the wrapped polynomial is irreducible.
func (f Factor) IsIrreducible() (bool, error) {
	return f.Value.CheckIrreducibility()
}

func (f Factor) String() string {
	s := "(" + f.Value.String() + ")"
	if f.Multiplicity > 1 {
		s = fmt.Sprintf("%s**%d", s, f.Multiplicity)
	}
	return s
}

// randomPolynomialSource is the part of the field contract the randomized
// splitting needs; both field types implement it.
type randomPolynomialSource interface {
	RandomPolynomial(degree int) *polynomial.Polynomial
}

// Factorization binds one base field and one polynomial to the factorization
// algorithms. Instances are transient: create one per factorization call
// through New.
type Factorization struct {
	ring        algebra.Ring
	poly        *polynomial.Polynomial
	retryBudget int
}

// Option configures a Factorization.
type Option func(*Factorization)

// WithRetryBudget overrides the retry budget of the equal-degree splitting.
// The default, 2*r*d for r factors of degree d, is a heuristic policy
// constant: the algorithm is Las Vegas and exhausting the budget aborts with
// an ExhaustionError. A budget of 0 fails the first splitting immediately.
func WithRetryBudget(n int) Option {
	return func(fz *Factorization) {
		fz.retryBudget = n
	}
}

// New binds p to the factorization algorithms.
func New(p *polynomial.Polynomial, opts ...Option) *Factorization {
	fz := &Factorization{ring: p.Ring(), poly: p, retryBudget: -1}
	for _, opt := range opts {
		opt(fz)
	}
	return fz
}

// Product multiplies the factors back together, each raised to its
// multiplicity. The product over no factors is the unit polynomial.
func (fz *Factorization) Product(factors []Factor) *polynomial.Polynomial {
	res := fz.poly.Unit()
	for _, f := range factors {
		res = res.Mul(f.Value.Pow(f.Multiplicity))
	}
	return res
}
