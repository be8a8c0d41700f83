// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package finitefield implements finite (Galois) field extensions of a prime
// field: the field of order p^d defined by a monic irreducible minimal
// polynomial of degree d. Elements are coordinate vectors in the basis
// {1, j, ..., j^(d-1)} where j is the adjoined root.
//
// Multiplication uses one of two strategies: when a validated generator of
// the multiplicative group is known, elements multiply by adding their
// discrete-log exponents; otherwise the representative polynomials multiply
// modulo the minimal polynomial. Both agree on every element pair.
package finitefield

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/logger"
	"github.com/imath-go/imath/polynomial"
	"github.com/imath-go/imath/primefield"
)

const defaultMaxRetries = 15

// Field is a finite field of order p^d, d >= 2.
type Field struct {
	primeField *primefield.Field
	dimension  int
	minPoly    *polynomial.Polynomial
	rootSymbol string

	// discrete-log tables, populated only when a generator is validated
	generator        *Element
	generatorPowers  map[int64]Element
	elementExponents map[string]int64

	// frobenius[i] is the p-th root of the basis vector j^i
	frobenius []Element

	rnd        *rand.Rand
	maxRetries int
}

// New constructs the extension field of the prime field underlying minPoly.
// minPoly must be monic, irreducible and of degree exactly dimension over its
// prime field; dimension must be at least 2.
func New(dimension int, minPoly *polynomial.Polynomial, opts ...Option) (*Field, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("apply options: %w", err)
	}
	pf, ok := minPoly.Ring().(*primefield.Field)
	if !ok {
		return nil, algebra.Errorf("minimal polynomial must be defined over a prime field, got %s", minPoly.Ring())
	}
	if dimension < 2 {
		return nil, algebra.Errorf("extension dimension must be at least 2, got %d", dimension)
	}
	if minPoly.Degree() != dimension {
		return nil, algebra.Errorf("minimal polynomial %s has degree %d, want %d", minPoly, minPoly.Degree(), dimension)
	}
	if !minPoly.IsMonic() {
		return nil, algebra.Errorf("minimal polynomial %s is not monic", minPoly)
	}
	irreducible, err := minPoly.CheckIrreducibility()
	if err != nil {
		return nil, err
	}
	if !irreducible {
		return nil, algebra.Errorf("minimal polynomial %s is reducible over %s", minPoly, pf)
	}

	f := &Field{
		primeField: pf,
		dimension:  dimension,
		minPoly:    minPoly.Copy(),
		rootSymbol: cfg.rootSymbol,
		rnd:        cfg.rnd,
		maxRetries: cfg.maxRetries,
	}
	if f.rnd == nil {
		f.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	start := time.Now()
	if cfg.generator != nil {
		gen, err := f.ElementFromInts(cfg.generator...)
		if err != nil {
			return nil, err
		}
		if err := f.setGenerator(gen); err != nil {
			return nil, err
		}
	}
	if err := f.buildFrobeniusMap(); err != nil {
		return nil, err
	}
	log := logger.With("finitefield")
	log.Debug().
		Str("field", f.String()).
		Bool("generator", f.HasValidGenerator()).
		Dur("took", time.Since(start)).
		Msg("extension field built")
	return f, nil
}

// setGenerator validates a claimed generator by repeated self-multiplication,
// counting its order; anything short of the full multiplicative group order
// fails. Validation populates both discrete-log tables.
func (f *Field) setGenerator(gen Element) error {
	expected := f.Order() - 1
	powers := map[int64]Element{1: gen}
	order := int64(1)
	g := gen
	for !f.isOne(g) && order <= expected {
		g = f.mulModPoly(g, gen)
		order++
		powers[order] = g
	}
	if order != expected {
		return algebra.Errorf("element %s is not a generator for %s", gen, f)
	}
	f.generator = &gen
	f.generatorPowers = powers
	f.elementExponents = make(map[string]int64, len(powers))
	for o, e := range powers {
		f.elementExponents[e.key()] = o
	}
	return nil
}

// buildFrobeniusMap finds the p-th root of each basis vector by exhaustive
// search: the basis entries are independent, so each scan runs on its own
// goroutine.
func (f *Field) buildFrobeniusMap() error {
	p := f.Characteristic()
	roots := make([]Element, f.dimension)
	var g errgroup.Group
	for i := 0; i < f.dimension; i++ {
		i := i
		g.Go(func() error {
			b := f.basisVector(i)
			for _, e := range f.Elements() {
				ep, err := f.Pow(e, p)
				if err != nil {
					return err
				}
				if f.Equal(ep, b) {
					roots[i] = e
					return nil
				}
			}
			return algebra.Errorf("no %d-th root for basis vector %d of %s", p, i, f)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	f.frobenius = roots
	return nil
}

// basisVector returns j^i as an element, i < dimension.
func (f *Field) basisVector(i int) Element {
	vector := make([]primefield.Element, f.dimension)
	for k := range vector {
		vector[k] = f.primeField.MustElement(0)
	}
	vector[i] = f.primeField.MustElement(1)
	return Element{field: f, vector: vector}
}

// PrimeField returns the base prime field.
func (f *Field) PrimeField() *primefield.Field { return f.primeField }

// Dimension returns the dimension of the field as a vector space over its
// prime field.
func (f *Field) Dimension() int { return f.dimension }

// MinimalPolynomial returns a copy of the defining polynomial.
func (f *Field) MinimalPolynomial() *polynomial.Polynomial { return f.minPoly.Copy() }

// RootSymbol returns the symbol used to render the adjoined root.
func (f *Field) RootSymbol() string { return f.rootSymbol }

// Characteristic returns the characteristic of the prime field.
func (f *Field) Characteristic() int64 { return f.primeField.Characteristic() }

// Order returns p^d, the number of elements.
func (f *Field) Order() int64 {
	order := int64(1)
	for i := 0; i < f.dimension; i++ {
		order *= f.Characteristic()
	}
	return order
}

// HasValidGenerator reports whether the discrete-log tables are available.
func (f *Field) HasValidGenerator() bool { return f.generator != nil }

// Generator returns the validated generator, if any.
func (f *Field) Generator() (Element, bool) {
	if f.generator == nil {
		return Element{}, false
	}
	return *f.generator, true
}

// Elements returns every element of the field, iterating the coordinate
// vectors in carrier order with the first coordinate varying slowest.
func (f *Field) Elements() []Element {
	carrier := f.primeField.Elements()
	total := f.Order()
	res := make([]Element, 0, total)
	counters := make([]int, f.dimension)
	for {
		vector := make([]primefield.Element, f.dimension)
		for i, c := range counters {
			vector[i] = carrier[c]
		}
		res = append(res, Element{field: f, vector: vector})
		i := f.dimension - 1
		for i >= 0 {
			counters[i]++
			if counters[i] < len(carrier) {
				break
			}
			counters[i] = 0
			i--
		}
		if i < 0 {
			return res
		}
	}
}

func (f *Field) String() string {
	return fmt.Sprintf("FiniteField(%d^%d)", f.Characteristic(), f.dimension)
}
