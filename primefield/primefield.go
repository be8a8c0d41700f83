// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package primefield implements the field of integers modulo a prime p.
//
// Elements are not represented by residues in 0..p-1 but by signed residues in
// -(p-1)/2..(p-1)/2. Both group tables are precomputed at construction: the
// additive carrier as an ordered list, and the multiplicative table derived
// from the group axioms alone, together with a reciprocal sub-table. All
// element operations are table lookups. A constructed field is immutable and
// safe for concurrent readers.
package primefield

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/logger"
	"github.com/imath-go/imath/nt"
)

const (
	defaultMaxRetries = 15

	// millerRabinRounds is the number of rounds used to screen the
	// characteristic at construction.
	millerRabinRounds = 3
)

// Field is a prime field of characteristic p.
type Field struct {
	characteristic int64

	// carrier is the additive group as an ordered list of signed residues,
	// ascending. For p = 2 the carrier is [0, 1] and is not symmetric.
	carrier []int64
	index   map[int64]int

	products    map[[2]int64]int64
	reciprocals map[int64]int64

	rnd        *rand.Rand
	maxRetries int
}

// New constructs the prime field of characteristic p. p must pass the
// Miller-Rabin screen.
func New(p int64, opts ...Option) (*Field, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("apply options: %w", err)
	}
	if p < 2 || !nt.MaybePrime(p, millerRabinRounds) {
		return nil, algebra.Errorf("characteristic %d is not prime", p)
	}
	f := &Field{
		characteristic: p,
		rnd:            cfg.rnd,
		maxRetries:     cfg.maxRetries,
	}
	if f.rnd == nil {
		f.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	start := time.Now()
	f.buildAdditiveGroup()
	f.buildMultiplicativeGroup()
	log := logger.With("primefield")
	log.Debug().
		Str("field", f.String()).
		Dur("took", time.Since(start)).
		Msg("group tables built")
	return f, nil
}

// buildAdditiveGroup lists the balanced signed residues. p = 2 is
// special-cased because {0, 1} has no negative half.
func (f *Field) buildAdditiveGroup() {
	p := f.characteristic
	if p == 2 {
		f.carrier = []int64{0, 1}
	} else {
		f.carrier = make([]int64, 0, p)
		for n := -(p - 1) / 2; n <= (p-1)/2; n++ {
			f.carrier = append(f.carrier, n)
		}
	}
	f.index = make(map[int64]int, len(f.carrier))
	for i, n := range f.carrier {
		f.index[n] = i
	}
}

// buildMultiplicativeGroup derives every product from the group axioms. The
// action of {1, -1} fixes all products with units; for p > 3, squares of the
// representatives 2..(p-1)/2 come from expanding ((e-1) + 1)^2 with
// already-known smaller products, and cross products of distinct
// representatives follow the same expansion. The reciprocal sub-table records,
// for each non-zero element, the element whose product with it is 1.
func (f *Field) buildMultiplicativeGroup() {
	p := f.characteristic
	f.products = map[[2]int64]int64{{1, 1}: 1}
	f.reciprocals = map[int64]int64{1: 1}
	if p == 2 {
		return
	}

	for _, e := range f.carrier {
		if e == 0 {
			continue
		}
		f.products[[2]int64{1, e}] = e
		f.products[[2]int64{e, 1}] = e
		f.products[[2]int64{e, -1}] = f.rawNeg(e)
		f.products[[2]int64{-1, e}] = f.rawNeg(e)
		f.products[[2]int64{1, -e}] = f.rawNeg(e)
		f.products[[2]int64{-e, 1}] = f.rawNeg(e)
		f.products[[2]int64{-e, -1}] = e
		f.products[[2]int64{-1, -e}] = e
	}
	f.products[[2]int64{-1, -1}] = 1
	f.reciprocals[-1] = -1

	// (X + a)(X + b) = X^2 + (a+b)X + ab, evaluated at X = 1; with a = e-1 and
	// b = f-1 this expresses e*f through strictly smaller known products.
	evalAtOne := func(a, b int64) int64 {
		s := f.rawAdd(int64(1), f.rawMul(a, b))
		return f.rawAdd(s, f.rawAdd(a, b))
	}

	for e := int64(2); e <= (p-1)/2; e++ {
		v := evalAtOne(e-1, e-1)
		f.products[[2]int64{e, e}] = v
		f.products[[2]int64{-e, -e}] = v
		f.products[[2]int64{-e, e}] = f.rawNeg(v)
		f.products[[2]int64{e, -e}] = f.rawNeg(v)
		if v == 1 {
			f.reciprocals[e] = e
			f.reciprocals[-e] = -e
		}
		if v == -1 {
			f.reciprocals[e] = -e
			f.reciprocals[-e] = e
		}

		for g := e + 1; g <= (p-1)/2; g++ {
			v := evalAtOne(g-1, e-1)
			f.products[[2]int64{e, g}] = v
			f.products[[2]int64{g, e}] = v
			f.products[[2]int64{-e, g}] = f.rawNeg(v)
			f.products[[2]int64{g, -e}] = f.rawNeg(v)
			f.products[[2]int64{e, -g}] = f.rawNeg(v)
			f.products[[2]int64{-g, e}] = f.rawNeg(v)
			f.products[[2]int64{-e, -g}] = v
			f.products[[2]int64{-g, -e}] = v
			if v == 1 {
				f.reciprocals[e] = g
				f.reciprocals[g] = e
				f.reciprocals[-e] = -g
				f.reciprocals[-g] = -e
			}
			if v == -1 {
				f.reciprocals[-e] = g
				f.reciprocals[g] = -e
				f.reciprocals[-g] = e
				f.reciprocals[e] = -g
			}
		}
	}
}

// rawAdd walks the ordered carrier by index offset, wrapping at the bounds.
func (f *Field) rawAdd(a, b int64) int64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	p := f.characteristic
	if p == 2 {
		// 1 + 1 = 0; all other cases handled above.
		return 0
	}
	if a == -b {
		return 0
	}
	pos := int64(f.index[a]) + b
	bound := p - 1
	switch {
	case pos > bound:
		return f.carrier[pos-bound-1]
	case pos < 0:
		return f.carrier[bound+pos+1]
	default:
		return f.carrier[pos]
	}
}

func (f *Field) rawNeg(n int64) int64 {
	if f.characteristic == 2 {
		return n
	}
	return -n
}

// rawMul resolves products with 0 and the units directly and everything else
// through the table.
func (f *Field) rawMul(a, b int64) int64 {
	switch {
	case a == 0 || b == 0:
		return 0
	case a == 1:
		return b
	case b == 1:
		return a
	case a == -1:
		return f.rawNeg(b)
	case b == -1:
		return f.rawNeg(a)
	}
	v, ok := f.products[[2]int64{a, b}]
	if !ok {
		panic(fmt.Sprintf("primefield: product (%d, %d) missing from the table of %s", a, b, f))
	}
	return v
}

func (f *Field) rawInv(a int64) (int64, error) {
	if a == 0 {
		return 0, algebra.Errorf("division by zero in %s", f)
	}
	if f.characteristic == 2 {
		return 1, nil
	}
	return f.reciprocals[a], nil
}

// Characteristic returns p.
func (f *Field) Characteristic() int64 { return f.characteristic }

// Order returns the number of elements, which equals the characteristic.
func (f *Field) Order() int64 { return f.characteristic }

// Contains reports whether n is a member of the canonical carrier.
func (f *Field) Contains(n int64) bool {
	_, ok := f.index[n]
	return ok
}

// Elements returns every element of the field in carrier order.
func (f *Field) Elements() []Element {
	res := make([]Element, len(f.carrier))
	for i, n := range f.carrier {
		res[i] = Element{field: f, value: n}
	}
	return res
}

func (f *Field) String() string {
	return fmt.Sprintf("PrimeField(%d)", f.characteristic)
}
