// Copyright 2026 The imath authors.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package polyparse builds polynomials from their algebraic expressions, the
// inverse of the String rendering: "1 - X + 3X^2" parsed over a field yields
// the polynomial with those coefficients. Over an extension field,
// parenthesized subexpressions in the root symbol denote single coefficients,
// e.g. "(1+j) + (j)X^2".
package polyparse

import (
	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/finitefield"
	"github.com/imath-go/imath/polynomial"
)

// Option configures the parser.
type Option func(*config)

type config struct {
	indeterminate string
}

// WithIndeterminate sets the indeterminate symbol the expression is written
// in. The default is "X".
func WithIndeterminate(symbol string) Option {
	return func(c *config) {
		c.indeterminate = symbol
	}
}

// Parse evaluates an algebraic expression over the given coefficient ring.
// Malformed expressions and coefficients outside the ring's carrier return a
// DomainError.
func Parse(expression string, ring algebra.Ring, opts ...Option) (*polynomial.Polynomial, error) {
	cfg := config{indeterminate: "X"}
	for _, opt := range opts {
		opt(&cfg)
	}
	tokens, err := lex(expression, cfg.indeterminate, rootSymbolOf(ring))
	if err != nil {
		return nil, err
	}
	return newParser(ring, cfg.indeterminate).run(tokens)
}

func rootSymbolOf(ring algebra.Ring) string {
	if ext, ok := ring.(*finitefield.Field); ok {
		return ext.RootSymbol()
	}
	return ""
}

type state int

const (
	stateStarting state = iota
	stateCoefficient
	stateIndeterminate
	stateExponent
	stateOperator
	stateTerm
	stateComplete
)

// parser is a small shift-reduce machine: it accumulates one pending term
// (sign, coefficient, then degree) and folds it into the result when the term
// ends at an operator or at the end of input.
type parser struct {
	ring          algebra.Ring
	indeterminate string

	result   *polynomial.Polynomial
	negative bool
	coeff    algebra.Element
}

func newParser(ring algebra.Ring, indeterminate string) *parser {
	return &parser{
		ring:          ring,
		indeterminate: indeterminate,
		result:        polynomial.New(ring, nil, indeterminate),
	}
}

func (p *parser) reduce(degree int) {
	term := p.result.Monic(degree).MulConstant(p.coeff)
	if p.negative {
		p.result = p.result.Sub(term)
	} else {
		p.result = p.result.Add(term)
	}
	p.negative = false
	p.coeff = nil
}

func (p *parser) coefficient(tok token) error {
	if tok.typ == tokSubexpr {
		ext, ok := p.ring.(*finitefield.Field)
		if !ok {
			return algebra.Errorf("unexpected subexpression %q at offset %d over %s",
				tok.text, tok.pos, p.ring)
		}
		inner, err := Parse(tok.text, ext.PrimeField(), WithIndeterminate(ext.RootSymbol()))
		if err != nil {
			return err
		}
		e, err := ext.ElementFromPolynomial(inner)
		if err != nil {
			return err
		}
		p.coeff = e
		return nil
	}
	e, err := p.ring.FromInt(tok.value)
	if err != nil {
		return err
	}
	p.coeff = e
	return nil
}

func (p *parser) run(tokens []token) (*polynomial.Polynomial, error) {
	st := stateStarting
	for _, tok := range tokens {
		var err error
		switch {
		case st == stateStarting && tok.typ == tokEOF:
			st = stateComplete

		case (st == stateStarting || st == stateOperator) && (tok.typ == tokInteger || tok.typ == tokSubexpr):
			err = p.coefficient(tok)
			st = stateCoefficient

		case (st == stateStarting || st == stateOperator) && tok.typ == tokIndeterminate:
			p.coeff = p.ring.One()
			st = stateIndeterminate

		case st == stateStarting && tok.typ == tokOperator:
			p.negative = tok.text == "-"
			st = stateOperator

		case st == stateCoefficient && tok.typ == tokIndeterminate:
			st = stateIndeterminate

		case st == stateCoefficient && tok.typ == tokOperator:
			p.reduce(0)
			p.negative = tok.text == "-"
			st = stateOperator

		case st == stateCoefficient && tok.typ == tokEOF:
			p.reduce(0)
			st = stateComplete

		case st == stateIndeterminate && tok.typ == tokExponent:
			st = stateExponent

		case st == stateIndeterminate && tok.typ == tokOperator:
			p.reduce(1)
			p.negative = tok.text == "-"
			st = stateOperator

		case st == stateIndeterminate && tok.typ == tokEOF:
			p.reduce(1)
			st = stateComplete

		case st == stateExponent && tok.typ == tokInteger:
			p.reduce(int(tok.value))
			st = stateTerm

		case st == stateTerm && tok.typ == tokOperator:
			p.negative = tok.text == "-"
			st = stateOperator

		case st == stateTerm && tok.typ == tokEOF:
			st = stateComplete

		default:
			return nil, algebra.Errorf("syntax error at offset %d: unexpected %q", tok.pos, tok.text)
		}
		if err != nil {
			return nil, err
		}
	}
	if st != stateComplete {
		return nil, algebra.Errorf("syntax error: truncated expression")
	}
	return p.result, nil
}
