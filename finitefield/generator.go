package finitefield

import (
	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/nt"
)

// ElementOrder returns the order of e in the multiplicative group, the
// minimal k with e^k = 1.
func (f *Field) ElementOrder(e Element) int64 {
	groupOrder := f.Order() - 1
	if f.HasValidGenerator() {
		exp := f.elementExponents[e.key()]
		return groupOrder / nt.Gcd(exp, groupOrder)
	}
	order := int64(1)
	g := e
	for !f.isOne(g) && order < groupOrder {
		g = f.Mul(g, e).(Element)
		order++
	}
	return order
}

// FindGenerator returns a generator of the multiplicative group. When the
// group order is prime every element except 0, 1 and -1 generates, and the
// companion root 1 + j^(d-1) of the minimal polynomial is returned directly;
// otherwise the group is searched exhaustively for an element of full order.
// With setGenerator, the found generator is validated and installed, enabling
// discrete-log multiplication; installing a generator mutates the field and
// is not safe under concurrent readers.
func (f *Field) FindGenerator(setGenerator bool) (Element, error) {
	var g Element
	switch {
	case f.HasValidGenerator():
		g = *f.generator
	case nt.MaybePrime(f.Order()-1, 3):
		p := f.minPoly.Monic(f.dimension - 1).Add(f.minPoly.Monic(0))
		var err error
		g, err = f.ElementFromPolynomial(p)
		if err != nil {
			return Element{}, err
		}
	default:
		found := false
		for _, e := range f.Elements() {
			if e.IsZero() || f.isOne(e) {
				continue
			}
			if f.ElementOrder(e) == f.Order()-1 {
				g = e
				found = true
				break
			}
		}
		if !found {
			return Element{}, algebra.Exhaustedf(
				"unable to find a generator for %s, please check the field definition", f)
		}
	}
	if setGenerator && !f.HasValidGenerator() {
		if err := f.setGenerator(g); err != nil {
			return Element{}, err
		}
	}
	return g, nil
}
