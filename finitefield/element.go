package finitefield

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/primefield"
)

// Element is a finite field element: the ordered vector of its coordinates in
// the basis {1, j, ..., j^(d-1)}.
type Element struct {
	field  *Field
	vector []primefield.Element
}

// Field returns the owning field.
func (e Element) Field() *Field { return e.field }

// Coordinate returns the i-th coordinate in the basis.
func (e Element) Coordinate(i int) primefield.Element { return e.vector[i] }

// Coordinates returns a copy of the coordinate vector.
func (e Element) Coordinates() []primefield.Element {
	res := make([]primefield.Element, len(e.vector))
	copy(res, e.vector)
	return res
}

// IsZero reports whether e is the additive neutral.
func (e Element) IsZero() bool {
	for _, c := range e.vector {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// IsScalar reports whether every coordinate beyond the first is zero, i.e.
// whether e lies in the embedded prime field.
func (e Element) IsScalar() bool {
	for _, c := range e.vector[1:] {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// key is the map key used by the discrete-log tables.
func (e Element) key() string {
	parts := make([]string, len(e.vector))
	for i, c := range e.vector {
		parts[i] = strconv.FormatInt(c.Value(), 10)
	}
	return strings.Join(parts, ",")
}

// String renders the element as a polynomial in the root symbol, e.g. 1 + j.
func (e Element) String() string {
	return e.field.PolynomialFromElement(e).String()
}

// ShortString is the compact rendering used when the element appears as a
// polynomial coefficient: scalars print as their prime field value, anything
// else as the parenthesized polynomial with spaces stripped, e.g. (1+j).
func (e Element) ShortString() string {
	if e.IsScalar() {
		return e.vector[0].String()
	}
	return "(" + strings.ReplaceAll(e.String(), " ", "") + ")"
}

// asElement checks that a foreign algebra.Element belongs to this field.
// A mismatch is a programmer error and panics.
func (f *Field) asElement(a algebra.Element) Element {
	e, ok := a.(Element)
	if !ok {
		panic(fmt.Sprintf("finitefield: %T is not an element of %s", a, f))
	}
	if e.field.Characteristic() != f.Characteristic() || e.field.dimension != f.dimension {
		panic(fmt.Sprintf("finitefield: element of %s used in %s", e.field, f))
	}
	return e
}

func (f *Field) isOne(e Element) bool {
	if !e.vector[0].IsOne() {
		return false
	}
	for _, c := range e.vector[1:] {
		if !c.IsZero() {
			return false
		}
	}
	return true
}
