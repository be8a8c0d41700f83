package primefield

import (
	"fmt"
	"strconv"

	"github.com/imath-go/imath/algebra"
)

// Element is a single prime field element: a signed residue bound to its
// field.
type Element struct {
	field *Field
	value int64
}

// Value returns the canonical signed residue.
func (e Element) Value() int64 { return e.value }

// Field returns the owning field.
func (e Element) Field() *Field { return e.field }

// IsZero reports whether e is the additive neutral.
func (e Element) IsZero() bool { return e.value == 0 }

// IsOne reports whether e is the multiplicative neutral.
func (e Element) IsOne() bool { return e.value == 1 }

func (e Element) String() string { return strconv.FormatInt(e.value, 10) }

// asElement checks that a foreign algebra.Element belongs to this field.
// A mismatch is a programmer error and panics.
func (f *Field) asElement(a algebra.Element) Element {
	e, ok := a.(Element)
	if !ok {
		panic(fmt.Sprintf("primefield: %T is not an element of %s", a, f))
	}
	if e.field.characteristic != f.characteristic {
		panic(fmt.Sprintf("primefield: element of %s used in %s", e.field, f))
	}
	return e
}
