package finitefield

import (
	"sync"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/primefield"
)

// extensionParams are the literal construction parameters of a standard
// extension field.
type extensionParams struct {
	characteristic int64
	dimension      int
	minPoly        []int64 // dense coefficients, lowest degree first
	generator      []int64
}

var standardPrimes = map[int64]struct{}{
	2: {}, 3: {}, 5: {}, 7: {}, 11: {}, 13: {}, 17: {}, 19: {}, 23: {},
}

var standardExtensions = map[int64]extensionParams{
	4:  {characteristic: 2, dimension: 2, minPoly: []int64{1, 1, 1}, generator: []int64{0, 1}},
	8:  {characteristic: 2, dimension: 3, minPoly: []int64{1, 1, 0, 1}, generator: []int64{0, 1, 0}},
	9:  {characteristic: 3, dimension: 2, minPoly: []int64{1, 0, 1}, generator: []int64{1, -1}},
	16: {characteristic: 2, dimension: 4, minPoly: []int64{1, 1, 0, 0, 1}, generator: []int64{0, 1, 0, 0}},
	25: {characteristic: 5, dimension: 2, minPoly: []int64{2, 0, 1}, generator: []int64{1, 1}},
	27: {characteristic: 3, dimension: 3, minPoly: []int64{-1, -1, 0, 1}, generator: []int64{-1, -1, -1}},
}

var (
	registryMu sync.Mutex
	registry   = make(map[int64]algebra.Field)
)

// Lookup returns the standard field of the given order, constructing it from
// its literal parameters on first use and caching it. Prime orders yield a
// prime field, prime powers a finite extension with its usual minimal
// polynomial and generator. Unknown orders are a DomainError.
func Lookup(order int64) (algebra.Field, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if f, ok := registry[order]; ok {
		return f, nil
	}
	f, err := buildStandard(order)
	if err != nil {
		return nil, err
	}
	registry[order] = f
	return f, nil
}

func buildStandard(order int64) (algebra.Field, error) {
	if _, ok := standardPrimes[order]; ok {
		return primefield.New(order)
	}
	params, ok := standardExtensions[order]
	if !ok {
		return nil, algebra.Errorf("no pre-defined finite field of order %d", order)
	}
	pf, err := primefield.New(params.characteristic)
	if err != nil {
		return nil, err
	}
	minPoly, err := pf.PolynomialFromInts(params.minPoly...)
	if err != nil {
		return nil, err
	}
	return New(params.dimension, minPoly, WithGenerator(params.generator...))
}
