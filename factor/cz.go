package factor

import (
	"time"

	"github.com/imath-go/imath/algebra"
	"github.com/imath-go/imath/logger"
	"github.com/imath-go/imath/polynomial"
)

// CantorZassenhaus factors the polynomial over its finite base field into
// irreducible monic factors with multiplicities, together with the scalar
// the monic product must be multiplied by to recover the input. The pipeline
// is square-free decomposition, then distinct-degree grouping per square-free
// part, then randomized equal-degree splitting of each group.
func (fz *Factorization) CantorZassenhaus() ([]Factor, algebra.Element, error) {
	if fz.ring.Characteristic() == 0 {
		return nil, nil, algebra.Errorf("cannot factor polynomials over %s", fz.ring)
	}
	if fz.poly.IsNull() {
		return nil, nil, algebra.Errorf("cannot factor the null polynomial")
	}
	scale := fz.poly.Leading()
	if fz.poly.IsConstant() {
		return nil, scale, nil
	}
	f, err := fz.poly.MakeMonic()
	if err != nil {
		return nil, nil, err
	}
	start := time.Now()

	sqf, repeated, err := fz.sub(f).SquareFree()
	if err != nil {
		return nil, nil, err
	}
	var work []Factor
	if sqf.Degree() > 0 {
		work = append(work, Factor{Value: sqf, Multiplicity: 1})
	}
	work = append(work, repeated...)

	var factors []Factor
	for len(work) > 0 {
		mfct := work[len(work)-1]
		work = work[:len(work)-1]

		if mfct.MaxDegree == 0 {
			irr, err := mfct.IsIrreducible()
			if err != nil {
				return nil, nil, err
			}
			if irr {
				factors = append(factors, Factor{
					Value:        mfct.Value,
					Multiplicity: mfct.Multiplicity,
					MaxDegree:    mfct.Value.Degree(),
				})
				continue
			}
			groups, err := fz.sub(mfct.Value).DistinctDegree()
			if err != nil {
				return nil, nil, err
			}
			for _, g := range groups {
				work = append(work, Factor{
					Value:        g.Value,
					Multiplicity: mfct.Multiplicity,
					MaxDegree:    g.MaxDegree,
				})
			}
			continue
		}

		if mfct.Value.Degree() == mfct.MaxDegree {
			factors = append(factors, mfct)
			continue
		}
		d := mfct.MaxDegree
		split, err := fz.sub(mfct.Value).EqualDegree(mfct.Value.Degree()/d, d)
		if err != nil {
			return nil, nil, err
		}
		for _, s := range split {
			factors = append(factors, Factor{
				Value:        s.Value,
				Multiplicity: mfct.Multiplicity,
				MaxDegree:    d,
			})
		}
	}
	log := logger.With("factor")
	log.Debug().
		Str("poly", fz.poly.String()).
		Int("factors", len(factors)).
		Dur("took", time.Since(start)).
		Msg("factorization complete")
	return factors, scale, nil
}

// sub binds a sub-problem to the same ring and retry budget.
func (fz *Factorization) sub(p *polynomial.Polynomial) *Factorization {
	return &Factorization{ring: fz.ring, poly: p, retryBudget: fz.retryBudget}
}
