package finitefield

import "math/rand"

type config struct {
	generator  []int64
	rootSymbol string
	rnd        *rand.Rand
	maxRetries int
}

// Option configures a finite field at construction time.
type Option func(*config) error

// WithGenerator declares a generator of the multiplicative group by its
// coordinates in the basis. The claim is validated eagerly by repeated
// self-multiplication; an order mismatch fails the construction. A validated
// generator switches multiplication to the discrete-log tables.
func WithGenerator(coords ...int64) Option {
	return func(c *config) error {
		gen := make([]int64, len(coords))
		copy(gen, coords)
		c.generator = gen
		return nil
	}
}

// WithRootSymbol sets the symbol used to render the adjoined root, j by
// default.
func WithRootSymbol(symbol string) Option {
	return func(c *config) error {
		c.rootSymbol = symbol
		return nil
	}
}

// WithRand injects the randomness source used by RandomElement,
// RandomPolynomial and GenerateIrreducible.
func WithRand(rnd *rand.Rand) Option {
	return func(c *config) error {
		c.rnd = rnd
		return nil
	}
}

// WithMaxRetries tunes the retry budget of GenerateIrreducible.
func WithMaxRetries(n int) Option {
	return func(c *config) error {
		c.maxRetries = n
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{rootSymbol: "j", maxRetries: defaultMaxRetries}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
