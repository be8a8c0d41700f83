package primefield

import "math/rand"

type config struct {
	rnd        *rand.Rand
	maxRetries int
}

// Option configures a prime field at construction time.
type Option func(*config) error

// WithRand injects the randomness source used by RandomElement,
// RandomPolynomial and GenerateIrreducible. Tests inject a seeded source for
// determinism; the default source is time-seeded.
func WithRand(rnd *rand.Rand) Option {
	return func(c *config) error {
		c.rnd = rnd
		return nil
	}
}

// WithMaxRetries tunes the retry budget of GenerateIrreducible. The budget is
// a heuristic policy constant, not a proven-sufficient bound.
func WithMaxRetries(n int) Option {
	return func(c *config) error {
		c.maxRetries = n
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{maxRetries: defaultMaxRetries}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
