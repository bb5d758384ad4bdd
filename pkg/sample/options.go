package sample

// Option adjusts a single sampling call.
type Option func(*config)

type config struct {
	multipleOf      int
	precision       int
	hasPrecision    bool
	withReplacement bool
}

// MultipleOf constrains Int to values divisible by n. n must be positive.
func MultipleOf(n int) Option {
	return func(c *config) {
		c.multipleOf = n
	}
}

// Precision constrains Float to values with at most digits decimal places.
// The sampler itself has no default precision; callers that need one (geo
// coordinates use 4) pass it explicitly.
func Precision(digits int) Option {
	return func(c *config) {
		c.precision = digits
		c.hasPrecision = true
	}
}

// WithReplacement lets PickSet select the same element more than once.
func WithReplacement() Option {
	return func(c *config) {
		c.withReplacement = true
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
