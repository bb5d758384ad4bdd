package fakedata

import (
	"sync"

	"github.com/dmitrymomot/fakedata/pkg/address"
	"github.com/dmitrymomot/fakedata/pkg/internet"
	"github.com/dmitrymomot/fakedata/pkg/locale"
	"github.com/dmitrymomot/fakedata/pkg/person"
	"github.com/dmitrymomot/fakedata/pkg/rng"
)

// Faker is one independent generation context: a PRNG stream plus a locale
// dataset, with the domain generators exposed as views over that stream.
// Instances share no state; use one per goroutine, or guard a shared one
// yourself.
type Faker struct {
	gen  *rng.Generator
	data *locale.Dataset

	Person   *person.Generator
	Address  *address.Generator
	Internet *internet.Generator
}

// Option configures a Faker under construction.
type Option func(*config)

type config struct {
	seed       uint64
	hasSeed    bool
	localeCode string
	src        rng.Source
}

// WithSeed pins the PRNG seed, making every draw reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithLocale selects the dataset by locale code. Default is "en".
func WithLocale(code string) Option {
	return func(c *config) {
		if code != "" {
			c.localeCode = code
		}
	}
}

// WithSource swaps in a custom rng.Source implementation. The source is
// seeded by the constructor like the default one.
func WithSource(src rng.Source) Option {
	return func(c *config) {
		c.src = src
	}
}

// New builds a Faker. Without WithSeed it self-seeds from process entropy;
// read Seed afterwards to be able to reproduce the run. Fails only on an
// unknown locale code.
func New(opts ...Option) (*Faker, error) {
	cfg := &config{localeCode: "en"}
	for _, opt := range opts {
		opt(cfg)
	}

	data, err := locale.Get(cfg.localeCode)
	if err != nil {
		return nil, err
	}

	var genOpts []rng.Option
	if cfg.src != nil {
		genOpts = append(genOpts, rng.WithSource(cfg.src))
	}
	var gen *rng.Generator
	if cfg.hasSeed {
		gen = rng.NewSeeded(cfg.seed, genOpts...)
	} else {
		gen = rng.New(genOpts...)
	}

	return build(gen, data), nil
}

// MustNew is New for initialization paths where an unknown locale is a
// programming error; it panics instead of returning one.
func MustNew(opts ...Option) *Faker {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// NewSeeded returns an English-locale Faker with an explicit seed.
func NewSeeded(seed uint64) *Faker {
	return MustNew(WithSeed(seed))
}

func build(gen *rng.Generator, data *locale.Dataset) *Faker {
	src := gen.Source()
	return &Faker{
		gen:      gen,
		data:     data,
		Person:   person.New(src, data),
		Address:  address.New(src, data),
		Internet: internet.New(src, data),
	}
}

// Seed returns the seed the current stream started from, without touching
// the stream.
func (f *Faker) Seed() uint64 { return f.gen.Seed() }

// SetSeed restarts the stream from seed and returns it.
func (f *Faker) SetSeed(seed uint64) uint64 { return f.gen.SetSeed(seed) }

// Reseed restarts the stream from fresh process entropy and returns the new
// seed for logging.
func (f *Faker) Reseed() uint64 { return f.gen.Reseed() }

// Locale returns the active locale code.
func (f *Faker) Locale() string { return f.data.Code }

// Generator exposes the underlying lifecycle manager for snapshot and
// restore control beyond what Scoped offers.
func (f *Faker) Generator() *rng.Generator { return f.gen }

// Scoped runs fn with the stream temporarily re-seeded, restoring the
// previous position on every exit path, panics included. Draws inside fn
// never shift the draws that follow the scope. Scopes nest.
func (f *Faker) Scoped(seed uint64, fn func(f *Faker)) {
	f.gen.Scoped(seed, func(rng.Source) {
		fn(f)
	})
}

var (
	defaultOnce  sync.Once
	defaultFaker *Faker
)

// Default returns a lazily built, auto-seeded, English-locale instance for
// quick scripting. Library and test code should construct its own Faker:
// the default is process-shared and not synchronized.
func Default() *Faker {
	defaultOnce.Do(func() {
		defaultFaker = MustNew()
	})
	return defaultFaker
}
