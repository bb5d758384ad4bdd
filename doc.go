// Package fakedata generates reproducible fake values (names, addresses,
// emails, IPs, passwords) for tests and prototypes. Given a seed, output is
// a pure function of the seed and call order, so a failing test can be
// replayed exactly by pinning the seed it logged.
//
// A Faker is an explicit instance: it owns its PRNG stream and locale and
// shares nothing with other instances, so independent fakers in parallel
// tests never interleave. The domain generators hang off it as views over
// the same stream:
//
//	f := fakedata.NewSeeded(42)
//	f.Person.FullName()     // "James Smith"
//	f.Address.City()        // "North Springfield"
//	f.Internet.Email()      // "james.smith@gmail.com"
//
// Auto-seeded fakers report the seed they chose:
//
//	f := fakedata.MustNew()
//	t.Logf("fakedata seed %d", f.Seed()) // re-run with WithSeed to reproduce
//
// Scoped runs a function under a temporary seed and restores the outer
// stream position afterwards, no matter how the function exits:
//
//	f.Scoped(7, func(f *fakedata.Faker) {
//		f.Person.FullName() // always the same name
//	})
//
// Locales change the datasets behind every generator; "en" and "ru" ship
// built in, and pkg/locale registers more. CI can pin seed and locale
// through the environment with NewFromEnv (FAKEDATA_SEED, FAKEDATA_LOCALE).
//
// The randomness is not cryptographic and the values are not validated
// against live services; a generated URL is just a plausible string.
package fakedata
