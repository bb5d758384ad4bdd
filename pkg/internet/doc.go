// Package internet generates network and web artifacts: emails, domains,
// IPs, MAC addresses, URLs, passwords and UUIDs. Everything is a formatted
// string built from PRNG draws; nothing here performs I/O or contacts a
// live service.
//
// Identifier outputs (email local parts, domain names, slugs) run through
// transliteration, so a Russian dataset still yields ASCII artifacts:
//
//	gen := internet.New(rng.NewSeeded(42).Source(), locale.RU)
//	gen.Email()       // "sergey.volkov@mail.ru"
//	gen.DomainName()  // "reka.ru"
//
// UUIDs are RFC 4122 version 4 with all random bytes drawn from the Source,
// which keeps them reproducible under a fixed seed. Crypto-random UUIDs
// cannot do that, which is exactly the point in test fixtures.
package internet
