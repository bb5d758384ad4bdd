package pattern

import (
	"strings"

	"github.com/dmitrymomot/fakedata/pkg/rng"
)

const (
	digits       = "0123456789"
	digitsNoZero = "123456789"
	letters      = "abcdefghijklmnopqrstuvwxyz"
	alphanumeric = letters + digits
)

// Option adjusts template resolution.
type Option func(*config)

type config struct {
	allowLeadingZero bool
}

// AllowLeadingZero permits a generated digit as the first character of the
// output to be zero. Off by default: building numbers, quantities and other
// "number strings" must not render as "042". Zip codes and similar
// fixed-width codes opt in.
func AllowLeadingZero() Option {
	return func(c *config) {
		c.allowLeadingZero = true
	}
}

// Generate resolves a placeholder template: '#' draws a digit, '?' a
// lowercase letter, '*' either, '\' escapes the next character, and all
// other characters pass through unchanged. Each placeholder is drawn
// independently, left to right.
func Generate(src rng.Source, template string, opts ...Option) string {
	return resolve(src, template, true, true, opts)
}

// Numerify resolves only '#' placeholders, leaving '?' and '*' literal.
func Numerify(src rng.Source, template string, opts ...Option) string {
	return resolve(src, template, true, false, opts)
}

// Lettify resolves only '?' placeholders, leaving '#' and '*' literal.
func Lettify(src rng.Source, template string, opts ...Option) string {
	return resolve(src, template, false, true, opts)
}

func resolve(src rng.Source, template string, doDigits, doLetters bool, opts []Option) string {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	b.Grow(len(template))

	escaped := false
	for _, r := range template {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch {
		case r == '\\':
			escaped = true
		case r == '#' && doDigits:
			set := digits
			if !cfg.allowLeadingZero && b.Len() == 0 {
				set = digitsNoZero
			}
			b.WriteByte(set[src.IntN(len(set))])
		case r == '?' && doLetters:
			b.WriteByte(letters[src.IntN(len(letters))])
		case r == '*' && doDigits && doLetters:
			b.WriteByte(alphanumeric[src.IntN(len(alphanumeric))])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
