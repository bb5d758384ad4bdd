package translit

import (
	"hash/fnv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, removes combining marks, and recomposes, so
// "é" becomes "e" and "ö" becomes "o".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Transliterate maps s to its ASCII approximation. ASCII runes pass through,
// table-mapped scripts are romanized with case preserved, accented Latin
// loses its combining marks, and anything still outside ASCII is dropped.
// The result can be empty; pair with EnsureNonEmpty when a usable identifier
// is required.
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r < 128:
			b.WriteRune(r)
		case writeMapped(&b, r):
		default:
			writeDecomposed(&b, r)
		}
	}
	return b.String()
}

// writeMapped writes the table romanization of r, restoring upper case on
// the first letter for uppercase input ('Ж' -> "Zh"). Reports whether r had
// a table entry.
func writeMapped(b *strings.Builder, r rune) bool {
	if rep, ok := table[r]; ok {
		b.WriteString(rep)
		return true
	}

	lower := unicode.ToLower(r)
	if lower == r {
		return false
	}
	rep, ok := table[lower]
	if !ok {
		return false
	}
	if rep != "" {
		b.WriteString(strings.ToUpper(rep[:1]))
		b.WriteString(rep[1:])
	}
	return true
}

// writeDecomposed strips combining marks from a single rune and keeps the
// result only when it became plain ASCII.
func writeDecomposed(b *strings.Builder, r rune) {
	out, _, err := transform.String(stripMarks, string(r))
	if err != nil {
		return
	}
	for _, o := range out {
		if o >= 128 {
			return
		}
	}
	b.WriteString(out)
}

// DefaultFallbackLength is the token length EnsureNonEmpty produces.
const DefaultFallbackLength = 7

const fallbackAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Fallback derives a fixed-length lowercase base36 token from the input
// bytes via FNV-1a. It is a pure function of original, independent of any
// PRNG state, so identical inputs produce identical tokens within a run
// and across runs. length values outside (0, 12] fall back to
// DefaultFallbackLength; 12 base36 digits exhaust the 64-bit hash.
func Fallback(original string, length int) string {
	if length <= 0 || length > 12 {
		length = DefaultFallbackLength
	}

	h := fnv.New64a()
	h.Write([]byte(original))
	v := h.Sum64()

	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		buf[i] = fallbackAlphabet[v%36]
		v /= 36
	}
	return string(buf)
}

// EnsureNonEmpty returns candidate unless it is empty or whitespace-only,
// in which case it returns the deterministic fallback token for original.
// Use it on transliteration output that must become an identifier:
//
//	name := translit.EnsureNonEmpty(translit.Transliterate(input), input)
func EnsureNonEmpty(candidate, original string) string {
	if strings.TrimSpace(candidate) != "" {
		return candidate
	}
	return Fallback(original, DefaultFallbackLength)
}
