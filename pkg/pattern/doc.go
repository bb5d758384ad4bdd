// Package pattern synthesizes strings from placeholder templates and a
// restricted regex subset, drawing every placeholder independently from a
// rng.Source.
//
// Templates use three placeholders, everything else passes through:
//
//	#  random digit
//	?  random lowercase letter
//	*  random digit or letter
//	\  escapes the next character, emitting it literally
//
//	pattern.Generate(src, "ORD-####-??")  // "ORD-4821-kq"
//
// Numeric strings suppress leading zeros by default, so a "###" building
// number never renders as "042"; opt back in with AllowLeadingZero where a
// leading zero is legitimate (zip codes, CVV-like codes).
//
// FromRegex supports a deliberately small grammar: literals, character
// classes with ranges ([a-z0-9_]), fixed and bounded repetition ({3},
// {2,5}), and flat alternation groups ((com|net|org)). Anything beyond that
// fails with ErrUnsupportedPattern instead of guessing: a silently
// misread pattern would change the draw sequence and break every
// reproducibility guarantee downstream.
//
//	s, err := pattern.FromRegex(src, `[a-z]{5}[0-9]{2}`)
package pattern
