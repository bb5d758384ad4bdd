// Package translit converts arbitrary Unicode input into ASCII-safe
// identifier material, with a deterministic fallback for input that has no
// reasonable Latin form.
//
// Transliterate resolves each rune in three steps: ASCII passes through, a
// static table maps scripts without Unicode decompositions (Cyrillic, a few
// Latin specials like ß and æ), and accented Latin is decomposed with
// x/text normalization so the combining marks can be stripped. Runes that
// survive none of the steps are dropped:
//
//	translit.Transliterate("Hélène")  // "Helene"
//	translit.Transliterate("Жанна")   // "Zhanna"
//	translit.Transliterate("大羽")     // ""
//
// When transliteration empties the input entirely (CJK, emoji), EnsureNonEmpty
// substitutes a short hash token in lowercase base36. The token is a pure
// function of the original input bytes, with no PRNG involved, so the same
// unsupported input yields the same token in every run, which is what lets
// snapshot tests pin exact usernames for CJK authors:
//
//	translit.EnsureNonEmpty("", "大羽")  // e.g. "m5peq2b", stable forever
//
// The mapping table is package data: loaded once, never mutated.
package translit
