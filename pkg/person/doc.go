// Package person generates human identity values (names, usernames, email
// local parts) from a locale dataset and a rng.Source.
//
// First names are drawn with the dataset's frequency weights, so common
// names show up the way they do in real data. Username generation is where
// the transliteration pipeline earns its keep: Cyrillic names romanize
// ("Жанна Иванова" -> "zhanna.ivanova") and names with no Latin form at all
// degrade to a stable hash token instead of an empty string.
//
//	gen := person.New(rng.NewSeeded(42).Source(), locale.EN)
//	gen.FullName()  // "James Smith"
//	gen.Username()  // "james.smith"
package person
