// Package locale supplies the static datasets the domain generators read:
// name tables with selection weights, street and city fragments, formatting
// templates for building numbers and zip codes, TLDs and mail providers.
//
// Datasets are plain values registered once and treated as immutable from
// then on; generators only ever read them. Two locales ship built in, "en"
// and "ru" (the latter exercises the Cyrillic transliteration path in
// username and domain generation). Additional locales register at startup:
//
//	locale.MustRegister(&locale.Dataset{Code: "de", ...})
//	ds, err := locale.Get("de")
//
// A Dataset must pass Validate before registration: every table a
// generator may pick from has to be non-empty, which is what lets the
// generators treat empty-selection errors as impossible.
package locale
