// Package address generates postal and geographic values from a locale
// dataset: streets, cities, building numbers, zip codes, phone numbers and
// coordinates.
//
// Building numbers never start with a zero; zip codes may, since they are
// fixed-width codes rather than numbers ("02134" is a real zip). Both rules
// come from the template policy in pkg/pattern. Coordinates are sampled at
// four decimal places, about 11 m of precision at the equator: enough for
// plausible map pins without implying survey-grade accuracy.
//
//	gen := address.New(rng.NewSeeded(42).Source(), locale.EN)
//	gen.Street()     // "417 Walker Avenue"
//	gen.City()       // "North Springfield"
//	gen.Latitude()   // 51.1679
package address
