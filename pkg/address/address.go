package address

import (
	"github.com/dmitrymomot/fakedata/pkg/locale"
	"github.com/dmitrymomot/fakedata/pkg/pattern"
	"github.com/dmitrymomot/fakedata/pkg/rng"
	"github.com/dmitrymomot/fakedata/pkg/sample"
)

// geoPrecision is the decimal-place policy for coordinates. It belongs to
// this call site, not to the sampler: other consumers of sample.Float pick
// their own precision.
const geoPrecision = 4

// Generator produces postal and geographic values for one locale.
type Generator struct {
	src  rng.Source
	data *locale.Dataset
}

// New returns a generator drawing from src and data. The dataset must have
// passed locale registration; its tables are assumed non-empty.
func New(src rng.Source, data *locale.Dataset) *Generator {
	return &Generator{src: src, data: data}
}

// BuildingNumber returns a house number. The leading digit is never zero.
func (g *Generator) BuildingNumber() string {
	format, _ := sample.Pick(g.src, g.data.BuildingNumberFormats)
	return pattern.Numerify(g.src, format)
}

// StreetName returns a street without a building number, e.g.
// "Walker Avenue".
func (g *Generator) StreetName() string {
	name, _ := sample.Pick(g.src, g.data.LastNames)
	suffix, _ := sample.Pick(g.src, g.data.StreetSuffixes)
	return name + " " + suffix
}

// Street returns a full street line, e.g. "417 Walker Avenue".
func (g *Generator) Street() string {
	return g.BuildingNumber() + " " + g.StreetName()
}

// City composes a city name from the dataset fragments; half the time a
// directional prefix is attached.
func (g *Generator) City() string {
	base, _ := sample.Pick(g.src, g.data.CityBases)
	suffix, _ := sample.Pick(g.src, g.data.CitySuffixes)
	city := base + suffix
	if g.src.IntN(2) == 0 {
		prefix, _ := sample.Pick(g.src, g.data.CityPrefixes)
		city = prefix + " " + city
	}
	return city
}

// ZipCode returns a postal code in one of the dataset formats. Zip codes
// are fixed-width codes, so leading zeros are legitimate.
func (g *Generator) ZipCode() string {
	format, _ := sample.Pick(g.src, g.data.ZipFormats)
	return pattern.Numerify(g.src, format, pattern.AllowLeadingZero())
}

// PhoneNumber returns a phone number in one of the dataset formats.
func (g *Generator) PhoneNumber() string {
	format, _ := sample.Pick(g.src, g.data.PhoneFormats)
	return pattern.Numerify(g.src, format)
}

// Latitude returns a value in [-90, 90] at four decimal places.
func (g *Generator) Latitude() float64 {
	v, _ := sample.Float(g.src, sample.Range[float64]{Min: -90, Max: 90}, sample.Precision(geoPrecision))
	return v
}

// Longitude returns a value in [-180, 180] at four decimal places.
func (g *Generator) Longitude() float64 {
	v, _ := sample.Float(g.src, sample.Range[float64]{Min: -180, Max: 180}, sample.Precision(geoPrecision))
	return v
}

// Coordinates returns a latitude/longitude pair.
func (g *Generator) Coordinates() (lat, lon float64) {
	return g.Latitude(), g.Longitude()
}

// Full returns a complete address line: street, city, zip.
func (g *Generator) Full() string {
	return g.Street() + ", " + g.City() + ", " + g.ZipCode()
}
