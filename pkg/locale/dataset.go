package locale

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/fakedata/pkg/sample"
)

// Dataset holds every static table a locale contributes to generation.
// Registered datasets are shared read-only between all generators; never
// mutate one after registration.
type Dataset struct {
	// Code identifies the locale, e.g. "en".
	Code string

	// FirstNames carry selection weights so common names dominate the way
	// they do in real populations.
	FirstNames []sample.Weighted[string]
	LastNames  []string

	// City names compose as prefix + base + suffix.
	CityPrefixes []string
	CityBases    []string
	CitySuffixes []string

	StreetSuffixes []string

	// Formatting templates in pkg/pattern placeholder syntax.
	BuildingNumberFormats []string
	ZipFormats            []string
	PhoneFormats          []string

	// Internet tables.
	TLDs             []string
	FreeEmailDomains []string

	// Words feed domain names, URL slugs and placeholder text. They may be
	// non-ASCII; consumers transliterate where an identifier is needed.
	Words []string
}

// Validate reports the first missing table. Every table a generator picks
// from must be non-empty so selection errors cannot occur at generation
// time.
func (d *Dataset) Validate() error {
	if d.Code == "" {
		return fmt.Errorf("%w: empty code", ErrIncompleteDataset)
	}
	tables := []struct {
		name  string
		empty bool
	}{
		{"first names", len(d.FirstNames) == 0},
		{"last names", len(d.LastNames) == 0},
		{"city prefixes", len(d.CityPrefixes) == 0},
		{"city bases", len(d.CityBases) == 0},
		{"city suffixes", len(d.CitySuffixes) == 0},
		{"street suffixes", len(d.StreetSuffixes) == 0},
		{"building number formats", len(d.BuildingNumberFormats) == 0},
		{"zip formats", len(d.ZipFormats) == 0},
		{"phone formats", len(d.PhoneFormats) == 0},
		{"TLDs", len(d.TLDs) == 0},
		{"free email domains", len(d.FreeEmailDomains) == 0},
		{"words", len(d.Words) == 0},
	}
	for _, tbl := range tables {
		if tbl.empty {
			return fmt.Errorf("%w: %q is missing %s", ErrIncompleteDataset, d.Code, tbl.name)
		}
	}
	for i, fn := range d.FirstNames {
		if !(fn.Weight > 0) {
			return fmt.Errorf("%w: %q first name %d has weight %v", ErrIncompleteDataset, d.Code, i, fn.Weight)
		}
	}
	return nil
}

var registry = struct {
	mu sync.RWMutex
	m  map[string]*Dataset
}{m: make(map[string]*Dataset)}

// Register validates and publishes a dataset. Registering an already-known
// code fails with ErrAlreadyRegistered; datasets are immutable once in.
func Register(d *Dataset) error {
	if err := d.Validate(); err != nil {
		return err
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.m[d.Code]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, d.Code)
	}
	registry.m[d.Code] = d
	return nil
}

// MustRegister is Register for init-time use; it panics on error.
func MustRegister(d *Dataset) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

// Get returns the dataset registered under code.
func Get(code string) (*Dataset, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	d, ok := registry.m[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}
	return d, nil
}

// Codes lists the registered locale codes, unordered.
func Codes() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	codes := make([]string, 0, len(registry.m))
	for code := range registry.m {
		codes = append(codes, code)
	}
	return codes
}
