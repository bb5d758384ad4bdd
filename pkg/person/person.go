package person

import (
	"strings"

	"github.com/dmitrymomot/fakedata/pkg/locale"
	"github.com/dmitrymomot/fakedata/pkg/pattern"
	"github.com/dmitrymomot/fakedata/pkg/rng"
	"github.com/dmitrymomot/fakedata/pkg/sample"
	"github.com/dmitrymomot/fakedata/pkg/translit"
)

// Generator produces identity values for one locale. It holds the Source
// only by reference; all state lives in the Source itself.
type Generator struct {
	src  rng.Source
	data *locale.Dataset
}

// New returns a generator drawing from src and data. The dataset must have
// passed locale registration; its tables are assumed non-empty.
func New(src rng.Source, data *locale.Dataset) *Generator {
	return &Generator{src: src, data: data}
}

// FirstName returns a first name, biased by the dataset's frequency weights.
func (g *Generator) FirstName() string {
	// Tables are validated non-empty and positively weighted at registration.
	v, _ := sample.PickWeighted(g.src, g.data.FirstNames)
	return v
}

// LastName returns a uniformly chosen last name.
func (g *Generator) LastName() string {
	v, _ := sample.Pick(g.src, g.data.LastNames)
	return v
}

// FullName returns "First Last".
func (g *Generator) FullName() string {
	return g.FirstName() + " " + g.LastName()
}

// Username builds an ASCII login from a transliterated first and last name.
// Formats vary between "first.last", "first_last" and "firstlast##". Name
// parts that transliterate to nothing (CJK, emoji) are replaced by their
// deterministic fallback token, so the result is never empty or non-ASCII.
func (g *Generator) Username() string {
	first := usernamePart(g.FirstName())
	last := usernamePart(g.LastName())

	switch g.src.IntN(3) {
	case 0:
		return first + "." + last
	case 1:
		return first + "_" + last
	default:
		return pattern.Numerify(g.src, first+last+"##", pattern.AllowLeadingZero())
	}
}

// EmailLocalPart returns a username suitable for the left side of an email
// address.
func (g *Generator) EmailLocalPart() string {
	return g.Username()
}

// usernamePart lowercases and transliterates one name component, falling
// back to the stable hash token when nothing survives.
func usernamePart(name string) string {
	part := strings.ToLower(translit.Transliterate(name))
	part = strings.ReplaceAll(part, " ", "")
	part = strings.ReplaceAll(part, "'", "")
	return translit.EnsureNonEmpty(part, name)
}
