package internet

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fakedata/pkg/locale"
	"github.com/dmitrymomot/fakedata/pkg/person"
	"github.com/dmitrymomot/fakedata/pkg/rng"
	"github.com/dmitrymomot/fakedata/pkg/sample"
	"github.com/dmitrymomot/fakedata/pkg/translit"
)

// Generator produces internet artifacts for one locale.
type Generator struct {
	src    rng.Source
	data   *locale.Dataset
	person *person.Generator
}

// New returns a generator drawing from src and data. The dataset must have
// passed locale registration; its tables are assumed non-empty.
func New(src rng.Source, data *locale.Dataset) *Generator {
	return &Generator{src: src, data: data, person: person.New(src, data)}
}

// Email returns a mailbox at one of the dataset's free mail providers. The
// local part is a transliterated person username, always ASCII.
func (g *Generator) Email() string {
	domain, _ := sample.Pick(g.src, g.data.FreeEmailDomains)
	return g.person.EmailLocalPart() + "@" + domain
}

// DomainName returns a registrable-looking domain from a dataset word and
// TLD, e.g. "walnut.io". Non-Latin words transliterate; words with no
// Latin form become their stable fallback token.
func (g *Generator) DomainName() string {
	word, _ := sample.Pick(g.src, g.data.Words)
	tld, _ := sample.Pick(g.src, g.data.TLDs)
	return domainWord(word) + "." + tld
}

// Slug returns two dataset words joined by a hyphen, ASCII-safe.
func (g *Generator) Slug() string {
	a, _ := sample.Pick(g.src, g.data.Words)
	b, _ := sample.Pick(g.src, g.data.Words)
	return domainWord(a) + "-" + domainWord(b)
}

// URL returns an https URL on a generated domain with a slug path.
func (g *Generator) URL() string {
	return "https://" + g.DomainName() + "/" + g.Slug()
}

func domainWord(word string) string {
	w := strings.ToLower(translit.Transliterate(word))
	w = strings.ReplaceAll(w, " ", "")
	return translit.EnsureNonEmpty(w, word)
}

// IPv4 returns a dotted-quad address. The first octet avoids 0 and 255 so
// the result does not read as a network or broadcast address.
func (g *Generator) IPv4() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		1+g.src.IntN(254), g.src.IntN(256), g.src.IntN(256), g.src.IntN(256))
}

// IPv6 returns a full eight-group address, lowercase hex.
func (g *Generator) IPv6() string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", g.src.IntN(1<<16))
	}
	return strings.Join(groups, ":")
}

// MAC returns a colon-separated hardware address.
func (g *Generator) MAC() string {
	parts := make([]string, 6)
	for i := range parts {
		parts[i] = fmt.Sprintf("%02x", g.src.IntN(256))
	}
	return strings.Join(parts, ":")
}

// UUID returns an RFC 4122 version 4 UUID whose random bytes come from the
// Source, so a fixed seed pins the value.
func (g *Generator) UUID() string {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], g.src.Uint64())
	binary.BigEndian.PutUint64(b[8:16], g.src.Uint64())
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return uuid.UUID(b).String()
}

// UserAgent returns a realistic browser user agent string.
func (g *Generator) UserAgent() string {
	ua, _ := sample.Pick(g.src, userAgents)
	return ua
}
