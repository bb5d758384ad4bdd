package pattern_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakedata/pkg/pattern"
)

func TestFromRegex(t *testing.T) {
	// Every supported pattern is also a valid Go regexp, so each output can
	// be verified against the pattern it was generated from.
	tests := []struct {
		name string
		expr string
	}{
		{"literals", `abc`},
		{"class", `[a-z]`},
		{"class with digits", `[a-f0-9]`},
		{"class with literal members", `[xyz_]`},
		{"fixed repetition", `[a-z]{8}`},
		{"bounded repetition", `[0-9]{2,5}`},
		{"repeated literal", `x{3}`},
		{"alternation", `(com|net|org)`},
		{"repeated group", `(ab|cd){2}`},
		{"escaped metacharacter", `\.\[`},
		{"composite", `[a-z]{3,8}\.(com|io)`},
		{"trailing dash is literal", `[a-]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := regexp.MustCompile(`^(?:` + tt.expr + `)$`)
			s := src(42)
			for i := 0; i < 200; i++ {
				got, err := pattern.FromRegex(s, tt.expr)
				require.NoError(t, err)
				require.Regexp(t, re, got, "output %q does not match its own pattern %q", got, tt.expr)
			}
		})
	}
}

func TestFromRegexReproducible(t *testing.T) {
	const expr = `[a-z]{3,10}-[0-9]{4}\.(com|net|org)`

	a, err := pattern.FromRegex(src(42), expr)
	require.NoError(t, err)
	b, err := pattern.FromRegex(src(42), expr)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestFromRegexUnsupported(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"dot", `a.b`},
		{"star", `a*`},
		{"plus", `a+`},
		{"optional", `a?`},
		{"anchor start", `^abc`},
		{"anchor end", `abc$`},
		{"top-level alternation", `a|b`},
		{"negated class", `[^a-z]`},
		{"unclosed class", `[a-z`},
		{"empty class", `[]`},
		{"class range out of order", `[z-a]`},
		{"unclosed group", `(ab`},
		{"nested group", `((a|b)|c)`},
		{"non-capturing group", `(?:ab)`},
		{"class inside group", `([a-z]|b)`},
		{"stray close paren", `ab)`},
		{"stray open brace", `{3}`},
		{"open-ended quantifier", `a{3,}`},
		{"malformed quantifier", `a{x}`},
		{"unclosed quantifier", `a{3`},
		{"quantifier bounds out of order", `a{5,2}`},
		{"repetition over limit", `a{100000}`},
		{"dangling escape", `abc\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pattern.FromRegex(src(1), tt.expr)
			assert.ErrorIs(t, err, pattern.ErrUnsupportedPattern, "pattern %q must be rejected", tt.expr)
		})
	}
}

func TestFromRegexBoundedRepetitionRange(t *testing.T) {
	s := src(42)
	lengths := map[int]bool{}
	for i := 0; i < 2000; i++ {
		got, err := pattern.FromRegex(s, `[a-z]{2,5}`)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), 2)
		require.LessOrEqual(t, len(got), 5)
		lengths[len(got)] = true
	}
	assert.Len(t, lengths, 4, "all lengths in [2,5] should occur")
}

func TestFromRegexEmptyPattern(t *testing.T) {
	got, err := pattern.FromRegex(src(1), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
