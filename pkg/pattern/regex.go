package pattern

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/fakedata/pkg/rng"
)

// maxRepeat bounds a single quantifier so a typo cannot request gigabytes.
const maxRepeat = 1000

type nodeKind int

const (
	nodeLiteral nodeKind = iota
	nodeClass
	nodeGroup
)

// node is one generation step: a literal rune, a character class, or a flat
// alternation group, with an inclusive repetition range.
type node struct {
	kind     nodeKind
	lit      rune
	set      []rune
	alts     []string
	min, max int
}

// FromRegex synthesizes a string matching a restricted regex subset:
// literals, character classes with ranges, {n} / {n,m} repetition, and flat
// (a|b|c) alternation groups. Constructs outside the subset fail with
// ErrUnsupportedPattern; nothing is ever guessed at, since a misread
// pattern would silently change the draw sequence.
func FromRegex(src rng.Source, expr string) (string, error) {
	nodes, err := parseRegex(expr)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range nodes {
		reps := n.min
		if n.max > n.min {
			reps += src.IntN(n.max - n.min + 1)
		}
		for i := 0; i < reps; i++ {
			switch n.kind {
			case nodeLiteral:
				b.WriteRune(n.lit)
			case nodeClass:
				b.WriteRune(n.set[src.IntN(len(n.set))])
			case nodeGroup:
				b.WriteString(n.alts[src.IntN(len(n.alts))])
			}
		}
	}
	return b.String(), nil
}

func unsupportedf(pos int, format string, args ...any) error {
	return fmt.Errorf("%w: %s at position %d", ErrUnsupportedPattern, fmt.Sprintf(format, args...), pos)
}

func parseRegex(expr string) ([]node, error) {
	runes := []rune(expr)
	var nodes []node

	for i := 0; i < len(runes); {
		r := runes[i]
		var n node

		switch r {
		case '[':
			set, next, err := parseClass(runes, i)
			if err != nil {
				return nil, err
			}
			n = node{kind: nodeClass, set: set}
			i = next
		case '(':
			alts, next, err := parseGroup(runes, i)
			if err != nil {
				return nil, err
			}
			n = node{kind: nodeGroup, alts: alts}
			i = next
		case '\\':
			if i+1 >= len(runes) {
				return nil, unsupportedf(i, "dangling escape")
			}
			n = node{kind: nodeLiteral, lit: runes[i+1]}
			i += 2
		case '.', '*', '+', '?', '^', '$', '|', ')', '{', '}', ']':
			return nil, unsupportedf(i, "%q", string(r))
		default:
			n = node{kind: nodeLiteral, lit: r}
			i++
		}

		min, max, next, err := parseQuantifier(runes, i)
		if err != nil {
			return nil, err
		}
		n.min, n.max = min, max
		i = next

		nodes = append(nodes, n)
	}
	return nodes, nil
}

// parseClass parses [...] starting at the opening bracket; returns the
// expanded rune set and the index past the closing bracket.
func parseClass(runes []rune, start int) ([]rune, int, error) {
	i := start + 1
	if i < len(runes) && runes[i] == '^' {
		return nil, 0, unsupportedf(i, "negated class")
	}

	var set []rune
	for i < len(runes) && runes[i] != ']' {
		lo := runes[i]
		if lo == '\\' {
			if i+1 >= len(runes) {
				return nil, 0, unsupportedf(i, "dangling escape in class")
			}
			lo = runes[i+1]
			i++
		}
		i++

		// Range only when '-' sits between two members; a trailing '-' is literal.
		if i+1 < len(runes) && runes[i] == '-' && runes[i+1] != ']' {
			hi := runes[i+1]
			if hi < lo {
				return nil, 0, unsupportedf(i, "class range %q-%q out of order", string(lo), string(hi))
			}
			for r := lo; r <= hi; r++ {
				set = append(set, r)
			}
			i += 2
			continue
		}
		set = append(set, lo)
	}

	if i >= len(runes) {
		return nil, 0, unsupportedf(start, "unclosed class")
	}
	if len(set) == 0 {
		return nil, 0, unsupportedf(start, "empty class")
	}
	return set, i + 1, nil
}

// parseGroup parses (a|b|c) starting at the opening paren; alternatives are
// literal strings, nesting is outside the subset.
func parseGroup(runes []rune, start int) ([]string, int, error) {
	i := start + 1
	if i < len(runes) && runes[i] == '?' {
		return nil, 0, unsupportedf(i, "non-capturing or lookaround group")
	}

	var alts []string
	var cur strings.Builder
	for i < len(runes) && runes[i] != ')' {
		switch runes[i] {
		case '(':
			return nil, 0, unsupportedf(i, "nested group")
		case '[', '{', '*', '+', '^', '$', '.':
			return nil, 0, unsupportedf(i, "%q inside group", string(runes[i]))
		case '|':
			alts = append(alts, cur.String())
			cur.Reset()
			i++
		case '\\':
			if i+1 >= len(runes) {
				return nil, 0, unsupportedf(i, "dangling escape in group")
			}
			cur.WriteRune(runes[i+1])
			i += 2
		default:
			cur.WriteRune(runes[i])
			i++
		}
	}

	if i >= len(runes) {
		return nil, 0, unsupportedf(start, "unclosed group")
	}
	alts = append(alts, cur.String())
	return alts, i + 1, nil
}

// parseQuantifier parses an optional {n} or {n,m} following an atom.
// Without one the atom repeats exactly once.
func parseQuantifier(runes []rune, start int) (min, max, next int, err error) {
	if start >= len(runes) || runes[start] != '{' {
		return 1, 1, start, nil
	}

	i := start + 1
	n, i, ok := parseUint(runes, i)
	if !ok {
		return 0, 0, 0, unsupportedf(start, "malformed quantifier")
	}

	min, max = n, n
	if i < len(runes) && runes[i] == ',' {
		max, i, ok = parseUint(runes, i+1)
		if !ok {
			return 0, 0, 0, unsupportedf(start, "open-ended or malformed quantifier")
		}
	}

	if i >= len(runes) || runes[i] != '}' {
		return 0, 0, 0, unsupportedf(start, "unclosed quantifier")
	}
	if max < min {
		return 0, 0, 0, unsupportedf(start, "quantifier bounds {%d,%d} out of order", min, max)
	}
	if max > maxRepeat {
		return 0, 0, 0, unsupportedf(start, "repetition %d exceeds limit %d", max, maxRepeat)
	}
	return min, max, i + 1, nil
}

func parseUint(runes []rune, i int) (val, next int, ok bool) {
	startDigits := i
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		val = val*10 + int(runes[i]-'0')
		i++
	}
	return val, i, i > startDigits
}
