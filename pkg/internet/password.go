package internet

import "fmt"

const (
	passwordLower   = "abcdefghijklmnopqrstuvwxyz"
	passwordUpper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordDigits  = "0123456789"
	passwordSymbols = "!@#$%^&*-_=+"
)

// PasswordOption toggles password character classes. Lowercase letters,
// uppercase letters and digits are on by default; symbols are opt-in.
type PasswordOption func(*passwordConfig)

type passwordConfig struct {
	lower, upper, digits, symbols bool
}

// Symbols enables punctuation characters.
func Symbols() PasswordOption {
	return func(c *passwordConfig) { c.symbols = true }
}

// NoLowercase disables lowercase letters.
func NoLowercase() PasswordOption {
	return func(c *passwordConfig) { c.lower = false }
}

// NoUppercase disables uppercase letters.
func NoUppercase() PasswordOption {
	return func(c *passwordConfig) { c.upper = false }
}

// NoDigits disables digits.
func NoDigits() PasswordOption {
	return func(c *passwordConfig) { c.digits = false }
}

// Password returns a password of exactly length characters containing at
// least one character from every enabled class. The guarantee is built by
// placing one draw per class first, filling the remainder from the union,
// and shuffling, all with Source draws, so the result is seed-stable.
//
// Passwords here are fixture data, not secrets; use crypto/rand for real
// credentials.
func (g *Generator) Password(length int, opts ...PasswordOption) (string, error) {
	cfg := &passwordConfig{lower: true, upper: true, digits: true}
	for _, opt := range opts {
		opt(cfg)
	}

	var classes []string
	if cfg.lower {
		classes = append(classes, passwordLower)
	}
	if cfg.upper {
		classes = append(classes, passwordUpper)
	}
	if cfg.digits {
		classes = append(classes, passwordDigits)
	}
	if cfg.symbols {
		classes = append(classes, passwordSymbols)
	}
	if len(classes) == 0 {
		return "", ErrNoCharsets
	}
	if length < len(classes) {
		return "", fmt.Errorf("%w: %d cannot cover %d enabled classes", ErrInvalidLength, length, len(classes))
	}

	union := ""
	for _, class := range classes {
		union += class
	}

	out := make([]byte, length)
	for i, class := range classes {
		out[i] = class[g.src.IntN(len(class))]
	}
	for i := len(classes); i < length; i++ {
		out[i] = union[g.src.IntN(len(union))]
	}

	// Fisher-Yates, so the guaranteed class characters do not cluster at
	// the front.
	for i := length - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}
