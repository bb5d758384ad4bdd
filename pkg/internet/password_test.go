package internet_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakedata/pkg/internet"
	"github.com/dmitrymomot/fakedata/pkg/locale"
)

func TestPassword(t *testing.T) {
	gen := newGen(42, locale.EN)

	t.Run("length and class coverage", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			pw, err := gen.Password(12)
			require.NoError(t, err)
			require.Len(t, pw, 12)
			require.True(t, strings.ContainsAny(pw, "abcdefghijklmnopqrstuvwxyz"), "missing lowercase in %q", pw)
			require.True(t, strings.ContainsAny(pw, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"), "missing uppercase in %q", pw)
			require.True(t, strings.ContainsAny(pw, "0123456789"), "missing digit in %q", pw)
		}
	})

	t.Run("symbols opt-in", func(t *testing.T) {
		pw, err := gen.Password(16, internet.Symbols())
		require.NoError(t, err)
		assert.True(t, strings.ContainsAny(pw, "!@#$%^&*-_=+"), "missing symbol in %q", pw)
	})

	t.Run("digits only", func(t *testing.T) {
		pw, err := gen.Password(6, internet.NoLowercase(), internet.NoUppercase())
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9]{6}$`, pw)
	})

	t.Run("minimum length equals class count", func(t *testing.T) {
		pw, err := gen.Password(3)
		require.NoError(t, err)
		assert.Len(t, pw, 3)
	})

	t.Run("too short for enabled classes", func(t *testing.T) {
		_, err := gen.Password(2)
		assert.ErrorIs(t, err, internet.ErrInvalidLength)
	})

	t.Run("zero length", func(t *testing.T) {
		_, err := gen.Password(0)
		assert.ErrorIs(t, err, internet.ErrInvalidLength)
	})

	t.Run("all classes disabled", func(t *testing.T) {
		_, err := gen.Password(8, internet.NoLowercase(), internet.NoUppercase(), internet.NoDigits())
		assert.ErrorIs(t, err, internet.ErrNoCharsets)
	})

	t.Run("seed stable", func(t *testing.T) {
		a, err := newGen(7, locale.EN).Password(20, internet.Symbols())
		require.NoError(t, err)
		b, err := newGen(7, locale.EN).Password(20, internet.Symbols())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
