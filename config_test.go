package fakedata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakedata"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FAKEDATA_SEED", "")
	t.Setenv("FAKEDATA_LOCALE", "")

	cfg, err := fakedata.LoadConfig()
	require.NoError(t, err)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("FAKEDATA_SEED", "42")
	t.Setenv("FAKEDATA_LOCALE", "ru")

	cfg, err := fakedata.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "ru", cfg.Locale)
}

func TestLoadConfigRejectsMalformedSeed(t *testing.T) {
	t.Setenv("FAKEDATA_SEED", "not-a-number")

	_, err := fakedata.LoadConfig()
	assert.ErrorIs(t, err, fakedata.ErrParsingConfig)
}

func TestNewFromEnvPinsSeed(t *testing.T) {
	t.Setenv("FAKEDATA_SEED", "42")
	t.Setenv("FAKEDATA_LOCALE", "en")

	a, err := fakedata.NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), a.Seed())

	b := fakedata.NewSeeded(42)
	assert.Equal(t, b.Person.FullName(), a.Person.FullName())
}

func TestNewFromEnvSelfSeedsWithoutPin(t *testing.T) {
	t.Setenv("FAKEDATA_SEED", "")
	t.Setenv("FAKEDATA_LOCALE", "en")

	f, err := fakedata.NewFromEnv()
	require.NoError(t, err)
	assert.NotZero(t, f.Seed())
	assert.Equal(t, "en", f.Locale())
}
