package sample_test

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fakedata/pkg/rng"
	"github.com/dmitrymomot/fakedata/pkg/sample"
)

func src(seed uint64) rng.Source {
	return rng.NewSeeded(seed).Source()
}

func TestIntContainment(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"small", 1, 10},
		{"single digit", 0, 9},
		{"negative", -50, -10},
		{"spanning zero", -5, 5},
		{"wide", -1000000, 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := src(42)
			for i := 0; i < 5000; i++ {
				v, err := sample.Int(s, sample.Range[int]{Min: tt.min, Max: tt.max})
				require.NoError(t, err)
				require.GreaterOrEqual(t, v, tt.min)
				require.LessOrEqual(t, v, tt.max)
			}
		})
	}
}

func TestIntDegenerateRange(t *testing.T) {
	s := src(1)
	v, err := sample.Int(s, sample.Range[int]{Min: 7, Max: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestIntInvalidRange(t *testing.T) {
	s := src(1)
	_, err := sample.Int(s, sample.Range[int]{Min: 10, Max: 1})
	assert.ErrorIs(t, err, sample.ErrInvalidRange)
}

func TestIntReproducible(t *testing.T) {
	r := sample.Range[int]{Min: 1, Max: 10}

	a := src(42)
	first1, err := sample.Int(a, r)
	require.NoError(t, err)
	first2, err := sample.Int(a, r)
	require.NoError(t, err)

	b := src(42)
	second1, err := sample.Int(b, r)
	require.NoError(t, err)
	second2, err := sample.Int(b, r)
	require.NoError(t, err)

	assert.Equal(t, first1, second1)
	assert.Equal(t, first2, second2)
}

func TestIntMultipleOf(t *testing.T) {
	t.Run("divisibility", func(t *testing.T) {
		s := src(3)
		for i := 0; i < 2000; i++ {
			v, err := sample.Int(s, sample.Range[int]{Min: 1, Max: 100}, sample.MultipleOf(7))
			require.NoError(t, err)
			require.Zero(t, v%7)
			require.GreaterOrEqual(t, v, 7)
			require.LessOrEqual(t, v, 98)
		}
	})

	t.Run("covers all multiples", func(t *testing.T) {
		s := src(5)
		seen := map[int]bool{}
		for i := 0; i < 1000; i++ {
			v, err := sample.Int(s, sample.Range[int]{Min: 1, Max: 10}, sample.MultipleOf(3))
			require.NoError(t, err)
			seen[v] = true
		}
		assert.Equal(t, map[int]bool{3: true, 6: true, 9: true}, seen)
	})

	t.Run("negative bounds", func(t *testing.T) {
		s := src(8)
		for i := 0; i < 1000; i++ {
			v, err := sample.Int(s, sample.Range[int]{Min: -20, Max: -1}, sample.MultipleOf(6))
			require.NoError(t, err)
			require.Zero(t, v%6)
			require.GreaterOrEqual(t, v, -18)
			require.LessOrEqual(t, v, -6)
		}
	})

	t.Run("no multiple in range", func(t *testing.T) {
		s := src(1)
		_, err := sample.Int(s, sample.Range[int]{Min: 7, Max: 9}, sample.MultipleOf(5))
		assert.ErrorIs(t, err, sample.ErrNoValidValue)
	})
}

func TestIntUniformity(t *testing.T) {
	const draws = 100000
	s := src(42)

	counts := make([]int, 10)
	values := make([]float64, 0, draws)
	for i := 0; i < draws; i++ {
		v, err := sample.Int(s, sample.Range[int]{Min: 0, Max: 9})
		require.NoError(t, err)
		counts[v]++
		values = append(values, float64(v))
	}

	for digit, c := range counts {
		assert.InDelta(t, draws/10, c, draws*0.01, "digit %d drawn %d times", digit, c)
	}

	mean, err := stats.Mean(values)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, mean, 0.05)
}

func TestFloatContainment(t *testing.T) {
	s := src(42)
	r := sample.Range[float64]{Min: -90, Max: 90}
	for i := 0; i < 5000; i++ {
		v, err := sample.Float(s, r)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -90.0)
		require.LessOrEqual(t, v, 90.0)
	}
}

func TestFloatPrecision(t *testing.T) {
	s := src(42)
	for i := 0; i < 5000; i++ {
		v, err := sample.Float(s, sample.Range[float64]{Min: -180, Max: 180}, sample.Precision(4))
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -180.0)
		require.LessOrEqual(t, v, 180.0)

		scaled := v * 1e4
		require.InDelta(t, math.Round(scaled), scaled, 1e-9, "value %v exceeds 4 decimal places", v)
	}
}

func TestFloatDegenerateRange(t *testing.T) {
	s := src(1)
	v, err := sample.Float(s, sample.Range[float64]{Min: 1.5, Max: 1.5})
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)
}

func TestFloatErrors(t *testing.T) {
	s := src(1)

	_, err := sample.Float(s, sample.Range[float64]{Min: 2, Max: 1})
	assert.ErrorIs(t, err, sample.ErrInvalidRange)

	_, err = sample.Float(s, sample.Range[float64]{Min: 0, Max: 1}, sample.Precision(-1))
	assert.ErrorIs(t, err, sample.ErrInvalidRange)

	// Scaling 1e18 by 10^4 leaves the exact-integer window of float64.
	_, err = sample.Float(s, sample.Range[float64]{Min: 0, Max: 1e18}, sample.Precision(4))
	assert.ErrorIs(t, err, sample.ErrInvalidRange)

	// No representable value with zero decimals strictly inside (0.2, 0.8).
	_, err = sample.Float(s, sample.Range[float64]{Min: 0.2, Max: 0.8}, sample.Precision(0))
	assert.ErrorIs(t, err, sample.ErrNoValidValue)
}

func TestFloatMeanIsCentered(t *testing.T) {
	const draws = 100000
	s := src(7)

	values := make([]float64, 0, draws)
	for i := 0; i < draws; i++ {
		v, err := sample.Float(s, sample.Range[float64]{Min: 0, Max: 1})
		require.NoError(t, err)
		values = append(values, v)
	}

	mean, err := stats.Mean(values)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mean, 0.005)
}
