package sample

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/fakedata/pkg/rng"
)

// Number covers the numeric kinds a Range can bound.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Range bounds a numeric draw, both ends inclusive. Min must not exceed Max.
type Range[T Number] struct {
	Min, Max T
}

// Int returns a uniformly distributed integer in [r.Min, r.Max]. With
// MultipleOf(n) the result is additionally divisible by n, uniform over the
// multiples inside the range; ErrNoValidValue is returned when none exist.
// r.Min == r.Max returns that value without drawing.
func Int(src rng.Source, r Range[int], opts ...Option) (int, error) {
	if r.Min > r.Max {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, r.Min, r.Max)
	}
	cfg := applyOptions(opts)

	if m := cfg.multipleOf; m != 0 {
		if m < 0 {
			return 0, fmt.Errorf("%w: non-positive multiple-of %d", ErrNoValidValue, m)
		}
		lo := ceilDiv(r.Min, m)
		hi := floorDiv(r.Max, m)
		if lo > hi {
			return 0, fmt.Errorf("%w: no multiple of %d in [%d, %d]", ErrNoValidValue, m, r.Min, r.Max)
		}
		return intBetween(src, lo, hi) * m, nil
	}

	return intBetween(src, r.Min, r.Max), nil
}

// Float returns a uniformly distributed float in [r.Min, r.Max]. With
// Precision(d) the result carries at most d decimal places, produced by
// sampling an integer over the scaled range and dividing, so rounding can
// never push the value outside the bounds. Without Precision the full
// float64 resolution is used.
func Float(src rng.Source, r Range[float64], opts ...Option) (float64, error) {
	if r.Min > r.Max || math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return 0, fmt.Errorf("%w: min %v > max %v", ErrInvalidRange, r.Min, r.Max)
	}
	cfg := applyOptions(opts)

	if !cfg.hasPrecision {
		if r.Min == r.Max {
			return r.Min, nil
		}
		return r.Min + src.Float64()*(r.Max-r.Min), nil
	}

	if cfg.precision < 0 {
		return 0, fmt.Errorf("%w: negative precision %d", ErrInvalidRange, cfg.precision)
	}
	scale := math.Pow10(cfg.precision)
	lo := math.Ceil(r.Min * scale)
	hi := math.Floor(r.Max * scale)

	// Past 2^53 the scaled integers lose exactness and uniformity with it.
	const maxExact = 1 << 53
	if lo < -maxExact || hi > maxExact || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, fmt.Errorf("%w: [%v, %v] overflows at precision %d", ErrInvalidRange, r.Min, r.Max, cfg.precision)
	}
	if lo > hi {
		return 0, fmt.Errorf("%w: no value with %d decimals in [%v, %v]", ErrNoValidValue, cfg.precision, r.Min, r.Max)
	}

	return float64(intBetween(src, int(lo), int(hi))) / scale, nil
}

// intBetween draws uniformly from [min, max] inclusive. The span arithmetic
// is done in uint64 so max-min cannot overflow; a zero span means the full
// 64-bit range.
func intBetween(src rng.Source, min, max int) int {
	if min == max {
		return min
	}
	span := uint64(max) - uint64(min) + 1
	if span == 0 {
		return int(src.Uint64())
	}
	return min + int(rng.Uint64N(src, span))
}

// ceilDiv returns ceil(a / b) for b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// floorDiv returns floor(a / b) for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
