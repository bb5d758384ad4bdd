package sample

import (
	"fmt"

	"github.com/dmitrymomot/fakedata/pkg/rng"
)

// Weighted pairs a candidate value with its relative selection weight.
// Weights are relative, not normalized: {a, 2} is drawn twice as often
// as {b, 1}.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Pick returns one element of items, uniformly.
func Pick[T any](src rng.Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: pick", ErrEmptyInput)
	}
	return items[src.IntN(len(items))], nil
}

// PickWeighted returns one element, biased by weight. Selection walks the
// cumulative weight prefix sums and takes the first option whose cumulative
// weight exceeds the draw, so boundary ties resolve to the lower index.
func PickWeighted[T any](src rng.Source, items []Weighted[T]) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: weighted pick", ErrEmptyInput)
	}

	var total float64
	for i, it := range items {
		if !(it.Weight > 0) {
			return zero, fmt.Errorf("%w: weight %v at index %d", ErrInvalidWeight, it.Weight, i)
		}
		total += it.Weight
	}

	r := src.Float64() * total
	var cum float64
	for _, it := range items {
		cum += it.Weight
		if cum > r {
			return it.Value, nil
		}
	}
	// Float addition rounding can leave r marginally above the final sum.
	return items[len(items)-1].Value, nil
}

// PickSet returns count elements of items. Without WithReplacement the
// result holds distinct elements, chosen by a partial Fisher-Yates shuffle
// over an index scratch slice: O(count) draws, unbiased, original slice
// untouched. Requesting more distinct elements than items holds fails with
// ErrInvalidCount.
func PickSet[T any](src rng.Source, items []T, count int, opts ...Option) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidCount, count)
	}
	if count == 0 {
		return []T{}, nil
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: pick set", ErrEmptyInput)
	}
	cfg := applyOptions(opts)

	out := make([]T, count)

	if cfg.withReplacement {
		for i := range out {
			out[i] = items[src.IntN(len(items))]
		}
		return out, nil
	}

	if count > len(items) {
		return nil, fmt.Errorf("%w: want %d distinct from %d items", ErrInvalidCount, count, len(items))
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + src.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = items[idx[i]]
	}
	return out, nil
}
