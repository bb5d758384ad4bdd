// Package sample turns a rng.Source stream into bounded numeric draws and
// uniform or weighted selections. It is the workhorse behind every domain
// generator: building numbers, geo coordinates, word picks and password
// shuffles all reduce to the primitives here.
//
// All functions take the Source explicitly; the package holds no state of
// its own. Invalid input (inverted range, empty candidate set, impossible
// count) is a programmer error and is reported immediately through the
// package sentinel errors, wrapped with the offending values. Nothing is
// retried or silently corrected, so failures reproduce exactly like
// successes.
//
// # Usage
//
//	src := rng.NewSeeded(42).Source()
//
//	n, err := sample.Int(src, sample.Range[int]{Min: 1, Max: 10})
//	lat, err := sample.Float(src, sample.Range[float64]{Min: -90, Max: 90}, sample.Precision(4))
//	word, err := sample.Pick(src, []string{"alpha", "beta", "gamma"})
//	few, err := sample.PickSet(src, tags, 3)
//
// Weighted selection biases draws by relative weight:
//
//	name, err := sample.PickWeighted(src, []sample.Weighted[string]{
//		{Value: "james", Weight: 3},
//		{Value: "mary", Weight: 1},
//	})
package sample
