package rng

// Source is the capability interface every generator in this library draws
// from. Implementations must be deterministic: after Seed(v), the output
// stream is a pure function of v and call order.
//
// Implementations are not required to be safe for concurrent use. Each
// Source is exclusively owned by its holder; sharing one across goroutines
// requires external synchronization.
type Source interface {
	// Uint64 returns the next 64 uniformly random bits.
	Uint64() uint64

	// Float64 returns a uniformly distributed float in [0, 1).
	Float64() float64

	// IntN returns a uniformly distributed int in [0, n).
	// It panics if n <= 0.
	IntN(n int) int

	// Seed resets the internal state so subsequent draws depend only on
	// seed and call order.
	Seed(seed uint64)

	// State returns an opaque snapshot of the current stream position.
	State() State

	// SetState restores a snapshot previously returned by State on the
	// same implementation. It panics when the snapshot does not fit the
	// implementation's state shape.
	SetState(s State)
}

// State is an opaque snapshot of a Source's internal state, an ordered
// sequence of state words. Treat it as read-only; it is only meaningful to
// the implementation that produced it.
type State []uint64

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Uint64N returns a uniformly distributed uint64 in [0, n), drawing from
// src. Values that would introduce modulo bias are rejected and redrawn.
// It panics if n == 0.
func Uint64N(src Source, n uint64) uint64 {
	if n == 0 {
		panic("rng: Uint64N called with n == 0")
	}
	if n&(n-1) == 0 {
		return src.Uint64() & (n - 1)
	}
	// Reject draws below 2^64 mod n so the remaining span divides evenly.
	min := -n % n
	v := src.Uint64()
	for v < min {
		v = src.Uint64()
	}
	return v % n
}
