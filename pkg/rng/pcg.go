package rng

import "math/bits"

// PCG implements Source with the PCG-XSL-RR 128/64 generator: a 128-bit LCG
// state advanced per draw, output-permuted by an xorshift-low and a random
// rotation. The two state words make State snapshots trivial and exact.
type PCG struct {
	hi, lo uint64
}

// 128-bit LCG multiplier and increment from the PCG reference implementation.
const (
	pcgMulHi = 2549297995355413924
	pcgMulLo = 4865540595714422341
	pcgIncHi = 6364136223846793005
	pcgIncLo = 1442695040888963407
)

// NewPCG returns a PCG source seeded with seed.
func NewPCG(seed uint64) *PCG {
	p := &PCG{}
	p.Seed(seed)
	return p
}

// Seed resets the state. The single seed word is expanded to the full
// 128-bit state through splitmix64 so that nearby seeds produce unrelated
// streams.
func (p *PCG) Seed(seed uint64) {
	p.lo = splitmix64(&seed)
	p.hi = splitmix64(&seed)
}

// splitmix64 is the seed-expansion step from Vigna's SplitMix64. It mutates
// x so successive calls walk the sequence.
func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint64 advances the state and returns the next output word.
func (p *PCG) Uint64() uint64 {
	p.advance()
	return bits.RotateLeft64(p.hi^p.lo, -int(p.hi>>58))
}

// advance steps the 128-bit LCG: state = state*mul + inc.
func (p *PCG) advance() {
	hi, lo := bits.Mul64(p.lo, pcgMulLo)
	hi += p.hi * pcgMulLo
	hi += p.lo * pcgMulHi
	lo, c := bits.Add64(lo, pcgIncLo, 0)
	hi, _ = bits.Add64(hi, pcgIncHi, c)
	p.hi, p.lo = hi, lo
}

// Float64 returns a uniform float in [0, 1) built from the top 53 bits, so
// every representable value in the mantissa range is equally likely.
func (p *PCG) Float64() float64 {
	return float64(p.Uint64()>>11) / (1 << 53)
}

// IntN returns a uniform int in [0, n). Panics if n <= 0.
func (p *PCG) IntN(n int) int {
	if n <= 0 {
		panic("rng: IntN called with n <= 0")
	}
	return int(Uint64N(p, uint64(n)))
}

// State returns the two state words as a snapshot.
func (p *PCG) State() State {
	return State{p.hi, p.lo}
}

// SetState restores a snapshot produced by State.
func (p *PCG) SetState(s State) {
	if len(s) != 2 {
		panic("rng: PCG state must hold exactly 2 words")
	}
	p.hi, p.lo = s[0], s[1]
}
