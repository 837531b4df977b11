// Package lcg implements the 64-bit linear congruential generator that drives
// coin casting.
//
// The generator is a plain value: every draw returns the advanced generator
// alongside the output, so no hidden mutable state survives a call. For a
// fixed seed and a fixed sequence of draws, every output is reproducible
// across processes and platforms, which lets a cast be rebuilt from its seed.
package lcg

const (
	// Multiplier is the LCG multiplier (Knuth MMIX).
	Multiplier uint64 = 6364136223846793005
	// Increment is the LCG increment (Knuth MMIX).
	Increment uint64 = 1442695040888963407

	outputShift = 33
)

// Next advances state once and returns the new state with a value in
// [0, bound). Bound values <= 0 yield 0 but still advance the state.
func Next(state uint64, bound int) (uint64, int) {
	state = state*Multiplier + Increment
	value := int64(int32(uint32(state >> outputShift)))
	if bound <= 0 {
		return state, 0
	}
	mod := value % int64(bound)
	if mod < 0 {
		mod += int64(bound)
	}
	return state, int(mod)
}

// Generator is an immutable generator state.
type Generator struct {
	state uint64
}

// New seeds a generator. Negative seeds are reinterpreted as their two's
// complement bit pattern.
func New(seed int64) Generator {
	return Generator{state: uint64(seed)}
}

// State returns the raw 64-bit state.
func (g Generator) State() uint64 {
	return g.state
}

// Intn draws one value in [0, n) and returns the advanced generator.
func (g Generator) Intn(n int) (Generator, int) {
	state, value := Next(g.state, n)
	return Generator{state: state}, value
}
