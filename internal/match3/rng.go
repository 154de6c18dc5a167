package match3

import "math/rand/v2"

// RandomSource supplies the randomness the engine needs: kind draws for
// generation and refill, and shuffle permutations.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandom returns a deterministic PCG-backed source for seed.
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// drawKind picks one of kinds uniformly.
func drawKind(r RandomSource, kinds []Kind) Kind {
	return kinds[r.IntN(len(kinds))]
}
