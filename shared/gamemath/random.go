package gamemath

import "math/rand/v2"

// RandInt returns a uniform integer in the closed range [lo, hi].
// An empty range returns lo.
func RandInt(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func Chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

// NewRand returns a generator seeded from seed. Two generators built from the
// same seed produce the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
