package core

import "math/rand/v2"

// NewRand creates a deterministic PCG-backed rand using the provided seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillBernoulli fills buf with 1s drawn independently with probability p.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		if r.Float64() < p {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}

// FillUniform fills buf with independent uniform values in [0, 1).
func FillUniform(r *rand.Rand, buf []float64) {
	for i := range buf {
		buf[i] = r.Float64()
	}
}
