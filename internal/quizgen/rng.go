package quizgen

import "math/rand/v2"

// Rand is the randomness source used by sampling, the deterministic
// generators, and ensure-five filler synthesis. *math/rand/v2.Rand
// satisfies it directly; tests inject a seeded instance.
type Rand interface {
	// IntN returns a uniform int in [0,n).
	IntN(n int) int

	// Shuffle randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))

	// Perm returns a random permutation of [0,n).
	Perm(n int) []int
}

func newRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
