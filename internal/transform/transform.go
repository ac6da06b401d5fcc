// Package transform holds the small string routines used to fabricate level payloads:
// a shift cipher, block corruption, symbol pattern synthesis and warning messages.
package transform

// Rand is the source of randomness for the transforms. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// between returns a uniform integer in [lo, hi].
func between(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
