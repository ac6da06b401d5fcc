// Package random provides seed generation for the generator's pseudo-random source.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Resolve returns seed unchanged when it is non-zero. A zero seed is replaced by a
// fresh one, falling back to the clock if crypto/rand is unavailable.
func Resolve(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	seed, err := NewSeed()
	if err != nil || seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
