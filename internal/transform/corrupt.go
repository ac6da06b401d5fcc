package transform

import "strings"

const (
	// CorruptionRate is the chance that a single character is blocked out.
	CorruptionRate = 0.3

	// BlockGlyph replaces corrupted characters.
	BlockGlyph = '█'
)

// Corrupt replaces each character of s with BlockGlyph with probability CorruptionRate.
// The output has as many characters as the input.
func Corrupt(s string, rng Rand) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rng.Float64() < CorruptionRate {
			b.WriteRune(BlockGlyph)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
