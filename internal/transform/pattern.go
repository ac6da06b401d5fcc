package transform

import "strings"

const (
	minPatternLength = 8
	maxPatternLength = 16
)

// patternSymbols is sampled uniformly by index. The trailing ∏∐∑ repeat, so
// those symbols are drawn twice as often as the others.
var patternSymbols = []rune("01▢▣∎∏∐∑∏∐∑")

// Pattern synthesizes a quantum pattern of 8 to 16 symbols.
func Pattern(rng Rand) string {
	n := between(rng, minPatternLength, maxPatternLength)

	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(patternSymbols[rng.Intn(len(patternSymbols))])
	}
	return b.String()
}
