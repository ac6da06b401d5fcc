package transform

import "fmt"

var riskLevels = []string{"LOW", "MODERATE", "HIGH"}

var warnings = []func(rng Rand) string{
	func(rng Rand) string { return fmt.Sprintf("TEMPORAL INSTABILITY AT %d%%", between(rng, 60, 95)) },
	func(Rand) string { return "QUANTUM COHERENCE FAILING" },
	func(Rand) string { return "MEMORY CORRUPTION DETECTED" },
	func(Rand) string { return "TIMELINE DIVERGENCE IMMINENT" },
	func(rng Rand) string { return "PARADOX RISK LEVEL: " + riskLevels[rng.Intn(len(riskLevels))] },
}

// Warning picks one of five warning messages uniformly at random.
// Numbers and risk levels embedded in a message are drawn fresh on every call.
func Warning(rng Rand) string {
	return warnings[rng.Intn(len(warnings))](rng)
}
