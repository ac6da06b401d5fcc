package level

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/temporalbreach/internal/storyarc"
	"github.com/samdwyer/temporalbreach/internal/transform"
)

// DefaultMaxComplexity is the complexity ceiling declared for a session.
const DefaultMaxComplexity = 10

// Config holds generator configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible level content.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Rand replaces the random source entirely; Seed is ignored when it is set.
	Rand transform.Rand

	// Arc replaces the embedded default story arc. An empty arc is valid.
	Arc *storyarc.Arc

	// MaxComplexity is recorded for the session but does not clamp entries.
	// Zero means DefaultMaxComplexity.
	MaxComplexity int

	// Logger receives session logs; nil discards them.
	Logger *slog.Logger

	// TracerProvider creates the generation spans; nil uses the global provider.
	TracerProvider trace.TracerProvider
}
