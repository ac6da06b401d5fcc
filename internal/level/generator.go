package level

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/temporalbreach/internal/random"
	"github.com/samdwyer/temporalbreach/internal/storyarc"
	"github.com/samdwyer/temporalbreach/internal/telemetry"
	"github.com/samdwyer/temporalbreach/internal/transform"
)

// Generator walks a story arc for one game session.
//
// A Generator is not safe for concurrent use. Run one per session, or serialize
// calls to a shared one.
type Generator struct {
	id            uuid.UUID
	arc           *storyarc.Arc
	currentLevel  int
	maxComplexity int
	rng           transform.Rand
	logger        *slog.Logger
	tracer        trace.Tracer
}

// New creates a generator over the embedded default arc with a random seed.
func New() *Generator {
	g, err := NewWithConfig(Config{})
	if err != nil {
		panic(err)
	}
	return g
}

// NewWithConfig creates a generator from cfg, filling unset fields with defaults.
func NewWithConfig(cfg Config) (*Generator, error) {
	arc := cfg.Arc
	if arc == nil {
		var err error
		if arc, err = storyarc.LoadDefault(); err != nil {
			return nil, err
		}
	}

	if cfg.MaxComplexity < 0 {
		return nil, errors.New("max complexity must not be negative")
	}
	maxComplexity := cfg.MaxComplexity
	if maxComplexity == 0 {
		maxComplexity = DefaultMaxComplexity
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(random.Resolve(cfg.Seed)))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tracer := telemetry.Tracer("level")
	if cfg.TracerProvider != nil {
		tracer = telemetry.TracerFrom(cfg.TracerProvider, "level")
	}

	return &Generator{
		id:            uuid.New(),
		arc:           arc,
		currentLevel:  1,
		maxComplexity: maxComplexity,
		rng:           rng,
		logger:        logger,
		tracer:        tracer,
	}, nil
}

// Generate produces the record for the current level and advances the cursor.
// Once the arc is exhausted it returns the END record on every call; the cursor
// keeps advancing regardless.
func (g *Generator) Generate(ctx context.Context) Record {
	level := g.currentLevel
	ctx, span := g.tracer.Start(ctx, "level.generate", trace.WithAttributes(
		attribute.String("session.id", g.id.String()),
		attribute.Int("level.number", level),
	))
	defer span.End()

	entry, ok := g.arc.At(level)
	if !ok {
		g.currentLevel++
		span.SetAttributes(attribute.Bool("level.end", true))
		g.logger.Debug("story arc exhausted", "session", g.id, "cursor", level)
		return endRecord()
	}

	data, kinds := g.buildData(ctx, &entry, level)
	record := Record{
		Level:               level,
		Theme:               entry.Theme,
		Description:         entry.Description,
		Complexity:          entry.Complexity,
		RequiredDecryptions: entry.RequiredDecryptions,
		Data:                data,
		kinds:               kinds,
	}

	span.SetAttributes(
		attribute.String("level.theme", entry.Theme),
		attribute.Int("level.complexity", entry.Complexity),
		attribute.Int("level.payload_count", len(data)),
	)
	g.logger.Info("level generated",
		"session", g.id, "level", level, "theme", entry.Theme, "complexity", entry.Complexity)

	g.currentLevel++
	return record
}

// CurrentLevel returns the 1-based level the next Generate call will produce.
func (g *Generator) CurrentLevel() int {
	return g.currentLevel
}

// Remaining returns how many story levels are left before the END record.
func (g *Generator) Remaining() int {
	return max(0, g.arc.Len()-g.currentLevel+1)
}

// Status reports whether the session still has story levels to produce.
func (g *Generator) Status() Status {
	if g.Remaining() > 0 {
		return StatusActive
	}
	return StatusComplete
}

// SessionID returns the identifier attached to this generator's logs and spans.
func (g *Generator) SessionID() uuid.UUID {
	return g.id
}

// MaxComplexity returns the session's declared complexity ceiling.
func (g *Generator) MaxComplexity() int {
	return g.maxComplexity
}

// Arc returns the story arc this generator walks.
func (g *Generator) Arc() *storyarc.Arc {
	return g.arc
}
