package level

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/temporalbreach/internal/storyarc"
	"github.com/samdwyer/temporalbreach/internal/transform"
)

// payloadFunc builds the content of one payload kind for a story beat.
type payloadFunc func(g *Generator, entry *storyarc.Entry, level int) Payload

// payloadFuncs maps each known kind to its generator. Kinds missing from this map are
// skipped, so an arc may declare kinds that have no generator yet.
var payloadFuncs = map[storyarc.Kind]payloadFunc{
	storyarc.KindText:              (*Generator).textPayload,
	storyarc.KindEncryptedData:     (*Generator).encryptedPayload,
	storyarc.KindTemporalFragments: (*Generator).temporalPayload,
	storyarc.KindQuantumData:       (*Generator).quantumPayload,
	storyarc.KindMemoryFragments:   (*Generator).memoryPayload,
}

// buildData runs the payload generator for each kind the entry declares, in order.
func (g *Generator) buildData(ctx context.Context, entry *storyarc.Entry, level int) (Data, []storyarc.Kind) {
	data := make(Data, len(entry.DataTypes))
	kinds := make([]storyarc.Kind, 0, len(entry.DataTypes))

	for _, kind := range entry.DataTypes {
		build, ok := payloadFuncs[kind]
		if !ok {
			g.logger.Debug("skipping payload kind without generator",
				"session", g.id, "level", level, "kind", kind)
			continue
		}

		_, span := g.tracer.Start(ctx, "level.payload",
			trace.WithAttributes(attribute.String("payload.kind", string(kind))))
		payload := build(g, entry, level)
		span.SetAttributes(attribute.Int("payload.len", payload.Len()))
		span.End()

		if _, seen := data[kind]; !seen {
			kinds = append(kinds, kind)
		}
		data[kind] = payload
	}

	return data, kinds
}

func (g *Generator) textPayload(entry *storyarc.Entry, level int) Payload {
	return TextPayload(fmt.Sprintf(
		"TEMPORAL SEQUENCE %d INITIATED\nTHEME: %s\nCOMPLEXITY: %d\nWARNING: %s",
		level, entry.Theme, entry.Complexity, transform.Warning(g.rng)))
}

func (g *Generator) encryptedPayload(entry *storyarc.Entry, level int) Payload {
	fragments := make([]string, entry.Complexity+2)
	for i := range fragments {
		label := fmt.Sprintf("ENCRYPTED_FRAGMENT_%d_%d", level, i)
		fragments[i] = transform.Shift(label, entry.Complexity)
	}
	return ListPayload(fragments)
}

func (g *Generator) temporalPayload(entry *storyarc.Entry, _ int) Payload {
	fragments := make([]string, max(2, entry.Complexity))
	for i := range fragments {
		fragments[i] = fmt.Sprintf("TEMPORAL_ANOMALY_T-%d", 1000+g.rng.Intn(9000))
	}
	return ListPayload(fragments)
}

// quantumPayload emits bare patterns; they carry no per-level label.
func (g *Generator) quantumPayload(entry *storyarc.Entry, _ int) Payload {
	patterns := make([]string, entry.Complexity)
	for i := range patterns {
		patterns[i] = transform.Pattern(g.rng)
	}
	return ListPayload(patterns)
}

func (g *Generator) memoryPayload(entry *storyarc.Entry, level int) Payload {
	fragments := make([]string, entry.Complexity)
	for i := range fragments {
		fragments[i] = transform.Corrupt(fmt.Sprintf("MEMORY_FRAGMENT_%d_%d", level, i), g.rng)
	}
	return ListPayload(fragments)
}
