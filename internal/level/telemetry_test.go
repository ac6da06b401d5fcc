package level

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestGenerateRecordsSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer tp.Shutdown(context.Background())

	g, err := NewWithConfig(Config{Seed: 4, TracerProvider: tp})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	g.Generate(context.Background())
	g.Generate(context.Background())

	var generate, payload int
	for _, span := range sr.Ended() {
		switch span.Name() {
		case "level.generate":
			generate++
			if !hasAttr(span.Attributes(), "session.id", g.SessionID().String()) {
				t.Error("level.generate span missing session id")
			}
		case "level.payload":
			payload++
		}
	}

	if generate != 2 {
		t.Errorf("Expected 2 generate spans, got %d", generate)
	}
	// Level 1 has text; level 2 has text and encrypted_data.
	if payload != 3 {
		t.Errorf("Expected 3 payload spans, got %d", payload)
	}
}

func hasAttr(attrs []attribute.KeyValue, key, value string) bool {
	for _, kv := range attrs {
		if string(kv.Key) == key && kv.Value.AsString() == value {
			return true
		}
	}
	return false
}
