package level

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/samdwyer/temporalbreach/internal/storyarc"
)

func TestRecordJSON(t *testing.T) {
	g := newSeeded(t, 2)
	g.Generate(context.Background())
	rec := g.Generate(context.Background())

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	for _, key := range []string{"level", "theme", "description", "complexity", "required_decryptions", "data"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Missing key %q in %s", key, b)
		}
	}
	if len(decoded) != 6 {
		t.Errorf("Expected 6 keys, got %d: %s", len(decoded), b)
	}
	if decoded["level"] != float64(2) {
		t.Errorf("Expected numeric level 2, got %v", decoded["level"])
	}

	data := decoded["data"].(map[string]any)
	if _, ok := data["text"].(string); !ok {
		t.Errorf("text payload should encode as a string, got %T", data["text"])
	}
	encrypted, ok := data["encrypted_data"].([]any)
	if !ok || len(encrypted) != 4 {
		t.Errorf("encrypted_data should encode as an array of 4, got %v", data["encrypted_data"])
	}
}

func TestRecordJSONKeepsGenerationOrder(t *testing.T) {
	g := newSeeded(t, 9)
	var rec Record
	for i := 0; i < 5; i++ {
		rec = g.Generate(context.Background())
	}

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	last := -1
	for _, key := range []string{`"text":`, `"encrypted_data":`, `"temporal_fragments":`, `"quantum_data":`, `"memory_fragments":`} {
		idx := bytes.Index(b, []byte(key))
		if idx <= last {
			t.Fatalf("Key %s out of generation order in %s", key, b)
		}
		last = idx
	}
}

func TestRecordJSONWithoutKinds(t *testing.T) {
	rec := Record{
		Level: 1,
		Theme: "Custom",
		Data: Data{
			storyarc.KindText:        TextPayload("x"),
			storyarc.KindQuantumData: ListPayload([]string{"01"}),
		},
	}

	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"level":1,"theme":"Custom","description":"","complexity":0,"required_decryptions":0,"data":{"quantum_data":["01"],"text":"x"}}`
	if string(b) != want {
		t.Errorf("Record JSON:\n%s\nwant\n%s", b, want)
	}
}

func TestEndRecordJSON(t *testing.T) {
	b, err := json.Marshal(endRecord())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{"level":"END","message":"TEMPORAL SEQUENCE COMPLETE - ALL DATA RECOVERED","data":null}`
	if string(b) != want {
		t.Errorf("END record JSON:\n%s\nwant\n%s", b, want)
	}
}

func TestPayloadAccessors(t *testing.T) {
	text := TextPayload("hello")
	if !text.IsText() || text.String() != "hello" || text.Len() != 1 || text.Items() != nil {
		t.Errorf("Unexpected text payload %+v", text)
	}

	list := ListPayload([]string{"a", "b"})
	if list.IsText() || list.String() != "" || list.Len() != 2 {
		t.Errorf("Unexpected list payload %+v", list)
	}

	b, err := json.Marshal(Data{storyarc.KindQuantumData: ListPayload(nil)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"quantum_data":[]}` {
		t.Errorf("Empty list should encode as [], got %s", b)
	}
}
