package level

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/samdwyer/temporalbreach/internal/storyarc"
)

const (
	// EndLevel is the level label of the record returned once the arc is exhausted.
	EndLevel = "END"

	// CompletionMessage accompanies the END record.
	CompletionMessage = "TEMPORAL SEQUENCE COMPLETE - ALL DATA RECOVERED"
)

// Payload is the generated content for one payload kind: a single string for text,
// an ordered list of strings for everything else.
type Payload struct {
	text  string
	items []string
	list  bool
}

// TextPayload wraps a single string.
func TextPayload(s string) Payload {
	return Payload{text: s}
}

// ListPayload wraps an ordered list of strings.
func ListPayload(items []string) Payload {
	return Payload{items: items, list: true}
}

// IsText returns true if the payload is a single string.
func (p Payload) IsText() bool {
	return !p.list
}

// String returns the text of a text payload, or "" for list payloads.
func (p Payload) String() string {
	return p.text
}

// Items returns the entries of a list payload, or nil for text payloads.
func (p Payload) Items() []string {
	return p.items
}

// Len returns 1 for text payloads and the number of entries for list payloads.
func (p Payload) Len() int {
	if p.list {
		return len(p.items)
	}
	return 1
}

// MarshalJSON encodes text payloads as a JSON string and list payloads as an array.
func (p Payload) MarshalJSON() ([]byte, error) {
	if !p.list {
		return json.Marshal(p.text)
	}
	if p.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.items)
}

// Data maps each payload kind to its generated content.
type Data map[storyarc.Kind]Payload

// Record is the output of one Generate call.
type Record struct {
	Level               int
	Theme               string
	Description         string
	Complexity          int
	RequiredDecryptions int
	Data                Data

	// End marks the terminal record; only Message is meaningful then.
	End     bool
	Message string

	kinds []storyarc.Kind
}

func endRecord() Record {
	return Record{End: true, Message: CompletionMessage}
}

// LevelLabel returns the level number as a string, or EndLevel for the terminal record.
func (r Record) LevelLabel() string {
	if r.End {
		return EndLevel
	}
	return strconv.Itoa(r.Level)
}

// Kinds returns the payload kinds present in Data, in generation order.
func (r Record) Kinds() []storyarc.Kind {
	return r.kinds
}

// MarshalJSON encodes the record with the level number, or "END" and a null data
// field for the terminal record. Payload keys follow generation order.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.End {
		return json.Marshal(struct {
			Level   string `json:"level"`
			Message string `json:"message"`
			Data    *Data  `json:"data"`
		}{EndLevel, r.Message, nil})
	}

	data, err := encodeData(r.Data, r.kinds)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Level               int             `json:"level"`
		Theme               string          `json:"theme"`
		Description         string          `json:"description"`
		Complexity          int             `json:"complexity"`
		RequiredDecryptions int             `json:"required_decryptions"`
		Data                json.RawMessage `json:"data"`
	}{r.Level, r.Theme, r.Description, r.Complexity, r.RequiredDecryptions, data})
}

// encodeData writes the payloads listed in kinds first, in that order, followed by any
// other keys of data in sorted order.
func encodeData(data Data, kinds []storyarc.Kind) (json.RawMessage, error) {
	order := make([]storyarc.Kind, 0, len(data))
	listed := make(map[storyarc.Kind]bool, len(kinds))
	for _, k := range kinds {
		if _, ok := data[k]; ok && !listed[k] {
			listed[k] = true
			order = append(order, k)
		}
	}
	var rest []storyarc.Kind
	for k := range data {
		if !listed[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	order = append(order, rest...)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(k))
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(data[k])
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
