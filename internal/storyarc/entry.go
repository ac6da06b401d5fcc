package storyarc

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// Kind tags a category of generated payload content.
type Kind string

const (
	KindText              Kind = "text"
	KindEncryptedData     Kind = "encrypted_data"
	KindTemporalFragments Kind = "temporal_fragments"
	KindQuantumData       Kind = "quantum_data"
	KindMemoryFragments   Kind = "memory_fragments"
)

// Entry is one story beat of the arc, loaded from JSON.
type Entry struct {
	Theme               string   `json:"theme"`                // Display name (e.g., "System Breach")
	Complexity          int      `json:"complexity"`           // Drives payload sizes, always >= 1
	DataTypes           []Kind   `json:"data_types"`           // Payload kinds in generation order
	Description         string   `json:"description"`          // One-line story beat
	Keywords            []string `json:"keywords"`             // Flavor words, not used by generation
	RequiredDecryptions int      `json:"required_decryptions"` // Decryptions the player must complete
	Color               string   `json:"color,omitempty"`      // Optional hex accent color (e.g., "#00FF41")
}

// clone returns a copy that shares no slices with e.
func (e Entry) clone() Entry {
	e.DataTypes = slices.Clone(e.DataTypes)
	e.Keywords = slices.Clone(e.Keywords)
	return e
}

// HasKind returns true if the entry declares the given payload kind.
func (e *Entry) HasKind(kind Kind) bool {
	for _, k := range e.DataTypes {
		if k == kind {
			return true
		}
	}
	return false
}

// AccentColor returns the entry color as a tcell.Color for hosts that render it.
func (e *Entry) AccentColor() tcell.Color {
	if e.Color == "" {
		return tcell.ColorDefault
	}
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

// ArcFile represents the structure of story_arc.json.
type ArcFile struct {
	Entries []Entry `json:"entries"`
}
