package storyarc

import (
	"errors"
	"fmt"
)

// DefaultFile is the embedded file holding the default story arc.
const DefaultFile = "story_arc.json"

// ErrInvalidEntry is returned when an arc entry fails validation.
var ErrInvalidEntry = errors.New("invalid story arc entry")

// Arc is an immutable ordered sequence of story beats.
type Arc struct {
	entries []Entry
}

// NewArc validates the entries and creates an arc from them.
// An empty arc is valid; a generator walking it completes immediately.
func NewArc(entries []Entry) (*Arc, error) {
	copied := make([]Entry, len(entries))
	for i, e := range entries {
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		copied[i] = e.clone()
	}
	return &Arc{entries: copied}, nil
}

// LoadDefault loads the arc from the embedded story_arc.json.
func LoadDefault() (*Arc, error) {
	arc, err := LoadArc(dataFS, DefaultFile)
	if err != nil {
		return nil, err
	}
	if arc.Len() == 0 {
		return nil, errors.New("no entries loaded from story_arc.json")
	}
	return arc, nil
}

// MustLoadDefault loads the default arc, panicking on error.
func MustLoadDefault() *Arc {
	arc, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return arc
}

func validate(e Entry) error {
	if e.Theme == "" {
		return fmt.Errorf("%w: empty theme", ErrInvalidEntry)
	}
	if e.Complexity < 1 {
		return fmt.Errorf("%w: %s has complexity %d, want >= 1", ErrInvalidEntry, e.Theme, e.Complexity)
	}
	if e.RequiredDecryptions < 0 {
		return fmt.Errorf("%w: %s has negative required decryptions", ErrInvalidEntry, e.Theme)
	}
	if e.Color != "" {
		if _, err := ParseHexColor(e.Color); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidEntry, e.Theme, err)
		}
	}
	return nil
}

// At returns a copy of the entry for a 1-based level number. The bool is false when
// the level is past the arc.
func (a *Arc) At(level int) (Entry, bool) {
	if level < 1 || level > len(a.entries) {
		return Entry{}, false
	}
	return a.entries[level-1].clone(), true
}

// GetByTheme returns a copy of the entry with the given theme.
func (a *Arc) GetByTheme(theme string) (Entry, bool) {
	for i := range a.entries {
		if a.entries[i].Theme == theme {
			return a.entries[i].clone(), true
		}
	}
	return Entry{}, false
}

// All returns a copy of every entry in arc order.
func (a *Arc) All() []Entry {
	all := make([]Entry, len(a.entries))
	for i := range a.entries {
		all[i] = a.entries[i].clone()
	}
	return all
}

// Len returns the number of story beats in the arc.
func (a *Arc) Len() int {
	return len(a.entries)
}

// Cumulative reports whether every entry declares all payload kinds of the entry
// before it. The default arc is built this way; custom arcs are not required to be.
func (a *Arc) Cumulative() bool {
	for i := 1; i < len(a.entries); i++ {
		for _, k := range a.entries[i-1].DataTypes {
			if !a.entries[i].HasKind(k) {
				return false
			}
		}
	}
	return true
}
