package storyarc

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// Load reads and unmarshals a JSON file from fsys.
func Load[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadArc reads an arc file from fsys and validates its entries.
// Hosts shipping their own arc use this with os.DirFS or their own embed.FS.
func LoadArc(fsys fs.FS, filename string) (*Arc, error) {
	file, err := Load[ArcFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	return NewArc(file.Entries)
}
