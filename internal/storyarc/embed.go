// Package storyarc provides the story arc descriptors that drive level generation,
// along with the embedded default arc and utilities for loading it.
package storyarc

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
