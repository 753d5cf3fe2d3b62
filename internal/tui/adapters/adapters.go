// Package adapters provides the narrow interfaces the TUI uses to reach the
// network and the audio player, so the presentation code can be tested
// against fakes.
package adapters

import (
	"context"

	"github.com/VoxDroid/pokedex/internal/pokedex"
)

// Detail is everything the detail pane shows beyond the record itself.
type Detail struct {
	Record      pokedex.Record
	Description string
	Genus       string
	Sprite      string
	CryURL      string
}

// DetailAdapter resolves the species data for a record.
type DetailAdapter interface {
	Describe(ctx context.Context, r pokedex.Record) (Detail, error)
}

// SoundAdapter plays and locates cries.
type SoundAdapter interface {
	Play(ctx context.Context, name string) error
	URL(name string) string
}
