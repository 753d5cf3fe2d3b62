package adapters

import (
	"context"

	"github.com/VoxDroid/pokedex/internal/cry"
)

// SoundAdapterImpl delegates to a cry.Player.
type SoundAdapterImpl struct{ player *cry.Player }

// NewSoundAdapter wraps p.
func NewSoundAdapter(p *cry.Player) *SoundAdapterImpl { return &SoundAdapterImpl{player: p} }

// Play blocks until the cry finishes or fails.
func (s *SoundAdapterImpl) Play(ctx context.Context, name string) error {
	return s.player.Play(ctx, name)
}

// URL returns the cry location for name.
func (s *SoundAdapterImpl) URL(name string) string { return s.player.URL(name) }
