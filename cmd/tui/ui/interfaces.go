package ui

import (
	"context"

	"github.com/VoxDroid/pokedex/internal/pokedex"
	"github.com/VoxDroid/pokedex/internal/theme"
	"github.com/VoxDroid/pokedex/internal/tui/adapters"
)

// Model defines the subset of the framework-agnostic internal UI model that
// the TUI depends on. It keeps presentation code testable with fakes.
type Model interface {
	Start(ctx context.Context) error
	Search(ctx context.Context, query string) (pokedex.Outcome, error)
	ClearSearch() []pokedex.Record
	Choose(id int) bool
	Selected() (pokedex.Record, bool)
	Describe(ctx context.Context, r pokedex.Record) (adapters.Detail, error)
	PlayCry(ctx context.Context) error
	Theme() theme.Name
	ToggleTheme() theme.Name
}
