package ui

import (
	"strings"

	"github.com/VoxDroid/pokedex/internal/pokedex"
	"github.com/VoxDroid/pokedex/internal/tui/sanitize"
)

// pokeItem adapts a record to bubbles/list.
type pokeItem struct {
	rec    pokedex.Record
	active bool
}

func (i pokeItem) Title() string {
	t := "#" + pokedex.FormatID(i.rec.ID) + " " + pokedex.DisplayName(sanitize.Line(i.rec.Name))
	if i.active {
		return "● " + t
	}
	return t
}

func (i pokeItem) Description() string {
	return sanitize.Line(strings.Join(i.rec.TypeNames(), " · "))
}

func (i pokeItem) FilterValue() string { return i.rec.Name }
