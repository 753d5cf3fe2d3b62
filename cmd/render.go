package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/VoxDroid/pokedex/internal/pokedex"
	"github.com/VoxDroid/pokedex/internal/tui/sanitize"
)

const nameColumn = 14

// textRenderer prints engine output as plain lines. While muted it drops
// everything, which lets a session start without echoing the full roster.
type textRenderer struct {
	w     io.Writer
	muted bool
	// extra holds species text printed under a detail card.
	extra func(pokedex.Record) (description, genus string)
}

func (t *textRenderer) RenderList(records []pokedex.Record) {
	if t.muted {
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(t.w, pokedex.NoResultsMessage)
		return
	}
	writeRoster(t.w, records)
}

func (t *textRenderer) RenderSearching(string) {
	if !t.muted {
		fmt.Fprintln(t.w, pokedex.SearchingMessage)
	}
}

func (t *textRenderer) RenderSearchError(term string) {
	if !t.muted {
		fmt.Fprintln(t.w, pokedex.NotFoundMessage(sanitize.Line(term)))
	}
}

func (t *textRenderer) RenderDetail(r pokedex.Record) {
	if t.muted {
		return
	}
	var desc, genus string
	if t.extra != nil {
		desc, genus = t.extra(r)
	}
	fmt.Fprintln(t.w)
	writeCard(t.w, r, desc, genus)
}

func (t *textRenderer) RenderDetailError(string) {
	if !t.muted {
		fmt.Fprintln(t.w, pokedex.DetailErrorMessage)
	}
}

func (t *textRenderer) RenderEmptyState() {}
func (t *textRenderer) MarkActive(int)    {}

// rosterLine formats one record as "#001 bulbasaur      grass/poison".
func rosterLine(r pokedex.Record) string {
	name := runewidth.FillRight(runewidth.Truncate(sanitize.Line(r.Name), nameColumn, "…"), nameColumn)
	return fmt.Sprintf("#%s %s %s", pokedex.FormatID(r.ID), name, sanitize.Line(strings.Join(r.TypeNames(), "/")))
}

func writeRoster(w io.Writer, records []pokedex.Record) {
	for _, r := range records {
		fmt.Fprintln(w, strings.TrimRight(rosterLine(r), " "))
	}
}

// writeCard prints the detail card used by show and search.
func writeCard(w io.Writer, r pokedex.Record, description, genus string) {
	fmt.Fprintf(w, "#%s %s\n", pokedex.FormatID(r.ID), pokedex.DisplayName(sanitize.Line(r.Name)))
	if types := r.TypeNames(); len(types) > 0 {
		fmt.Fprintf(w, "Type:      %s\n", sanitize.Line(strings.Join(types, ", ")))
	}
	if genus != "" {
		fmt.Fprintf(w, "Genus:     %s\n", sanitize.Line(genus))
	}
	fmt.Fprintf(w, "Height:    %.1f m\n", r.HeightMetres())
	fmt.Fprintf(w, "Weight:    %.1f kg\n", r.WeightKilograms())
	if names := r.AbilityNames(); len(names) > 0 {
		fmt.Fprintf(w, "Abilities: %s\n", sanitize.Line(strings.Join(names, ", ")))
	}
	if description != "" {
		fmt.Fprintf(w, "\n%s\n", sanitize.Line(description))
	}
	if len(r.Stats) > 0 {
		fmt.Fprintln(w)
		width := 0
		for _, s := range r.Stats {
			if n := runewidth.StringWidth(pokedex.StatLabel(s.Stat.Name)); n > width {
				width = n
			}
		}
		for _, s := range r.Stats {
			label := runewidth.FillRight(sanitize.Line(pokedex.StatLabel(s.Stat.Name)), width)
			filled := pokedex.StatPercent(s.BaseStat) / 5
			fmt.Fprintf(w, "%s %3d %s%s\n", label, s.BaseStat, strings.Repeat("#", filled), strings.Repeat(".", 20-filled))
		}
	}
	if sprite := r.BestSprite(); sprite != "" {
		fmt.Fprintf(w, "\nSprite:    %s\n", sprite)
	}
}
