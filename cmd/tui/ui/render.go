package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/pokedex/internal/pokedex"
	"github.com/VoxDroid/pokedex/internal/theme"
	"github.com/VoxDroid/pokedex/internal/tui/adapters"
	"github.com/VoxDroid/pokedex/internal/tui/sanitize"
)

// simple word-wrap to produce lines no longer than width (approximate by rune count)
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	out := []string{}
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(w) > width {
				out = append(out, cur)
				cur = w
			} else {
				cur = cur + " " + w
			}
		}
		out = append(out, cur)
	}
	return out
}

// renderTableInline renders a label on the left and the value on the same
// line, wrapping the value and aligning continuation lines under it.
func renderTableInline(label, value string, labelW, valueW int) string {
	lines := wrapText(value, valueW)
	pad := func(s string) string {
		if n := utf8.RuneCountInString(s); n < labelW {
			return s + strings.Repeat(" ", labelW-n)
		}
		return s
	}
	var b strings.Builder
	for i, ln := range lines {
		if i == 0 {
			b.WriteString(pad(label) + " " + ln + "\n")
		} else {
			b.WriteString(strings.Repeat(" ", labelW) + " " + ln + "\n")
		}
	}
	return b.String()
}

// statBar draws a bar of width cells filled in proportion to base/255.
func statBar(base, width int) string {
	if width < 1 {
		width = 1
	}
	filled := pokedex.StatPercent(base) * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatPlaceholder(msg string, isErr bool, width int, p theme.Palette) string {
	st := lipgloss.NewStyle().Foreground(p.Muted).Italic(true)
	if isErr {
		st = lipgloss.NewStyle().Foreground(p.Error)
	}
	return st.Render(strings.Join(wrapText(msg, width), "\n"))
}

// formatDetail renders the detail card. described is false while species
// data is still being fetched.
func formatDetail(r pokedex.Record, d adapters.Detail, described bool, width int, p theme.Palette) string {
	h := lipgloss.NewStyle().Bold(true).Foreground(p.BorderFocus)
	k := lipgloss.NewStyle().Foreground(p.Muted)

	contentW := width - 2
	if contentW < 20 {
		contentW = 20
	}
	labels := []string{"Height:", "Weight:", "Abilities:", "Sprite:", "Cry:"}
	labelW := 0
	for _, l := range labels {
		if n := utf8.RuneCountInString(l); n > labelW {
			labelW = n
		}
	}
	valueW := contentW - labelW - 1
	if valueW < 10 {
		valueW = 10
	}

	var b strings.Builder
	name := pokedex.DisplayName(sanitize.Line(r.Name))
	b.WriteString(h.Render(fmt.Sprintf("#%s %s", pokedex.FormatID(r.ID), name)) + "\n")

	badges := make([]string, 0, len(r.Types))
	for _, t := range r.TypeNames() {
		t = sanitize.Line(t)
		c, ok := theme.TypeColors[t]
		if !ok {
			c = p.Muted
		}
		badges = append(badges, lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(c).Padding(0, 1).Render(t))
	}
	if len(badges) > 0 {
		b.WriteString(strings.Join(badges, " ") + "\n")
	}
	if described && d.Genus != "" {
		b.WriteString(k.Render(sanitize.Line(d.Genus)) + "\n")
	}

	b.WriteString("\n")
	switch {
	case described:
		b.WriteString(strings.Join(wrapText(sanitize.Line(d.Description), contentW), "\n") + "\n")
	default:
		b.WriteString(k.Render("Loading description...") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(renderTableInline("Height:", fmt.Sprintf("%.1f m", r.HeightMetres()), labelW, valueW))
	b.WriteString(renderTableInline("Weight:", fmt.Sprintf("%.1f kg", r.WeightKilograms()), labelW, valueW))
	if names := r.AbilityNames(); len(names) > 0 {
		b.WriteString(renderTableInline("Abilities:", sanitize.Line(strings.Join(names, ", ")), labelW, valueW))
	}

	if len(r.Stats) > 0 {
		b.WriteString("\n" + h.Render("Base stats") + "\n")
		statW := 0
		for _, s := range r.Stats {
			if n := utf8.RuneCountInString(pokedex.StatLabel(s.Stat.Name)); n > statW {
				statW = n
			}
		}
		barW := contentW - statW - 6
		if barW > 30 {
			barW = 30
		}
		bar := lipgloss.NewStyle().Foreground(p.StatBar)
		for _, s := range r.Stats {
			label := sanitize.Line(pokedex.StatLabel(s.Stat.Name))
			label += strings.Repeat(" ", statW-utf8.RuneCountInString(label))
			b.WriteString(fmt.Sprintf("%s %3d %s\n", label, s.BaseStat, bar.Render(statBar(s.BaseStat, barW))))
		}
	}

	b.WriteString("\n")
	if sprite := r.BestSprite(); sprite != "" {
		b.WriteString(k.Render(strings.TrimSuffix(renderTableInline("Sprite:", sprite, labelW, valueW), "\n")) + "\n")
	}
	cryURL := d.CryURL
	if cryURL == "" {
		cryURL = "press p to play"
	}
	b.WriteString(k.Render(strings.TrimSuffix(renderTableInline("Cry:", cryURL, labelW, valueW), "\n")) + "\n")
	return b.String()
}
