package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colours the TUI draws with.
type Palette struct {
	Title       lipgloss.Color
	TitleBg     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Error       lipgloss.Color
	StatusBg    lipgloss.Color
	StatusFg    lipgloss.Color
	StatBar     lipgloss.Color
}

var palettes = map[Name]Palette{
	Dark: {
		Title:       "#ffffff",
		TitleBg:     "#b91c1c",
		Border:      "#334155",
		BorderFocus: "#7dd3fc",
		Text:        "#e2e8f0",
		Muted:       "#94a3b8",
		Error:       "#f87171",
		StatusBg:    "#0b1226",
		StatusFg:    "#cbd5e1",
		StatBar:     "#facc15",
	},
	Light: {
		Title:       "#ffffff",
		TitleBg:     "#dc2626",
		Border:      "#cbd5e1",
		BorderFocus: "#0369a1",
		Text:        "#0f172a",
		Muted:       "#475569",
		Error:       "#b91c1c",
		StatusBg:    "#e2e8f0",
		StatusFg:    "#0f172a",
		StatBar:     "#ca8a04",
	},
}

// PaletteFor returns the palette for n, defaulting to dark.
func PaletteFor(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Dark]
}

// TypeColors maps type names to their badge colours.
var TypeColors = map[string]lipgloss.Color{
	"normal":   "#a8a77a",
	"fire":     "#ee8130",
	"water":    "#6390f0",
	"electric": "#f7d02c",
	"grass":    "#7ac74c",
	"ice":      "#96d9d6",
	"fighting": "#c22e28",
	"poison":   "#a33ea1",
	"ground":   "#e2bf65",
	"flying":   "#a98ff3",
	"psychic":  "#f95587",
	"bug":      "#a6b91a",
	"rock":     "#b6a136",
	"ghost":    "#735797",
	"dragon":   "#6f35fc",
	"dark":     "#705746",
	"steel":    "#b7b7ce",
	"fairy":    "#d685ad",
}
