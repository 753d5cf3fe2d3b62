package pokeapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/VoxDroid/pokedex/internal/pokedex"
)

// NoDescription is used when a species has no English flavor text.
const NoDescription = "No description available."

// FlavorText is one localized Pokédex entry.
type FlavorText struct {
	FlavorText string                `json:"flavor_text"`
	Language   pokedex.NamedResource `json:"language"`
	Version    pokedex.NamedResource `json:"version"`
}

// Species is the subset of the pokemon-species resource used by the detail
// card.
type Species struct {
	ID                int                   `json:"id"`
	Name              string                `json:"name"`
	FlavorTextEntries []FlavorText          `json:"flavor_text_entries"`
	Genera            []Genus               `json:"genera"`
	Color             pokedex.NamedResource `json:"color"`
}

// Genus is a localized category such as "Seed Pokémon".
type Genus struct {
	Genus    string                `json:"genus"`
	Language pokedex.NamedResource `json:"language"`
}

// FetchSpecies loads the species document a record links to.
func (c *Client) FetchSpecies(ctx context.Context, speciesURL string) (Species, error) {
	if speciesURL == "" {
		return Species{}, fmt.Errorf("fetch species: empty url")
	}
	var s Species
	if err := c.getJSON(ctx, speciesURL, &s); err != nil {
		return Species{}, fmt.Errorf("fetch species: %w", err)
	}
	return s, nil
}

// Description returns the first English flavor text with the form feeds and
// hard line breaks PokeAPI embeds replaced by spaces.
func Description(s Species) string {
	for _, e := range s.FlavorTextEntries {
		if e.Language.Name != "en" || e.FlavorText == "" {
			continue
		}
		return strings.Join(strings.Fields(e.FlavorText), " ")
	}
	return NoDescription
}

// EnglishGenus returns the English genus, or "" when none is present.
func (s Species) EnglishGenus() string {
	for _, g := range s.Genera {
		if g.Language.Name == "en" {
			return g.Genus
		}
	}
	return ""
}

// CryURL is where Pokémon Showdown hosts the cry for name.
func CryURL(name string) string {
	return "https://play.pokemonshowdown.com/audio/cries/" + strings.ToLower(name) + ".mp3"
}
