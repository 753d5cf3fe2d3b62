package adapters

import (
	"context"
	"fmt"

	"github.com/VoxDroid/pokedex/internal/pokeapi"
	"github.com/VoxDroid/pokedex/internal/pokedex"
)

// DetailAdapterImpl adapts pokeapi.Client to DetailAdapter.
type DetailAdapterImpl struct{ client *pokeapi.Client }

// NewDetailAdapter returns an adapter that fetches species data through c.
func NewDetailAdapter(c *pokeapi.Client) *DetailAdapterImpl {
	return &DetailAdapterImpl{client: c}
}

// Describe fetches the species resource named by r.Species. A record without
// a species link gets the fallback description and no error.
func (d *DetailAdapterImpl) Describe(ctx context.Context, r pokedex.Record) (Detail, error) {
	out := Detail{
		Record:      r,
		Description: pokeapi.NoDescription,
		Sprite:      r.BestSprite(),
		CryURL:      pokeapi.CryURL(r.Name),
	}
	if r.Species.URL == "" {
		return out, nil
	}
	sp, err := d.client.FetchSpecies(ctx, r.Species.URL)
	if err != nil {
		return out, fmt.Errorf("describe %s: %w", r.Name, err)
	}
	out.Description = pokeapi.Description(sp)
	out.Genus = sp.EnglishGenus()
	return out, nil
}
