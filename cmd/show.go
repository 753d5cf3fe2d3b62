package cmd

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/pokedex/internal/nameutil"
	"github.com/VoxDroid/pokedex/internal/pokedex"
)

var showCmd = &cobra.Command{
	Use:   "show <name|id>",
	Short: "Show the detail card for one Pokémon",
	Long:  "Show stats, abilities and the Pokédex entry. Example:\n  pokedex show 25",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		ctx := cmd.Context()
		r, err := a.resolve(cmd, args[0])
		if err != nil {
			return err
		}
		desc, genus := a.describe(ctx)(r)
		writeCard(cmd.OutOrStdout(), r, desc, genus)
		return nil
	},
}

// resolve finds a record by exact name or id, trying the cached roster
// before PokeAPI.
func (a *app) resolve(cmd *cobra.Command, term string) (pokedex.Record, error) {
	term = strings.ToLower(nameutil.SanitizeQuery(term))
	if err := nameutil.ValidateIdentifier(term); err != nil {
		return pokedex.Record{}, err
	}
	if cfg.Cache.Enabled {
		if records, ok, err := a.cache.Load(); err == nil && ok {
			for _, r := range records {
				if r.Name == term || strconv.Itoa(r.ID) == term {
					return r, nil
				}
			}
		}
	}
	r, err := a.client.FetchByIdentifier(cmd.Context(), term)
	if errors.Is(err, pokedex.ErrLookupNotFound) {
		cmd.PrintErrln(pokedex.NotFoundMessage(term))
	}
	if err != nil {
		return pokedex.Record{}, err
	}
	return r, nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
