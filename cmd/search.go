package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VoxDroid/pokedex/internal/pokeapi"
	"github.com/VoxDroid/pokedex/internal/pokedex"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search the roster, falling back to PokeAPI",
	Long: "Search by name, number or type. When nothing in the loaded roster\n" +
		"matches, the term is looked up on PokeAPI. Example:\n  pokedex search mew",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		ctx := cmd.Context()
		r := &textRenderer{w: cmd.OutOrStdout(), muted: true, extra: a.describe(ctx)}
		s := a.session(r)
		if err := s.Start(ctx); err != nil {
			cmd.PrintErrln(pokedex.InitFailureMessage)
			return err
		}
		r.muted = false

		out, err := s.Searcher.Submit(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		return out.Err
	},
}

// describe returns a species fetcher for detail cards. Failures degrade to
// the fallback description.
func (a *app) describe(ctx context.Context) func(pokedex.Record) (string, string) {
	return func(r pokedex.Record) (string, string) {
		if r.Species.URL == "" {
			return pokeapi.NoDescription, ""
		}
		sp, err := a.client.FetchSpecies(ctx, r.Species.URL)
		if err != nil {
			a.logger.Warn("fetch species", zap.String("pokemon", r.Name), zap.Error(err))
			return pokedex.DetailErrorMessage, ""
		}
		return pokeapi.Description(sp), sp.EnglishGenus()
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
