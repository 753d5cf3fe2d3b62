package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/pokedex/internal/pokedex"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the Pokémon roster",
	Long:  "List the roster loaded at startup. Example:\n  pokedex list --filter fire",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if n, _ := cmd.Flags().GetInt("count"); n > 0 {
			cfg.Collection.Count = n
		}
		s := a.session(pokedex.NopRenderer{})
		if err := s.Start(cmd.Context()); err != nil {
			cmd.PrintErrln(pokedex.InitFailureMessage)
			return err
		}

		records := s.Store.All()
		textFilter, _ := cmd.Flags().GetString("filter")
		if fuzzyFlag, _ := cmd.Flags().GetBool("fuzzy"); fuzzyFlag {
			records = pokedex.FuzzyRank(records, textFilter)
		} else {
			records = pokedex.Filter(records, textFilter)
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), pokedex.NoResultsMessage)
			return nil
		}
		writeRoster(cmd.OutOrStdout(), records)
		return nil
	},
}

func init() {
	listCmd.Flags().String("filter", "", "Filter by name, number or type")
	listCmd.Flags().Bool("fuzzy", false, "Rank by fuzzy match instead of substring filtering")
	listCmd.Flags().Int("count", 0, "Records to load when the cache is cold (default from config)")
	rootCmd.AddCommand(listCmd)
}
