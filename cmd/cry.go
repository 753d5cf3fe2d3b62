package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cryCmd = &cobra.Command{
	Use:   "cry <name|id>",
	Short: "Print or play a Pokémon's cry",
	Long: "Print the cry URL. With --play the configured player (cry.player or\n" +
		"$POKEDEX_CRY_PLAYER) is run with the URL appended. Example:\n  pokedex cry pikachu --play",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		r, err := a.resolve(cmd, args[0])
		if err != nil {
			return err
		}
		p, err := a.player()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.URL(r.Name))
		if play, _ := cmd.Flags().GetBool("play"); play {
			return p.Play(cmd.Context(), r.Name)
		}
		return nil
	},
}

func init() {
	cryCmd.Flags().Bool("play", false, "Play the cry with the configured player")
	rootCmd.AddCommand(cryCmd)
}
