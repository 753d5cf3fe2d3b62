package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VoxDroid/pokedex/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [toggle|dark|light]",
	Short:     "Show or change the saved colour theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"toggle", "dark", "light"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		cur := a.themes.Current()
		if len(args) == 1 {
			if args[0] == "toggle" {
				cur = a.themes.Toggle()
			} else {
				n, err := theme.Parse(args[0])
				if err != nil {
					return err
				}
				cur = a.themes.Set(n)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cur.Icon(), cur)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
