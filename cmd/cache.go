package cmd

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/pokedex/internal/utils"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the roster cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the roster cache age and size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		st, err := a.cache.Status()
		if err != nil {
			return err
		}
		if !st.Present {
			fmt.Fprintln(cmd.OutOrStdout(), "cache: empty")
			return nil
		}
		state := "valid"
		if !st.Valid {
			state = "expired"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cache: %s, %s, written %s (ttl %s)\n",
			state, humanize.Bytes(uint64(st.Size)), humanize.Time(time.Now().Add(-st.Age)), a.cache.TTL())
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached roster",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			if !utils.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Clear the cached roster?") {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
		}
		if err := a.cache.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
		return nil
	},
}

func init() {
	cacheClearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cacheCmd.AddCommand(cacheStatusCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
