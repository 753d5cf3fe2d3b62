package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/VoxDroid/pokedex/internal/config"
	"github.com/VoxDroid/pokedex/internal/logging"
)

var (
	cfgFile string
	verbose bool

	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "pokedex",
	Short:         "pokedex is a terminal Pokédex backed by PokeAPI",
	Long:          "pokedex lists, searches and shows Pokémon from PokeAPI, caching the roster in SQLite",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
		l, err := newLogger(cmd)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pokedex: run 'pokedex --help' to see available commands")
	},
}

// newLogger builds the process logger. The TUI owns the terminal so it always
// logs to a file; other commands log to stderr and stay quiet below warn
// unless --verbose is set.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	opts := logging.Options{Level: cfg.Log.Level, Verbose: verbose, File: cfg.Log.File}
	if cmd.Name() == "tui" && opts.File == "" {
		p, err := config.LogPath()
		if err != nil {
			return nil, err
		}
		opts.File = p
	}
	if opts.File == "" && !verbose {
		if lvl, err := logging.ParseLevel(opts.Level); err == nil && lvl < zapcore.WarnLevel {
			opts.Level = zapcore.WarnLevel.String()
		}
	}
	return logging.New(opts)
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $POKEDEX_HOME/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
