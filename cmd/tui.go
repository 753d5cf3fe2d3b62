package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VoxDroid/pokedex/cmd/tui/ui"
	"github.com/VoxDroid/pokedex/internal/cry"
	"github.com/VoxDroid/pokedex/internal/tui/adapters"
	modelpkg "github.com/VoxDroid/pokedex/internal/tui/model"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive Pokédex",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		player, err := a.player()
		if err != nil {
			// a bad player command only disables cries
			a.logger.Warn("cry player disabled", zap.Error(err))
			player, _ = cry.NewPlayer("", nil, a.logger.Named("cry"))
		}

		sink := ui.NewRenderSink()
		uiModel := modelpkg.New(modelpkg.Options{
			Session:  a.session(sink),
			Renderer: sink,
			Detail:   adapters.NewDetailAdapter(a.client),
			Sound:    adapters.NewSoundAdapter(player),
			Themes:   a.themes,
			Logger:   a.logger.Named("tui"),
		})

		p := ui.NewProgram(uiModel, sink)
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
