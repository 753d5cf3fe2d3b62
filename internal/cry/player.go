// Package cry plays a Pokémon's cry through an external audio player.
package cry

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/VoxDroid/pokedex/internal/pokeapi"
)

// ErrNoPlayer is returned by Play when no player command is configured.
var ErrNoPlayer = errors.New("no cry player configured")

// Runner executes a program to completion. Tests inject fakes.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return fmt.Errorf("%s: %w: %s", name, err, msg)
	}
	return nil
}

// Player runs the configured command with the cry URL as its last argument.
type Player struct {
	argv   []string
	runner Runner
	logger *zap.Logger
}

// NewPlayer parses command with shell quoting rules. An empty command yields
// a player whose Play always returns ErrNoPlayer.
func NewPlayer(command string, runner Runner, logger *zap.Logger) (*Player, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse cry player %q: %w", command, err)
	}
	if runner == nil {
		runner = execRunner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{argv: argv, runner: runner, logger: logger}, nil
}

// Configured reports whether a player command is set.
func (p *Player) Configured() bool { return len(p.argv) > 0 }

// URL returns the cry location for name.
func (p *Player) URL(name string) string { return pokeapi.CryURL(name) }

// Play blocks until the player exits.
func (p *Player) Play(ctx context.Context, name string) error {
	if !p.Configured() {
		return ErrNoPlayer
	}
	url := p.URL(name)
	args := append(append([]string(nil), p.argv[1:]...), url)
	p.logger.Debug("playing cry", zap.String("pokemon", name), zap.String("player", p.argv[0]))
	if err := p.runner.Run(ctx, p.argv[0], args...); err != nil {
		p.logger.Warn("play cry", zap.String("pokemon", name), zap.Error(err))
		return fmt.Errorf("play cry for %s: %w", name, err)
	}
	return nil
}
