package cmd

import (
	"context"
	"fmt"

	"github.com/fchimpan/gh-color-switch/internal/audio"
	"github.com/fchimpan/gh-color-switch/internal/game"
	"github.com/fchimpan/gh-color-switch/internal/tui"
)

func run(ctx context.Context, deps Deps, scoresFile string, opts tui.Options) error {
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}
	if deps.IsTerminal == nil {
		return fmt.Errorf("deps.IsTerminal is nil")
	}
	if !deps.IsTerminal() {
		return fmt.Errorf("color-switch needs an interactive terminal")
	}

	st, err := openStore(deps, scoresFile)
	if err != nil {
		return err
	}

	var player audio.Player = audio.Nop{}
	if deps.NewPlayer != nil {
		player = deps.NewPlayer()
	}
	defer player.Close()

	return deps.RunTUI(ctx, opts, st, player)
}

// openStore opens the scores file at path, or at the default location when
// path is empty.
func openStore(deps Deps, path string) (game.Store, error) {
	if deps.OpenStore == nil {
		return nil, fmt.Errorf("deps.OpenStore is nil")
	}
	if path == "" {
		if deps.DefaultPath == nil {
			return nil, fmt.Errorf("deps.DefaultPath is nil")
		}
		p, err := deps.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	st, err := deps.OpenStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scores: %w", err)
	}
	return st, nil
}
