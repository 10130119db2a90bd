package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/gh-color-switch/internal/audio"
	"github.com/fchimpan/gh-color-switch/internal/game"
	"github.com/fchimpan/gh-color-switch/internal/tui"
)

func defaultRunTUI(ctx context.Context, opts tui.Options, st game.Store, player audio.Player) error {
	p := tea.NewProgram(
		tui.NewModel(opts, st, player),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
