package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/spf13/cobra"

	"github.com/fchimpan/gh-color-switch/internal/audio"
	"github.com/fchimpan/gh-color-switch/internal/game"
	"github.com/fchimpan/gh-color-switch/internal/store"
	"github.com/fchimpan/gh-color-switch/internal/tui"
)

type Deps struct {
	OpenStore   func(path string) (game.Store, error)
	DefaultPath func() (string, error)
	NewPlayer   func() audio.Player
	RunTUI      func(ctx context.Context, opts tui.Options, st game.Store, player audio.Player) error
	IsTerminal  func() bool
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore:   openFileStore,
		DefaultPath: store.DefaultPath,
		NewPlayer:   audio.NewSpeaker,
		RunTUI:      defaultRunTUI,
		IsTerminal:  func() bool { return term.FromEnv().IsTerminalOutput() },
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

func openFileStore(path string) (game.Store, error) {
	f, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func NewRootCmd(deps Deps) *cobra.Command {
	var speed float64
	var seed uint64
	var scoresFile string
	var mute bool
	var debug bool

	c := &cobra.Command{
		Use:          "color-switch",
		Short:        "Tap to turn the color wheel and match the falling ball",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if speed <= 0 {
				return fmt.Errorf("--speed must be > 0")
			}
			if seed == 0 {
				seed = uint64(deps.Now().UnixNano())
			}

			closeLog, err := setupLogging(debug, logFileName)
			if err != nil {
				return err
			}
			defer closeLog()

			opts := tui.Options{
				Seed:   seed,
				Speed:  speed,
				Muted:  mute,
				Tuning: game.DefaultTuning(),
			}
			if err := run(cmd.Context(), deps, scoresFile, opts); err != nil {
				if store.IsParseError(err) {
					fmt.Fprintln(deps.Stderr, "hint: delete or fix the scores file, or pass --scores-file")
				}
				return err
			}
			return nil
		},
	}

	c.PersistentFlags().StringVar(&scoresFile, "scores-file", "", "path of the scores file (default: user config dir)")
	c.Flags().Float64VarP(&speed, "speed", "s", 1.0, "game speed multiplier (1.0 is normal)")
	c.Flags().Uint64Var(&seed, "seed", 0, "random seed for ball colors (default: time based)")
	c.Flags().BoolVarP(&mute, "mute", "m", false, "start with sound off")
	c.Flags().BoolVar(&debug, "debug", false, "write a debug log to "+logFileName)

	c.AddCommand(newScoresCmd(deps, &scoresFile))

	c.SetOut(deps.Stdout)
	c.SetErr(deps.Stderr)
	return c
}
