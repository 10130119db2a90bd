package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fchimpan/gh-color-switch/internal/game"
	"github.com/fchimpan/gh-color-switch/internal/store"
)

func newScoresCmd(deps Deps, scoresFile *string) *cobra.Command {
	var reset bool

	c := &cobra.Command{
		Use:          "scores",
		Short:        "Show the high score and the most recent score",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(deps, *scoresFile)
			if err != nil {
				if store.IsParseError(err) {
					fmt.Fprintln(deps.Stderr, "hint: delete or fix the scores file, or pass --scores-file")
				}
				return err
			}
			if reset {
				st.SetInt(game.KeyHighscore, 0)
				st.SetInt(game.KeyRecentScore, 0)
				fmt.Fprintln(deps.Stdout, "scores reset")
				return nil
			}
			fmt.Fprintf(deps.Stdout, "highscore: %d\n", st.Int(game.KeyHighscore))
			fmt.Fprintf(deps.Stdout, "recent:    %d\n", st.Int(game.KeyRecentScore))
			return nil
		},
	}
	c.Flags().BoolVar(&reset, "reset", false, "set both scores back to 0")
	return c
}
