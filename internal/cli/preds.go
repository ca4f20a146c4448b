package cli

import (
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hailstone/predecessor"
)

type shortcutJSON struct {
	P string `json:"p"`
	K int    `json:"k"`
}

func newPredsCmd(a *app) *cobra.Command {
	var (
		shortcuts   bool
		generalized bool
		kMax        int
	)
	cmd := &cobra.Command{
		Use:   "preds <m>",
		Short: "List the predecessors of m",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseBig(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("k") {
				kMax = a.cfg.Tree.KMax
			}

			var direct []*big.Int
			if generalized {
				direct = predecessor.ReverseRule(m, a.cfg.Sequence.Rule())
			} else {
				direct = predecessor.Reverse(m)
			}
			out := struct {
				M            string         `json:"m"`
				Predecessors []string       `json:"predecessors"`
				Shortcuts    []shortcutJSON `json:"shortcuts,omitempty"`
			}{M: m.String(), Predecessors: decimal(direct)}

			if shortcuts {
				for _, s := range predecessor.ShortcutOdd(m, kMax) {
					out.Shortcuts = append(out.Shortcuts, shortcutJSON{P: s.P.String(), K: s.K})
				}
			}
			a.log.Debug("predecessors listed", "m", m, "direct", len(direct), "shortcuts", len(out.Shortcuts))

			return a.emit(out)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&shortcuts, "shortcuts", false, "also list odd p with 3p+1 = 2^k·m")
	f.BoolVar(&generalized, "generalized", false, "invert the configured rule instead of 3n+1")
	f.IntVar(&kMax, "k", 64, "largest k for shortcut predecessors")

	return cmd
}
