package cli

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hailstone/enctree"
	"github.com/katalvlaran/hailstone/predecessor"
)

type nodeJSON struct {
	Value  string `json:"value"`
	Parent string `json:"parent,omitempty"`
	Depth  int    `json:"depth"`
	Pos1   int    `json:"pos1"`
	Pos2   int    `json:"pos2"`
	End2   int    `json:"q2End"`
}

type reachJSON struct {
	U       string `json:"u"`
	V       string `json:"v"`
	Reaches bool   `json:"reaches"`
}

func newTreeCmd(a *app) *cobra.Command {
	var (
		root       string
		depth      int
		valueLimit int64
		shortcuts  bool
		kMax       int
		reaches    []string
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Grow the reverse tree of a root breadth-first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := parseBig(root)
			if err != nil {
				return err
			}
			t := a.cfg.Tree
			f := cmd.Flags()
			if f.Changed("depth") {
				t.DepthLimit = depth
			}
			if f.Changed("value-limit") {
				t.ValueLimit = valueLimit
			}
			if f.Changed("shortcuts") {
				t.Shortcuts = shortcuts
			}
			if f.Changed("k") {
				t.KMax = kMax
			}

			preds := enctree.PredecessorFunc(predecessor.Reverse)
			if t.Shortcuts {
				k := t.KMax
				preds = func(m *big.Int) []*big.Int { return predecessor.ReverseWithShortcuts(m, k) }
			}
			var limit *big.Int
			if t.ValueLimit > 0 {
				limit = big.NewInt(t.ValueLimit)
			}
			tr, err := enctree.BuildFromReverse(r, preds,
				enctree.WithContext(cmd.Context()),
				enctree.WithDepthLimit(t.DepthLimit),
				enctree.WithValueLimit(limit),
				enctree.WithOnInsert(func(parent, child *big.Int, d int) {
					a.log.Debug("node inserted", "parent", parent, "child", child, "depth", d)
				}),
			)
			if err != nil {
				return err
			}
			a.log.Info("tree built", "root", r, "nodes", tr.Len())

			out := struct {
				Root    string      `json:"root"`
				Size    int         `json:"size"`
				Q1      []string    `json:"q1"`
				Q2      []string    `json:"q2"`
				Nodes   []nodeJSON  `json:"nodes"`
				Reaches []reachJSON `json:"reaches,omitempty"`
			}{Root: r.String(), Size: tr.Len(), Q1: decimal(tr.Q1()), Q2: decimal(tr.Q2())}

			for _, v := range tr.Q2() {
				n := nodeJSON{Value: v.String()}
				if p, ok := tr.Parent(v); ok {
					n.Parent = p.String()
				}
				n.Depth, _ = tr.Depth(v)
				n.Pos1, _ = tr.Position1(v)
				n.Pos2, _ = tr.Position2(v)
				n.End2, _ = tr.SubtreeEnd(v)
				out.Nodes = append(out.Nodes, n)
			}
			for _, q := range reaches {
				u, v, err := parsePair(q)
				if err != nil {
					return err
				}
				out.Reaches = append(out.Reaches, reachJSON{U: u.String(), V: v.String(), Reaches: tr.Reaches(u, v)})
			}

			return a.emit(out)
		},
	}
	f := cmd.Flags()
	f.StringVar(&root, "root", "1", "root value")
	f.IntVar(&depth, "depth", enctree.DefaultDepthLimit, "levels expanded below the root")
	f.Int64Var(&valueLimit, "value-limit", enctree.DefaultValueLimit, "largest admitted value; 0 for no limit")
	f.BoolVar(&shortcuts, "shortcuts", false, "add shortcut odd predecessors")
	f.IntVar(&kMax, "k", 64, "largest k for shortcut predecessors")
	f.StringSliceVar(&reaches, "reaches", nil, "ancestry queries u:v")

	return cmd
}

// parsePair reads "u:v".
func parsePair(s string) (*big.Int, *big.Int, error) {
	us, vs, ok := strings.Cut(s, ":")
	if !ok {
		return nil, nil, fmt.Errorf("cli: reaches query %q is not u:v", s)
	}
	u, err := parseBig(us)
	if err != nil {
		return nil, nil, err
	}
	v, err := parseBig(vs)
	if err != nil {
		return nil, nil, err
	}

	return u, v, nil
}
