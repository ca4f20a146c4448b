// Package cli wires the hailstone library packages into a cobra command tree.
//
// Every command prints one JSON document on stdout; diagnostics go through
// slog on stderr.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hailstone/internal/config"
	"github.com/katalvlaran/hailstone/internal/logging"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer
	err io.Writer

	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the command tree writing results to out and
// diagnostics to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.Discard(), out: out, err: errOut}

	root := &cobra.Command{
		Use:   "hailstone",
		Short: "Explore generalized Collatz sequences",
		Long: `hailstone generates and classifies generalized Collatz sequences
(divide by X when divisible, otherwise Y·n + Z), runs the prime variant,
inverts the step into predecessor trees and catalogs cycles.

Examples:
  hailstone sequence 27 --stats
  hailstone sequence 7 --x 2 --y 5 --z 1
  hailstone prime 145 --p 7
  hailstone preds 16 --shortcuts --k 8
  hailstone tree --depth 8 --reaches 1:5
  hailstone catalog --signature rotation -- -20 -1`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text, json or auto")

	root.AddCommand(
		newSequenceCmd(a),
		newPrimeCmd(a),
		newPrimesCmd(a),
		newStripCmd(a),
		newPredsCmd(a),
		newTreeCmd(a),
		newCatalogCmd(a),
		newConfigCmd(a),
	)

	return root
}

// Execute runs the command tree with args under ctx.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// setup loads the configuration and builds the logger; flags win over the file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	log, err := logging.New(a.err, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.With("cmd", cmd.Name(), "run", uuid.NewString())
	a.log.Debug("configuration loaded", "path", a.configPath)

	return nil
}
