package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hailstone/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.Encode(a.out, a.cfg)
		},
	}
}
