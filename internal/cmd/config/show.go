package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
	"github.com/fastkit/cli/internal/cmdutil"
	"github.com/fastkit/cli/internal/output"
)

func newShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after merging the config file, FASTKIT_*
environment variables and defaults.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			f, ok := output.ParseFormat(format)
			if !ok || f == output.FormatTable {
				return cmdutil.Validation(
					fmt.Sprintf("unsupported output format: %s", format), "--output",
					"Valid formats: yaml, json")
			}

			out := c.OutOrStdout()
			if f == output.FormatYAML {
				fmt.Fprintf(out, "# source: %s\n", cfg.ConfigPath)
			}
			return cmdutil.Exit(output.WriteStructured(out, f, cfg.Settings()))
		},
	}

	c.Flags().StringVarP(&format, "output", "o", string(output.FormatYAML),
		fmt.Sprintf("Output format (%s)", strings.Join([]string{string(output.FormatYAML), string(output.FormatJSON)}, ", ")))

	return c
}
