package project

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
	"github.com/fastkit/cli/internal/cmdutil"
	"github.com/fastkit/cli/internal/output"
	"github.com/fastkit/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "templates",
		Short: "List available project templates",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTemplates(c, format)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", string(output.FormatTable),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runTemplates(c *cobra.Command, format string) error {
	f, ok := output.ParseFormat(format)
	if !ok {
		return cmdutil.Validation(
			fmt.Sprintf("unknown output format: %s", format), "--output",
			fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")))
	}

	list := templates.List()
	out := c.OutOrStdout()

	if f != output.FormatTable {
		return cmdutil.Exit(output.WriteStructured(out, f, list))
	}

	tbl := output.NewTable("NAME", "DESCRIPTION", "DEFAULT")
	for _, t := range list {
		def := ""
		if t.Default {
			def = "yes"
		}
		tbl.Row(t.Name, t.Description, def)
	}
	fmt.Fprintln(out, tbl.String())
	return nil
}
