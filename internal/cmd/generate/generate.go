// Package generate provides the fastkit generate command group.
package generate

import (
	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
)

// NewGenerateCmd creates the generate command group.
func NewGenerateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate code for an existing project",
	}

	c.AddCommand(NewCRUDCmd(cfg))

	return c
}
