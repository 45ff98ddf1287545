// Package add provides the fastkit add command group, which writes
// authentication and database code into an existing project.
package add

import (
	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
)

// NewAddCmd creates the add command group.
func NewAddCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "add",
		Short: "Add features to an existing project",
		Long:  `Commands that write standalone modules into an existing FastAPI project directory.`,
	}

	c.AddCommand(
		NewAuthCmd(cfg),
		NewDatabaseCmd(cfg),
	)

	return c
}
