package add

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
	"github.com/fastkit/cli/internal/cmdutil"
	"github.com/fastkit/cli/internal/database"
	"github.com/fastkit/cli/internal/fragments"
)

// NewDatabaseCmd creates the add database command.
func NewDatabaseCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var dir cmdutil.OutputDirFlag
	var dbType, projectName string

	c := &cobra.Command{
		Use:   "database",
		Short: "Add SQLAlchemy database configuration",
		Long: `Add SQLAlchemy database configuration to an existing project.

Writes database.py, models.py, database_requirements.txt and init_db.py
into the output directory, which must already exist.

Examples:
  fastkit add database
  fastkit add database --db-type postgresql --project-name shop`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			kind, err := database.ParseKind(dbType)
			if err != nil {
				return cmdutil.Exit(err)
			}

			frag := fragments.Database(kind, projectName)
			written, err := frag.Write(dir.Dir)
			if err != nil {
				return cmdutil.Exit(err)
			}

			cmdutil.WriteReport(c.OutOrStdout(), cmdutil.Report{
				Created:   written,
				Headline:  "Database configuration added successfully!",
				Details:   frag.Details,
				NextSteps: frag.NextSteps,
			})
			return nil
		},
	}

	dir.AddTo(c, ".", "Project directory to write into (must exist)")
	c.Flags().StringVar(&dbType, "db-type", string(database.SQLite),
		fmt.Sprintf("Database type (%s)", strings.Join(database.KindNames(), ", ")))
	c.Flags().StringVar(&projectName, "project-name", fragments.DefaultProjectName, "Name used for the database")

	return c
}
