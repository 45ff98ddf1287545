package add

import (
	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
	"github.com/fastkit/cli/internal/cmdutil"
	"github.com/fastkit/cli/internal/fragments"
)

// NewAuthCmd creates the add auth command.
func NewAuthCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var dir cmdutil.OutputDirFlag
	var minutes int

	c := &cobra.Command{
		Use:   "auth",
		Short: "Add JWT authentication",
		Long: `Add JWT authentication to an existing project.

Writes auth.py (token handling and /auth routes), user_model_snippet.py
(SQLAlchemy User model) and auth_requirements.txt into the output directory,
which must already exist.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			frag, err := fragments.Auth(fragments.AuthOptions{TokenExpireMinutes: minutes})
			if err != nil {
				return cmdutil.Exit(err)
			}
			written, err := frag.Write(dir.Dir)
			if err != nil {
				return cmdutil.Exit(err)
			}

			cmdutil.WriteReport(c.OutOrStdout(), cmdutil.Report{
				Created:   written,
				Headline:  "Authentication scaffolding added successfully!",
				Details:   frag.Details,
				NextSteps: frag.NextSteps,
			})
			return nil
		},
	}

	dir.AddTo(c, ".", "Project directory to write into (must exist)")
	c.Flags().IntVar(&minutes, "token-expire-minutes", fragments.DefaultTokenExpireMinutes, "Access token lifetime in minutes")

	return c
}
