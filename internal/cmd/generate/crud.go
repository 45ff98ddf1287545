package generate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
	"github.com/fastkit/cli/internal/cmdutil"
	"github.com/fastkit/cli/internal/fragments"
	"github.com/fastkit/cli/internal/output"
)

// crudOptions holds the flags for the crud command.
type crudOptions struct {
	dir     cmdutil.OutputDirFlag
	model   string
	parents bool
}

// NewCRUDCmd creates the generate crud command.
func NewCRUDCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &crudOptions{}

	c := &cobra.Command{
		Use:   "crud",
		Short: "Generate a CRUD router for a model",
		Long: `Generate a FastAPI router with create, list, get, update and delete
endpoints for a SQLAlchemy model.

The router is written to <output-dir>/<model lowercased>.py and serves
/<model lowercased>s/.

Examples:
  fastkit generate crud --model Product
  fastkit generate crud --model BlogPost --output-dir app/routers --parents`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runCRUD(c, opts)
		},
	}

	c.Flags().StringVar(&opts.model, "model", "", "Model class name, e.g. Product (required)")
	opts.dir.AddTo(c, fragments.DefaultCRUDDir, "Directory to write the router into")
	c.Flags().BoolVarP(&opts.parents, "parents", "p", false, "Create the output directory if it does not exist")

	return c
}

func runCRUD(c *cobra.Command, opts *crudOptions) error {
	frag, err := fragments.CRUD(opts.model)
	if err != nil {
		return cmdutil.Exit(err)
	}

	if opts.parents {
		if err := os.MkdirAll(opts.dir.Dir, 0o755); err != nil {
			return cmdutil.Exit(fmt.Errorf("creating %s: %w", opts.dir.Dir, err))
		}
		output.Debug("ensured output directory", "path", opts.dir.Dir)
	}

	written, err := frag.Write(opts.dir.Dir)
	if err != nil {
		return cmdutil.Exit(err)
	}

	cmdutil.WriteReport(c.OutOrStdout(), cmdutil.Report{
		Created:   written,
		Headline:  fmt.Sprintf("CRUD router for '%s' created successfully!", opts.model),
		NextSteps: frag.NextSteps,
	})
	return nil
}
