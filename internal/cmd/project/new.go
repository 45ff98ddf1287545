// Package project provides the fastkit new and fastkit templates commands.
package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fastkit/cli/internal/cmdtypes"
	"github.com/fastkit/cli/internal/cmdutil"
	"github.com/fastkit/cli/internal/config"
	oerrors "github.com/fastkit/cli/internal/errors"
	"github.com/fastkit/cli/internal/output"
	"github.com/fastkit/cli/internal/templates"
)

// newOptions holds the flags for the new command.
type newOptions struct {
	template      string
	output        string
	listTemplates bool
	force         bool
	templatesDir  string
}

// NewNewCmd creates the new command.
func NewNewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	opts := &newOptions{}

	c := &cobra.Command{
		Use:   "new <project-name>",
		Short: "Create a new FastAPI project from a template",
		Long: fmt.Sprintf(`Create a new FastAPI project from a template.

The template is copied into <output>/<project-name> and every
{{PROJECT_NAME}} marker is replaced with the project name.

%s
Examples:
  # Create a project with the hello-world template (default)
  fastkit new my-api

  # Create a project with a specific template
  fastkit new my-api --template rest-api

  # Create a project in another directory
  fastkit new my-api --output ./projects`, templates.FormatList()),
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runNew(c, args, cfg, opts)
		},
	}

	c.Flags().StringVarP(&opts.template, "template", "t", templates.DefaultTemplateName,
		fmt.Sprintf("Template to use (%s)", strings.Join(templates.Names(), ", ")))
	c.Flags().StringVarP(&opts.output, "output", "o", ".", "Parent directory for the project")
	c.Flags().BoolVar(&opts.listTemplates, "list-templates", false, "List available templates and exit")
	c.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing project directory without asking")
	c.Flags().StringVar(&opts.templatesDir, "templates-dir", "", "Read templates from this directory instead of the embedded set (env: FASTKIT_TEMPLATES_DIR)")

	return c
}

func runNew(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, opts *newOptions) error {
	out := c.OutOrStdout()

	if opts.listTemplates {
		fmt.Fprint(out, templates.FormatList())
		return nil
	}

	if len(args) == 0 {
		return cmdutil.Validation("project name is required", "project_name",
			"Usage: fastkit new <project-name> [--template NAME]")
	}
	projectName := args[0]

	settings := cfg.Settings()
	templateName := cmdutil.ResolveString(c, "template", opts.template, settings.Templates.Default, templates.DefaultTemplateName)

	store, err := resolveStore(c, opts, settings)
	if err != nil {
		return cmdutil.Exit(err)
	}

	confirmer := templates.PromptConfirmer{In: c.InOrStdin(), Out: out}
	scaffolder := templates.NewScaffolder(store, confirmer)

	createOpts := templates.CreateOptions{
		ProjectName:  projectName,
		TemplateName: templateName,
		OutputDir:    opts.output,
		Force:        opts.force,
	}

	plan, err := scaffolder.Plan(createOpts)
	if err != nil {
		return cmdutil.Exit(err)
	}

	// Ask before the spinner takes over the terminal.
	if plan.NeedsConfirmation {
		ok, err := confirmer.Confirm(templates.OverwritePrompt(plan.Destination))
		if err != nil {
			return cmdutil.Exit(err)
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		createOpts.Force = true
	}

	fmt.Fprintf(out, "Creating project '%s' from template '%s'...\n",
		output.StyleNoun.Render(projectName), output.StyleNoun.Render(plan.Template.Name))

	var result *templates.Result
	err = output.RunWithSpinner(c.Context(), func() error {
		var createErr error
		result, createErr = scaffolder.Create(c.Context(), createOpts)
		return createErr
	}, output.WithTitle("Copying template..."))
	if err != nil {
		if errors.Is(err, oerrors.ErrCancelled) {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
		return cmdutil.Exit(err)
	}

	absDest, err := filepath.Abs(result.Destination)
	if err != nil {
		absDest = result.Destination
	}

	output.Debug("project created",
		"template", result.TemplateName,
		"files", len(result.Files),
		"rewritten", len(result.Rewritten),
		"overwrote", result.Overwrote)

	fmt.Fprintf(out, "\n%s\n\n", output.FormatCheckmark("Project created successfully at: "+absDest))
	fmt.Fprint(out, output.RenderPathTree(projectName, result.Files))
	fmt.Fprintf(out, "\n%s", output.FormatNextSteps(templates.NextSteps(projectName)))
	fmt.Fprintf(out, "\nVisit %s for interactive API documentation\n", templates.DocsURL)

	return nil
}

// resolveStore picks the template store: --templates-dir > config > embedded.
func resolveStore(c *cobra.Command, opts *newOptions, settings *config.Config) (*templates.Store, error) {
	dir := settings.Templates.Dir
	if c.Flags().Changed("templates-dir") {
		dir = opts.templatesDir
	}
	if dir == "" {
		return templates.DefaultStore(), nil
	}

	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, fmt.Errorf("expanding templates dir: %w", err)
	}
	output.Debug("using template directory", "path", expanded)
	return templates.NewDirStore(expanded), nil
}
