package templates

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/fastkit/cli/internal/errors"
	"github.com/fastkit/cli/internal/output"
	"github.com/fastkit/cli/internal/placeholder"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}

// PromptConfirmer writes the prompt to Out and reads one line from In.
// Only "y" or "Y" (surrounding whitespace ignored) accepts. EOF declines.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer.
func (p PromptConfirmer) Confirm(prompt string) (bool, error) {
	if _, err := io.WriteString(p.Out, output.StyleWarn.Render(prompt)); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y", nil
}

// OverwritePrompt returns the confirmation question for an existing destination.
func OverwritePrompt(dest string) string {
	return fmt.Sprintf("Directory '%s' already exists. Overwrite? All of its contents will be permanently deleted. (y/N): ", dest)
}

// StatFunc is the filesystem probe used by Plan.
type StatFunc func(name string) (fs.FileInfo, error)

// Scaffolder creates projects from a template store.
type Scaffolder struct {
	store   *Store
	confirm Confirmer
	stat    StatFunc
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithStat replaces os.Stat for planning.
func WithStat(stat StatFunc) Option {
	return func(s *Scaffolder) {
		s.stat = stat
	}
}

// NewScaffolder creates a scaffolder over store. A nil confirmer declines every overwrite.
func NewScaffolder(store *Store, confirm Confirmer, opts ...Option) *Scaffolder {
	if confirm == nil {
		confirm = ConfirmFunc(func(string) (bool, error) { return false, nil })
	}
	s := &Scaffolder{store: store, confirm: confirm, stat: os.Stat}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan validates the options and decides what Create will do without changing anything.
func (s *Scaffolder) Plan(opts CreateOptions) (*Plan, error) {
	if err := ValidateProjectName(opts.ProjectName); err != nil {
		return nil, &oerrors.DetailError{
			Type:    "validation failed",
			Message: err.Error(),
			Field:   "project_name",
			Hint:    "Use a single directory name without path separators.",
			Cause:   oerrors.ErrValidation,
		}
	}

	tmpl, err := Get(opts.TemplateName)
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown template: %s", opts.TemplateName),
			Field:   "--template",
			Hint:    fmt.Sprintf("Valid templates: %s", strings.Join(Names(), ", ")),
			Cause:   ErrUnknownTemplate,
		}
	}

	if !s.store.Exists(tmpl.Name) {
		return nil, &oerrors.DetailError{
			Type:     "not found",
			Message:  fmt.Sprintf("template '%s' not found", tmpl.Name),
			Location: s.store.Location(),
			Hint:     "Check --templates-dir or the templates.dir config setting.",
			Cause:    ErrTemplateNotFound,
		}
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	dest := filepath.Join(outputDir, opts.ProjectName)

	plan := &Plan{Template: tmpl, Destination: dest}

	_, err = s.stat(dest)
	switch {
	case err == nil:
		plan.Exists = true
		plan.NeedsConfirmation = !opts.Force
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("checking destination %s: %w", dest, err)
	}

	return plan, nil
}

// Create copies a template into OutputDir/ProjectName and substitutes {{PROJECT_NAME}}.
// A declined overwrite returns oerrors.ErrCancelled and leaves the filesystem untouched.
func (s *Scaffolder) Create(ctx context.Context, opts CreateOptions) (*Result, error) {
	plan, err := s.Plan(opts)
	if err != nil {
		return nil, err
	}

	if plan.NeedsConfirmation {
		ok, err := s.confirm.Confirm(OverwritePrompt(plan.Destination))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, oerrors.ErrCancelled
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if plan.Exists {
		output.Debug("removing existing destination", "path", plan.Destination)
		if err := os.RemoveAll(plan.Destination); err != nil {
			return nil, wrapFSError(err, plan.Destination, "removing existing directory")
		}
	}

	output.Debug("copying template",
		"template", plan.Template.Name,
		"store", s.store.Location(),
		"dest", plan.Destination)

	files, err := s.store.CopyTo(plan.Template.Name, plan.Destination)
	if err != nil {
		return nil, wrapFSError(err, plan.Destination, "copying template")
	}

	applied, err := placeholder.ApplyTree(plan.Destination, placeholder.Table{
		placeholder.ProjectName: opts.ProjectName,
	})
	if err != nil {
		return nil, wrapFSError(err, plan.Destination, "substituting placeholders")
	}

	return &Result{
		ProjectName:  opts.ProjectName,
		TemplateName: plan.Template.Name,
		Destination:  plan.Destination,
		Files:        files,
		Rewritten:    applied.Rewritten,
		Overwrote:    plan.Exists,
	}, nil
}

// NextSteps returns the instructions printed after a project is created.
func NextSteps(projectName string) []string {
	return []string{
		"1. cd " + projectName,
		"2. python -m venv venv",
		`3. source venv/bin/activate  # On Windows: venv\Scripts\activate`,
		"4. pip install -r requirements.txt",
		"5. fastapi dev main.py",
	}
}

// DocsURL is the interactive documentation URL of a freshly started project.
const DocsURL = "http://127.0.0.1:8000/docs"

func wrapFSError(err error, location, action string) error {
	if errors.Is(err, fs.ErrPermission) {
		return &oerrors.DetailError{
			Type:     "permission denied",
			Message:  fmt.Sprintf("%s: %v", action, err),
			Location: location,
			Cause:    oerrors.ErrPermission,
		}
	}
	return fmt.Errorf("%s: %w", action, err)
}
