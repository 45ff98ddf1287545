// Package templates provides the embedded FastAPI project templates and the scaffolder behind fastkit new.
package templates

// Template represents a project template with its metadata.
type Template struct {
	// Name is the template identifier (hello-world, rest-api, ...).
	Name string `json:"name" yaml:"name"`

	// Description is the one-line summary shown by --list-templates.
	Description string `json:"description" yaml:"description"`

	// Default indicates if this is the template used when --template is omitted.
	Default bool `json:"default" yaml:"default"`
}

// CreateOptions configures project creation.
type CreateOptions struct {
	// ProjectName is the project directory name and the {{PROJECT_NAME}} value.
	ProjectName string

	// TemplateName is the template to copy.
	TemplateName string

	// OutputDir is the parent directory of the new project. Empty means ".".
	OutputDir string

	// Force overwrites an existing destination without asking.
	Force bool
}

// Plan is the decision made before anything touches the filesystem.
type Plan struct {
	// Template is the resolved template.
	Template Template

	// Destination is OutputDir/ProjectName.
	Destination string

	// Exists reports whether the destination is already present.
	Exists bool

	// NeedsConfirmation is set when an existing destination must be confirmed before removal.
	NeedsConfirmation bool
}

// Result contains the outcome of project creation.
type Result struct {
	// ProjectName is the name substituted into the project.
	ProjectName string

	// TemplateName is the template that was used.
	TemplateName string

	// Destination is the directory that was created.
	Destination string

	// Files lists the copied files, relative and slash separated.
	Files []string

	// Rewritten lists the files where placeholders were substituted.
	Rewritten []string

	// Overwrote is set when an existing destination was removed first.
	Overwrote bool
}
