package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/fastkit/cli/internal/errors"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "hello-world"

// order is the stable listing order.
var order = []string{"hello-world", "rest-api", "auth-api", "full-stack", "microservice"}

// registry is the fixed set of known templates.
var registry = map[string]Template{
	"hello-world": {
		Name:        "hello-world",
		Description: "Basic FastAPI application",
		Default:     true,
	},
	"rest-api": {
		Name:        "rest-api",
		Description: "REST API with database integration",
	},
	"auth-api": {
		Name:        "auth-api",
		Description: "API with JWT authentication",
	},
	"full-stack": {
		Name:        "full-stack",
		Description: "FastAPI backend + frontend integration",
	},
	"microservice": {
		Name:        "microservice",
		Description: "Microservice architecture",
	},
}

var (
	// ErrUnknownTemplate is returned for a name outside the known set.
	ErrUnknownTemplate = oerrors.Wrap(oerrors.ErrValidation, "unknown template")

	// ErrTemplateNotFound is returned when a known template is missing from the store.
	ErrTemplateNotFound = oerrors.Wrap(oerrors.ErrNotFound, "template not found")
)

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := registry[name]
	if !ok {
		return Template{}, fmt.Errorf("%q: %w; valid templates: %s", name, ErrUnknownTemplate, strings.Join(Names(), ", "))
	}
	return t, nil
}

// List returns all available templates in a stable order.
func List() []Template {
	out := make([]Template, 0, len(order))
	for _, name := range order {
		out = append(out, registry[name])
	}
	return out
}

// Names returns all template names.
func Names() []string {
	return append([]string(nil), order...)
}

// FormatList renders the --list-templates output.
func FormatList() string {
	var b strings.Builder
	b.WriteString("Available templates:\n")
	for _, t := range List() {
		fmt.Fprintf(&b, "  %-15s - %s\n", t.Name, t.Description)
	}
	return b.String()
}
