package fragments

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/fastkit/cli/internal/errors"
	"github.com/fastkit/cli/internal/placeholder"
)

// DefaultCRUDDir is where generate crud writes when --output-dir is not given.
const DefaultCRUDDir = "./routers"

// modelNameRegex matches Python identifiers usable as class names.
var modelNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateModelName checks that name can be used as a Python class name.
func ValidateModelName(name string) error {
	if name == "" {
		return oerrors.NewValidationError("model name cannot be empty", "--model", "")
	}
	if !modelNameRegex.MatchString(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid model name %q: must start with a letter or underscore and contain only letters, digits, and underscores", name),
			"--model",
			"Use a class name such as Product or BlogPost.")
	}
	return nil
}

// CRUD builds the router fragment for a model: <lower>.py with
// <Model>Base/Create/Update/Response schemas and routes under /<lower>s.
func CRUD(modelName string) (*Fragment, error) {
	if err := ValidateModelName(modelName); err != nil {
		return nil, err
	}

	lower := strings.ToLower(modelName)
	fileName := lower + ".py"

	return &Fragment{
		Name: "crud",
		Files: []File{
			{Name: fileName, Template: mustAsset("crud_router.py.tmpl")},
		},
		Table: placeholder.Table{
			"{{MODEL_NAME}}":  modelName,
			"{{model_lower}}": lower,
		},
		NextSteps: []string{
			fmt.Sprintf("1. Update the schema fields in %s", fileName),
			"   (Replace the TODO comment with actual fields)",
			fmt.Sprintf("2. Ensure the %s model exists in models.py", modelName),
			"3. Include the router in your main.py:",
			fmt.Sprintf("   from .routers.%s import router as %s_router", lower, lower),
			fmt.Sprintf("   app.include_router(%s_router)", lower),
			"4. Test the endpoints at http://127.0.0.1:8000/docs",
			"",
			"Available endpoints:",
			fmt.Sprintf("  POST   /%ss/     - Create a new %s", lower, modelName),
			fmt.Sprintf("  GET    /%ss/     - List all %ss", lower, modelName),
			fmt.Sprintf("  GET    /%ss/{id} - Get a specific %s", lower, modelName),
			fmt.Sprintf("  PUT    /%ss/{id} - Update a %s", lower, modelName),
			fmt.Sprintf("  DELETE /%ss/{id} - Delete a %s", lower, modelName),
		},
	}, nil
}
