package templates

import (
	"fmt"
	"strings"
)

// ValidateProjectName checks if a project name can be used as a single directory name.
// Anything goes except an empty name, path separators and the "." and ".." entries.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid project name %q: must not contain path separators", name)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("invalid project name %q: must name a new directory", name)
	}

	return nil
}
