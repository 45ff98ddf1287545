// Package fragments generates standalone files that are added to an existing FastAPI project.
package fragments

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/fastkit/cli/internal/errors"
	"github.com/fastkit/cli/internal/output"
	"github.com/fastkit/cli/internal/placeholder"
)

//go:embed assets/*.tmpl
var assetsFS embed.FS

// ErrDirNotFound is returned when the destination directory does not exist.
var ErrDirNotFound = oerrors.Wrap(oerrors.ErrNotFound, "directory does not exist")

// File is one generated file.
type File struct {
	// Name is the file name inside the destination directory.
	Name string

	// Template is the file content before substitution.
	Template string
}

// Fragment is a set of files rendered with a shared placeholder table.
type Fragment struct {
	// Name identifies the fragment in messages (auth, database, crud).
	Name string

	// Files are written in order.
	Files []File

	// Table is applied to every file.
	Table placeholder.Table

	// Details are extra "key: value" lines printed after the files.
	Details [][2]string

	// NextSteps are the follow-up instructions.
	NextSteps []string
}

// Render returns the substituted content of every file keyed by name.
func (f *Fragment) Render() map[string]string {
	out := make(map[string]string, len(f.Files))
	for _, file := range f.Files {
		out[file.Name] = placeholder.Render(file.Template, f.Table)
	}
	return out
}

// Write renders every file into dir, which must already exist.
// It returns the written paths. Files already written stay on disk if a later write fails.
func (f *Fragment) Write(dir string) ([]string, error) {
	if err := requireDir(dir); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(f.Files))
	for _, file := range f.Files {
		target := filepath.Join(dir, file.Name)
		content := placeholder.Render(file.Template, f.Table)

		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return written, oerrors.NewPermissionError(
					fmt.Sprintf("cannot write %s", file.Name), target, "")
			}
			return written, fmt.Errorf("writing %s: %w", target, err)
		}

		output.Debug("created file", "fragment", f.Name, "path", target)
		written = append(written, target)
	}

	return written, nil
}

// requireDir checks that dir exists and is a directory.
func requireDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &oerrors.DetailError{
				Type:     "not found",
				Message:  fmt.Sprintf("Directory '%s' does not exist", dir),
				Location: dir,
				Hint:     "Create the directory first or pass an existing --output-dir.",
				Cause:    ErrDirNotFound,
			}
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  fmt.Sprintf("%s is not a directory", dir),
			Location: dir,
			Cause:    oerrors.ErrValidation,
		}
	}
	return nil
}

// mustAsset returns an embedded template. The names are literals in this package.
func mustAsset(name string) string {
	data, err := assetsFS.ReadFile("assets/" + name)
	if err != nil {
		panic(fmt.Sprintf("fragments: missing embedded asset %s: %v", name, err))
	}
	return string(data)
}
