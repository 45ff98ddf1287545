// Package placeholder substitutes literal {{TOKEN}} markers in text and file trees.
package placeholder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fastkit/cli/internal/output"
)

// ProjectName is the token replaced with the project name when scaffolding.
const ProjectName = "{{PROJECT_NAME}}"

// Table maps literal tokens to their replacement values.
type Table map[string]string

// keys returns the non-empty keys ordered longest first, then lexicographically.
func (t Table) keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// replacer builds a single-pass replacer. Replaced values are never rescanned.
func (t Table) replacer() *strings.Replacer {
	keys := t.keys()
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, t[k])
	}
	return strings.NewReplacer(pairs...)
}

// Contains reports whether text holds at least one token of the table.
func (t Table) Contains(text string) bool {
	for k := range t {
		if k != "" && strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Render replaces every occurrence of every token in text.
// Tokens absent from text are ignored. When two tokens match at the same
// position the longer one wins.
func Render(text string, table Table) string {
	if len(table) == 0 {
		return text
	}
	return table.replacer().Replace(text)
}

// Excluded directory names and file extensions skipped by ApplyTree.
var (
	excludedDirs = map[string]bool{
		"__pycache__": true,
		".git":        true,
		"venv":        true,
		".venv":       true,
	}

	excludedExts = map[string]bool{
		".pyc":   true,
		".pyo":   true,
		".so":    true,
		".dll":   true,
		".dylib": true,
	}
)

// Excluded reports whether a path relative to the tree root is outside substitution.
func Excluded(rel string, isDir bool) bool {
	if isDir {
		return excludedDirs[filepath.Base(rel)]
	}
	return excludedExts[strings.ToLower(filepath.Ext(rel))]
}

// Result reports what ApplyTree did. Paths are relative to the root, slash separated.
type Result struct {
	Visited   []string
	Rewritten []string
	Skipped   []string
}

// ApplyTree substitutes tokens in every eligible regular file under root.
// Files that are not valid UTF-8 or cannot be read for lack of permission are skipped.
// Any other I/O error aborts the walk.
func ApplyTree(root string, table Table) (*Result, error) {
	res := &Result{}
	repl := table.replacer()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) && path != root {
				output.Debug("skipping unreadable path", "path", rel)
				res.Skipped = append(res.Skipped, rel)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return walkErr
		}

		if d.IsDir() {
			if path != root && Excluded(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || Excluded(rel, false) {
			return nil
		}

		res.Visited = append(res.Visited, rel)

		changed, err := applyFile(path, table, repl)
		switch {
		case errors.Is(err, errSkip):
			output.Debug("skipping file", "path", rel)
			res.Skipped = append(res.Skipped, rel)
			return nil
		case err != nil:
			return fmt.Errorf("substituting %s: %w", rel, err)
		}

		if changed {
			res.Rewritten = append(res.Rewritten, rel)
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	return res, nil
}

var errSkip = errors.New("skip")

// applyFile rewrites path in place when it contains a token.
func applyFile(path string, table Table, repl *strings.Replacer) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, errSkip
		}
		return false, err
	}

	if !utf8.Valid(data) {
		return false, errSkip
	}

	text := string(data)
	if !table.Contains(text) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	if err := os.WriteFile(path, []byte(repl.Replace(text)), info.Mode().Perm()); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return false, errSkip
		}
		return false, err
	}
	return true, nil
}
