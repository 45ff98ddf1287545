package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/fastkit/cli/internal/output"
)

//go:embed all:assets
var assetsFS embed.FS

// Store is a template root: every top-level directory is a template.
type Store struct {
	fsys     fs.FS
	location string
}

// NewStore wraps an fs.FS. location is only used in messages.
func NewStore(fsys fs.FS, location string) *Store {
	return &Store{fsys: fsys, location: location}
}

// DefaultStore returns the store backed by the templates compiled into the binary.
func DefaultStore() *Store {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// assets is a literal embedded directory
		panic(err)
	}
	return NewStore(sub, "embedded")
}

// NewDirStore returns a store rooted at an on-disk directory.
func NewDirStore(dir string) *Store {
	return NewStore(os.DirFS(dir), dir)
}

// Location describes where the templates come from.
func (s *Store) Location() string {
	return s.location
}

// Exists reports whether the template directory is present in the store.
func (s *Store) Exists(name string) bool {
	if !fs.ValidPath(name) || name == "." {
		return false
	}
	info, err := fs.Stat(s.fsys, name)
	return err == nil && info.IsDir()
}

// CopyTo copies the template tree byte-for-byte into dest and returns the copied files,
// relative and sorted. Symlinks are recreated with the same target; other special files
// are skipped.
func (s *Store) CopyTo(name, dest string) ([]string, error) {
	if !s.Exists(name) {
		return nil, fmt.Errorf("%q in %s: %w", name, s.location, ErrTemplateNotFound)
	}

	var copied []string
	err := fs.WalkDir(s.fsys, name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := relTo(name, p)
		target := filepath.Join(dest, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if err := s.copyLink(p, target); err != nil {
				return err
			}
			copied = append(copied, rel)
			return nil
		}
		if !d.Type().IsRegular() {
			output.Debug("skipping special file", "template", name, "path", rel, "mode", d.Type().String())
			return nil
		}

		if err := s.copyFile(p, target); err != nil {
			return err
		}
		copied = append(copied, rel)
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copying template %s: %w", name, err)
	}

	sort.Strings(copied)
	return copied, nil
}

func (s *Store) copyFile(src, target string) error {
	data, err := fs.ReadFile(s.fsys, src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	mode := fs.FileMode(0o644)
	if info, err := fs.Stat(s.fsys, src); err == nil && info.Mode()&0o111 != 0 {
		mode = 0o755
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

func (s *Store) copyLink(src, target string) error {
	link, err := fs.ReadLink(s.fsys, src)
	if err != nil {
		return fmt.Errorf("reading link %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := os.Symlink(link, target); err != nil {
		return fmt.Errorf("creating link %s: %w", target, err)
	}
	return nil
}

// relTo returns p relative to the template root, slash separated. The root itself is ".".
func relTo(root, p string) string {
	if p == root {
		return "."
	}
	rel := p[len(root)+1:]
	return path.Clean(rel)
}
