package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStore_HasEveryTemplate(t *testing.T) {
	store := DefaultStore()
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			assert.True(t, store.Exists(name))

			files := storeFiles(t, store, name)
			assert.NotEmpty(t, files)
			assert.Contains(t, files, "README.md")
		})
	}
}

func TestDefaultStore_EmbedsDotFiles(t *testing.T) {
	files := storeFiles(t, DefaultStore(), "rest-api")
	assert.Contains(t, files, ".env.example")
	assert.Contains(t, files, "routers/__init__.py")
}

// storeFiles lists the non-directory entries of a template, relative and sorted.
func storeFiles(t *testing.T, s *Store, name string) []string {
	t.Helper()
	var files []string
	err := fs.WalkDir(s.fsys, name, func(p string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if !d.IsDir() {
			files = append(files, relTo(name, p))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}

func TestStore_Exists(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"hello-world/main.py": {Data: []byte("x")},
		"stray.txt":           {Data: []byte("x")},
	}, "memory")

	assert.True(t, store.Exists("hello-world"))
	assert.False(t, store.Exists("rest-api"))
	assert.False(t, store.Exists("stray.txt"))
	assert.False(t, store.Exists("."))
	assert.False(t, store.Exists("../etc"))
}

func TestStore_CopyToMissing(t *testing.T) {
	_, err := NewStore(fstest.MapFS{}, "memory").CopyTo("hello-world", t.TempDir())
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestStore_CopyTo(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"rest-api/main.py":             {Data: []byte("print('{{PROJECT_NAME}}')\n")},
		"rest-api/routers/items.py":    {Data: []byte("items")},
		"rest-api/routers/__init__.py": {Data: []byte{}},
		"rest-api/run.sh":              {Data: []byte("#!/bin/sh\n"), Mode: 0o755},
	}, "memory")

	dest := filepath.Join(t.TempDir(), "out")
	files, err := store.CopyTo("rest-api", dest)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.py", "routers/__init__.py", "routers/items.py", "run.sh"}, files)

	data, err := os.ReadFile(filepath.Join(dest, "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('{{PROJECT_NAME}}')\n", string(data), "copy must not substitute")

	info, err := os.Stat(filepath.Join(dest, "run.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100)
}

func TestNewDirStore(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "hello-world"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "hello-world", "main.py"), []byte("x"), 0o644))

	store := NewDirStore(root)
	assert.Equal(t, root, store.Location())
	assert.True(t, store.Exists("hello-world"))
	assert.False(t, store.Exists("rest-api"))
}

func TestNewDirStore_CopiesSymlinks(t *testing.T) {
	root := t.TempDir()
	tmpl := filepath.Join(root, "hello-world")
	require.NoError(t, os.MkdirAll(filepath.Join(tmpl, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpl, "main.py"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpl, "docs", "guide.md"), []byte("guide"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join("docs", "guide.md"), filepath.Join(tmpl, "README.md")))

	store := NewDirStore(root)
	dest := filepath.Join(t.TempDir(), "out")
	files, err := store.CopyTo("hello-world", dest)
	require.NoError(t, err)

	assert.Equal(t, storeFiles(t, store, "hello-world"), files)
	assert.Equal(t, []string{"README.md", "docs/guide.md", "main.py"}, files)

	link, err := os.Readlink(filepath.Join(dest, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("docs", "guide.md"), link)

	data, err := os.ReadFile(filepath.Join(dest, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "guide", string(data))
}
