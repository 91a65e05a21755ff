package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# test\n"), 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.hcl"))
	touch(t, filepath.Join(root, "nested", "a.hcl"))
	touch(t, filepath.Join(root, "notes.txt"))

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "a.hcl"),
	}, files)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestFindLayoutFiles(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "cells.hcl")
	touch(t, file)
	touch(t, filepath.Join(root, "empty", "readme.md"))

	t.Run("file and overlapping dir are deduplicated", func(t *testing.T) {
		files, err := FindLayoutFiles(".hcl", file, root)
		require.NoError(t, err)
		assert.Equal(t, []string{file}, files)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := FindLayoutFiles(".hcl", filepath.Join(root, "nope"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("no matching files", func(t *testing.T) {
		_, err := FindLayoutFiles(".hcl", filepath.Join(root, "empty"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no .hcl files")
	})
}

func TestWriteReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	in := map[string][]int{"a": {1, 2}}
	require.NoError(t, WriteJSON(path, in))

	var out map[string][]int
	require.NoError(t, ReadJSON(path, &out))
	assert.Equal(t, in, out)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	require.Error(t, ReadJSON(path, &out))
	require.ErrorIs(t, ReadJSON(filepath.Join(t.TempDir(), "missing.json"), &out), os.ErrNotExist)
	require.Error(t, WriteJSON(filepath.Join(t.TempDir(), "no", "such", "dir.json"), in))
}
