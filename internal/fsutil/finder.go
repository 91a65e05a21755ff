// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. A root that is itself a matching file is returned as
// is. The result is sorted so that callers see files in a stable order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

// FindLayoutFiles collects the files with the given extension under every root.
// Duplicates reached through overlapping roots are returned once. It is an
// error for a root to exist but contain no matching file.
func FindLayoutFiles(extension string, roots ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			return nil, fmt.Errorf("layout path %q: %w", root, err)
		}
		files, err := FindFilesByExtension(root, extension)
		if err != nil {
			return nil, fmt.Errorf("scanning %q: %w", root, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no %s files found in %q", extension, root)
		}
		for _, f := range files {
			abs, err := filepath.Abs(f)
			if err != nil {
				abs = f
			}
			if _, dup := seen[abs]; dup {
				continue
			}
			seen[abs] = struct{}{}
			out = append(out, f)
		}
	}
	return out, nil
}
