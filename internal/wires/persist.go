// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package wires

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/specialistvlad/electra/internal/fsutil"
	"github.com/specialistvlad/electra/internal/geom"
)

func (s *Store[T]) decoded() [][]geom.Point[T] {
	doc := make([][]geom.Point[T], 0, len(s.paths))
	for _, e := range s.paths {
		doc = append(doc, e.Decode())
	}
	return doc
}

// WriteTo writes the store as a JSON array of decoded point arrays.
func (s *Store[T]) WriteTo(w io.Writer) (int64, error) {
	data, err := json.Marshal(s.decoded())
	if err != nil {
		return 0, fmt.Errorf("encoding wires: %w", err)
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadFrom replaces the store with the paths read from r. Every path is
// validated and re-encoded. On error the store is left unchanged.
func (s *Store[T]) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), fmt.Errorf("reading wires: %w", err)
	}
	var doc [][]geom.Point[T]
	if err := json.Unmarshal(data, &doc); err != nil {
		return int64(len(data)), fmt.Errorf("decoding wires: %w", err)
	}
	fresh, err := build(doc)
	if err != nil {
		return int64(len(data)), err
	}
	*s = *fresh
	return int64(len(data)), nil
}

// Persist writes the store to the file at path.
func (s *Store[T]) Persist(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating wire dir: %w", err)
	}
	return fsutil.WriteJSON(path, s.decoded())
}

// Restore replaces the store with the file at path. On error the store is
// left unchanged.
func (s *Store[T]) Restore(path string) error {
	var doc [][]geom.Point[T]
	if err := fsutil.ReadJSON(path, &doc); err != nil {
		return fmt.Errorf("restoring wires: %w", err)
	}
	fresh, err := build(doc)
	if err != nil {
		return fmt.Errorf("restoring wires: %w", err)
	}
	*s = *fresh
	return nil
}

func build[T geom.Coord](doc [][]geom.Point[T]) (*Store[T], error) {
	fresh := &Store[T]{}
	for i, path := range doc {
		if err := geom.ValidatePath(path); err != nil {
			return nil, fmt.Errorf("wire %d: %w", i, err)
		}
		if err := fresh.Insert(path); err != nil {
			return nil, fmt.Errorf("wire %d: %w", i, err)
		}
	}
	return fresh, nil
}
