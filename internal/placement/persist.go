// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package placement

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/electra/internal/area"
	"github.com/specialistvlad/electra/internal/fsutil"
	"github.com/specialistvlad/electra/internal/geom"
)

// Document names inside a placement directory.
const (
	PositionsFile = "positions.json"
	IDsFile       = "ids.json"
	AreaFile      = "area.json"
)

// ErrCorrupt is returned by Restore when the three documents disagree.
var ErrCorrupt = errors.New("placement documents are inconsistent")

// Persist writes positions.json, ids.json and area.json into dir, creating it
// if needed.
func (x *Index[T]) Persist(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating placement dir: %w", err)
	}

	positions := make(map[string]T, x.Len())
	ids := make(map[string]geom.Point[T], x.Len())
	for pos, id := range x.All() {
		positions[pos.Key()] = id
		ids[geom.FormatCoord(id)] = pos
	}

	if err := fsutil.WriteJSON(filepath.Join(dir, PositionsFile), positions); err != nil {
		return err
	}
	if err := fsutil.WriteJSON(filepath.Join(dir, IDsFile), ids); err != nil {
		return err
	}
	return fsutil.WriteJSON(filepath.Join(dir, AreaFile), &x.area)
}

// Restore replaces the index with the placements stored in dir. The index is
// rebuilt from ids.json and checked against the other two documents. On any
// error the current state is kept.
func (x *Index[T]) Restore(dir string) error {
	var ids map[string]geom.Point[T]
	if err := fsutil.ReadJSON(filepath.Join(dir, IDsFile), &ids); err != nil {
		return fmt.Errorf("restoring placements: %w", err)
	}
	var positions map[string]T
	if err := fsutil.ReadJSON(filepath.Join(dir, PositionsFile), &positions); err != nil {
		return fmt.Errorf("restoring placements: %w", err)
	}
	var stored area.Area[T]
	if err := fsutil.ReadJSON(filepath.Join(dir, AreaFile), &stored); err != nil {
		return fmt.Errorf("restoring placements: %w", err)
	}

	var fresh Index[T]
	for key, pos := range ids {
		id, err := geom.ParseCoordKey[T](key)
		if err != nil {
			return fmt.Errorf("%w: %s key %q: %w", ErrCorrupt, IDsFile, key, err)
		}
		if err := fresh.Insert(pos, id); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCorrupt, IDsFile, err)
		}
	}

	if len(positions) != fresh.Len() {
		return fmt.Errorf("%w: %s has %d entries, %s has %d", ErrCorrupt, PositionsFile, len(positions), IDsFile, fresh.Len())
	}
	for key, id := range positions {
		pos, err := geom.ParseKey[T](key)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCorrupt, PositionsFile, err)
		}
		if got, ok := fresh.At(pos); !ok || got != id {
			return fmt.Errorf("%w: %s maps %s to %d", ErrCorrupt, PositionsFile, pos, id)
		}
	}
	if !fresh.area.Equal(&stored) {
		return fmt.Errorf("%w: %s does not match the placed positions", ErrCorrupt, AreaFile)
	}

	*x = fresh
	return nil
}
