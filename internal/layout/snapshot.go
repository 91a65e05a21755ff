// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/electra/internal/placement"
	"github.com/specialistvlad/electra/internal/wires"
)

// Names inside a snapshot directory.
const (
	WiresFile = "wires.json"
	CellsDir  = "cells"
)

// Save writes a snapshot of the layout into dir.
func (l *Layout[T]) Save(dir string) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	if err := l.wires.Persist(filepath.Join(dir, WiresFile)); err != nil {
		return fmt.Errorf("saving wires: %w", err)
	}
	if err := l.cells.Persist(filepath.Join(dir, CellsDir)); err != nil {
		return fmt.Errorf("saving cells: %w", err)
	}
	return nil
}

// Load replaces the layout with the snapshot in dir. The layout is only
// changed when both the wires and the cells load successfully.
func (l *Layout[T]) Load(dir string) error {
	var (
		cells placement.Index[T]
		ws    wires.Store[T]
	)
	if err := ws.Restore(filepath.Join(dir, WiresFile)); err != nil {
		return fmt.Errorf("loading snapshot %s: %w", dir, err)
	}
	if err := cells.Restore(filepath.Join(dir, CellsDir)); err != nil {
		return fmt.Errorf("loading snapshot %s: %w", dir, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.cells = cells
	l.wires = ws
	return nil
}
