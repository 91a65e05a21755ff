// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"fmt"

	"github.com/specialistvlad/electra/internal/geom"
)

// Coord is the coordinate and identifier type used by loaded layouts.
type Coord = int64

// Point is a grid position in a loaded layout.
type Point = geom.Point[Coord]

// Model is the unified, format-agnostic representation of a layout.
type Model struct {
	Cells []*Cell
	Wires []*Wire
}

// Cell is the format-agnostic representation of a `cell` block.
type Cell struct {
	Name     string
	ID       Coord
	Position Point
	Source   string // file:line of the declaration, empty when built in code
}

// Wire is the format-agnostic representation of a `wire` block. Points is
// always the raw path, whichever form the source used.
type Wire struct {
	Name   string
	Points []Point
	Source string
}

// Validate checks that names are unique per kind and every wire is a valid
// unit-step path.
func (m *Model) Validate() error {
	cells := make(map[string]struct{}, len(m.Cells))
	for _, c := range m.Cells {
		if _, dup := cells[c.Name]; dup {
			return fmt.Errorf("duplicate cell %q", c.Name)
		}
		cells[c.Name] = struct{}{}
	}
	wires := make(map[string]struct{}, len(m.Wires))
	for _, w := range m.Wires {
		if _, dup := wires[w.Name]; dup {
			return fmt.Errorf("duplicate wire %q", w.Name)
		}
		wires[w.Name] = struct{}{}
		if err := geom.ValidatePath(w.Points); err != nil {
			return fmt.Errorf("wire %q: %w", w.Name, err)
		}
	}
	return nil
}
