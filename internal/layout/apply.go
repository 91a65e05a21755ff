// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package layout

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/electra/internal/config"
)

// Apply adds every cell and wire of m to l. It stops at the first cell or
// wire that cannot be added; what was applied before it stays in place.
//
// Applying a model on top of a layout that already holds it is a no-op: a
// cell already placed at the same position is kept, and so is a wire whose
// first stored match has the same points.
func Apply(l *Layout[config.Coord], m *config.Model) error {
	for _, c := range m.Cells {
		if err := l.PlaceCell(c.Position, c.ID); err != nil {
			return fmt.Errorf("cell %q%s: %w", c.Name, at(c.Source), err)
		}
	}
	for _, w := range m.Wires {
		if len(w.Points) > 0 {
			existing, ok := l.FindWire(w.Points[0], w.Points[len(w.Points)-1])
			if ok && slices.Equal(existing, w.Points) {
				continue
			}
		}
		if err := l.AddWire(w.Points); err != nil {
			return fmt.Errorf("wire %q%s: %w", w.Name, at(w.Source), err)
		}
	}
	return nil
}

func at(source string) string {
	if source == "" {
		return ""
	}
	return " (" + source + ")"
}
