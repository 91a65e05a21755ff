// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/electra/internal/config"
	"github.com/specialistvlad/electra/internal/ctxlog"
	"github.com/specialistvlad/electra/internal/layout"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if dir := a.config.RestoreDir; dir != "" {
		if err := a.layout.Load(dir); err != nil {
			return fmt.Errorf("failed to restore snapshot: %w", err)
		}
		a.logger.Info("Snapshot restored.", "dir", dir)
	}

	if path := a.config.LayoutPath; path != "" {
		model, err := a.loader.Load(ctx, path)
		if err != nil {
			return err
		}
		if err := layout.Apply(a.layout, model); err != nil {
			return fmt.Errorf("failed to apply layout: %w", err)
		}
		a.model = model
		a.logger.Info("Layout loaded.", "path", path, "cells", len(model.Cells), "wires", len(model.Wires))
	}

	stats := a.layout.Stats()
	fmt.Fprintf(a.outW, "cells=%d wires=%d cell_box=%s wire_box=%s extent=%s\n",
		stats.Cells, stats.Wires, stats.CellBox, stats.WireBox, stats.Extent)

	if q := a.config.Wire; q != nil {
		if err := a.printWire(q); err != nil {
			return err
		}
	}

	if dir := a.config.SnapshotDir; dir != "" {
		if err := a.layout.Save(dir); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
		a.logger.Info("Snapshot written.", "dir", dir)
	}

	if path := a.config.ExportPath; path != "" {
		if err := a.export(path); err != nil {
			return fmt.Errorf("failed to export layout: %w", err)
		}
		a.logger.Info("Layout exported.", "path", path)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) printWire(q *WireQuery) error {
	points, ok := a.layout.FindWire(q.Start, q.End)
	if !ok {
		return fmt.Errorf("no wire runs from %s to %s", q.Start, q.End)
	}
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	fmt.Fprintf(a.outW, "wire %s->%s len=%d: %s\n", q.Start, q.End, len(points), strings.Join(parts, " "))
	return nil
}

func (a *App) export(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return a.exporter.Export(f, a.currentModel())
}

// currentModel describes the layout as a model. Names come from the loaded
// layout files where they match; anything restored from a snapshot gets a
// generated name.
func (a *App) currentModel() *config.Model {
	cellNames := make(map[config.Coord]string, len(a.model.Cells))
	for _, c := range a.model.Cells {
		cellNames[c.ID] = c.Name
	}
	type endpoints struct{ start, end config.Point }
	wireNames := make(map[endpoints]string, len(a.model.Wires))
	for _, w := range a.model.Wires {
		key := endpoints{w.Points[0], w.Points[len(w.Points)-1]}
		if _, ok := wireNames[key]; !ok {
			wireNames[key] = w.Name
		}
	}

	m := &config.Model{}
	used := make(map[string]struct{})
	for _, c := range a.layout.Cells() {
		name := uniqueName(used, cellNames[c.ID], fmt.Sprintf("cell_%d", c.ID))
		m.Cells = append(m.Cells, &config.Cell{Name: name, ID: c.ID, Position: c.Position})
	}
	clear(used)
	for i, points := range a.layout.Wires() {
		key := endpoints{points[0], points[len(points)-1]}
		name := uniqueName(used, wireNames[key], fmt.Sprintf("wire_%d", i))
		m.Wires = append(m.Wires, &config.Wire{Name: name, Points: points})
	}
	return m
}

// uniqueName returns preferred if it is set and unused, otherwise fallback
// with a numeric suffix if needed. The chosen name is marked as used.
func uniqueName(used map[string]struct{}, preferred, fallback string) string {
	name := preferred
	if _, taken := used[name]; name == "" || taken {
		name = fallback
		for n := 2; ; n++ {
			if _, taken := used[name]; !taken {
				break
			}
			name = fmt.Sprintf("%s_%d", fallback, n)
		}
	}
	used[name] = struct{}{}
	return name
}
