// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package layout combines a placement index and a wire store into one
// mutex-guarded layout that can be snapshotted to disk.
//
// The underlying indexes are single-owner structures; Layout is the boundary
// at which concurrent callers are serialized.
package layout

import (
	"fmt"
	"sync"

	"github.com/specialistvlad/electra/internal/geom"
	"github.com/specialistvlad/electra/internal/placement"
	"github.com/specialistvlad/electra/internal/wires"
)

// Cell is a placed identifier.
type Cell[T geom.Coord] struct {
	Position geom.Point[T]
	ID       T
}

// Stats summarizes a layout.
type Stats[T geom.Coord] struct {
	Cells   int
	Wires   int
	CellBox geom.Size[T]
	WireBox geom.Size[T]
	Extent  geom.Size[T]
}

// Layout is a set of placed cells and routed wires. It is safe for
// concurrent use.
type Layout[T geom.Coord] struct {
	mu    sync.RWMutex
	cells placement.Index[T]
	wires wires.Store[T]
}

// New returns an empty layout.
func New[T geom.Coord]() *Layout[T] {
	return &Layout[T]{}
}

// PlaceCell places id at pos. See placement.Index.Insert for the collision rules.
func (l *Layout[T]) PlaceCell(pos geom.Point[T], id T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cells.Insert(pos, id)
}

// RemoveCell removes the cell with the given id.
func (l *Layout[T]) RemoveCell(id T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cells.Erase(id)
}

// CellAt returns the id placed at pos.
func (l *Layout[T]) CellAt(pos geom.Point[T]) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cells.At(pos)
}

// FindCell returns the position of id.
func (l *Layout[T]) FindCell(id T) (geom.Point[T], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cells.Find(id)
}

// AddWire validates and stores path.
func (l *Layout[T]) AddWire(path []geom.Point[T]) error {
	if err := geom.ValidatePath(path); err != nil {
		return fmt.Errorf("adding wire: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.wires.Insert(path); err != nil {
		return fmt.Errorf("adding wire: %w", err)
	}
	return nil
}

// RemoveWire removes the first wire running from start to end.
func (l *Layout[T]) RemoveWire(start, end geom.Point[T]) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.wires.Erase(start, end)
}

// FindWire returns the decoded path of the first wire running from start to end.
func (l *Layout[T]) FindWire(start, end geom.Point[T]) ([]geom.Point[T], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.wires.Find(start, end)
	if !ok {
		return nil, false
	}
	return v.Points(), true
}

// Cells returns every placed cell ordered by position.
func (l *Layout[T]) Cells() []Cell[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Cell[T], 0, l.cells.Len())
	for pos, id := range l.cells.All() {
		out = append(out, Cell[T]{Position: pos, ID: id})
	}
	return out
}

// Wires returns every stored wire, decoded, in insertion order.
func (l *Layout[T]) Wires() [][]geom.Point[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([][]geom.Point[T], 0, l.wires.Len())
	for v := range l.wires.All() {
		out = append(out, v.Points())
	}
	return out
}

// Stats returns the counts and boxes of the layout.
func (l *Layout[T]) Stats() Stats[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Stats[T]{
		Cells:   l.cells.Len(),
		Wires:   l.wires.Len(),
		CellBox: l.cells.Box(),
		WireBox: l.wires.Box(),
		Extent:  l.extent(),
	}
}

// Extent returns the box covering both cells and wires.
func (l *Layout[T]) Extent() geom.Size[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.extent()
}

func (l *Layout[T]) extent() geom.Size[T] {
	clo, chi, cok := l.cells.Bounds()
	wlo, whi, wok := l.wires.Bounds()
	switch {
	case cok && wok:
		lo := geom.Pt(min(clo.X, wlo.X), min(clo.Y, wlo.Y))
		hi := geom.Pt(max(chi.X, whi.X), max(chi.Y, whi.Y))
		return geom.Span(lo, hi)
	case cok:
		return geom.Span(clo, chi)
	case wok:
		return geom.Span(wlo, whi)
	default:
		return geom.Size[T]{}
	}
}
