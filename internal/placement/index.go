// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package placement maps cell identifiers to grid positions and back.
//
// Records live in an arena and are addressed by stable handles. Two maps,
// position to handle and identifier to handle, point into the same arena, so
// the two directions can only disagree through a bug in this package. The
// index also owns an Area over every live position.
package placement

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/specialistvlad/electra/internal/area"
	"github.com/specialistvlad/electra/internal/geom"
)

var (
	// ErrDuplicateID is returned when an identifier is already placed elsewhere.
	ErrDuplicateID = errors.New("identifier already placed")
	// ErrOccupied is returned when a position already holds another identifier.
	ErrOccupied = errors.New("position already occupied")
)

type handle int

type record[T geom.Coord] struct {
	pos  geom.Point[T]
	id   T
	live bool
}

// Index is a one-to-one mapping between positions and identifiers.
// The zero value is an empty index ready to use. It is not safe for
// concurrent use.
type Index[T geom.Coord] struct {
	records []record[T]
	free    []handle
	byPos   map[geom.Point[T]]handle
	byID    map[T]handle
	area    area.Area[T]
}

func (x *Index[T]) lazyInit() {
	if x.byPos == nil {
		x.byPos = make(map[geom.Point[T]]handle)
		x.byID = make(map[T]handle)
	}
}

// Insert places id at pos. Placing the same pair twice is a no-op; any other
// collision is rejected and the index is left unchanged.
func (x *Index[T]) Insert(pos geom.Point[T], id T) error {
	x.lazyInit()
	if h, ok := x.byID[id]; ok {
		at := x.record(h).pos
		if at == pos {
			return nil
		}
		return fmt.Errorf("%w: id %d is at %s", ErrDuplicateID, id, at)
	}
	if h, ok := x.byPos[pos]; ok {
		return fmt.Errorf("%w: %s holds id %d", ErrOccupied, pos, x.record(h).id)
	}

	h := x.alloc(record[T]{pos: pos, id: id, live: true})
	x.byPos[pos] = h
	x.byID[id] = h
	x.area.Insert(pos)
	return nil
}

// Erase removes id and its position. It returns false if id is not placed.
func (x *Index[T]) Erase(id T) bool {
	h, ok := x.byID[id]
	if !ok {
		return false
	}
	r := x.record(h)
	if x.byPos[r.pos] != h {
		panic(fmt.Sprintf("placement: position %s does not point back at id %d", r.pos, id))
	}
	delete(x.byID, id)
	delete(x.byPos, r.pos)
	x.records[h] = record[T]{}
	x.free = append(x.free, h)
	if !x.area.Erase(r.pos) {
		panic(fmt.Sprintf("placement: area is missing position %s", r.pos))
	}
	return true
}

// Find returns the position of id.
func (x *Index[T]) Find(id T) (geom.Point[T], bool) {
	h, ok := x.byID[id]
	if !ok {
		return geom.Point[T]{}, false
	}
	return x.record(h).pos, true
}

// At returns the identifier placed at pos.
func (x *Index[T]) At(pos geom.Point[T]) (T, bool) {
	h, ok := x.byPos[pos]
	if !ok {
		return 0, false
	}
	return x.record(h).id, true
}

// Len returns the number of placements.
func (x *Index[T]) Len() int { return len(x.byID) }

// Box returns the extent of all placed positions.
func (x *Index[T]) Box() geom.Size[T] { return x.area.Box() }

// Bounds returns the inclusive corners of all placed positions.
func (x *Index[T]) Bounds() (lo, hi geom.Point[T], ok bool) { return x.area.Bounds() }

// All yields every placement ordered by position, x first.
func (x *Index[T]) All() iter.Seq2[geom.Point[T], T] {
	live := make([]record[T], 0, len(x.byID))
	for _, r := range x.records {
		if r.live {
			live = append(live, r)
		}
	}
	slices.SortFunc(live, func(a, b record[T]) int { return a.pos.Compare(b.pos) })
	return func(yield func(geom.Point[T], T) bool) {
		for _, r := range live {
			if !yield(r.pos, r.id) {
				return
			}
		}
	}
}

func (x *Index[T]) alloc(r record[T]) handle {
	if n := len(x.free); n > 0 {
		h := x.free[n-1]
		x.free = x.free[:n-1]
		x.records[h] = r
		return h
	}
	x.records = append(x.records, r)
	return handle(len(x.records) - 1)
}

func (x *Index[T]) record(h handle) record[T] {
	r := x.records[h]
	if !r.live {
		panic(fmt.Sprintf("placement: handle %d refers to a released record", h))
	}
	return r
}
