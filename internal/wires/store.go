// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package wires stores encoded wire paths and looks them up by endpoints.
//
// Paths are kept in insertion order in their run-length form. A wire is
// identified by its first and last point; the store does not check that this
// pair is unique, and lookups return the earliest match. The store owns an
// Area over every raw point of every stored path.
package wires

import (
	"fmt"
	"iter"
	"slices"

	"github.com/specialistvlad/electra/internal/area"
	"github.com/specialistvlad/electra/internal/geom"
	"github.com/specialistvlad/electra/internal/wire"
)

// Store is an ordered collection of encoded paths. The zero value is an empty
// store ready to use. It is not safe for concurrent use.
type Store[T geom.Coord] struct {
	paths []wire.Encoded[T]
	area  area.Area[T]
}

// View is a read-only handle on a stored path. It decodes on demand.
type View[T geom.Coord] struct {
	enc wire.Encoded[T]
}

// Start returns the first point of the path.
func (v View[T]) Start() geom.Point[T] { return v.enc.First() }

// End returns the last point of the path.
func (v View[T]) End() geom.Point[T] { return v.enc.Last() }

// Len returns the number of raw points.
func (v View[T]) Len() int { return v.enc.Len() }

// Points decodes the path.
func (v View[T]) Points() []geom.Point[T] { return v.enc.Decode() }

// Encoded returns the run-length form.
func (v View[T]) Encoded() wire.Encoded[T] { return v.enc }

// Insert stores path. Empty paths are ignored. A path that is not made of
// unit steps is rejected and the store is left unchanged.
func (s *Store[T]) Insert(path []geom.Point[T]) error {
	if len(path) == 0 {
		return nil
	}
	enc, err := wire.Encode(path)
	if err != nil {
		return err
	}
	s.area.Insert(path...)
	s.paths = append(s.paths, enc)
	return nil
}

// Find returns the first stored path running from start to end.
func (s *Store[T]) Find(start, end geom.Point[T]) (View[T], bool) {
	i := s.index(start, end)
	if i < 0 {
		return View[T]{}, false
	}
	return View[T]{enc: s.paths[i]}, true
}

// Erase removes the first stored path running from start to end. The
// relative order of the remaining paths is kept.
func (s *Store[T]) Erase(start, end geom.Point[T]) bool {
	i := s.index(start, end)
	if i < 0 {
		return false
	}
	if !s.area.Erase(s.paths[i].Decode()...) {
		panic(fmt.Sprintf("wires: area is missing points of %s", s.paths[i]))
	}
	s.paths = slices.Delete(s.paths, i, i+1)
	return true
}

// Len returns the number of stored paths.
func (s *Store[T]) Len() int { return len(s.paths) }

// Box returns the extent of every stored point.
func (s *Store[T]) Box() geom.Size[T] { return s.area.Box() }

// Bounds returns the inclusive corners of every stored point.
func (s *Store[T]) Bounds() (lo, hi geom.Point[T], ok bool) { return s.area.Bounds() }

// All yields the stored paths in insertion order.
func (s *Store[T]) All() iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		for _, e := range s.paths {
			if !yield(View[T]{enc: e}) {
				return
			}
		}
	}
}

func (s *Store[T]) index(start, end geom.Point[T]) int {
	return slices.IndexFunc(s.paths, func(e wire.Encoded[T]) bool {
		return e.First() == start && e.Last() == end
	})
}
