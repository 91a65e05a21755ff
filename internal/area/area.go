// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package area maintains the bounding box of a multiset of points.
//
// An Area keeps, per axis, an ordered map from coordinate value to the number
// of inserted points that carry it. Inserting and erasing adjust the counts;
// the box is read from the smallest and largest keys, so it never has to be
// recomputed from the points themselves.
package area

import (
	"slices"

	"github.com/specialistvlad/electra/internal/geom"
)

// Area is the incrementally maintained bounding box of a point multiset.
// The zero value is an empty area ready to use. An Area must not be copied
// after first use.
type Area[T geom.Coord] struct {
	xs, ys counts[T]
	n      int
}

// Insert adds every point to the multiset.
func (a *Area[T]) Insert(points ...geom.Point[T]) {
	for _, p := range points {
		a.xs.add(p.X, 1)
		a.ys.add(p.Y, 1)
	}
	a.n += len(points)
}

// Erase removes every point from the multiset. The batch is applied
// atomically: if any coordinate is not present often enough, nothing changes
// and Erase returns false.
func (a *Area[T]) Erase(points ...geom.Point[T]) bool {
	needX := make(map[T]int, len(points))
	needY := make(map[T]int, len(points))
	for _, p := range points {
		needX[p.X]++
		needY[p.Y]++
	}
	for k, n := range needX {
		if a.xs.get(k) < n {
			return false
		}
	}
	for k, n := range needY {
		if a.ys.get(k) < n {
			return false
		}
	}
	for k, n := range needX {
		a.xs.sub(k, n)
	}
	for k, n := range needY {
		a.ys.sub(k, n)
	}
	a.n -= len(points)
	return true
}

// Box returns the extent in unit cells, or 0x0 when the area is empty.
func (a *Area[T]) Box() geom.Size[T] {
	lo, hi, ok := a.Bounds()
	if !ok {
		return geom.Size[T]{}
	}
	return geom.Span(lo, hi)
}

// Bounds returns the inclusive corners of the box.
func (a *Area[T]) Bounds() (lo, hi geom.Point[T], ok bool) {
	x0, x1, ok := a.xs.bounds()
	if !ok {
		return lo, hi, false
	}
	y0, y1, _ := a.ys.bounds()
	return geom.Pt(x0, y0), geom.Pt(x1, y1), true
}

// Len returns the number of points in the multiset.
func (a *Area[T]) Len() int { return a.n }

// Empty reports whether no point is stored.
func (a *Area[T]) Empty() bool { return a.n == 0 }

// CountX returns how many stored points have the given x.
func (a *Area[T]) CountX(x T) int { return a.xs.get(x) }

// CountY returns how many stored points have the given y.
func (a *Area[T]) CountY(y T) int { return a.ys.get(y) }

// Reset empties the area.
func (a *Area[T]) Reset() {
	a.xs.reset()
	a.ys.reset()
	a.n = 0
}

// Equal reports whether both areas hold the same coordinate counts.
func (a *Area[T]) Equal(o *Area[T]) bool {
	return a.n == o.n &&
		slices.Equal(a.xs.entries(), o.xs.entries()) &&
		slices.Equal(a.ys.entries(), o.ys.entries())
}
