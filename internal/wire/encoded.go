// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package wire

import (
	"iter"
	"slices"
	"strings"

	"github.com/specialistvlad/electra/internal/geom"
)

// Run is a maximal stretch of identical unit steps ending at End.
type Run[T geom.Coord] struct {
	step geom.Step
	end  geom.Point[T]
}

// Step returns the direction shared by every step of the run.
func (r Run[T]) Step() geom.Step { return r.step }

// End returns the last point of the run.
func (r Run[T]) End() geom.Point[T] { return r.end }

// Encoded is the run-length form of a path. The zero value is the empty path.
//
// Runs can only be produced by Encode and Unflatten, so a non-empty Encoded
// always decodes to a valid unit-step path.
type Encoded[T geom.Coord] struct {
	start geom.Point[T]
	runs  []Run[T]
	n     int
}

// IsEmpty reports whether the encoded path has no points.
func (e Encoded[T]) IsEmpty() bool { return e.n == 0 }

// Len returns the number of points of the decoded path.
func (e Encoded[T]) Len() int { return e.n }

// First returns the start point. It is the zero point for an empty path.
func (e Encoded[T]) First() geom.Point[T] { return e.start }

// Last returns the end point without decoding.
func (e Encoded[T]) Last() geom.Point[T] {
	if len(e.runs) == 0 {
		return e.start
	}
	return e.runs[len(e.runs)-1].end
}

// Runs returns a copy of the runs.
func (e Encoded[T]) Runs() []Run[T] {
	return slices.Clone(e.runs)
}

// Points yields the decoded path one point at a time.
func (e Encoded[T]) Points() iter.Seq[geom.Point[T]] {
	return func(yield func(geom.Point[T]) bool) {
		if e.n == 0 {
			return
		}
		cur := e.start
		if !yield(cur) {
			return
		}
		for _, r := range e.runs {
			v := geom.Vector[T](r.step)
			for cur != r.end {
				cur = cur.Add(v)
				if !yield(cur) {
					return
				}
			}
		}
	}
}

// Decode expands the encoded path back into its raw points.
func (e Encoded[T]) Decode() []geom.Point[T] {
	if e.n == 0 {
		return nil
	}
	return slices.AppendSeq(make([]geom.Point[T], 0, e.n), e.Points())
}

// Equal reports whether both values encode the same path.
func (e Encoded[T]) Equal(o Encoded[T]) bool {
	return e.n == o.n && e.start == o.start && slices.Equal(e.runs, o.runs)
}

// String renders the path as "(0,0) right->(3,0) down->(3,3)".
func (e Encoded[T]) String() string {
	if e.n == 0 {
		return "<empty>"
	}
	var b strings.Builder
	b.WriteString(e.start.String())
	for _, r := range e.runs {
		b.WriteByte(' ')
		b.WriteString(r.step.String())
		b.WriteString("->")
		b.WriteString(r.end.String())
	}
	return b.String()
}
