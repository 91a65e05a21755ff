// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package wire

import (
	"fmt"

	"github.com/specialistvlad/electra/internal/geom"
)

// Encode compresses a unit-step path. An empty path encodes to the empty
// Encoded. A pair of consecutive points that are not one unit apart yields an
// error wrapping geom.ErrNotOrthogonal and the zero Encoded.
func Encode[T geom.Coord](path []geom.Point[T]) (Encoded[T], error) {
	if len(path) == 0 {
		return Encoded[T]{}, nil
	}
	e := Encoded[T]{start: path[0], n: len(path)}
	for i := 1; i < len(path); i++ {
		step, ok := geom.StepBetween(path[i-1], path[i])
		if !ok {
			return Encoded[T]{}, fmt.Errorf("%w: %s -> %s at index %d", geom.ErrNotOrthogonal, path[i-1], path[i], i)
		}
		if last := len(e.runs) - 1; last >= 0 && e.runs[last].step == step {
			e.runs[last].end = path[i]
			continue
		}
		e.runs = append(e.runs, Run[T]{step: step, end: path[i]})
	}
	return e, nil
}

// Decode is shorthand for e.Decode().
func Decode[T geom.Coord](e Encoded[T]) []geom.Point[T] {
	return e.Decode()
}

// Flatten returns the positional form: [start] for a single point, otherwise
// start followed by a marker and an end point per run.
func (e Encoded[T]) Flatten() []geom.Point[T] {
	if e.n == 0 {
		return []geom.Point[T]{}
	}
	flat := make([]geom.Point[T], 0, 1+2*len(e.runs))
	flat = append(flat, e.start)
	for _, r := range e.runs {
		flat = append(flat, geom.Vector[T](r.step), r.end)
	}
	return flat
}

// Unflatten parses the positional form produced by Flatten. Consecutive runs
// that share a direction are merged, so the result compares Equal to the
// encoding of the decoded path.
func Unflatten[T geom.Coord](flat []geom.Point[T]) (Encoded[T], error) {
	switch {
	case len(flat) == 0:
		return Encoded[T]{}, nil
	case len(flat) == 1:
		return Encoded[T]{start: flat[0], n: 1}, nil
	case len(flat)%2 == 0:
		return Encoded[T]{}, fmt.Errorf("%w: length %d is neither 1 nor 3+2k", ErrMalformed, len(flat))
	}

	e := Encoded[T]{start: flat[0], n: 1}
	cur := flat[0]
	for i := 1; i < len(flat); i += 2 {
		marker, end := flat[i], flat[i+1]
		step, ok := geom.StepOfVector(marker)
		if !ok {
			return Encoded[T]{}, fmt.Errorf("%w: index %d: marker %s is not a unit vector", ErrMalformed, i, marker)
		}
		dist, ok := distanceAlong(cur, end, step)
		if !ok {
			return Encoded[T]{}, fmt.Errorf("%w: index %d: %s is not reachable from %s going %s", ErrMalformed, i+1, end, cur, step)
		}
		e.n += dist
		if last := len(e.runs) - 1; last >= 0 && e.runs[last].step == step {
			e.runs[last].end = end
		} else {
			e.runs = append(e.runs, Run[T]{step: step, end: end})
		}
		cur = end
	}
	return e, nil
}

// DecodeFlat is Unflatten followed by Decode.
func DecodeFlat[T geom.Coord](flat []geom.Point[T]) ([]geom.Point[T], error) {
	e, err := Unflatten(flat)
	if err != nil {
		return nil, err
	}
	return e.Decode(), nil
}

// distanceAlong returns how many steps of s lead from a to b. ok is false
// unless b lies on the ray from a in direction s at distance >= 1.
// The arithmetic is done in int64 so narrow coordinate types do not wrap.
func distanceAlong[T geom.Coord](a, b geom.Point[T], s geom.Step) (int, bool) {
	dx, dy := int64(b.X)-int64(a.X), int64(b.Y)-int64(a.Y)
	v := geom.Vector[int64](s)
	var dist int64
	if s.Horizontal() {
		if dy != 0 {
			return 0, false
		}
		dist = dx * v.X
	} else {
		if dx != 0 {
			return 0, false
		}
		dist = dy * v.Y
	}
	if dist < 1 {
		return 0, false
	}
	return int(dist), true
}
