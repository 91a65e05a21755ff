// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Coord is the set of signed integer types usable as grid coordinates.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Point is a grid position. Points compare by value.
type Point[T Coord] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Coord](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Less orders points by x first, then by y.
func (p Point[T]) Less(q Point[T]) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Compare returns -1, 0 or +1 following the Less ordering.
func (p Point[T]) Compare(q Point[T]) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	default:
		return 0
	}
}

// String renders the point as "(x,y)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Key renders the point as "x,y", the form used for document keys and flags.
func (p Point[T]) Key() string {
	return FormatCoord(p.X) + "," + FormatCoord(p.Y)
}

// MarshalJSON encodes the point as a two-element array.
func (p Point[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]T{p.X, p.Y})
}

// UnmarshalJSON decodes a two-element array. Any other length is an error.
func (p *Point[T]) UnmarshalJSON(data []byte) error {
	var pair []T
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("point: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("point: expected 2 coordinates, got %d", len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// ParsePoint parses the "x,y" form produced by Point.Key.
func ParsePoint[T Coord](s string) (Point[T], error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point[T]{}, fmt.Errorf("invalid point %q: expected \"x,y\"", s)
	}
	x, err := ParseCoord[T](strings.TrimSpace(xs))
	if err != nil {
		return Point[T]{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := ParseCoord[T](strings.TrimSpace(ys))
	if err != nil {
		return Point[T]{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return Point[T]{X: x, Y: y}, nil
}

// ParseCoord parses a decimal coordinate, rejecting values that overflow T.
func ParseCoord[T Coord](s string) (T, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if int64(T(v)) != v {
		return 0, fmt.Errorf("coordinate %d overflows %T", v, T(0))
	}
	return T(v), nil
}

// ErrNotCanonical is returned by the key parsers for input that parses but is
// not written the way Point.Key or FormatCoord would write it, such as "01"
// or "+1".
var ErrNotCanonical = errors.New("not in canonical form")

// FormatCoord renders a coordinate in decimal. It is the inverse of
// ParseCoordKey.
func FormatCoord[T Coord](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// ParseCoordKey parses a coordinate used as a document key. Unlike
// ParseCoord it only accepts the form produced by FormatCoord, so two
// different keys never denote the same coordinate.
func ParseCoordKey[T Coord](s string) (T, error) {
	v, err := ParseCoord[T](s)
	if err != nil {
		return 0, err
	}
	if FormatCoord(v) != s {
		return 0, fmt.Errorf("coordinate %q: %w", s, ErrNotCanonical)
	}
	return v, nil
}

// ParseKey parses a point used as a document key. Only the exact form
// produced by Point.Key is accepted.
func ParseKey[T Coord](s string) (Point[T], error) {
	p, err := ParsePoint[T](s)
	if err != nil {
		return Point[T]{}, err
	}
	if p.Key() != s {
		return Point[T]{}, fmt.Errorf("point %q: %w", s, ErrNotCanonical)
	}
	return p, nil
}

// Size is the extent of a set of unit cells.
type Size[T Coord] struct {
	Width, Height T
}

// Span returns the size of the box whose inclusive corners are lo and hi.
func Span[T Coord](lo, hi Point[T]) Size[T] {
	return Size[T]{Width: (hi.X + 1) - lo.X, Height: (hi.Y + 1) - lo.Y}
}

// IsZero reports whether the size is 0x0.
func (s Size[T]) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// String renders the size as "WxH".
func (s Size[T]) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
