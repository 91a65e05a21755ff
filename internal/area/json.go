// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package area

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/specialistvlad/electra/internal/geom"
)

// ErrInvalidCount is returned when a serialized area carries a non-positive
// count or axes that disagree on the number of points.
var ErrInvalidCount = errors.New("invalid area count")

type document struct {
	X map[string]int `json:"x"`
	Y map[string]int `json:"y"`
}

// MarshalJSON writes {"x": {"<x>": count}, "y": {"<y>": count}}.
func (a *Area[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{X: toMap(&a.xs), Y: toMap(&a.ys)})
}

// UnmarshalJSON replaces the area with the decoded counts. On error the
// area is left untouched.
func (a *Area[T]) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("area: %w", err)
	}
	var fresh Area[T]
	nx, err := fromMap(&fresh.xs, doc.X)
	if err != nil {
		return fmt.Errorf("area: x: %w", err)
	}
	ny, err := fromMap(&fresh.ys, doc.Y)
	if err != nil {
		return fmt.Errorf("area: y: %w", err)
	}
	if nx != ny {
		return fmt.Errorf("area: %w: x holds %d points, y holds %d", ErrInvalidCount, nx, ny)
	}
	fresh.n = nx
	*a = fresh
	return nil
}

func toMap[T geom.Coord](c *counts[T]) map[string]int {
	m := make(map[string]int, c.len())
	for _, e := range c.entries() {
		m[geom.FormatCoord(e.key)] = e.count
	}
	return m
}

func fromMap[T geom.Coord](c *counts[T], m map[string]int) (int, error) {
	total := 0
	for k, n := range m {
		v, err := geom.ParseCoordKey[T](k)
		if err != nil {
			return 0, fmt.Errorf("key %q: %w", k, err)
		}
		if n < 1 {
			return 0, fmt.Errorf("%w: key %q has count %d", ErrInvalidCount, k, n)
		}
		c.add(v, n)
		total += n
	}
	return total, nil
}
