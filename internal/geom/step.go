// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package geom

import (
	"errors"
	"fmt"
)

// Step is one of the four unit moves between adjacent grid cells.
type Step uint8

const (
	Up Step = iota
	Down
	Left
	Right
)

// Steps lists every valid step.
var Steps = [...]Step{Up, Down, Left, Right}

// String returns the lower-case name of the step.
func (s Step) String() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("step(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the four defined steps.
func (s Step) Valid() bool {
	return s <= Right
}

// Horizontal reports whether the step moves along the x axis.
func (s Step) Horizontal() bool {
	return s == Left || s == Right
}

// Opposite returns the step that undoes s.
func (s Step) Opposite() Step {
	switch s {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return s
	}
}

// Vector returns the unit vector of s. Down is (0,1) since y grows downwards.
func Vector[T Coord](s Step) Point[T] {
	switch s {
	case Up:
		return Point[T]{X: 0, Y: -1}
	case Down:
		return Point[T]{X: 0, Y: 1}
	case Left:
		return Point[T]{X: -1, Y: 0}
	case Right:
		return Point[T]{X: 1, Y: 0}
	default:
		return Point[T]{}
	}
}

// StepOfVector maps a unit vector back to its step.
func StepOfVector[T Coord](v Point[T]) (Step, bool) {
	switch {
	case v.X == 0 && v.Y == -1:
		return Up, true
	case v.X == 0 && v.Y == 1:
		return Down, true
	case v.X == -1 && v.Y == 0:
		return Left, true
	case v.X == 1 && v.Y == 0:
		return Right, true
	default:
		return 0, false
	}
}

// StepBetween returns the step leading from one point to an adjacent one.
// ok is false when the points are not exactly one unit apart on one axis.
func StepBetween[T Coord](from, to Point[T]) (Step, bool) {
	return StepOfVector(to.Sub(from))
}

var (
	// ErrEmptyPath is returned for a path with no points.
	ErrEmptyPath = errors.New("empty path")
	// ErrNotOrthogonal is returned when two consecutive points are not one unit step apart.
	ErrNotOrthogonal = errors.New("consecutive points are not one unit step apart")
)

// ValidatePath checks that path is non-empty and made of unit steps only.
func ValidatePath[T Coord](path []Point[T]) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	for i := 1; i < len(path); i++ {
		if _, ok := StepBetween(path[i-1], path[i]); !ok {
			return fmt.Errorf("%w: %s -> %s at index %d", ErrNotOrthogonal, path[i-1], path[i], i)
		}
	}
	return nil
}
