// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package wire implements the run-length codec for orthogonal wire paths.
//
// A raw path is a slice of points where each consecutive pair is one unit step
// apart. Encode groups the path into maximal runs of identical steps and keeps
// only the start point plus, for every run, its step and its end point. The
// encoded value is therefore proportional to the number of bends rather than
// to the length of the wire.
//
// # Flat Form
//
// Encoded values are exchanged as a flat list of points:
//
//	start, marker1, end1, marker2, end2, ...
//
// where each marker is the unit vector of the run's step. A single-point path
// flattens to [start]; any longer path flattens to 3+2k points. Runs share
// their endpoints, so end1 is also the origin of the second run. Unflatten
// validates this shape and reports ErrMalformed instead of guessing.
package wire
