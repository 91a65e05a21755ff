// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package geom defines the grid primitives shared by every layout structure:
// integer points, unit-cell sizes and the four unit steps a wire can take.
//
// # Coordinate System
//
// Coordinates are signed integers of any width (see Coord). The y axis grows
// downwards, so Down is the vector (0, 1) and Up is (0, -1). A point occupies
// one unit cell, which is why a single point has a Size of 1x1 rather than
// 0x0.
//
// # Paths
//
// A path is an ordered, non-empty slice of points where each consecutive pair
// differs by exactly one unit on exactly one axis. ValidatePath checks this
// contract. The codec and the stores trust their callers and do not call it
// themselves; the layout facade and the HCL loader do.
package geom
