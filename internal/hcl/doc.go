// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package hcl provides the concrete HCL implementation of the layout loading
// interface defined in the `config` package, and the matching exporter.
// It is responsible for all file parsing, HCL-to-model translation, and
// CTY-to-Go data binding.
//
// A layout file holds `cell` and `wire` blocks:
//
//	cell "and_1" {
//	  id       = 9
//	  position = [8, 8]
//	}
//
//	wire "clk" {
//	  points = [[3, 0], [3, 1], [3, 2], [3, 3]]
//	}
//
//	wire "bus" {
//	  encoded = [[0, 0], [1, 0], [3, 0], [0, 1], [3, 3]]
//	}
//
// A wire sets exactly one of `points` (the raw path) or `encoded` (the flat
// run-length form). Names are unique per block type across all loaded files.
package hcl
