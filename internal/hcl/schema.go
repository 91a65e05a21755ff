// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Cells []*cellBlock `hcl:"cell,block"`
	Wires []*wireBlock `hcl:"wire,block"`
}

// cellBlock represents a `cell` block from a layout file.
type cellBlock struct {
	Name     string         `hcl:"name,label"`
	ID       hcl.Expression `hcl:"id"`
	Position hcl.Expression `hcl:"position"`
	Remain   hcl.Body       `hcl:",remain"`
}

// wireBlock represents a `wire` block from a layout file.
type wireBlock struct {
	Name    string         `hcl:"name,label"`
	Points  hcl.Expression `hcl:"points,optional"`
	Encoded hcl.Expression `hcl:"encoded,optional"`
	Remain  hcl.Body       `hcl:",remain"`
}
