// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/electra/internal/config"
	"github.com/specialistvlad/electra/internal/ctxlog"
	"github.com/specialistvlad/electra/internal/fsutil"
	"github.com/specialistvlad/electra/internal/geom"
	"github.com/specialistvlad/electra/internal/wire"
)

// Extension is the file extension of layout files.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL layout loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every layout file found under paths and merges their blocks
// into one model. All problems are collected and returned together as HCL
// diagnostics.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindLayoutFiles(Extension, paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := &config.Model{}
	cellDecls := make(map[string]hcl.Range)
	wireDecls := make(map[string]hcl.Range)
	var diags hcl.Diagnostics

	for _, file := range files {
		hclFile, fileDiags := parser.ParseHCLFile(file)
		diags = diags.Extend(fileDiags)
		if fileDiags.HasErrors() {
			continue
		}

		var root fileRoot
		if decodeDiags := gohcl.DecodeBody(hclFile.Body, nil, &root); decodeDiags.HasErrors() {
			diags = diags.Extend(decodeDiags)
			continue
		}

		for _, cb := range root.Cells {
			cell, decl, cellDiags := l.translateCell(ctx, cb)
			diags = diags.Extend(cellDiags)
			if cellDiags.HasErrors() {
				continue
			}
			if prev, dup := cellDecls[cell.Name]; dup {
				diags = append(diags, duplicateDiag("cell", cell.Name, prev, decl))
				continue
			}
			cellDecls[cell.Name] = decl
			model.Cells = append(model.Cells, cell)
		}
		for _, wb := range root.Wires {
			w, decl, wireDiags := l.translateWire(ctx, wb)
			diags = diags.Extend(wireDiags)
			if wireDiags.HasErrors() {
				continue
			}
			if prev, dup := wireDecls[w.Name]; dup {
				diags = append(diags, duplicateDiag("wire", w.Name, prev, decl))
				continue
			}
			wireDecls[w.Name] = decl
			model.Wires = append(model.Wires, w)
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to load layout: %w", diags)
	}
	logger.Debug("HCL loading complete.", "cells", len(model.Cells), "wires", len(model.Wires))
	return model, nil
}

// translateCell converts a `cell` block into the agnostic model.
func (l *Loader) translateCell(ctx context.Context, cb *cellBlock) (*config.Cell, hcl.Range, hcl.Diagnostics) {
	decl := cb.Remain.MissingItemRange()
	diags := unexpected(cb.Remain)

	var id int64
	diags = diags.Extend(decode(ctx, cb.ID, idType, &id))
	pos, posDiags := decodePoint(ctx, cb.Position)
	diags = diags.Extend(posDiags)
	if diags.HasErrors() {
		return nil, decl, diags
	}

	decl = cb.ID.Range()
	return &config.Cell{
		Name:     cb.Name,
		ID:       id,
		Position: pos,
		Source:   source(decl),
	}, decl, diags
}

// translateWire converts a `wire` block into the agnostic model. Encoded
// geometry is expanded so the model always carries the raw path.
func (l *Loader) translateWire(ctx context.Context, wb *wireBlock) (*config.Wire, hcl.Range, hcl.Diagnostics) {
	decl := wb.Remain.MissingItemRange()
	diags := unexpected(wb.Remain)
	if diags.HasErrors() {
		return nil, decl, diags
	}

	hasPoints, hasEncoded := isSet(wb.Points), isSet(wb.Encoded)
	var (
		expr      hcl.Expression
		points    []config.Point
		pathDiags hcl.Diagnostics
	)
	switch {
	case hasPoints && hasEncoded:
		return nil, decl, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Conflicting wire geometry",
			Detail:   fmt.Sprintf("Wire %q sets both \"points\" and \"encoded\"; only one is allowed.", wb.Name),
			Subject:  wb.Encoded.Range().Ptr(),
		})
	case hasPoints:
		expr = wb.Points
		points, pathDiags = decodePoints(ctx, expr)
	case hasEncoded:
		expr = wb.Encoded
		var flat []config.Point
		flat, pathDiags = decodePoints(ctx, expr)
		if !pathDiags.HasErrors() {
			var err error
			if points, err = wire.DecodeFlat(flat); err != nil {
				pathDiags = append(pathDiags, pathDiag(expr, err))
			}
		}
	default:
		return nil, decl, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing wire geometry",
			Detail:   fmt.Sprintf("Wire %q must set either \"points\" or \"encoded\".", wb.Name),
			Subject:  decl.Ptr(),
		})
	}

	diags = diags.Extend(pathDiags)
	if diags.HasErrors() {
		return nil, decl, diags
	}
	if err := geom.ValidatePath(points); err != nil {
		return nil, decl, append(diags, pathDiag(expr, err))
	}

	decl = expr.Range()
	return &config.Wire{
		Name:   wb.Name,
		Points: points,
		Source: source(decl),
	}, decl, diags
}

// unexpected reports any attribute or block left over after decoding.
func unexpected(remain hcl.Body) hcl.Diagnostics {
	attrs, diags := remain.JustAttributes()
	for name, attr := range attrs {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported argument",
			Detail:   fmt.Sprintf("An argument named %q is not expected here.", name),
			Subject:  attr.NameRange.Ptr(),
		})
	}
	return diags
}

func pathDiag(expr hcl.Expression, err error) *hcl.Diagnostic {
	summary := "Invalid wire path"
	if errors.Is(err, wire.ErrMalformed) {
		summary = "Malformed encoded wire"
	}
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   err.Error() + ".",
		Subject:  expr.Range().Ptr(),
	}
}

func duplicateDiag(kind, name string, prev, cur hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Duplicate %s", kind),
		Detail:   fmt.Sprintf("A %s named %q was already declared at %s.", kind, name, source(prev)),
		Subject:  cur.Ptr(),
	}
}

func source(r hcl.Range) string {
	return r.Filename + ":" + strconv.Itoa(r.Start.Line)
}
