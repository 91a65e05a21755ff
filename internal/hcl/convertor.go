// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/electra/internal/config"
	"github.com/specialistvlad/electra/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	idType    = cty.Number
	pointType = cty.List(cty.Number)
	pathType  = cty.List(cty.List(cty.Number))
)

// isSet reports whether an optional attribute was given a non-null value.
func isSet(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	val, diags := expr.Value(nil)
	return diags.HasErrors() || !val.IsNull()
}

// decode evaluates expr, converts the result to ty and binds it to the Go
// pointer target.
func decode(ctx context.Context, expr hcl.Expression, ty cty.Type, target any) hcl.Diagnostics {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   fmt.Sprintf("A known, non-null %s is required.", ty.FriendlyName()),
			Subject:  expr.Range().Ptr(),
		}}
	}

	converted, err := convert.Convert(val, ty)
	if err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Incorrect attribute value type",
			Detail:   fmt.Sprintf("Cannot convert %s to %s: %s.", val.Type().FriendlyName(), ty.FriendlyName(), err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	if err := gocty.FromCtyValue(converted, target); err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   fmt.Sprintf("Cannot use this value: %s.", err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return diags
}

// decodePoint binds a `[x, y]` expression.
func decodePoint(ctx context.Context, expr hcl.Expression) (config.Point, hcl.Diagnostics) {
	var pair []int64
	if diags := decode(ctx, expr, pointType, &pair); diags.HasErrors() {
		return config.Point{}, diags
	}
	if len(pair) != 2 {
		return config.Point{}, hcl.Diagnostics{pairDiag(expr, len(pair))}
	}
	return config.Point{X: pair[0], Y: pair[1]}, nil
}

// decodePoints binds a `[[x, y], ...]` expression.
func decodePoints(ctx context.Context, expr hcl.Expression) ([]config.Point, hcl.Diagnostics) {
	var pairs [][]int64
	if diags := decode(ctx, expr, pathType, &pairs); diags.HasErrors() {
		return nil, diags
	}
	points := make([]config.Point, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, hcl.Diagnostics{pairDiag(expr, len(pair))}
		}
		points = append(points, config.Point{X: pair[0], Y: pair[1]})
	}
	return points, nil
}

func pairDiag(expr hcl.Expression, n int) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid point",
		Detail:   fmt.Sprintf("A point is written as [x, y]; got %d coordinates.", n),
		Subject:  expr.Range().Ptr(),
	}
}

// toCtyPoints converts points into a list(list(number)) value.
func toCtyPoints(points []config.Point) (cty.Value, error) {
	pairs := make([][]int64, 0, len(points))
	for _, p := range points {
		pairs = append(pairs, []int64{p.X, p.Y})
	}
	return gocty.ToCtyValue(pairs, pathType)
}

// toCtyPoint converts a point into a list(number) value.
func toCtyPoint(p config.Point) (cty.Value, error) {
	return gocty.ToCtyValue([]int64{p.X, p.Y}, pointType)
}
