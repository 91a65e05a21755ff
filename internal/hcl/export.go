// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/electra/internal/config"
	"github.com/specialistvlad/electra/internal/wire"
	"github.com/zclconf/go-cty/cty"
)

// Export writes m in canonical layout form: cells first, then wires, each in
// model order, with wires written in their encoded form.
func Export(w io.Writer, m *config.Model) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("exporting layout: %w", err)
	}

	f := hclwrite.NewEmptyFile()
	root := f.Body()
	first := true
	newBlock := func(kind, name string) *hclwrite.Body {
		if !first {
			root.AppendNewline()
		}
		first = false
		return root.AppendNewBlock(kind, []string{name}).Body()
	}

	for _, c := range m.Cells {
		pos, err := toCtyPoint(c.Position)
		if err != nil {
			return fmt.Errorf("exporting cell %q: %w", c.Name, err)
		}
		body := newBlock("cell", c.Name)
		body.SetAttributeValue("id", cty.NumberIntVal(c.ID))
		body.SetAttributeValue("position", pos)
	}
	for _, wr := range m.Wires {
		e, err := wire.Encode(wr.Points)
		if err != nil {
			return fmt.Errorf("exporting wire %q: %w", wr.Name, err)
		}
		enc, err := toCtyPoints(e.Flatten())
		if err != nil {
			return fmt.Errorf("exporting wire %q: %w", wr.Name, err)
		}
		newBlock("wire", wr.Name).SetAttributeValue("encoded", enc)
	}

	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("exporting layout: %w", err)
	}
	return nil
}

// Exporter is the HCL-specific implementation of the config.Exporter interface.
type Exporter struct{}

var _ config.Exporter = Exporter{}

// Export calls the package-level Export.
func (Exporter) Export(w io.Writer, m *config.Model) error {
	return Export(w, m)
}
