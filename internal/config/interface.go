// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"context"
	"io"
)

// Loader is the interface for a format-specific layout loader.
type Loader interface {
	// Load reads every layout file reachable from paths and translates them
	// into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Exporter is the interface for writing a model back out in a specific format.
type Exporter interface {
	Export(w io.Writer, m *Model) error
}
