// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/electra/internal/config"
)

// WireQuery asks for the wire running from Start to End.
type WireQuery struct {
	Start, End config.Point
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LayoutPath  string     // hcl file or directory
	RestoreDir  string     // snapshot to load before the layout
	SnapshotDir string     // where to save the resulting layout
	ExportPath  string     // where to write the canonical layout file
	Wire        *WireQuery // optional lookup

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.LayoutPath == "" && cfg.RestoreDir == "" {
		return nil, errors.New("either a layout path or a restore directory is required")
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return &cfg, nil
}
