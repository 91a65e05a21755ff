// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/electra/internal/config"
	"github.com/specialistvlad/electra/internal/layout"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	exporter config.Exporter
	layout   *layout.Layout[config.Coord]
	model    *config.Model
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and an empty layout.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, exporter config.Exporter) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		exporter: exporter,
		layout:   layout.New[config.Coord](),
		model:    &config.Model{},
	}
}

// Layout returns the application's layout. This is primarily for testing.
func (a *App) Layout() *layout.Layout[config.Coord] {
	return a.layout
}
