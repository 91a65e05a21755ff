// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic layout model for the
// application, along with the Loader interface for reading it from various
// sources.
//
// The `config.Model` is the single source of truth for the `layout` package.
// Concrete implementations of the interface, such as for HCL, are provided in
// separate packages.
package config
