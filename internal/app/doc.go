// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// A run restores a snapshot (optional), applies the layout files (optional),
// prints a one-line summary, answers a wire lookup and finally writes a
// snapshot and an exported layout when asked to.
package app
