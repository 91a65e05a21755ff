// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package testutil provides a temp-dir harness for running the application
// end to end in tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/electra/internal/app"
	"github.com/specialistvlad/electra/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output string // summary lines and logs, interleaved
	Err    error
	App    *app.App
	Dir    string // temporary root holding layout/ and anything the test configured
}

// RunApp provides a standardized harness for running the application against
// a set of files. Files are written relative to a temporary root; when any
// file is given, root/layout is used as the layout path. configure may adjust
// the config before the app is built, for example to point RestoreDir or
// SnapshotDir somewhere under root.
func RunApp(t *testing.T, files map[string]string, configure func(cfg *app.Config, root string)) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, configure)
}

// RunAppWithContext is RunApp with a caller-provided context.
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, configure func(cfg *app.Config, root string)) *HarnessResult {
	t.Helper()

	root := t.TempDir()
	layoutDir := filepath.Join(root, "layout")
	for name, content := range files {
		path := filepath.Join(layoutDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := app.Config{LogLevel: "debug", LogFormat: "text"}
	if len(files) > 0 {
		cfg.LayoutPath = layoutDir
	}
	if configure != nil {
		configure(&cfg, root)
	}
	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err, Dir: root}
	}

	out := &SafeBuffer{}
	var testApp *app.App
	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("application panicked | %v", r)
			}
		}()
		testApp = app.NewApp(out, appConfig, hcl.NewLoader(), hcl.Exporter{})
		runErr = testApp.Run(ctx)
	}()

	if os.Getenv("ELECTRA_TEST_LOGS") == "true" {
		t.Logf("--- Full Output for %s ---\n%s", t.Name(), out.String())
	}

	return &HarnessResult{
		Output: out.String(),
		Err:    runErr,
		App:    testApp,
		Dir:    root,
	}
}
