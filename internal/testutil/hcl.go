// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import "testing"

// RunHCLLayoutTest runs the application on a single layout file.
func RunHCLLayoutTest(t *testing.T, layoutHCL string) *HarnessResult {
	t.Helper()
	return RunApp(t, map[string]string{"main.hcl": layoutHCL}, nil)
}
