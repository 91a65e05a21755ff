// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testutil

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SummaryLine returns the "cells=... wires=..." line printed by a run.
func SummaryLine(t *testing.T, result *HarnessResult) string {
	t.Helper()
	sc := bufio.NewScanner(strings.NewReader(result.Output))
	for sc.Scan() {
		if line := sc.Text(); strings.HasPrefix(line, "cells=") {
			return line
		}
	}
	require.FailNow(t, "summary line not found", "output:\n%s", result.Output)
	return ""
}

// AssertSummary checks the summary line printed by a run.
func AssertSummary(t *testing.T, result *HarnessResult, expected string) {
	t.Helper()
	require.Equal(t, expected, SummaryLine(t, result))
}
