// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package format_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/tearscan/internal/diagnostics"
	"fillmore-labs.com/tearscan/internal/evidence"
	. "fillmore-labs.com/tearscan/internal/format"
)

func init() {
	color.NoColor = true // stable output under test
}

func TestTextProgress(t *testing.T) {
	var sb strings.Builder

	f := NewText(&sb, false)
	f.Progress("mypkg", 2, 7)
	require.NoError(t, f.Flush())

	assert.Equal(t, "Analyzing 'mypkg' • [2/7]...\n", sb.String())
}

func TestTextQuietSuppressesProgress(t *testing.T) {
	var sb strings.Builder

	f := NewText(&sb, true)
	f.Progress("mypkg", 1, 1)
	require.NoError(t, f.Flush())

	assert.Empty(t, sb.String())
}

func TestTextReportCategory(t *testing.T) {
	var sb strings.Builder

	f := NewText(&sb, false)
	f.ReportCategory(evidence.CategoryResult{
		Category: evidence.HighUnnamedTearoff,
		Count:    2,
		Examples: []string{"function literal forwards to Point{} at a/a.go:3:40"},
	})
	require.NoError(t, f.Flush())

	out := sb.String()
	assert.Contains(t, out, "high confidence unnamed tearoff: 2 occurrences\n")
	assert.Contains(t, out, "  - function literal forwards to Point{} at a/a.go:3:40\n")
}

func TestTextReportDiagnostics(t *testing.T) {
	var sb strings.Builder

	f := NewText(&sb, false)
	f.ReportDiagnostics([]diagnostics.Diagnostic{
		{Severity: diagnostics.SeverityError, Pos: "a/a.go:1:1", Message: "undefined: x"},
		{Severity: diagnostics.SeverityWarning, Message: "package skipped"},
	})
	require.NoError(t, f.Flush())

	assert.Equal(t, "error: a/a.go:1:1: undefined: x\nwarning: package skipped\n", sb.String())
}

func TestTextReportStats(t *testing.T) {
	var sb strings.Builder

	f := NewText(&sb, false)
	f.ReportStats(diagnostics.RunStats{
		PackagesSeen:    3,
		PackagesSkipped: 1,
		FilesAnalyzed:   12,
		Errors:          1,
		Warnings:        2,
	}, 1500*time.Millisecond)
	require.NoError(t, f.Flush())

	assert.Equal(t, "\nAnalyzed 12 files in 3 packages (1 skipped): 1 error, 2 warnings.\nElapsed: 1.5s\n", sb.String())
}
