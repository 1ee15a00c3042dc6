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

package format

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"fillmore-labs.com/tearscan/internal/diagnostics"
	"fillmore-labs.com/tearscan/internal/evidence"
)

// Text renders human-readable survey output. Color is controlled globally
// through the color package (see the --color flag).
type Text struct {
	w     *bufio.Writer
	quiet bool

	category *color.Color
	errColor *color.Color
	warning  *color.Color
}

var _ Formatter = (*Text)(nil)

// NewText creates a text formatter writing to w. With quiet set, progress
// lines are suppressed.
func NewText(w io.Writer, quiet bool) *Text {
	return &Text{
		w:        bufio.NewWriter(w),
		quiet:    quiet,
		category: color.New(color.Bold),
		errColor: color.New(color.FgRed),
		warning:  color.New(color.FgYellow),
	}
}

// Progress implements [Formatter].
func (t *Text) Progress(name string, index, total int) {
	if t.quiet {
		return
	}

	fmt.Fprintf(t.w, "Analyzing '%s' • [%d/%d]...\n", name, index, total)
}

// Warn implements [Formatter].
func (t *Text) Warn(msg string) {
	t.warning.Fprintf(t.w, "warning: %s\n", msg)
}

// ReportCategory implements [Formatter].
func (t *Text) ReportCategory(res evidence.CategoryResult) {
	t.category.Fprint(t.w, res.Category)
	fmt.Fprintf(t.w, ": %d %s\n", res.Count, plural(res.Count, "occurrence"))

	for _, example := range res.Examples {
		fmt.Fprintf(t.w, "  - %s\n", example)
	}
}

// ReportDiagnostics implements [Formatter].
func (t *Text) ReportDiagnostics(ds []diagnostics.Diagnostic) {
	for _, d := range ds {
		c := t.warning
		if d.Severity == diagnostics.SeverityError {
			c = t.errColor
		}

		c.Fprint(t.w, d.Severity)

		if d.Pos != "" {
			fmt.Fprintf(t.w, ": %s", d.Pos)
		}

		fmt.Fprintf(t.w, ": %s\n", d.Message)
	}
}

// ReportStats implements [Formatter].
func (t *Text) ReportStats(stats diagnostics.RunStats, elapsed time.Duration) {
	fmt.Fprintf(t.w, "\nAnalyzed %d %s in %d %s",
		stats.FilesAnalyzed, plural(stats.FilesAnalyzed, "file"),
		stats.PackagesSeen, plural(stats.PackagesSeen, "package"))

	if stats.PackagesSkipped > 0 {
		fmt.Fprintf(t.w, " (%d skipped)", stats.PackagesSkipped)
	}

	fmt.Fprintf(t.w, ": %d %s, %d %s.\n",
		stats.Errors, plural(stats.Errors, "error"),
		stats.Warnings, plural(stats.Warnings, "warning"))

	fmt.Fprintf(t.w, "Elapsed: %s\n", elapsed.Round(time.Millisecond))
}

// Flush implements [Formatter].
func (t *Text) Flush() error { return t.w.Flush() }

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}

	return noun + "s"
}
