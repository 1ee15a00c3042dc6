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

// Package format renders survey progress, diagnostics and the final
// categorized report to a stream.
package format

import (
	"time"

	"fillmore-labs.com/tearscan/internal/diagnostics"
	"fillmore-labs.com/tearscan/internal/evidence"
)

// Formatter renders the output of a survey run. The driver is the only
// caller; all methods run on the single control thread.
type Formatter interface {
	// Progress announces the package about to be analyzed.
	Progress(name string, index, total int)

	// Warn renders a recoverable per-package or per-file fault.
	Warn(msg string)

	// ReportCategory renders one reduced category result.
	ReportCategory(res evidence.CategoryResult)

	// ReportDiagnostics renders one streamed diagnostic block.
	ReportDiagnostics(ds []diagnostics.Diagnostic)

	// ReportStats renders the final summary with elapsed wall-clock time.
	ReportStats(stats diagnostics.RunStats, elapsed time.Duration)

	// Flush writes any buffered output to the underlying stream.
	Flush() error
}
