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

// Package diagnostics models resolver diagnostics and the advisor that
// filters and streams them during a survey run.
package diagnostics

// Diagnostic is one resolver finding for a compilation unit.
type Diagnostic struct {
	// Severity classifies the finding.
	Severity Severity

	// Pos is the rendered source position; may be empty for package-level
	// findings.
	Pos string

	// Message is the resolver's message.
	Message string
}

// RunStats holds the counters of one survey run. They are mutated only by
// the [Advisor] on the run's single control thread and read once at the end
// for the summary.
type RunStats struct {
	// PackagesSeen counts packages scheduled for analysis.
	PackagesSeen int

	// PackagesSkipped counts packages that failed to resolve.
	PackagesSkipped int

	// FilesAnalyzed counts compilation units walked.
	FilesAnalyzed int

	// Errors and Warnings tally forwarded diagnostics only.
	Errors   int
	Warnings int
}
