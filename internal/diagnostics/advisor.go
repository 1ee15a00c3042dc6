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

package diagnostics

// Sink receives streamed diagnostic blocks. It is the narrow slice of the
// formatter the advisor depends on.
type Sink interface {
	ReportDiagnostics(ds []Diagnostic)
}

// Advisor filters resolver diagnostics, streams the advisory remainder to a
// [Sink] as each compilation unit completes, and keeps the running
// statistics of the survey.
//
// A positive package cap makes the advisor signal cooperative early
// termination: once the packages-seen counter reaches the cap, the driver
// stops scheduling further packages, while in-flight work completes.
type Advisor struct {
	sink  Sink
	cap   int
	stats RunStats
}

// NewAdvisor creates an advisor streaming to sink. A packageCap of 0 leaves
// the run unbounded.
func NewAdvisor(sink Sink, packageCap int) *Advisor {
	return &Advisor{sink: sink, cap: packageCap}
}

// PreAnalysis records a package about to be analyzed and reports whether the
// driver may schedule further packages afterwards.
func (a *Advisor) PreAnalysis(root string, subpackage bool) (proceed bool) {
	_ = root // counted per package regardless of origin
	_ = subpackage

	a.stats.PackagesSeen++

	return a.cap == 0 || a.stats.PackagesSeen < a.cap
}

// Observe filters one compilation unit's diagnostics and streams the
// advisory remainder immediately. Only forwarded diagnostics are tallied.
func (a *Advisor) Observe(ds []Diagnostic) {
	var kept []Diagnostic

	for _, d := range ds {
		if !d.Severity.Advisory() {
			continue
		}

		switch d.Severity {
		case SeverityError:
			a.stats.Errors++
		case SeverityWarning:
			a.stats.Warnings++
		}

		kept = append(kept, d)
	}

	if len(kept) > 0 {
		a.sink.ReportDiagnostics(kept)
	}
}

// FilesAnalyzed counts successfully walked compilation units.
func (a *Advisor) FilesAnalyzed(n int) { a.stats.FilesAnalyzed += n }

// PackageSkipped counts one package that failed to resolve.
func (a *Advisor) PackageSkipped() { a.stats.PackagesSkipped++ }

// Stats returns the counters accumulated so far. Read once at the end of the
// run for the summary line.
func (a *Advisor) Stats() RunStats { return a.stats }
