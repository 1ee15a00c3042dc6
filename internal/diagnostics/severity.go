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

// Severity classifies a resolver diagnostic.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// SeverityError is a resolution or type error.
	SeverityError Severity = iota // error

	// SeverityWarning is a recoverable problem, e.g. a skipped package.
	SeverityWarning // warning

	// SeverityInfo is informational output, including todo notes.
	SeverityInfo // info

	// SeverityHint is a non-actionable hint.
	SeverityHint // hint

	// SeverityLint is a style finding.
	SeverityLint // lint
)

// Advisory reports whether diagnostics of this severity are forwarded to the
// formatter. Hints, lints and informational notes are filtered out.
func (s Severity) Advisory() bool {
	return s == SeverityError || s == SeverityWarning
}
