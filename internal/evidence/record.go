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

// Package evidence holds detected occurrences and reduces them into the
// per-category results of a survey run.
package evidence

import (
	"fmt"
	"go/token"
)

// Location identifies where a [Record] was detected.
// It is created from the detecting file's position information and never
// refers outside the compilation unit that produced the record.
type Location struct {
	File   string
	Line   int
	Column int
}

// LocationOf converts a resolved token position into a [Location].
func LocationOf(pos token.Position) Location {
	return Location{File: pos.Filename, Line: pos.Line, Column: pos.Column}
}

// String renders the location as file:line:column.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Record is a single detected occurrence. Records are immutable values;
// once added to an [Aggregator] they are owned by it.
type Record struct {
	// Category is the classification of the occurrence.
	Category Category

	// Pos is the occurrence's position in the producing unit's file set,
	// for drivers that report diagnostics instead of aggregating.
	Pos token.Pos

	// Location is where the occurrence was detected.
	Location Location

	// Rendered is a short source-derived description of the occurrence.
	Rendered string
}

// Example renders the record the way it appears in a category's example list.
func (r Record) Example() string {
	return fmt.Sprintf("%s at %s", r.Rendered, r.Location)
}
