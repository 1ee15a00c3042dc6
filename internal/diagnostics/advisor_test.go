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

package diagnostics_test

import (
	"reflect"
	"testing"

	. "fillmore-labs.com/tearscan/internal/diagnostics"
)

type captureSink struct {
	blocks [][]Diagnostic
}

func (s *captureSink) ReportDiagnostics(ds []Diagnostic) {
	s.blocks = append(s.blocks, ds)
}

func TestAdvisorFilters(t *testing.T) {
	t.Parallel()

	sink := &captureSink{}
	a := NewAdvisor(sink, 0)

	a.Observe([]Diagnostic{
		{Severity: SeverityError, Message: "undefined: x"},
		{Severity: SeverityLint, Message: "exported without comment"},
		{Severity: SeverityHint, Message: "consider renaming"},
	})

	if len(sink.blocks) != 1 {
		t.Fatalf("got %d streamed blocks, want 1", len(sink.blocks))
	}

	want := []Diagnostic{{Severity: SeverityError, Message: "undefined: x"}}
	if !reflect.DeepEqual(sink.blocks[0], want) {
		t.Errorf("forwarded %v, want %v", sink.blocks[0], want)
	}

	stats := a.Stats()
	if stats.Errors != 1 || stats.Warnings != 0 {
		t.Errorf("stats = %+v, want exactly one error and no warnings", stats)
	}
}

func TestAdvisorStreamsPerUnit(t *testing.T) {
	t.Parallel()

	sink := &captureSink{}
	a := NewAdvisor(sink, 0)

	a.Observe([]Diagnostic{{Severity: SeverityWarning, Message: "first unit"}})
	a.Observe([]Diagnostic{{Severity: SeverityInfo, Message: "filtered"}})
	a.Observe([]Diagnostic{{Severity: SeverityWarning, Message: "second unit"}})

	// One block per unit with advisory diagnostics, streamed immediately.
	if len(sink.blocks) != 2 {
		t.Fatalf("got %d streamed blocks, want 2", len(sink.blocks))
	}

	if got := a.Stats().Warnings; got != 2 {
		t.Errorf("Warnings = %d, want 2", got)
	}
}

func TestAdvisorPackageCap(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name     string
		cap      int
		packages int
		want     []bool
	}{
		{name: "unbounded", cap: 0, packages: 3, want: []bool{true, true, true}},
		{name: "cap_two", cap: 2, packages: 3, want: []bool{true, false, false}},
		{name: "cap_one", cap: 1, packages: 2, want: []bool{false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewAdvisor(&captureSink{}, tt.cap)

			got := make([]bool, 0, tt.packages)
			for i := range tt.packages {
				got = append(got, a.PreAnalysis("pkg", i > 0))
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PreAnalysis sequence = %v, want %v", got, tt.want)
			}

			if seen := a.Stats().PackagesSeen; seen != tt.packages {
				t.Errorf("PackagesSeen = %d, want %d", seen, tt.packages)
			}
		})
	}
}
