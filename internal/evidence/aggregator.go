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

package evidence

// DefaultMaxExamples bounds the example list kept per category when no
// explicit bound is configured.
const DefaultMaxExamples = 5

// Aggregator accumulates [Record] values per category over a whole run.
//
// It is the exclusive owner of every record added to it and exposes only the
// reduced [CategoryResult] view. All mutation happens on the single control
// thread of a run; in parallel mode per-worker aggregators are combined with
// [Aggregator.Merge], which is associative over record batches.
type Aggregator struct {
	maxExamples int
	counts      map[Category]int
	examples    map[Category][]string
}

// NewAggregator creates an empty aggregator keeping at most maxExamples
// examples per category. A non-positive bound selects [DefaultMaxExamples].
func NewAggregator(maxExamples int) *Aggregator {
	if maxExamples <= 0 {
		maxExamples = DefaultMaxExamples
	}

	return &Aggregator{
		maxExamples: maxExamples,
		counts:      make(map[Category]int),
		examples:    make(map[Category][]string),
	}
}

// Add folds one record into the aggregate. Examples retain first-seen order.
func (a *Aggregator) Add(r Record) {
	a.counts[r.Category]++

	if ex := a.examples[r.Category]; len(ex) < a.maxExamples {
		a.examples[r.Category] = append(ex, r.Example())
	}
}

// Merge folds another aggregator into this one. Counts add up exactly;
// examples from o are appended until the bound is reached, so merging batches
// in any grouping yields the same counts as a single-batch reduction.
func (a *Aggregator) Merge(o *Aggregator) {
	for c, n := range o.counts {
		a.counts[c] += n
	}

	for c, ex := range o.examples {
		have := a.examples[c]
		for _, e := range ex {
			if len(have) >= a.maxExamples {
				break
			}

			have = append(have, e)
		}

		a.examples[c] = have
	}
}

// CategoryResult is the reduced view of one category: total occurrences and a
// bounded list of rendered examples in detection order.
type CategoryResult struct {
	Category Category
	Count    int
	Examples []string
}

// Reduce returns one [CategoryResult] per category that saw at least one
// record, in [Category] declaration order.
func (a *Aggregator) Reduce() []CategoryResult {
	var results []CategoryResult

	for _, c := range Categories() {
		n, ok := a.counts[c]
		if !ok {
			continue
		}

		results = append(results, CategoryResult{
			Category: c,
			Count:    n,
			Examples: a.examples[c],
		})
	}

	return results
}

// Total returns the number of records added across all categories.
func (a *Aggregator) Total() int {
	total := 0
	for _, n := range a.counts {
		total += n
	}

	return total
}
