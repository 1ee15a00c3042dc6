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

package survey

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/tearscan/internal/diagnostics"
	"fillmore-labs.com/tearscan/internal/evidence"
)

// runParallel analyzes the (already limit-bounded) package list with a
// bounded worker pool. Workers fill package-local aggregators; all merging,
// advisor bookkeeping and formatter output stays on this goroutine, so no
// shared mutable state crosses package boundaries.
//
// Counts remain deterministic because the aggregator merge is associative;
// example and progress ordering follows completion order and is explicitly
// relaxed in this mode.
func (d *Driver) runParallel(
	ctx context.Context, pkgs []Package,
	agg *evidence.Aggregator, advisor *diagnostics.Advisor,
) error {
	results := make(chan pkgResult)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Jobs)

	go func() {
		defer close(results)

		for _, pkg := range pkgs {
			g.Go(func() error {
				r := d.analyzePackage(gctx, pkg)

				select {
				case results <- r:
					return r.err
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}

		g.Wait() // ignore error, surfaced through the results channel
	}()

	var firstErr error

	done := 0
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}

			continue
		}

		advisor.PreAnalysis(r.pkg.Root, r.pkg.Sub)

		done++
		d.out.Progress(r.pkg.Name, done, len(pkgs))

		d.fold(r, agg, advisor)
	}

	return firstErr
}
