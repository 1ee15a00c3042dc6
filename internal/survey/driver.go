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

// Package survey orchestrates a run: it discovers packages, resolves them,
// walks every compilation unit with the configured detectors, and hands the
// reduced results to the formatter.
//
// Packages are processed strictly sequentially by default, capping peak
// memory to one package's resolved trees. The aggregator and the run
// statistics are only ever mutated from the single control thread; the
// optional parallel mode keeps that property by message-passing per-package
// results back to one collector.
package survey

import (
	"context"
	"fmt"
	"go/ast"
	"log/slog"
	"time"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/tearscan/internal/config"
	"fillmore-labs.com/tearscan/internal/detect"
	"fillmore-labs.com/tearscan/internal/diagnostics"
	"fillmore-labs.com/tearscan/internal/evidence"
	"fillmore-labs.com/tearscan/internal/format"
	"fillmore-labs.com/tearscan/internal/walk"
)

// Driver runs one survey.
type Driver struct {
	cfg      config.RunConfig
	resolver Resolver
	out      format.Formatter
	log      *slog.Logger
}

// New creates a driver. A nil logger discards log output.
func New(cfg config.RunConfig, resolver Resolver, out format.Formatter, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Driver{cfg: cfg, resolver: resolver, out: out, log: log}
}

// Run surveys the packages reachable from the path arguments and reports the
// final statistics. Per-package and per-file faults are converted to
// warnings; only finding no package at all, or a resolution failure with
// [config.RequireResolve] set, fails the run.
func (d *Driver) Run(ctx context.Context, paths []string) (diagnostics.RunStats, error) {
	start := time.Now()

	pkgs, err := Discover(paths)
	if err != nil {
		return diagnostics.RunStats{}, err
	}

	total := len(pkgs)
	if d.cfg.Limit > 0 && d.cfg.Limit < total {
		total = d.cfg.Limit
	}

	agg := evidence.NewAggregator(d.cfg.MaxExamples)
	advisor := diagnostics.NewAdvisor(d.out, d.cfg.Limit)

	if d.cfg.Jobs > 1 {
		err = d.runParallel(ctx, pkgs[:total], agg, advisor)
	} else {
		err = d.runSequential(ctx, pkgs, total, agg, advisor)
	}

	if err != nil {
		return advisor.Stats(), err
	}

	for _, res := range agg.Reduce() {
		d.out.ReportCategory(res)
	}

	stats := advisor.Stats()
	d.out.ReportStats(stats, time.Since(start))

	return stats, d.out.Flush()
}

// runSequential analyzes packages one at a time on the control thread. The
// advisor's early-stop signal is cooperative: the current package completes,
// no further package is scheduled.
func (d *Driver) runSequential(
	ctx context.Context, pkgs []Package, total int,
	agg *evidence.Aggregator, advisor *diagnostics.Advisor,
) error {
	for i, pkg := range pkgs {
		proceed := advisor.PreAnalysis(pkg.Root, pkg.Sub)
		d.out.Progress(pkg.Name, i+1, total)

		r := d.analyzePackage(ctx, pkg)
		if r.err != nil {
			return r.err
		}

		d.fold(r, agg, advisor)

		if !proceed {
			d.log.Debug("package limit reached", "limit", d.cfg.Limit)

			break
		}
	}

	return nil
}

// pkgResult carries one package's outcome back to the control thread.
type pkgResult struct {
	pkg     Package
	agg     *evidence.Aggregator
	ds      []diagnostics.Diagnostic
	files   int
	skipped bool
	warns   []string
	err     error
}

// analyzePackage resolves one package and walks all of its compilation
// units into a package-local aggregator. It mutates no driver state, so the
// parallel mode can call it from worker goroutines.
func (d *Driver) analyzePackage(ctx context.Context, pkg Package) pkgResult {
	r := pkgResult{pkg: pkg, agg: evidence.NewAggregator(d.cfg.MaxExamples)}

	units, ds, err := d.resolver.ResolvePackage(ctx, pkg.Root)
	if err != nil {
		if d.cfg.Behavior.Enabled(config.RequireResolve) {
			r.err = err
		} else {
			r.skipped = true
			r.warns = append(r.warns, fmt.Sprintf("skipping '%s': %v", pkg.Name, err))
		}

		return r
	}

	r.ds = ds

	for _, unit := range units {
		if err := d.walkUnit(unit, r.agg); err != nil {
			name := unit.Fset.Position(unit.File.Pos()).Filename
			r.warns = append(r.warns, fmt.Sprintf("%s: %v", name, err))

			continue
		}

		r.files++
	}

	return r
}

// fold merges one package's outcome into the run's aggregate state. Only the
// control thread calls it.
func (d *Driver) fold(r pkgResult, agg *evidence.Aggregator, advisor *diagnostics.Advisor) {
	if r.skipped {
		advisor.PackageSkipped()
	}

	for _, w := range r.warns {
		d.out.Warn(w)
		d.log.Warn(w)
	}

	advisor.Observe(r.ds)
	advisor.FilesAnalyzed(r.files)
	agg.Merge(r.agg)
}

// walkUnit runs the configured detectors over one compilation unit. A
// detector fault is contained to this unit.
func (d *Driver) walkUnit(unit Unit, agg *evidence.Aggregator) error {
	pass := &detect.Pass{Fset: unit.Fset, Info: unit.Info, Report: agg.Add}

	var vs []walk.Visitor
	if d.cfg.Detectors.Enabled(config.TearoffDetector) {
		vs = append(vs, detect.NewTearoff(pass))
	}

	if d.cfg.Detectors.Enabled(config.TypeLiteralDetector) {
		vs = append(vs, detect.NewTypeLiteral(pass))
	}

	if len(vs) == 0 {
		return nil
	}

	root := inspector.New([]*ast.File{unit.File}).Root()

	return walk.File(root, walk.NewComposite(vs...))
}
