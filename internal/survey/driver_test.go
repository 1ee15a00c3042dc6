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

package survey_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/tearscan/internal/config"
	"fillmore-labs.com/tearscan/internal/diagnostics"
	"fillmore-labs.com/tearscan/internal/evidence"
	. "fillmore-labs.com/tearscan/internal/survey"
	"fillmore-labs.com/tearscan/internal/testsource"
)

const tearoffSrc = `
type Point struct{ X, Y int }

func makePoint(x, y int) Point { return Point{x, y} }
`

// makeUnit resolves one source fragment into a compilation unit.
func makeUnit(t *testing.T, src string) Unit {
	t.Helper()

	fset, f, _ := testsource.ParseDecls(t, src)
	_, info := testsource.Check(t, fset, f)

	return Unit{Pkg: "test", File: f, Fset: fset, Info: info}
}

// stubResolver serves canned units per package root and records resolution
// order.
type stubResolver struct {
	mu       sync.Mutex
	units    map[string][]Unit
	ds       map[string][]diagnostics.Diagnostic
	fail     map[string]error
	resolved []string
}

func (r *stubResolver) ResolvePackage(_ context.Context, root string) ([]Unit, []diagnostics.Diagnostic, error) {
	r.mu.Lock()
	r.resolved = append(r.resolved, filepath.Base(root))
	r.mu.Unlock()

	if err := r.fail[root]; err != nil {
		return nil, nil, err
	}

	return r.units[root], r.ds[root], nil
}

// stubFormatter captures all formatter calls.
type stubFormatter struct {
	progress   []string
	warns      []string
	categories []evidence.CategoryResult
	blocks     [][]diagnostics.Diagnostic
	stats      diagnostics.RunStats
	flushed    bool
}

func (f *stubFormatter) Progress(name string, _, _ int) { f.progress = append(f.progress, name) }
func (f *stubFormatter) Warn(msg string)                { f.warns = append(f.warns, msg) }

func (f *stubFormatter) ReportCategory(res evidence.CategoryResult) {
	f.categories = append(f.categories, res)
}

func (f *stubFormatter) ReportDiagnostics(ds []diagnostics.Diagnostic) {
	f.blocks = append(f.blocks, ds)
}

func (f *stubFormatter) ReportStats(stats diagnostics.RunStats, _ time.Duration) { f.stats = stats }
func (f *stubFormatter) Flush() error                                            { f.flushed = true; return nil }

func TestDriverRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "alpha"))
	writeManifest(t, filepath.Join(root, "beta"))

	resolver := &stubResolver{
		units: map[string][]Unit{
			filepath.Join(root, "alpha"): {makeUnit(t, tearoffSrc)},
			filepath.Join(root, "beta"):  {makeUnit(t, `var x = 1`)},
		},
		ds: map[string][]diagnostics.Diagnostic{
			filepath.Join(root, "beta"): {
				{Severity: diagnostics.SeverityError, Message: "undefined: y"},
				{Severity: diagnostics.SeverityHint, Message: "filtered"},
			},
		},
	}

	out := &stubFormatter{}
	d := New(config.Default(), resolver, out, nil)

	stats, err := d.Run(t.Context(), []string{root})
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, out.progress)
	assert.Equal(t, 2, stats.PackagesSeen)
	assert.Equal(t, 2, stats.FilesAnalyzed)
	assert.Equal(t, 1, stats.Errors)

	// Only the error was streamed, the hint was filtered.
	require.Len(t, out.blocks, 1)
	require.Len(t, out.blocks[0], 1)
	assert.Equal(t, "undefined: y", out.blocks[0][0].Message)

	require.Len(t, out.categories, 1)
	assert.Equal(t, evidence.LowUnnamedTearoff, out.categories[0].Category)
	assert.Equal(t, 1, out.categories[0].Count)

	assert.True(t, out.flushed)
}

func TestDriverLimit(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		writeManifest(t, filepath.Join(root, name))
	}

	resolver := &stubResolver{}
	out := &stubFormatter{}

	cfg := config.Default()
	cfg.Limit = 2

	d := New(cfg, resolver, out, nil)

	stats, err := d.Run(t.Context(), []string{root})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, resolver.resolved)
	assert.LessOrEqual(t, stats.PackagesSeen, 2)
}

func TestDriverSkipsFailedResolve(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "bad"))
	writeManifest(t, filepath.Join(root, "good"))

	resolver := &stubResolver{
		units: map[string][]Unit{
			filepath.Join(root, "good"): {makeUnit(t, tearoffSrc)},
		},
		fail: map[string]error{
			filepath.Join(root, "bad"): errors.New("manifest corrupt"),
		},
	}

	out := &stubFormatter{}
	d := New(config.Default(), resolver, out, nil)

	stats, err := d.Run(t.Context(), []string{root})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.PackagesSkipped)
	assert.Equal(t, 1, stats.FilesAnalyzed)

	require.Len(t, out.warns, 1)
	assert.Contains(t, out.warns[0], "bad")
}

func TestDriverRequireResolve(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "bad"))

	failure := errors.New("dependency install failed")
	resolver := &stubResolver{
		fail: map[string]error{filepath.Join(root, "bad"): failure},
	}

	cfg := config.Default()
	cfg.Behavior.Enable(config.RequireResolve)

	d := New(cfg, resolver, &stubFormatter{}, nil)

	_, err := d.Run(t.Context(), []string{root})
	assert.ErrorIs(t, err, failure)
}

func TestDriverNoPackages(t *testing.T) {
	t.Parallel()

	d := New(config.Default(), &stubResolver{}, &stubFormatter{}, nil)

	_, err := d.Run(t.Context(), []string{t.TempDir()})
	assert.ErrorIs(t, err, ErrNoPackages)
}

// Parallel mode must produce the same counts as sequential mode.
func TestDriverParallel(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	units := make(map[string][]Unit)

	for _, name := range []string{"a", "b", "c", "d"} {
		dir := filepath.Join(root, name)
		writeManifest(t, dir)
		units[dir] = []Unit{makeUnit(t, tearoffSrc)}
	}

	resolver := &stubResolver{units: units}
	out := &stubFormatter{}

	cfg := config.Default()
	cfg.Jobs = 3

	d := New(cfg, resolver, out, nil)

	stats, err := d.Run(t.Context(), []string{root})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.PackagesSeen)
	assert.Equal(t, 4, stats.FilesAnalyzed)

	require.Len(t, out.categories, 1)
	assert.Equal(t, evidence.LowUnnamedTearoff, out.categories[0].Category)
	assert.Equal(t, 4, out.categories[0].Count)
}
