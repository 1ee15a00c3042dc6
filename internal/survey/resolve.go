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
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/tearscan/internal/diagnostics"
)

// ErrResolve wraps failures of the external package resolver.
var ErrResolve = errors.New("package resolution failed")

// Unit is one resolved compilation unit: a syntax tree with its symbol and
// type bindings. Units are transient; the driver discards them after
// traversal.
type Unit struct {
	// Pkg is the owning package's import path.
	Pkg string

	// File is the unit's syntax tree root.
	File *ast.File

	// Fset resolves the unit's positions.
	Fset *token.FileSet

	// Info carries the unit's resolved type and symbol information.
	Info *types.Info
}

// Resolver produces resolved compilation units for a package root. The
// surveyor consumes it as a black box and never parses or type-checks
// itself.
type Resolver interface {
	ResolvePackage(ctx context.Context, root string) ([]Unit, []diagnostics.Diagnostic, error)
}

// GoResolver resolves packages with the go/packages loader.
type GoResolver struct {
	// Tests includes test files in the load.
	Tests bool
}

var _ Resolver = GoResolver{}

const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// ResolvePackage loads every Go package under root and flattens the result
// into compilation units plus classified diagnostics.
func (r GoResolver) ResolvePackage(ctx context.Context, root string) ([]Unit, []diagnostics.Diagnostic, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     root,
		Tests:   r.Tests,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrResolve, root, err)
	}

	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("%w: no Go packages under %s", ErrResolve, root)
	}

	var (
		units []Unit
		ds    []diagnostics.Diagnostic
	)

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			ds = append(ds, classify(e))
		}

		for _, f := range pkg.Syntax {
			units = append(units, Unit{
				Pkg:  pkg.PkgPath,
				File: f,
				Fset: pkg.Fset,
				Info: pkg.TypesInfo,
			})
		}
	}

	return units, ds, nil
}

// classify maps a loader error onto the diagnostic taxonomy: listing
// problems are recoverable warnings, parse and type errors are errors.
func classify(e packages.Error) diagnostics.Diagnostic {
	severity := diagnostics.SeverityError
	if e.Kind == packages.ListError {
		severity = diagnostics.SeverityWarning
	}

	return diagnostics.Diagnostic{
		Severity: severity,
		Pos:      e.Pos,
		Message:  e.Msg,
	}
}
