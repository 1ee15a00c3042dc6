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

package analyzer

import (
	"errors"
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/tearscan/internal/detect"
	"fillmore-labs.com/tearscan/internal/evidence"
	"fillmore-labs.com/tearscan/internal/walk"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// runOptions holds the detector selection of one analyzer instance.
type runOptions struct {
	tearoff     bool
	typeLiteral bool
}

func defaultRunOptions() *runOptions {
	return &runOptions{tearoff: true, typeLiteral: true}
}

// run executes the configured detectors over every file of the pass,
// converting each evidence record into an ordinary diagnostic.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("tearscan: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	pass := &detect.Pass{
		Fset: p.Fset,
		Info: p.TypesInfo,
		Report: func(rec evidence.Record) {
			p.Report(analysis.Diagnostic{
				Pos:     rec.Pos,
				Message: fmt.Sprintf("%s: %s", rec.Category, rec.Rendered),
			})
		},
	}

	var vs []walk.Visitor
	if r.tearoff {
		vs = append(vs, detect.NewTearoff(pass))
	}

	if r.typeLiteral {
		vs = append(vs, detect.NewTypeLiteral(pass))
	}

	if len(vs) == 0 {
		return nil, nil
	}

	v := walk.NewComposite(vs...)

	// Faults are contained per file: traversal of the remaining files
	// continues after a report.
	for fc := range in.Root().Preorder((*ast.File)(nil)) {
		if err := walk.File(fc, v); err != nil {
			file := fc.Node().(*ast.File)
			p.Report(analysis.Diagnostic{
				Pos:     file.Pos(),
				Message: fmt.Sprintf("Internal Error: %v", err),
			})
		}
	}

	return nil, nil
}
