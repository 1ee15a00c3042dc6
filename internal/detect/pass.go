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

// Package detect implements the pattern detectors of the surveyor: the
// constructor-shorthand ("tearoff") detector and the type-literal detector.
//
// Detectors are [walk.Visitor] implementations over resolved syntax trees.
// They share one traversal per compilation unit via [walk.Composite] and
// report matches as [evidence.Record] values.
package detect

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/tearscan/internal/evidence"
)

// Pass carries the resolved information for the compilation units a detector
// runs over. Report receives every record at detection time; it is typically
// an [evidence.Aggregator] bound method.
type Pass struct {
	Fset   *token.FileSet
	Info   *types.Info
	Report func(evidence.Record)
}

// record emits one detection at node's position.
func (p *Pass) record(c evidence.Category, node ast.Node, rendered string) {
	p.Report(evidence.Record{
		Category: c,
		Pos:      node.Pos(),
		Location: evidence.LocationOf(p.Fset.Position(node.Pos())),
		Rendered: rendered,
	})
}

// CoverageGap reports a syntactic shape a detector does not know how to
// classify. These indicate gaps in detector coverage rather than issues in
// the surveyed code; they are recorded under the internal error category so
// they surface in the report instead of silently undercounting.
func (p *Pass) CoverageGap(node ast.Node, format string, args ...any) {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	p.record(evidence.InternalError, node, string(msg))
}
