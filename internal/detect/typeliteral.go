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

package detect

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/tearscan/internal/evidence"
)

// TypeLiteral detects identifiers that resolve to a type-defining declaration
// and appear in a value-producing position: a conversion callee or a method
// expression receiver. Identifiers in pure annotation positions (field,
// parameter and variable types, type specs, composite literal types) never
// match.
type TypeLiteral struct {
	pass *Pass
}

// NewTypeLiteral creates the type-literal detector for one pass.
func NewTypeLiteral(p *Pass) *TypeLiteral { return &TypeLiteral{pass: p} }

// NodeKinds implements [walk.Visitor].
func (d *TypeLiteral) NodeKinds() []ast.Node {
	return []ast.Node{(*ast.Ident)(nil)}
}

// Visit classifies one identifier use.
func (d *TypeLiteral) Visit(c inspector.Cursor) error {
	id, ok := c.Node().(*ast.Ident)
	if !ok {
		d.pass.CoverageGap(c.Node(), "type literal detector can't classify %T", c.Node())

		return nil
	}

	tn, ok := d.pass.Info.Uses[id].(*types.TypeName)
	if !ok || tn.Pkg() == nil { // not a type name, or a universe builtin
		return nil
	}

	if !d.valueUse(c) {
		return nil
	}

	d.pass.record(evidence.TypeLiteral, id, "type "+tn.Name()+" used as value")

	return nil
}

// valueUse reports whether the identifier's syntactic position produces a
// value from the type name.
func (d *TypeLiteral) valueUse(c inspector.Cursor) bool {
	ek, _ := c.ParentEdge()

	// Hop over the selector of a qualified name (pkg.T) to judge the
	// selector expression's own position.
	if ek == edge.SelectorExpr_Sel {
		c = c.Parent()
		ek, _ = c.ParentEdge()
	}

	switch ek {
	case edge.CallExpr_Fun:
		// The callee denotes a type, so the call is a conversion.
		return true

	case edge.SelectorExpr_X:
		// A method expression (T.M) yields the method as a function value.
		sel, ok := c.Parent().Node().(*ast.SelectorExpr)
		if !ok {
			return false
		}

		s, ok := d.pass.Info.Selections[sel]

		return ok && s.Kind() == types.MethodExpr

	default:
		return false
	}
}
