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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/tearscan/internal/evidence"
)

// Tearoff detects function-like declarations whose body is a pure forwarding
// wrapper around an object construction: every argument of the construction
// is a bare reference to one of the wrapper's own parameters. Such wrappers
// are candidates for referencing the constructor directly.
//
// Two axes classify a match. Confidence is high for function literals used
// inline (the primary rewrite target) and low for named declarations, whose
// rewrite changes a visible signature. Namedness distinguishes a secondary
// constructor call (a package-level New* function) from primary construction
// via a composite literal.
type Tearoff struct {
	pass *Pass
}

// NewTearoff creates the constructor-shorthand detector for one pass.
func NewTearoff(p *Pass) *Tearoff { return &Tearoff{pass: p} }

// NodeKinds implements [walk.Visitor].
func (d *Tearoff) NodeKinds() []ast.Node {
	return []ast.Node{(*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)}
}

// Visit classifies one function-like declaration.
func (d *Tearoff) Visit(c inspector.Cursor) error {
	switch node := c.Node().(type) {
	case *ast.FuncDecl:
		if node.Body == nil { // declaration without body (assembly, linkname)
			return nil
		}

		d.check(node.Type, node.Body, false, "func "+node.Name.Name)

	case *ast.FuncLit:
		d.check(node.Type, node.Body, inline(c), "function literal")

	default:
		// The walker only dispatches registered kinds; anything else is a
		// coverage gap that must not be swallowed.
		d.pass.CoverageGap(c.Node(), "tearoff detector can't classify %T", c.Node())
	}

	return nil
}

// inline reports whether a function literal is used inline rather than bound
// to a name. Literals on the right-hand side of an assignment or variable
// declaration behave like named functions: rewriting them changes what the
// name refers to, so they only qualify for the low confidence tier.
func inline(c inspector.Cursor) bool {
	switch ek, _ := c.ParentEdge(); ek {
	case edge.AssignStmt_Rhs, edge.ValueSpec_Values:
		return false
	default:
		return true
	}
}

func (d *Tearoff) check(ft *ast.FuncType, body *ast.BlockStmt, high bool, decl string) {
	// Eligible bodies consist of a single return with one result.
	if len(body.List) != 1 {
		return
	}

	ret, ok := body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return
	}

	ctor, ok := d.construction(ret.Results[0])
	if !ok {
		return
	}

	formals, ok := d.formals(ft)
	if !ok {
		return
	}

	for _, arg := range ctor.args {
		if !d.forwards(arg, formals) {
			return
		}
	}

	d.pass.record(
		evidence.TearoffCategory(high, ctor.named),
		body,
		fmt.Sprintf("%s forwards to %s", decl, ctor.display),
	)
}

// construction describes the object-construction expression of a candidate
// wrapper body.
type construction struct {
	named   bool
	display string
	args    []ast.Expr
}

// construction unwraps expr into a construction descriptor. It accepts a
// composite literal of a named type (primary construction), optionally behind
// a single &, or a call to a package-level New* function returning one value
// (secondary constructor). Everything else disqualifies the wrapper.
func (d *Tearoff) construction(expr ast.Expr) (construction, bool) {
	if unary, ok := expr.(*ast.UnaryExpr); ok && unary.Op == token.AND {
		expr = unary.X
	}

	switch e := expr.(type) {
	case *ast.CompositeLit:
		tn, ok := d.typeName(e.Type)
		if !ok {
			return construction{}, false
		}

		return construction{named: false, display: tn.Name() + "{}", args: e.Elts}, true

	case *ast.CallExpr:
		fn, ok := d.constructorFunc(e.Fun)
		if !ok {
			return construction{}, false
		}

		return construction{named: true, display: fn.Name() + "()", args: e.Args}, true

	default:
		return construction{}, false
	}
}

// typeName resolves a composite literal's type expression to the named type
// being constructed.
func (d *Tearoff) typeName(expr ast.Expr) (*types.TypeName, bool) {
	var id *ast.Ident

	switch t := expr.(type) {
	case *ast.Ident:
		id = t
	case *ast.SelectorExpr:
		id = t.Sel
	default: // anonymous struct, slice, map or array literal
		return nil, false
	}

	tn, ok := d.pass.Info.Uses[id].(*types.TypeName)

	return tn, ok
}

// constructorFunc resolves a call's callee to a secondary constructor: a
// package-level function named New* with a single result.
func (d *Tearoff) constructorFunc(expr ast.Expr) (*types.Func, bool) {
	var id *ast.Ident

	switch f := expr.(type) {
	case *ast.Ident:
		id = f
	case *ast.SelectorExpr:
		id = f.Sel
	default:
		return nil, false
	}

	fn, ok := d.pass.Info.Uses[id].(*types.Func)
	if !ok || !strings.HasPrefix(fn.Name(), "New") {
		return nil, false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() != nil || sig.Results().Len() != 1 {
		return nil, false
	}

	return fn, true
}

// formals collects the wrapper's formal parameter symbols. A parameter
// identifier without a resolved object is a defect in detector coverage and
// is reported loudly rather than skipped.
func (d *Tearoff) formals(ft *ast.FuncType) (map[*types.Var]bool, bool) {
	formals := make(map[*types.Var]bool)

	if ft.Params == nil {
		return formals, true
	}

	for _, field := range ft.Params.List {
		for _, name := range field.Names {
			v, ok := d.pass.Info.Defs[name].(*types.Var)
			if !ok {
				d.pass.CoverageGap(name, "unresolved parameter %s", name.Name)

				return nil, false
			}

			formals[v] = true
		}
	}

	return formals, true
}

// forwards reports whether arg is a bare reference to one of the wrapper's
// formal parameters. A named-field wrapper is unwrapped to its value first;
// literals, compound expressions and out-of-set references all disqualify.
func (d *Tearoff) forwards(arg ast.Expr, formals map[*types.Var]bool) bool {
	if kv, ok := arg.(*ast.KeyValueExpr); ok {
		arg = kv.Value
	}

	id, ok := arg.(*ast.Ident)
	if !ok {
		return false
	}

	v, ok := d.pass.Info.Uses[id].(*types.Var)

	return ok && formals[v]
}
