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

// Package walk provides the generic traversal that drives all detectors.
//
// Traversal is depth-first and pre-order, visiting children in syntactic
// left-to-right order. A visitor callback never prunes the walk; detectors
// see every node of the kinds they registered for. Faults raised while
// visiting are contained to the current compilation unit.
package walk

import (
	"errors"
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"
)

// ErrTraversal wraps a panic recovered while visiting a compilation unit.
var ErrTraversal = errors.New("traversal fault")

// Visitor receives pre-order callbacks for the node kinds it registers.
type Visitor interface {
	// NodeKinds returns the node kinds the visitor wants to see, as nil
	// pointers of the concrete AST types (the [inspector] convention).
	NodeKinds() []ast.Node

	// Visit is invoked once per matching node. Returning a non-nil error
	// aborts traversal of the current compilation unit only.
	Visit(c inspector.Cursor) error
}

// File runs one visitor over one compilation unit rooted at file.
//
// An error returned by the visitor, or a panic raised by it, stops this
// file's traversal and is returned to the caller; the caller decides whether
// to continue with the next unit.
func File(file inspector.Cursor, v Visitor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTraversal, r)
		}
	}()

	for c := range file.Preorder(v.NodeKinds()...) {
		if err := v.Visit(c); err != nil {
			return err
		}
	}

	return nil
}
