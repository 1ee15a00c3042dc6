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

package walk

import (
	"go/ast"
	"reflect"

	"golang.org/x/tools/go/ast/inspector"
)

// Composite fans one traversal out to several visitors, so multiple
// detectors share a single pass over each tree instead of re-walking it.
type Composite struct {
	kinds    []ast.Node
	visitors map[reflect.Type][]Visitor
}

// NewComposite builds a composite visitor dispatching each visited node to
// every sub-visitor that registered its kind.
func NewComposite(vs ...Visitor) *Composite {
	c := &Composite{visitors: make(map[reflect.Type][]Visitor)}

	for _, v := range vs {
		for _, kind := range v.NodeKinds() {
			t := reflect.TypeOf(kind)
			if _, seen := c.visitors[t]; !seen {
				c.kinds = append(c.kinds, kind)
			}

			c.visitors[t] = append(c.visitors[t], v)
		}
	}

	return c
}

// NodeKinds returns the union of the sub-visitors' node kinds.
func (c *Composite) NodeKinds() []ast.Node { return c.kinds }

// Visit dispatches to every sub-visitor registered for the node's kind.
func (c *Composite) Visit(cur inspector.Cursor) error {
	for _, v := range c.visitors[reflect.TypeOf(cur.Node())] {
		if err := v.Visit(cur); err != nil {
			return err
		}
	}

	return nil
}
