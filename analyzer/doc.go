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

// Package analyzer exposes the tearscan detectors as a go/analysis pass.
//
// # Overview
//
// Tearscan finds function-like declarations that merely forward their
// parameters to an object construction, plus type names used in
// value-producing positions.
//
// # Example
//
// A forwarding wrapper:
//
//	widgets := transform(items, func(s Spec) Widget {
//	    return Widget{Spec: s}
//	})
//
// can reference the construction directly once a shorthand is available;
// tearscan flags the literal as a high confidence rewrite site. The same
// body behind a named function:
//
//	func newWidget(s Spec) Widget { return Widget{Spec: s} }
//
// is flagged with low confidence, since rewriting it changes a visible
// signature.
//
// # Confidence Tiers
//
// The tier is a structural heuristic, not a semantic guarantee:
//
//   - high: inline function literals, the primary rewrite target
//   - low: named functions, methods, and literals bound to a name
package analyzer
