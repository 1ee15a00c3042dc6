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

package evidence

// Category classifies a detected occurrence.
//
// The set is closed: detectors only ever produce these values, and the
// [Aggregator] never invents new ones.
type Category uint8

//go:generate go tool stringer -type Category -linecomment
const (
	// HighNamedTearoff is a forwarding wrapper around a named constructor call,
	// found as an inline function literal.
	HighNamedTearoff Category = iota // high confidence named tearoff

	// HighUnnamedTearoff is a forwarding wrapper around a composite literal,
	// found as an inline function literal.
	HighUnnamedTearoff // high confidence unnamed tearoff

	// LowNamedTearoff is a forwarding wrapper around a named constructor call
	// in a named declaration; rewriting it changes a signature.
	LowNamedTearoff // low confidence named tearoff

	// LowUnnamedTearoff is a forwarding wrapper around a composite literal
	// in a named declaration.
	LowUnnamedTearoff // low confidence unnamed tearoff

	// TypeLiteral is a type name used in a value-producing position.
	TypeLiteral // type literal

	// InternalError marks a syntactic shape a detector does not cover.
	// Recorded loudly so coverage gaps show up in the report instead of
	// silently undercounting.
	InternalError // internal error
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		HighNamedTearoff,
		HighUnnamedTearoff,
		LowNamedTearoff,
		LowUnnamedTearoff,
		TypeLiteral,
		InternalError,
	}
}

// TearoffCategory maps the two classification axes of the constructor-shorthand
// detector onto a [Category].
func TearoffCategory(high, named bool) Category {
	switch {
	case high && named:
		return HighNamedTearoff
	case high:
		return HighUnnamedTearoff
	case named:
		return LowNamedTearoff
	default:
		return LowUnnamedTearoff
	}
}
