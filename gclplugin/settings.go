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

package gclplugin

import tearscan "fillmore-labs.com/tearscan/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Tearoff enables the constructor-forwarding detector.
	Tearoff *bool `json:"tearoff,omitzero"`
	// TypeLiteral enables the type-name-as-value detector.
	TypeLiteral *bool `json:"type-literal,omitzero"`
}

// Options converts [Settings] into a list of [tearscan.Option] for the tearscan analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []tearscan.Option {
	var opts []tearscan.Option

	opts = appendOption(opts, s.Tearoff, tearscan.WithTearoff)
	opts = appendOption(opts, s.TypeLiteral, tearscan.WithTypeLiteral)

	return opts
}

// appendOption appends a non-nil setting to a [tearscan.Option] list.
func appendOption[T any](opts []tearscan.Option, value *T, constructor func(T) tearscan.Option) []tearscan.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
