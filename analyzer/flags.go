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

import "flag"

// registerFlags binds the run options to command line flag values, so the
// detectors can be toggled under any go/analysis driver.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	flags.BoolVar(&r.tearoff, "tearoff", r.tearoff, "detect constructor-forwarding wrappers")
	flags.BoolVar(&r.typeLiteral, "type-literal", r.typeLiteral, "detect type names used as values")
}
