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

// Package config holds the run configuration threaded through a survey.
package config

// DetectorFlags represents specific detectors.
type DetectorFlags uint8

const (
	// TearoffDetector enables the constructor-shorthand detector.
	TearoffDetector DetectorFlags = 1 << iota

	// TypeLiteralDetector enables the type-literal detector.
	TypeLiteralDetector
)

// Behavior represents configuration options for a survey run.
type Behavior uint8

const (
	// RequireResolve makes a package resolution failure fatal to the run
	// instead of skipping the package with a warning.
	RequireResolve Behavior = 1 << iota

	// IncludeTests includes test files in package resolution.
	IncludeTests

	// Quiet suppresses per-package progress lines.
	Quiet
)

// RunConfig is the explicit configuration of one survey run. It is threaded
// through the driver instead of living in process-wide variables.
type RunConfig struct {
	// Limit bounds how many packages are analyzed; 0 means unlimited.
	Limit int

	// Jobs is the number of packages analyzed concurrently. Values below 2
	// select the default strictly sequential mode.
	Jobs int

	// MaxExamples bounds the example list reported per category.
	MaxExamples int

	// Detectors selects the active detectors.
	Detectors BitMask[DetectorFlags]

	// Behavior holds the run behavior options.
	Behavior BitMask[Behavior]
}

// Default returns the configuration of a plain sequential run with all
// detectors enabled.
func Default() RunConfig {
	return RunConfig{
		MaxExamples: 5,
		Detectors:   NewBitMask(TearoffDetector, TypeLiteralDetector),
	}
}
