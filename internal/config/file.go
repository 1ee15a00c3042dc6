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

package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FileName is the optional configuration file probed in the working
// directory when no explicit file is given.
const FileName = "tearscan.toml"

type fileConfig struct {
	Survey struct {
		Limit          int  `toml:"limit"`
		Jobs           int  `toml:"jobs"`
		MaxExamples    int  `toml:"max-examples"`
		RequireResolve bool `toml:"require-resolve"`
		IncludeTests   bool `toml:"include-tests"`
	} `toml:"survey"`
	Detectors struct {
		Tearoff     *bool `toml:"tearoff"`
		TypeLiteral *bool `toml:"type-literal"`
	} `toml:"detectors"`
}

// Load reads a tearscan.toml file and overlays it on base. Only keys present
// in the file override base values; detector toggles apply when explicitly
// set.
func Load(path string, base RunConfig) (RunConfig, error) {
	var cfg fileConfig

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if md.IsDefined("survey", "limit") {
		base.Limit = cfg.Survey.Limit
	}

	if md.IsDefined("survey", "jobs") {
		base.Jobs = cfg.Survey.Jobs
	}

	if md.IsDefined("survey", "max-examples") {
		base.MaxExamples = cfg.Survey.MaxExamples
	}

	if md.IsDefined("survey", "require-resolve") {
		base.Behavior.Set(RequireResolve, cfg.Survey.RequireResolve)
	}

	if md.IsDefined("survey", "include-tests") {
		base.Behavior.Set(IncludeTests, cfg.Survey.IncludeTests)
	}

	if cfg.Detectors.Tearoff != nil {
		base.Detectors.Set(TearoffDetector, *cfg.Detectors.Tearoff)
	}

	if cfg.Detectors.TypeLiteral != nil {
		base.Detectors.Set(TypeLiteralDetector, *cfg.Detectors.TypeLiteral)
	}

	return base, nil
}
