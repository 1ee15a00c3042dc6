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

package survey

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// manifest is the file whose presence marks a package root.
const manifest = "go.mod"

// ErrNoPackages is returned when discovery finds no package at all. This is
// the only configuration fault that is fatal to a run.
var ErrNoPackages = errors.New("no packages found")

// Package is one discovered candidate for analysis.
type Package struct {
	// Root is the package's root directory.
	Root string

	// Name is the display name, the root's base name.
	Name string

	// Sub marks packages found as immediate subdirectories of a scan root.
	Sub bool
}

// Discover expands the path arguments into the ordered package list of a
// run. A path containing a manifest is itself one package; otherwise its
// immediate subdirectories containing a manifest are the candidates, in
// lexical order. Expansion recurses exactly one level.
func Discover(paths []string) ([]Package, error) {
	var pkgs []Package

	for _, path := range paths {
		if isPackageRoot(path) {
			pkgs = append(pkgs, Package{Root: path, Name: filepath.Base(path)})

			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("can't scan %s: %w", path, err)
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			sub := filepath.Join(path, entry.Name())
			if isPackageRoot(sub) {
				pkgs = append(pkgs, Package{Root: sub, Name: entry.Name(), Sub: true})
			}
		}
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoPackages, paths)
	}

	return pkgs, nil
}

func isPackageRoot(path string) bool {
	info, err := os.Stat(filepath.Join(path, manifest))

	return err == nil && !info.IsDir()
}
