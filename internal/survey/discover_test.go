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

package survey_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/tearscan/internal/survey"
)

// writeManifest marks dir as a package root.
func writeManifest(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.test\n"), 0o644))
}

func TestDiscoverPackageRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, root)

	pkgs, err := Discover([]string{root})
	require.NoError(t, err)

	require.Len(t, pkgs, 1)
	assert.Equal(t, root, pkgs[0].Root)
	assert.False(t, pkgs[0].Sub)
}

func TestDiscoverExpandsOneLevel(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "beta"))
	writeManifest(t, filepath.Join(root, "alpha"))

	// Nested two levels deep; must not be discovered.
	writeManifest(t, filepath.Join(root, "plain", "nested"))

	// A plain subdirectory without manifest is not a candidate.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))

	pkgs, err := Discover([]string{root})
	require.NoError(t, err)

	require.Len(t, pkgs, 2)
	assert.Equal(t, "alpha", pkgs[0].Name)
	assert.Equal(t, "beta", pkgs[1].Name)
	assert.True(t, pkgs[0].Sub)
}

func TestDiscoverMultiplePaths(t *testing.T) {
	t.Parallel()

	first, second := t.TempDir(), t.TempDir()
	writeManifest(t, first)
	writeManifest(t, filepath.Join(second, "sub"))

	pkgs, err := Discover([]string{first, second})
	require.NoError(t, err)

	require.Len(t, pkgs, 2)
	assert.Equal(t, first, pkgs[0].Root)
	assert.Equal(t, "sub", pkgs[1].Name)
}

func TestDiscoverNoPackages(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	_, err := Discover([]string{root})
	assert.ErrorIs(t, err, ErrNoPackages)
}
