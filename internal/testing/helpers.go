// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package testing

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture file names used by SetupProject, relative to the project root.
const (
	CatalogFile = "docstrings.yaml"
	ProseFile   = "prose.yaml"
	StubFile    = "geometry.pyi"
	OutputFile  = "docstrings.formatted.yaml"
)

// SampleCatalogYAML is a catalog of generator-produced signatures. It covers
// defaults with nested punctuation, namespaced types, a zero-argument
// function, a missing return arrow and a docstring that is not a signature.
const SampleCatalogYAML = `module: open3d.geometry
functions:
  voxel_down_sample: "voxel_down_sample(input: open3d::geometry::PointCloud, voxel_size: float) -> open3d::geometry::PointCloud\n\nDownsamples a point cloud with a voxel grid."
  estimate_normals: "estimate_normals(cloud: open3d::geometry::PointCloud, search_param: open3d::geometry::KDTreeSearchParam = KDTreeSearchParamKNN with knn = 30, fast_normal_computation: bool = True) -> None"
  create_mesh: "create_mesh(kind: open3d::geometry::MeshKind = <MeshKind.Box: 0>, size: Tuple = (1, 1, 1)) -> open3d.open3d.geometry.TriangleMesh"
  version: "version() -> str"
  print_debug: "print_debug(level: int)"
  builtin_helper: "Helper implemented in pure Python."
`

// SampleProseYAML holds argument descriptions for SampleCatalogYAML. The
// "stale" entry names an argument that does not exist.
const SampleProseYAML = `functions:
  voxel_down_sample:
    input: The input point cloud.
    voxel_size: Voxel size to downsample into.
    stale: Left over from an older signature.
  estimate_normals:
    cloud: The point cloud to update in place.
`

// SampleStub is a Python stub file with module-level functions and a class
// whose methods must be ignored.
const SampleStub = `from typing import overload

def read_point_cloud(filename: str, format: str = 'auto', remove_nan_points: bool = True) -> open3d.geometry.PointCloud:
    """Reads a point cloud from a file."""
    ...

def write_point_cloud(filename: str, pointcloud: open3d.geometry.PointCloud, write_ascii: bool = False) -> bool: ...

def get_verbosity_level() -> open3d.utility.VerbosityLevel:
    ...

class Viewer:
    def run(self, blocking: bool = True) -> None: ...
`

// WriteFile writes content to name inside dir, creating parent directories,
// and returns the full path. It fails the test on error.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

// ProjectConfigYAML returns a .sigdoc/project.yaml body referencing the
// fixture files.
func ProjectConfigYAML(withStubs bool) string {
	stubs := "[]"
	if withStubs {
		stubs = "[" + StubFile + "]"
	}
	return `version: "1"
project_id: open3d
sources:
  catalog: ` + CatalogFile + `
  stubs: ` + stubs + `
prose: ` + ProseFile + `
output: ` + OutputFile + `
workers: 2
`
}

// SetupProject creates a temporary project directory containing the sample
// catalog, prose, stub and a project config, and returns its path.
//
// Example:
//
//	dir := sigdoctest.SetupProject(t)
//	cfg, err := config.LoadConfig(filepath.Join(dir, ".sigdoc", "project.yaml"))
func SetupProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	WriteFile(t, dir, CatalogFile, SampleCatalogYAML)
	WriteFile(t, dir, ProseFile, SampleProseYAML)
	WriteFile(t, dir, StubFile, SampleStub)
	WriteFile(t, dir, filepath.Join(".sigdoc", "project.yaml"), ProjectConfigYAML(true))
	return dir
}
