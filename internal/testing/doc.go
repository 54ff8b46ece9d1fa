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

// Package testing provides shared fixtures for sigdoc tests.
//
// # Quick Start
//
// Use SetupProject to lay out a project directory with a catalog, a prose
// file and a .sigdoc/project.yaml:
//
//	func TestMyFeature(t *testing.T) {
//	    dir := sigdoctest.SetupProject(t)
//
//	    cat, err := catalog.Load(filepath.Join(dir, sigdoctest.CatalogFile))
//	    require.NoError(t, err)
//	    // ...
//	}
//
// # Fixtures
//
// The package provides fixture content and writers:
//   - SampleCatalogYAML: a catalog of generator signatures
//   - SampleProseYAML: argument descriptions for the sample catalog
//   - SampleStub: a Python stub file with module-level functions
//   - WriteFile: write a fixture into a test directory
//   - SetupProject: write all of the above plus a project config
package testing
