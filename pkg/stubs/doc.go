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

// Package stubs reads Python stub files (.pyi) with Tree-sitter and turns
// their module-level functions into generator-shaped signature strings.
//
// For
//
//	def read_point_cloud(filename: str, format: str = 'auto') -> open3d.geometry.PointCloud:
//	    """Reads a point cloud from a file."""
//
// the loader produces the catalog entry
//
//	read_point_cloud(filename: str, format: str = 'auto') -> open3d.geometry.PointCloud
//
//	Reads a point cloud from a file.
//
// which the docstring pipeline then parses like any binding-generated
// docstring. Class bodies are not descended into. Tree-sitter is
// error-tolerant, so files with syntax errors still yield the functions that
// could be recovered.
package stubs
