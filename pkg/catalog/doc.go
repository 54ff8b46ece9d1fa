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

// Package catalog stores raw and rendered docstrings in YAML files.
//
// A catalog file maps function names to docstrings:
//
//	module: open3d.geometry
//	functions:
//	  voxel_down_sample: "voxel_down_sample(input: open3d::geometry::PointCloud, voxel_size: float) -> open3d::geometry::PointCloud"
//
// Catalog implements both docstring.Source and docstring.Sink, so a catalog
// loaded from a binding dump can feed the formatter while a clone of it
// receives the rendered output.
//
// A prose file supplies argument descriptions per function:
//
//	functions:
//	  voxel_down_sample:
//	    voxel_size: Voxel size to downsample into.
package catalog
