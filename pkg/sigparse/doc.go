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

// Package sigparse recovers structure from generator-produced function
// signature strings.
//
// Native-extension binding layers emit one-line signatures that embed argument
// names, types and default values, optionally followed by a summary:
//
//	foo(arg0: float, arg1: float = 1.0) -> open3d::geometry::PointCloud
//
//	Computes the thing.
//
// Parse turns such a string into a FunctionDocument. Parsing is best-effort:
// a string that is not a recognizable signature yields an empty document, and
// an argument token that cannot be matched yields an entry with empty fields.
// No function in this package returns an error.
//
// # Argument boundaries
//
// Arguments are located anchor-first rather than by comma splitting. An
// argument starts wherever ", <identifier>:" occurs, with the opening
// parenthesis treated as if it were followed by a virtual ", ". Default values
// may therefore contain commas, colons and parentheses as long as they never
// contain the literal text ", <identifier>:".
//
// # Namespaces
//
// Type names and summaries are passed through NamespaceNormalize, which turns
// "::" separators into dots and collapses a doubled leading namespace
// ("open3d.open3d.Foo" becomes "open3d.Foo").
package sigparse
