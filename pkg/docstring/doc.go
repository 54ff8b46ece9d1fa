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

// Package docstring rewrites generator signatures into Google-style
// documentation.
//
// The pipeline for one function is:
//
//	raw string (Source) -> sigparse.Parse -> InjectProse -> Render -> Sink
//
// Source and Sink are owned by the embedding layer: a Source hands out the
// raw docstring of a named function (or reports it unavailable), a Sink
// installs the rendered text. Injector runs the pipeline for a single
// function and Formatter runs it for many functions concurrently.
//
// # Output Format
//
// Render produces:
//
//	foo(arg0, arg1=1.0)
//
//	Summary line.
//
//	Args:
//	    arg0 (float): First argument.
//	    arg1 (float, optional)
//
//	Returns:
//	    open3d.bar
//
// The call-signature line comes first so that tools scanning the top of a
// docstring for a signature still find one. The summary and Args sections are
// omitted when empty; the Returns section is always present.
//
// # Errors
//
// Parsing and rendering never fail. The only reported failure is a Sink that
// cannot install a docstring, most commonly ErrFunctionNotFound.
package docstring
