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

package docstring

import "errors"

// ErrFunctionNotFound is returned by a Sink asked to install a docstring on a
// function it does not know. It signals a wrong function name on the caller's
// side.
var ErrFunctionNotFound = errors.New("function not found")

// Source supplies the raw generator docstring of a named function.
//
// The boolean is false when no docstring is available, for example because
// the target is not a generated callable. Callers treat that as a no-op.
type Source interface {
	RawDoc(name string) (string, bool)
}

// Sink installs a rendered docstring on a named function.
//
// Install must be idempotent and must return an error wrapping
// ErrFunctionNotFound when the function does not exist.
type Sink interface {
	Install(name, doc string) error
}

// ProseProvider returns the per-argument descriptions for a function, or nil
// when there are none.
type ProseProvider interface {
	ProseFor(function string) map[string]string
}

// ProseMap is a ProseProvider backed by an in-memory map.
type ProseMap map[string]map[string]string

// ProseFor implements ProseProvider.
func (m ProseMap) ProseFor(function string) map[string]string {
	return m[function]
}
