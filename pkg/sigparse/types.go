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

package sigparse

// ArgumentEntry describes one parameter of a parsed signature.
type ArgumentEntry struct {
	// Name is the parameter identifier. Empty when the token could not be matched.
	Name string `json:"name"`

	// Type is the dotted type name, already namespace-normalized.
	Type string `json:"type"`

	// Default is the raw default literal, empty when the parameter has none.
	Default string `json:"default,omitempty"`

	// Description is injected prose. Parsing never sets it.
	Description string `json:"description,omitempty"`
}

// Optional reports whether the argument carries a default value.
func (a ArgumentEntry) Optional() bool {
	return a.Default != ""
}

// ReturnEntry describes the return value of a parsed signature.
type ReturnEntry struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// FunctionDocument is the structured form of a raw signature string.
//
// Arguments keep the left-to-right order of the original signature.
type FunctionDocument struct {
	Name      string          `json:"name"`
	Summary   string          `json:"summary,omitempty"`
	Arguments []ArgumentEntry `json:"arguments"`
	Return    ReturnEntry     `json:"return"`
}

// Empty reports whether the document was produced from an unrecognizable
// signature.
func (d *FunctionDocument) Empty() bool {
	return d.Name == ""
}

// Argument returns a pointer to the argument with the given name, or nil.
func (d *FunctionDocument) Argument(name string) *ArgumentEntry {
	for i := range d.Arguments {
		if d.Arguments[i].Name == name {
			return &d.Arguments[i]
		}
	}
	return nil
}
