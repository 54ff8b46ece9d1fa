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

import (
	"strings"

	"github.com/kraklabs/sigdoc/pkg/sigparse"
)

// indent prefixes every entry line of the Args and Returns sections.
const indent = "    "

// Render formats doc as a Google-style docstring. Every line, the last
// included, ends with a newline. Render does not modify doc.
func Render(doc *sigparse.FunctionDocument) string {
	var b strings.Builder

	b.WriteString(RenderSignature(doc))
	b.WriteString("\n")

	if doc.Summary != "" {
		b.WriteString("\n")
		b.WriteString(doc.Summary)
		b.WriteString("\n")
	}

	if len(doc.Arguments) != 0 {
		b.WriteString("\nArgs:\n")
		for _, arg := range doc.Arguments {
			b.WriteString(indent)
			b.WriteString(arg.Name)
			b.WriteString(" (")
			b.WriteString(arg.Type)
			if arg.Optional() {
				b.WriteString(", optional")
			}
			b.WriteString(")")
			if arg.Description != "" {
				b.WriteString(": ")
				b.WriteString(arg.Description)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nReturns:\n")
	b.WriteString(indent)
	b.WriteString(doc.Return.Type)
	if doc.Return.Description != "" {
		b.WriteString(": ")
		b.WriteString(doc.Return.Description)
	}
	b.WriteString("\n")

	return b.String()
}

// RenderSignature returns the call-signature line, "name(a, b=default)",
// built from argument names and defaults only.
func RenderSignature(doc *sigparse.FunctionDocument) string {
	var b strings.Builder
	b.WriteString(doc.Name)
	b.WriteString("(")
	for i, arg := range doc.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Name)
		if arg.Default != "" {
			b.WriteString("=")
			b.WriteString(arg.Default)
		}
	}
	b.WriteString(")")
	return b.String()
}
