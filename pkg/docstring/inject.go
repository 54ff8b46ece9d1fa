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
	"sort"

	"github.com/kraklabs/sigdoc/pkg/sigparse"
)

// InjectResult summarizes one InjectProse call.
type InjectResult struct {
	// Injected is the number of arguments that received a description.
	Injected int

	// Unmatched lists prose keys naming no argument of the document, sorted.
	Unmatched []string
}

// InjectProse sets Description on every argument whose name is a key of
// prose. Arguments without a key keep their description. Keys that match no
// argument are reported in the result, never as an error.
func InjectProse(doc *sigparse.FunctionDocument, prose map[string]string) InjectResult {
	var res InjectResult
	if doc == nil || len(prose) == 0 {
		return res
	}

	seen := make(map[string]bool, len(prose))
	for i := range doc.Arguments {
		arg := &doc.Arguments[i]
		if arg.Name == "" {
			continue
		}
		if body, ok := prose[arg.Name]; ok {
			arg.Description = body
			seen[arg.Name] = true
			res.Injected++
		}
	}

	for key := range prose {
		if !seen[key] {
			res.Unmatched = append(res.Unmatched, key)
		}
	}
	sort.Strings(res.Unmatched)
	return res
}
