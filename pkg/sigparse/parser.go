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

import (
	"regexp"
	"strings"
)

const (
	// returnArrow separates the argument list from the return type.
	returnArrow = " -> "

	// closingArrow marks the end of the argument list when a return type exists.
	closingArrow = ") -> "

	// argumentSeparator joins consecutive arguments.
	argumentSeparator = ", "

	// returnTypeChars are the non-alphanumeric bytes allowed in a return type.
	returnTypeChars = "._:"
)

var (
	// argumentAnchor marks the start of an argument: ", name:".
	argumentAnchor = regexp.MustCompile(`, [A-Za-z_][A-Za-z\d_]*:`)

	// argumentWithDefault is tried first: "name: Type = default".
	argumentWithDefault = regexp.MustCompile(`([A-Za-z_][A-Za-z\d_]*): ([A-Za-z_][A-Za-z\d_:.]*) = (.*)`)

	// argumentBare is the fallback: "name: Type".
	argumentBare = regexp.MustCompile(`([A-Za-z_][A-Za-z\d_]*): ([A-Za-z_][A-Za-z\d_:.]*)`)
)

// Parse converts a raw signature string into a FunctionDocument.
//
// A string without "(" is not a recognizable signature and yields an empty
// document (Empty reports true). Descriptions are always left empty.
func Parse(raw string) FunctionDocument {
	name := ParseName(raw)
	if name == "" {
		return FunctionDocument{Arguments: []ArgumentEntry{}}
	}

	tokens := TokenizeArguments(raw)
	args := make([]ArgumentEntry, 0, len(tokens))
	for _, token := range tokens {
		args = append(args, ParseArgumentToken(token))
	}

	return FunctionDocument{
		Name:      name,
		Summary:   ParseSummary(raw),
		Arguments: args,
		Return:    ReturnEntry{Type: ParseReturnType(raw)},
	}
}

// ParseName returns the text preceding the first "(", or "" when there is none.
func ParseName(raw string) string {
	i := strings.Index(raw, "(")
	if i < 0 {
		return ""
	}
	return raw[:i]
}

// ParseReturnType returns the normalized type token following the rightmost
// " -> ", or "" when the arrow is absent.
func ParseReturnType(raw string) string {
	pos, ok := returnTypeStart(raw)
	if !ok {
		return ""
	}
	return NamespaceNormalize(raw[pos : pos+wordLength(raw, pos, returnTypeChars)])
}

// ParseSummary returns everything after the return type token, trimmed and
// normalized. It is "" when the arrow is absent or nothing follows the type.
func ParseSummary(raw string) string {
	pos, ok := returnTypeStart(raw)
	if !ok {
		return ""
	}
	pos += wordLength(raw, pos, returnTypeChars)
	return StringCleanAll(raw[pos:], "")
}

// TokenizeArguments splits the argument list of raw into per-argument tokens,
// in declaration order.
//
// Given
//
//	foo(arg0: float, arg1: float = 1.0, arg2: int = 1) -> open3d.bar
//
// it returns {"arg0: float", "arg1: float = 1.0", "arg2: int = 1"}.
//
// A virtual ", " is inserted after the first "(" so every argument, the first
// included, is introduced by the ", name:" anchor. Each token runs up to the
// next anchor; the last one runs up to the rightmost ") -> ", or the rightmost
// ")" when there is no return arrow, or the end of the string.
// Anchors past that end (for example inside the summary) are ignored.
func TokenizeArguments(raw string) []string {
	open := strings.Index(raw, "(")
	if open < 0 {
		return nil
	}
	s := raw[:open+1] + argumentSeparator + raw[open+1:]
	end := argumentListEnd(s, open+1)

	locs := argumentAnchor.FindAllStringIndex(s[:end], -1)
	tokens := make([]string, 0, len(locs))
	for i, loc := range locs {
		start := loc[0] + len(argumentSeparator)
		stop := end
		if i+1 < len(locs) {
			stop = locs[i+1][0]
		}
		tokens = append(tokens, s[start:stop])
	}
	return tokens
}

// ParseArgumentToken extracts name, type and default from a single argument
// token. The with-default pattern wins whenever it matches; otherwise the bare
// pattern is tried. A token matching neither yields an entry with empty fields.
func ParseArgumentToken(token string) ArgumentEntry {
	if m := argumentWithDefault.FindStringSubmatch(token); m != nil {
		return ArgumentEntry{
			Name:    m[1],
			Type:    NamespaceNormalize(m[2]),
			Default: strings.TrimSpace(m[3]),
		}
	}
	if m := argumentBare.FindStringSubmatch(token); m != nil {
		return ArgumentEntry{
			Name: m[1],
			Type: NamespaceNormalize(m[2]),
		}
	}
	return ArgumentEntry{}
}

func returnTypeStart(raw string) (int, bool) {
	i := strings.LastIndex(raw, returnArrow)
	if i < 0 {
		return 0, false
	}
	return i + len(returnArrow), true
}

// argumentListEnd returns the exclusive end of the argument list in s, never
// before from.
func argumentListEnd(s string, from int) int {
	if i := strings.LastIndex(s, closingArrow); i >= from {
		return i
	}
	if i := strings.LastIndex(s, ")"); i >= from {
		return i
	}
	return len(s)
}
