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

import "strings"

// DefaultCutset is the set of characters StringCleanAll trims when the caller
// passes an empty cutset.
const DefaultCutset = " \t\n\v\f\r"

// scopeSeparator is the C++-style namespace separator emitted by the generator.
const scopeSeparator = "::"

// NamespaceNormalize rewrites generator type paths into dotted form.
//
// Every "::" becomes ".", then a dotted path whose leading segment is
// immediately repeated has the repetition removed:
//
//	open3d::geometry::PointCloud -> open3d.geometry.PointCloud
//	open3d.open3d.Foo            -> open3d.Foo
func NamespaceNormalize(s string) string {
	s = strings.ReplaceAll(s, scopeSeparator, ".")
	return collapseRepeatedRoot(s)
}

// StringCleanAll trims cutset (DefaultCutset when empty) from both ends of s
// and normalizes namespaces.
func StringCleanAll(s, cutset string) string {
	if cutset == "" {
		cutset = DefaultCutset
	}
	return NamespaceNormalize(strings.Trim(s, cutset))
}

// collapseRepeatedRoot turns "pkg.pkg.rest" into "pkg.rest". Only the first
// segment of a dotted path is considered, so "a.b.b.c" is left alone.
func collapseRepeatedRoot(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if !isIdentStart(s[i]) || (i > 0 && (isIdentChar(s[i-1]) || s[i-1] == '.')) {
			b.WriteByte(s[i])
			i++
			continue
		}

		j := i
		for j < len(s) && isIdentChar(s[j]) {
			j++
		}
		if j >= len(s) || s[j] != '.' {
			b.WriteString(s[i:j])
			i = j
			continue
		}

		segment := s[i : j+1]
		next := j + 1
		for strings.HasPrefix(s[next:], segment) {
			next += len(segment)
		}
		b.WriteString(segment)
		i = next
	}
	return b.String()
}

// wordLength returns the length of the run starting at pos made of ASCII
// letters, digits and bytes in extra.
func wordLength(s string, pos int, extra string) int {
	n := 0
	for i := pos; i < len(s); i++ {
		c := s[i]
		if !isAlnum(c) && strings.IndexByte(extra, c) < 0 {
			break
		}
		n++
	}
	return n
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isIdentStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isIdentChar(c byte) bool {
	return isAlnum(c) || c == '_'
}
