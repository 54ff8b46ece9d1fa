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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DefaultsAndReturn(t *testing.T) {
	doc := Parse("foo(arg0: float, arg1: float = 1.0, arg2: int = 1) -> open3d.bar")

	assert.Equal(t, "foo", doc.Name)
	assert.Empty(t, doc.Summary)
	require.Len(t, doc.Arguments, 3)
	assert.Equal(t, ArgumentEntry{Name: "arg0", Type: "float"}, doc.Arguments[0])
	assert.Equal(t, ArgumentEntry{Name: "arg1", Type: "float", Default: "1.0"}, doc.Arguments[1])
	assert.Equal(t, ArgumentEntry{Name: "arg2", Type: "int", Default: "1"}, doc.Arguments[2])
	assert.Equal(t, "open3d.bar", doc.Return.Type)
	assert.Empty(t, doc.Return.Description)
}

func TestParse_SummaryAndNamespaces(t *testing.T) {
	raw := "estimate_normals(cloud: open3d::geometry::PointCloud, radius: float = 0.1) -> open3d::open3d::geometry::PointCloud\n\n  Estimates point normals.  \n"
	doc := Parse(raw)

	assert.Equal(t, "estimate_normals", doc.Name)
	assert.Equal(t, "Estimates point normals.", doc.Summary)
	require.Len(t, doc.Arguments, 2)
	assert.Equal(t, "open3d.geometry.PointCloud", doc.Arguments[0].Type)
	assert.Equal(t, "0.1", doc.Arguments[1].Default)
	assert.Equal(t, "open3d.geometry.PointCloud", doc.Return.Type)
}

func TestParse_ZeroArguments(t *testing.T) {
	doc := Parse("foo() -> None")

	assert.Equal(t, "foo", doc.Name)
	assert.NotNil(t, doc.Arguments)
	assert.Empty(t, doc.Arguments)
	assert.Equal(t, "None", doc.Return.Type)
	assert.Empty(t, doc.Summary)
}

func TestParse_NoReturnArrow(t *testing.T) {
	doc := Parse("foo(x: int)")

	assert.Equal(t, "foo", doc.Name)
	require.Len(t, doc.Arguments, 1)
	assert.Equal(t, ArgumentEntry{Name: "x", Type: "int"}, doc.Arguments[0])
	assert.Empty(t, doc.Return.Type)
	assert.Empty(t, doc.Summary)
}

func TestParse_NotASignature(t *testing.T) {
	for _, raw := range []string{"", "just some prose", "Returns -> nothing"} {
		t.Run(raw, func(t *testing.T) {
			doc := Parse(raw)
			assert.True(t, doc.Empty())
			assert.Empty(t, doc.Arguments)
			assert.Empty(t, doc.Summary)
			assert.Empty(t, doc.Return.Type)
		})
	}
}

func TestParse_DegradedTokenIsKept(t *testing.T) {
	doc := Parse("foo(a: int, b: List[int] = [], c: 3) -> None")

	require.Len(t, doc.Arguments, 3)
	assert.Equal(t, ArgumentEntry{Name: "a", Type: "int"}, doc.Arguments[0])
	// The bracketed type stops the with-default pattern, so only name and
	// the leading type word survive.
	assert.Equal(t, ArgumentEntry{Name: "b", Type: "List"}, doc.Arguments[1])
	assert.Equal(t, ArgumentEntry{}, doc.Arguments[2])
}

func TestParseName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"foo(x: int) -> None", "foo"},
		{"foo() -> None", "foo"},
		{"(x: int) -> None", ""},
		{"foo", ""},
		{"outer(inner(x)) -> None", "outer"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseName(tt.raw))
		})
	}
}

func TestParseReturnType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"simple", "foo() -> int", "int"},
		{"namespaced", "foo() -> open3d::geometry::Image", "open3d.geometry.Image"},
		{"stops at bracket", "foo() -> List[int]", "List"},
		{"rightmost arrow wins", "foo(cb: Callable = a -> b) -> float", "float"},
		{"followed by summary", "foo() -> bool\n\nTrue on success.", "bool"},
		{"absent", "foo(x: int)", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReturnType(tt.raw))
		})
	}
}

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"none", "foo() -> int", ""},
		{"multi line", "foo() -> int\n\nFirst line.\nSecond line.\n", "First line.\nSecond line."},
		{"namespaced", "foo() -> int\n\nReturns an open3d::core::Tensor.", "Returns an open3d.core.Tensor."},
		{"no arrow", "foo(x: int)", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSummary(tt.raw))
		})
	}
}

func TestTokenizeArguments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "basic",
			raw:  "foo(arg0: float, arg1: float = 1.0, arg2: int = 1) -> open3d.bar",
			want: []string{"arg0: float", "arg1: float = 1.0", "arg2: int = 1"},
		},
		{
			name: "default with comma and parentheses",
			raw:  "create(a: int, c: Enum = Enum.A, value=(1, 2), d: float = 0.5) -> None",
			want: []string{"a: int", "c: Enum = Enum.A, value=(1, 2)", "d: float = 0.5"},
		},
		{
			name: "default with colon",
			raw:  "open(path: str = 'C:\\data', mode: str = 'r') -> File",
			want: []string{"path: str = 'C:\\data'", "mode: str = 'r'"},
		},
		{
			name: "default with namespaced enum",
			raw:  "f(kind: open3d::Kind = <Kind.Dense: 0>, n: int = 2) -> None",
			want: []string{"kind: open3d::Kind = <Kind.Dense: 0>", "n: int = 2"},
		},
		{
			name: "arrow inside default",
			raw:  "g(cb: Callable = x -> y, n: int) -> int",
			want: []string{"cb: Callable = x -> y", "n: int"},
		},
		{
			name: "no return arrow",
			raw:  "foo(x: int, y: int = 3)",
			want: []string{"x: int", "y: int = 3"},
		},
		{
			name: "no closing parenthesis",
			raw:  "foo(x: int, y: int",
			want: []string{"x: int", "y: int"},
		},
		{
			name: "anchors in summary are ignored",
			raw:  "foo(x: int) -> None\n\nSee also: bar, baz: qux",
			want: []string{"x: int"},
		},
		{
			name: "default containing an anchor splits",
			raw:  "h(fmt: str = 'a, b: c') -> None",
			want: []string{"fmt: str = 'a", "b: c'"},
		},
		{
			name: "zero arguments",
			raw:  "foo() -> None",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenizeArguments(tt.raw))
		})
	}

	assert.Nil(t, TokenizeArguments("no parenthesis"))
}

func TestParseArgumentToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  ArgumentEntry
	}{
		{"bare", "x: int", ArgumentEntry{Name: "x", Type: "int"}},
		{"with default", "x: int = 3", ArgumentEntry{Name: "x", Type: "int", Default: "3"}},
		{"default trimmed", "x: int =   3  ", ArgumentEntry{Name: "x", Type: "int", Default: "3"}},
		{"namespaced type", "pcd: open3d::geometry::PointCloud", ArgumentEntry{Name: "pcd", Type: "open3d.geometry.PointCloud"}},
		{"default keeps punctuation", "v: Vec = Vec(1, 2), w=3", ArgumentEntry{Name: "v", Type: "Vec", Default: "Vec(1, 2), w=3"}},
		{"default keeps namespace text", "k: Kind = open3d::Kind.A", ArgumentEntry{Name: "k", Type: "Kind", Default: "open3d::Kind.A"}},
		{"unmatched", "*args", ArgumentEntry{}},
		{"missing type", "x:", ArgumentEntry{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseArgumentToken(tt.token))
		})
	}
}

func TestArgumentEntry_Optional(t *testing.T) {
	assert.False(t, ArgumentEntry{Name: "a"}.Optional())
	assert.True(t, ArgumentEntry{Name: "a", Default: "None"}.Optional())
}

func TestFunctionDocument_Argument(t *testing.T) {
	doc := Parse("foo(a: int, b: str = 'x') -> None")

	b := doc.Argument("b")
	require.NotNil(t, b)
	assert.Equal(t, "'x'", b.Default)
	assert.Nil(t, doc.Argument("missing"))
}
