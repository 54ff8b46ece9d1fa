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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/sigdoc/pkg/sigparse"
)

func TestInjectProse_TargetsByName(t *testing.T) {
	doc := sigparse.Parse("foo(a: int, b: int) -> None")

	res := InjectProse(&doc, map[string]string{"a": "first arg", "z": "ignored"})

	require.Len(t, doc.Arguments, 2)
	assert.Equal(t, "first arg", doc.Arguments[0].Description)
	assert.Empty(t, doc.Arguments[1].Description)
	assert.Equal(t, 1, res.Injected)
	assert.Equal(t, []string{"z"}, res.Unmatched)
}

func TestInjectProse_KeepsExistingDescriptions(t *testing.T) {
	doc := sigparse.FunctionDocument{
		Name: "foo",
		Arguments: []sigparse.ArgumentEntry{
			{Name: "a", Type: "int", Description: "kept"},
			{Name: "b", Type: "int", Description: "old"},
		},
	}

	InjectProse(&doc, map[string]string{"b": "new"})

	assert.Equal(t, "kept", doc.Arguments[0].Description)
	assert.Equal(t, "new", doc.Arguments[1].Description)
}

func TestInjectProse_SkipsDegradedEntries(t *testing.T) {
	doc := sigparse.FunctionDocument{
		Name:      "foo",
		Arguments: []sigparse.ArgumentEntry{{}, {Name: "b", Type: "int"}},
	}

	res := InjectProse(&doc, map[string]string{"": "nameless", "b": "second"})

	assert.Empty(t, doc.Arguments[0].Description)
	assert.Equal(t, "second", doc.Arguments[1].Description)
	assert.Equal(t, []string{""}, res.Unmatched)
}

func TestInjectProse_EmptyInputs(t *testing.T) {
	assert.Equal(t, InjectResult{}, InjectProse(nil, map[string]string{"a": "x"}))

	doc := sigparse.Parse("foo(a: int) -> None")
	assert.Equal(t, InjectResult{}, InjectProse(&doc, nil))
	assert.Empty(t, doc.Arguments[0].Description)
}

func TestProseMap(t *testing.T) {
	m := ProseMap{"foo": {"a": "first"}}

	assert.Equal(t, map[string]string{"a": "first"}, m.ProseFor("foo"))
	assert.Nil(t, m.ProseFor("bar"))
}
