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

package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/sigdoc/pkg/docstring"
)

// proseFile is the on-disk layout of a prose file.
type proseFile struct {
	Functions map[string]map[string]string `yaml:"functions"`
}

// Prose holds argument descriptions keyed by function and argument name.
// A nil *Prose is valid and holds nothing.
type Prose struct {
	functions map[string]map[string]string
}

var _ docstring.ProseProvider = (*Prose)(nil)

// LoadProse reads a prose file.
func LoadProse(path string) (*Prose, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prose %s: %w", path, err)
	}
	p, err := ParseProse(data)
	if err != nil {
		return nil, fmt.Errorf("prose %s: %w", path, err)
	}
	return p, nil
}

// ParseProse decodes a prose file from YAML.
func ParseProse(data []byte) (*Prose, error) {
	var f proseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if f.Functions == nil {
		f.Functions = make(map[string]map[string]string)
	}
	return &Prose{functions: f.Functions}, nil
}

// ProseFor implements docstring.ProseProvider.
func (p *Prose) ProseFor(function string) map[string]string {
	if p == nil {
		return nil
	}
	return p.functions[function]
}

// Functions returns the functions that have prose, sorted.
func (p *Prose) Functions() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.functions))
	for name := range p.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
