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
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/sigdoc/internal/contract"
	"github.com/kraklabs/sigdoc/pkg/docstring"
)

// catalogFile is the on-disk layout of a catalog.
type catalogFile struct {
	Module    string            `yaml:"module,omitempty"`
	Functions map[string]string `yaml:"functions"`
}

// Catalog is a thread-safe set of named docstrings.
type Catalog struct {
	mu        sync.RWMutex
	module    string
	functions map[string]string
}

var (
	_ docstring.Source = (*Catalog)(nil)
	_ docstring.Sink   = (*Catalog)(nil)
)

// New creates an empty catalog for module.
func New(module string) *Catalog {
	return &Catalog{
		module:    module,
		functions: make(map[string]string),
	}
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	c := New(f.Module)
	for name, raw := range f.Functions {
		if err := c.Add(name, raw); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Module returns the module name recorded in the catalog, possibly empty.
func (c *Catalog) Module() string {
	return c.module
}

// Add records raw as the docstring of name, replacing any previous entry.
func (c *Catalog) Add(name, raw string) error {
	if res := contract.ValidateFunctionName(name); !res.OK {
		return fmt.Errorf("invalid function name %q: %s", name, res.Message)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.functions[name] = raw
	return nil
}

// Names returns the function names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.functions))
	for name := range c.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of functions in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.functions)
}

// RawDoc implements docstring.Source. Unknown names and empty docstrings are
// reported as not available.
func (c *Catalog) RawDoc(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	raw, ok := c.functions[name]
	if !ok || raw == "" {
		return "", false
	}
	return raw, true
}

// Install implements docstring.Sink. It replaces the docstring of an existing
// function and fails with docstring.ErrFunctionNotFound for unknown names.
func (c *Catalog) Install(name, doc string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.functions[name]; !ok {
		return fmt.Errorf("catalog %q has no function %q: %w", c.module, name, docstring.ErrFunctionNotFound)
	}
	c.functions[name] = doc
	return nil
}

// Merge copies every entry of other into c. Entries of other win.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil || other == c {
		return
	}
	other.mu.RLock()
	defer other.mu.RUnlock()
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, raw := range other.functions {
		c.functions[name] = raw
	}
	if c.module == "" {
		c.module = other.module
	}
}

// Clone returns an independent copy of c.
func (c *Catalog) Clone() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := New(c.module)
	for name, raw := range c.functions {
		out.functions[name] = raw
	}
	return out
}

// Marshal encodes the catalog as YAML with sorted keys.
func (c *Catalog) Marshal() ([]byte, error) {
	c.mu.RLock()
	f := catalogFile{Module: c.module, Functions: make(map[string]string, len(c.functions))}
	for name, raw := range c.functions {
		f.Functions[name] = raw
	}
	c.mu.RUnlock()

	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}

// Save writes the catalog to path.
func (c *Catalog) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}
