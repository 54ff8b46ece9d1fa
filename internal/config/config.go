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

// Package config loads sigdoc project configuration.
//
// A project is a directory holding .sigdoc/project.yaml:
//
//	version: "1"
//	project_id: open3d
//	sources:
//	  catalog: docstrings.yaml
//	  stubs: [open3d/geometry.pyi]
//	prose: prose.yaml
//	output: docstrings.formatted.yaml
//	workers: 4
//	metrics_file: ""
//
// Relative paths are resolved against the project root, the directory that
// contains .sigdoc. The environment variables SIGDOC_WORKERS, SIGDOC_OUTPUT
// and SIGDOC_METRICS_FILE override the corresponding fields.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory holding the project configuration.
	ConfigDir = ".sigdoc"

	// ConfigFile is the configuration file name inside ConfigDir.
	ConfigFile = "project.yaml"

	// CurrentVersion is the configuration schema version written by init.
	CurrentVersion = "1"
)

// ErrConfigNotFound is returned when no project configuration can be located.
var ErrConfigNotFound = errors.New("project configuration not found")

// Config is the content of .sigdoc/project.yaml.
type Config struct {
	Version     string        `yaml:"version"`
	ProjectID   string        `yaml:"project_id"`
	Sources     SourcesConfig `yaml:"sources"`
	Prose       string        `yaml:"prose,omitempty"`
	Output      string        `yaml:"output,omitempty"`
	Workers     int           `yaml:"workers,omitempty"`
	MetricsFile string        `yaml:"metrics_file,omitempty"`

	root string
}

// SourcesConfig lists where raw docstrings come from.
type SourcesConfig struct {
	// Catalog is a YAML catalog of raw generator docstrings.
	Catalog string `yaml:"catalog,omitempty"`

	// Stubs are Python stub files read with Tree-sitter. Their functions
	// override catalog entries with the same name.
	Stubs []string `yaml:"stubs,omitempty"`
}

// ConfigPath returns the configuration path for a project rooted at root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigDir, ConfigFile)
}

// DefaultConfig returns the configuration written by 'sigdoc init'.
func DefaultConfig(projectID string) *Config {
	return &Config{
		Version:   CurrentVersion,
		ProjectID: projectID,
		Sources:   SourcesConfig{Catalog: "docstrings.yaml"},
		Prose:     "prose.yaml",
		Output:    "docstrings.formatted.yaml",
		Workers:   4,
	}
}

// FindConfig walks up from start looking for .sigdoc/project.yaml.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}
	for {
		path := ConfigPath(dir)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched upward from %s)", ErrConfigNotFound, start)
		}
		dir = parent
	}
}

// LoadConfig reads the configuration at path. An empty path searches upward
// from the working directory. Environment overrides are applied and the
// result is validated.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		if path, err = FindConfig(cwd); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	cfg.root = projectRoot(abs)

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for missing or inconsistent fields.
func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return errors.New("project_id is required")
	}
	if c.Sources.Catalog == "" && len(c.Sources.Stubs) == 0 {
		return errors.New("sources: set a catalog or at least one stub file")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// Root returns the project root directory.
func (c *Config) Root() string {
	return c.root
}

// SetRoot sets the directory relative paths resolve against.
func (c *Config) SetRoot(root string) {
	c.root = root
}

// Resolve returns p made absolute against the project root. Empty paths stay
// empty.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.root, p)
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SIGDOC_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SIGDOC_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("SIGDOC_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("SIGDOC_METRICS_FILE"); v != "" {
		c.MetricsFile = v
	}
	return nil
}

// projectRoot returns the directory above .sigdoc for a config file path, or
// the file's own directory when it is not inside .sigdoc.
func projectRoot(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) == ConfigDir {
		return filepath.Dir(dir)
	}
	return dir
}
