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

package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kraklabs/sigdoc/internal/config"
	"github.com/kraklabs/sigdoc/pkg/catalog"
)

// emptyProse is written when a project has no prose file yet.
const emptyProse = "functions: {}\n"

// ProjectConfig holds configuration for initializing a project.
type ProjectConfig struct {
	// Root is the project directory. Defaults to the working directory.
	Root string

	// ProjectID is the logical project identifier.
	// Defaults to the base name of Root.
	ProjectID string

	// Force overwrites an existing project.yaml.
	Force bool
}

// ProjectInfo holds information about an initialized project.
type ProjectInfo struct {
	ProjectID  string
	Root       string
	ConfigPath string

	// Created is false when an existing configuration was kept.
	Created bool
}

// InitProject writes .sigdoc/project.yaml with defaults, plus an empty
// catalog and prose file when they do not exist yet.
func InitProject(cfg ProjectConfig, logger *slog.Logger) (*ProjectInfo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		cfg.Root = cwd
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", cfg.Root, err)
	}
	if cfg.ProjectID == "" {
		cfg.ProjectID = filepath.Base(root)
	}

	info := &ProjectInfo{
		ProjectID:  cfg.ProjectID,
		Root:       root,
		ConfigPath: config.ConfigPath(root),
	}

	if _, err := os.Stat(info.ConfigPath); err == nil && !cfg.Force {
		logger.Info("bootstrap.project.init.exists", "config", info.ConfigPath)
		return info, nil
	}

	logger.Info("bootstrap.project.init.start",
		"project_id", cfg.ProjectID,
		"root", root,
	)

	projectCfg := config.DefaultConfig(cfg.ProjectID)
	if err := projectCfg.Save(info.ConfigPath); err != nil {
		return nil, err
	}
	projectCfg.SetRoot(root)

	if err := ensureCatalog(projectCfg.Resolve(projectCfg.Sources.Catalog), cfg.ProjectID); err != nil {
		return nil, err
	}
	if err := ensureFile(projectCfg.Resolve(projectCfg.Prose), emptyProse); err != nil {
		return nil, err
	}

	logger.Info("bootstrap.project.init.success",
		"project_id", cfg.ProjectID,
		"config", info.ConfigPath,
	)
	info.Created = true
	return info, nil
}

func ensureCatalog(path, module string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := catalog.New(module).Save(path); err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	return nil
}

func ensureFile(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}
