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

package main

import (
	stderrors "errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sigdoc/internal/bootstrap"
	"github.com/kraklabs/sigdoc/internal/errors"
	"github.com/kraklabs/sigdoc/internal/output"
	"github.com/kraklabs/sigdoc/internal/ui"
)

type initResult struct {
	ProjectID  string `json:"project_id"`
	ConfigPath string `json:"config_path"`
	Created    bool   `json:"created"`
}

// runInit executes the 'init' command, writing .sigdoc/project.yaml plus an
// empty catalog and prose file in the current directory.
func runInit(args []string, globals GlobalFlags, con console) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(con.err)
	force := fs.Bool("force", false, "Overwrite an existing project.yaml")
	projectID := fs.String("project-id", "", "Project identifier (default: directory name)")
	dir := fs.String("dir", "", "Project directory (default: current directory)")

	fs.Usage = func() {
		fmt.Fprintf(con.err, `Usage: sigdoc init [options]

Description:
  Create .sigdoc/project.yaml with default settings, plus an empty
  docstrings.yaml catalog and prose.yaml when they do not exist yet.
  Existing configuration is kept unless --force is given.

Options:
`)
		fs.PrintDefaults()
	}

	ok, err := parseCommandFlags(fs, args)
	if !ok {
		return err
	}

	info, err := bootstrap.InitProject(bootstrap.ProjectConfig{
		Root:      *dir,
		ProjectID: *projectID,
		Force:     *force,
	}, nil)
	if err != nil {
		if stderrors.Is(err, os.ErrPermission) {
			return errors.NewPermissionError(
				"Cannot create sigdoc configuration",
				err.Error(),
				"Run from a directory you can write to",
				err,
			)
		}
		return errors.NewConfigError(
			"Cannot create sigdoc configuration",
			err.Error(),
			"Check the project directory and try again",
			err,
		)
	}

	if globals.JSON {
		return output.JSONTo(con.out, initResult{
			ProjectID:  info.ProjectID,
			ConfigPath: info.ConfigPath,
			Created:    info.Created,
		})
	}

	if !info.Created {
		ui.Warningf(con.out, "Configuration already exists: %s", ui.DimText(info.ConfigPath))
		fmt.Fprintln(con.out, "  Use --force to overwrite it.")
		return nil
	}

	ui.Successf(con.out, "Created %s", info.ConfigPath)
	fmt.Fprintf(con.out, "%s %s\n", ui.Label("Project ID:"), info.ProjectID)
	fmt.Fprintln(con.out)
	fmt.Fprintln(con.out, "Next steps:")
	fmt.Fprintln(con.out, "  1. Add raw docstrings to docstrings.yaml (or list .pyi stubs in project.yaml)")
	fmt.Fprintln(con.out, "  2. sigdoc format")
	return nil
}
