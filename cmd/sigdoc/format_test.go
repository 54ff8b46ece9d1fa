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
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/sigdoc/internal/config"
	"github.com/kraklabs/sigdoc/internal/errors"
	"github.com/kraklabs/sigdoc/internal/output"
	sigdoctest "github.com/kraklabs/sigdoc/internal/testing"
	"github.com/kraklabs/sigdoc/pkg/catalog"
)

func TestRunFormat_JSON(t *testing.T) {
	dir := sigdoctest.SetupProject(t)
	globals := GlobalFlags{ConfigPath: config.ConfigPath(dir), JSON: true, Quiet: true}

	con, out, _ := testConsole("")
	require.NoError(t, runFormat(context.Background(), []string{"--metrics-file", "metrics/sigdoc.prom"}, globals, con))

	var sum output.FormatSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &sum))
	assert.Equal(t, "open3d", sum.ProjectID)
	// Six catalog functions plus three module-level stub functions.
	assert.Equal(t, 9, sum.Total)
	assert.Equal(t, 8, sum.Formatted)
	assert.Equal(t, []string{"builtin_helper"}, sum.Skipped)
	assert.Empty(t, sum.Failed)
	assert.Equal(t, filepath.Join(dir, sigdoctest.OutputFile), sum.Output)

	formatted, err := catalog.Load(filepath.Join(dir, sigdoctest.OutputFile))
	require.NoError(t, err)
	assert.Equal(t, "open3d.geometry", formatted.Module())
	assert.Equal(t, 9, formatted.Len())

	doc, ok := formatted.RawDoc("voxel_down_sample")
	require.True(t, ok)
	assert.Contains(t, doc, "voxel_down_sample(input, voxel_size)\n")
	assert.Contains(t, doc, "    input (open3d.geometry.PointCloud): The input point cloud.\n")
	assert.Contains(t, doc, "Returns:\n    open3d.geometry.PointCloud\n")

	doc, ok = formatted.RawDoc("read_point_cloud")
	require.True(t, ok)
	assert.Contains(t, doc, "Reads a point cloud from a file.")
	assert.Contains(t, doc, "    filename (str)\n")

	doc, ok = formatted.RawDoc("builtin_helper")
	require.True(t, ok)
	assert.Equal(t, "Helper implemented in pure Python.", doc)

	_, ok = formatted.RawDoc("run")
	assert.False(t, ok, "class methods are not module functions")

	metrics, err := os.ReadFile(filepath.Join(dir, "metrics", "sigdoc.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "sigdoc_documents_parsed_total")
}

func TestRunFormat_Summary(t *testing.T) {
	dir := sigdoctest.SetupProject(t)
	globals := GlobalFlags{ConfigPath: config.ConfigPath(dir), Quiet: true, NoColor: true}
	outPath := filepath.Join(t.TempDir(), "out.yaml")

	con, out, _ := testConsole("")
	require.NoError(t, runFormat(context.Background(), []string{"--workers", "1", "--output", outPath}, globals, con))

	got := out.String()
	assert.Contains(t, got, "Format Summary")
	assert.Contains(t, got, "builtin_helper")
	assert.Contains(t, got, outPath)
	assert.FileExists(t, outPath)
	assert.NoFileExists(t, filepath.Join(dir, sigdoctest.OutputFile))
}

func TestRunFormat_MissingProseIsEmpty(t *testing.T) {
	dir := sigdoctest.SetupProject(t)
	require.NoError(t, os.Remove(filepath.Join(dir, sigdoctest.ProseFile)))
	globals := GlobalFlags{ConfigPath: config.ConfigPath(dir), JSON: true, Quiet: true}

	con, _, _ := testConsole("")
	require.NoError(t, runFormat(context.Background(), nil, globals, con))

	formatted, err := catalog.Load(filepath.Join(dir, sigdoctest.OutputFile))
	require.NoError(t, err)
	doc, _ := formatted.RawDoc("voxel_down_sample")
	assert.Contains(t, doc, "    input (open3d.geometry.PointCloud)\n")
}

func TestRunFormat_Errors(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		globals := GlobalFlags{ConfigPath: filepath.Join(t.TempDir(), "project.yaml"), Quiet: true}
		con, _, _ := testConsole("")
		requireExitCode(t, runFormat(context.Background(), nil, globals, con), errors.ExitConfig)
	})

	t.Run("broken catalog", func(t *testing.T) {
		dir := sigdoctest.SetupProject(t)
		sigdoctest.WriteFile(t, dir, sigdoctest.CatalogFile, "functions: [")
		globals := GlobalFlags{ConfigPath: config.ConfigPath(dir), Quiet: true}
		con, _, _ := testConsole("")
		requireExitCode(t, runFormat(context.Background(), nil, globals, con), errors.ExitSource)
	})

	t.Run("missing stub", func(t *testing.T) {
		dir := sigdoctest.SetupProject(t)
		require.NoError(t, os.Remove(filepath.Join(dir, sigdoctest.StubFile)))
		globals := GlobalFlags{ConfigPath: config.ConfigPath(dir), Quiet: true}
		con, _, _ := testConsole("")
		requireExitCode(t, runFormat(context.Background(), nil, globals, con), errors.ExitSource)
	})

	t.Run("negative workers", func(t *testing.T) {
		con, _, _ := testConsole("")
		requireExitCode(t, runFormat(context.Background(), []string{"--workers", "-1"}, GlobalFlags{}, con), errors.ExitInput)
	})

	t.Run("canceled", func(t *testing.T) {
		dir := sigdoctest.SetupProject(t)
		globals := GlobalFlags{ConfigPath: config.ConfigPath(dir), Quiet: true}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		con, _, _ := testConsole("")
		requireExitCode(t, runFormat(ctx, nil, globals, con), errors.ExitInterrupted)
		assert.NoFileExists(t, filepath.Join(dir, sigdoctest.OutputFile))
	})
}
