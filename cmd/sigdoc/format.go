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
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/kraklabs/sigdoc/internal/config"
	"github.com/kraklabs/sigdoc/internal/errors"
	"github.com/kraklabs/sigdoc/internal/output"
	"github.com/kraklabs/sigdoc/internal/ui"
	"github.com/kraklabs/sigdoc/pkg/catalog"
	"github.com/kraklabs/sigdoc/pkg/docstring"
	"github.com/kraklabs/sigdoc/pkg/stubs"
)

// listLimit caps how many skipped or failed names the summary prints.
const listLimit = 10

// runFormat executes the 'format' command: it loads the project sources and
// prose, renders every function, writes the output catalog and prints a
// summary.
//
// Usage:
//
//	sigdoc format [--workers N] [--output path] [--metrics-file path] [--json]
func runFormat(ctx context.Context, args []string, globals GlobalFlags, con console) error {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	fs.SetOutput(con.err)
	workers := fs.Int("workers", 0, "Functions formatted concurrently (default: from project.yaml)")
	outputPath := fs.String("output", "", "Output catalog path (default: from project.yaml)")
	metricsFile := fs.String("metrics-file", "", "Write Prometheus metrics to this file")
	jsonOutput := fs.Bool("json", false, "Print the report as JSON")

	fs.Usage = func() {
		fmt.Fprintf(con.err, `Usage: sigdoc format [options]

Description:
  Format every function listed in the project catalog and stub files.
  Each raw signature docstring is parsed, merged with the argument
  descriptions from the prose file and rendered as a Google-style
  docstring. The rendered docstrings are written to the output catalog.

  Functions whose docstring is not a signature are skipped and listed.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(con.err, `
Examples:
  sigdoc format
  sigdoc format --workers 8 --output build/docstrings.yaml
  sigdoc --json format > report.json
`)
	}

	ok, err := parseCommandFlags(fs, args)
	if !ok {
		return err
	}
	if *jsonOutput {
		globals.JSON = true
		globals.Quiet = true
	}
	if *workers < 0 {
		return errors.NewInputError(
			"Invalid --workers value",
			fmt.Sprintf("workers must be >= 0, got %d", *workers),
			"Pass a positive number or omit the flag",
		)
	}

	cfg, err := loadProjectConfig(globals.ConfigPath)
	if err != nil {
		return err
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *outputPath != "" {
		cfg.Output = *outputPath
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
	}

	logger := newLogger(globals, con.err)

	source, err := loadSources(ctx, cfg, logger)
	if err != nil {
		return err
	}
	prose, err := loadProse(cfg, logger)
	if err != nil {
		return err
	}

	// The output starts as a copy of the sources; every formatted function
	// replaces its own entry.
	sink := source.Clone()
	names := source.Names()

	bar := NewProgressBar(NewProgressConfig(globals), int64(len(names)), "Formatting")
	formatter := docstring.NewFormatter(
		docstring.NewInjector(source, sink, logger),
		docstring.FormatterConfig{
			Workers: cfg.Workers,
			OnProgress: func(string) {
				if bar != nil {
					_ = bar.Add(1)
				}
			},
		},
		logger,
	)

	logger.Info("format.start",
		"project_id", cfg.ProjectID,
		"functions", len(names),
		"workers", cfg.Workers,
	)

	start := time.Now()
	report, installErr := formatter.FormatAll(ctx, names, prose)
	if bar != nil {
		_ = bar.Finish()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return interrupted(ctxErr)
	}
	elapsed := time.Since(start)

	resolvedOutput := cfg.Resolve(cfg.Output)
	if resolvedOutput != "" {
		if err := sink.Save(resolvedOutput); err != nil {
			return writeError("Cannot write output catalog", err)
		}
		logger.Info("format.output.saved", "path", resolvedOutput)
	}

	if cfg.MetricsFile != "" {
		path := cfg.Resolve(cfg.MetricsFile)
		if err := writeMetricsFile(path); err != nil {
			return writeError("Cannot write metrics file", err)
		}
		logger.Debug("format.metrics.saved", "path", path)
	}

	if globals.JSON {
		if err := output.JSONTo(con.out, output.NewFormatSummary(cfg.ProjectID, resolvedOutput, report, elapsed)); err != nil {
			return err
		}
	} else {
		printFormatSummary(con, cfg.ProjectID, resolvedOutput, report, elapsed)
	}

	if installErr != nil {
		return errors.NewInstallError(
			fmt.Sprintf("%d docstrings could not be installed", len(report.Failed)),
			"The output catalog has no entry for these functions",
			"Check that the catalog and stub files list the same function names",
			installErr,
		)
	}
	return nil
}

// loadProjectConfig loads project.yaml and maps failures to user errors.
func loadProjectConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err == nil {
		return cfg, nil
	}
	if stderrors.Is(err, config.ErrConfigNotFound) {
		return nil, errors.NewConfigError(
			"Cannot find sigdoc configuration",
			err.Error(),
			"Run 'sigdoc init' or pass --config",
			err,
		)
	}
	return nil, errors.NewConfigError(
		"Cannot load sigdoc configuration",
		err.Error(),
		"Fix .sigdoc/project.yaml or recreate it with 'sigdoc init --force'",
		err,
	)
}

// loadSources reads the catalog and every stub file. Stub files are parsed
// concurrently and merged in configuration order, so a later stub wins over
// an earlier one and every stub wins over the catalog.
func loadSources(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	source := catalog.New(cfg.ProjectID)
	if cfg.Sources.Catalog != "" {
		path := cfg.Resolve(cfg.Sources.Catalog)
		loaded, err := catalog.Load(path)
		if err != nil {
			return nil, errors.NewSourceError(
				"Cannot load docstring catalog",
				err.Error(),
				"Check sources.catalog in .sigdoc/project.yaml",
				err,
			)
		}
		source = loaded
		logger.Debug("format.catalog.loaded", "path", path, "functions", source.Len())
	}

	if len(cfg.Sources.Stubs) == 0 {
		return source, nil
	}

	loader := stubs.NewLoader(logger)
	parsed := make([]*catalog.Catalog, len(cfg.Sources.Stubs))
	g, gctx := errgroup.WithContext(ctx)
	for i, stub := range cfg.Sources.Stubs {
		path := cfg.Resolve(stub)
		g.Go(func() error {
			c, err := loader.LoadFile(gctx, path)
			if err != nil {
				return err
			}
			parsed[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, interrupted(ctxErr)
		}
		return nil, errors.NewSourceError(
			"Cannot load stub file",
			err.Error(),
			"Check sources.stubs in .sigdoc/project.yaml",
			err,
		)
	}

	for _, c := range parsed {
		source.Merge(c)
	}
	return source, nil
}

// loadProse reads the prose file. A configured file that does not exist
// yet is treated as empty.
func loadProse(cfg *config.Config, logger *slog.Logger) (*catalog.Prose, error) {
	if cfg.Prose == "" {
		return nil, nil
	}
	path := cfg.Resolve(cfg.Prose)
	prose, err := catalog.LoadProse(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			logger.Info("format.prose.missing", "path", path)
			return nil, nil
		}
		return nil, errors.NewSourceError(
			"Cannot load prose file",
			err.Error(),
			"Check the prose entry in .sigdoc/project.yaml",
			err,
		)
	}
	return prose, nil
}

// writeMetricsFile exports the docstring metrics in the Prometheus text
// format. The file is written next to its target and renamed so collectors
// never read a partial file.
func writeMetricsFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".sigdoc-metrics-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := docstring.WriteMetrics(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func interrupted(err error) error {
	return errors.NewInterruptedError(
		"Formatting interrupted",
		"Run 'sigdoc format' again; the output file was not written",
		err,
	)
}

func writeError(msg string, err error) error {
	if stderrors.Is(err, os.ErrPermission) {
		return errors.NewPermissionError(msg, err.Error(), "Check write permissions on the target directory", err)
	}
	return errors.NewInternalError(msg, err.Error(), "Check the path and available disk space", err)
}

func printFormatSummary(con console, projectID, outputPath string, report *docstring.Report, elapsed time.Duration) {
	fmt.Fprintln(con.out)
	ui.Header(con.out, "Format Summary")
	fmt.Fprintf(con.out, "%s %s\n", ui.Label("Project ID:"), projectID)
	ui.Stat(con.out, "Formatted", len(report.Formatted))
	ui.Stat(con.out, "Skipped", len(report.Skipped))
	ui.Stat(con.out, "Failed", len(report.Failed))
	fmt.Fprintf(con.out, "  %-12s %s\n", "Duration:", elapsed.Round(time.Millisecond))
	fmt.Fprintln(con.out)

	if len(report.Skipped) > 0 {
		ui.Warningf(con.out, "Skipped %d functions without a signature docstring:", len(report.Skipped))
		ui.List(con.out, report.Skipped, listLimit)
	}
	if len(report.Failed) > 0 {
		ui.Errorf(con.out, "Failed to install %d docstrings:", len(report.Failed))
		failed := make([]string, len(report.Failed))
		for i, f := range report.Failed {
			failed[i] = f.Function + ": " + f.Error
		}
		ui.List(con.out, failed, listLimit)
	}

	if outputPath != "" {
		ui.Successf(con.out, "Wrote %s", outputPath)
	} else {
		ui.Infof(con.out, "No output path configured; nothing was written")
	}
}
