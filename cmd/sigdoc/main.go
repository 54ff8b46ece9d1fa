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

// Package main implements the sigdoc CLI, which turns generator-produced
// signature docstrings into Google-style documentation.
//
// Usage:
//
//	sigdoc init                   Create .sigdoc/project.yaml configuration
//	sigdoc parse <raw> [--json]   Parse and render one raw docstring
//	sigdoc format [--json]        Format every function of the project
//	sigdoc completion <shell>     Generate shell completion script
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sigdoc/internal/errors"
	"github.com/kraklabs/sigdoc/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags holds the flags accepted before the command name.
type GlobalFlags struct {
	ConfigPath string
	JSON       bool
	Quiet      bool
	NoColor    bool
	Verbose    int
}

// console bundles the streams a command reads from and writes to.
type console struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func stdConsole() console {
	return console{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

const usageText = `sigdoc - signature docstring formatter

sigdoc reads the one-line signatures that binding generators emit as
docstrings, such as

  voxel_down_sample(input: open3d::geometry::PointCloud, voxel_size: float) -> open3d::geometry::PointCloud

and rewrites them as Google-style docstrings with an Args and Returns
section, optionally filled with hand-written argument descriptions.

Usage:
  sigdoc [global options] <command> [options]

Commands:
  init          Create .sigdoc/project.yaml configuration
  parse         Parse and render a single raw docstring
  format        Format every function listed in the project sources
  completion    Generate shell completion script (bash|zsh|fish)

Global Options:
      --config string   Path to .sigdoc/project.yaml (default: search upward)
      --json            Machine-readable output (implies --quiet)
      --no-color        Disable colored output
  -q, --quiet           Suppress progress and informational output
  -v, --verbose         Verbose logging (repeat for more)
      --version         Show version and exit

Getting Started:
  1. Initialize configuration:  sigdoc init
  2. Fill docstrings.yaml with the raw docstrings of your bindings
  3. Format them:               sigdoc format

Environment Variables:
  SIGDOC_WORKERS         Override workers from project.yaml
  SIGDOC_OUTPUT          Override the output catalog path
  SIGDOC_METRICS_FILE    Write Prometheus metrics to this file after format
  SIGDOC_MAX_DOC_BYTES   Skip raw docstrings larger than this (default 65536)
  NO_COLOR               Disable colored output

For detailed command help: sigdoc <command> --help
`

// main is the entry point for the sigdoc CLI.
func main() {
	globals, args, showVersion, err := parseGlobals(os.Args[1:])
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stderr, usageText)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, usageText)
		os.Exit(errors.ExitInput)
	}

	if showVersion {
		fmt.Printf("sigdoc version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	ui.InitColors(globals.NoColor || os.Getenv("NO_COLOR") != "")

	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(errors.ExitInput)
	}

	logger := newLogger(globals, os.Stderr)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("shutdown.signal", "signal", sig.String())
		cancel()
	}()

	if err := dispatch(ctx, args[0], args[1:], globals, stdConsole()); err != nil {
		cancel()
		errors.FatalError(err, globals.JSON)
	}
}

// parseGlobals parses the flags that precede the command name. Parsing
// stops at the first non-flag argument so commands own their flags.
func parseGlobals(argv []string) (GlobalFlags, []string, bool, error) {
	var globals GlobalFlags

	fs := flag.NewFlagSet("sigdoc", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(io.Discard)
	fs.StringVar(&globals.ConfigPath, "config", "", "Path to .sigdoc/project.yaml")
	fs.BoolVar(&globals.JSON, "json", false, "Machine-readable output")
	fs.BoolVar(&globals.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&globals.Quiet, "quiet", "q", false, "Suppress progress output")
	fs.CountVarP(&globals.Verbose, "verbose", "v", "Verbose logging")
	showVersion := fs.Bool("version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return globals, nil, false, err
	}
	if globals.JSON {
		globals.Quiet = true
	}
	return globals, fs.Args(), *showVersion, nil
}

func dispatch(ctx context.Context, command string, args []string, globals GlobalFlags, con console) error {
	switch command {
	case "init":
		return runInit(args, globals, con)
	case "parse":
		return runParse(args, globals, con)
	case "format":
		return runFormat(ctx, args, globals, con)
	case "completion":
		return runCompletion(args, con)
	default:
		return errors.NewInputError(
			"Unknown command: "+command,
			"Valid commands are init, parse, format and completion",
			"Run 'sigdoc --help' for usage",
		)
	}
}

// newLogger builds the stderr text logger. Quiet mode only keeps warnings;
// -v switches to debug.
func newLogger(globals GlobalFlags, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case globals.Verbose > 0:
		level = slog.LevelDebug
	case globals.Quiet:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parseCommandFlags parses a command's flags, turning usage errors into
// input errors. It reports false when help was requested.
func parseCommandFlags(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return false, nil
		}
		return false, errors.NewInputError(
			"Invalid arguments",
			err.Error(),
			fmt.Sprintf("Run 'sigdoc %s --help' for usage", fs.Name()),
		)
	}
	return true, nil
}
