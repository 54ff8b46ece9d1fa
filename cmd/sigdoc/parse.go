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
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sigdoc/internal/errors"
	"github.com/kraklabs/sigdoc/internal/output"
	"github.com/kraklabs/sigdoc/internal/ui"
	"github.com/kraklabs/sigdoc/pkg/catalog"
	"github.com/kraklabs/sigdoc/pkg/docstring"
	"github.com/kraklabs/sigdoc/pkg/sigparse"
)

// runParse executes the 'parse' command: it parses one raw docstring,
// optionally injects prose, and prints the Google-style rendering or the
// parsed document as JSON.
//
// Usage:
//
//	sigdoc parse [--json] [--prose file [--function name]] <raw|->
func runParse(args []string, globals GlobalFlags, con console) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(con.err)
	jsonOutput := fs.Bool("json", false, "Print the parsed document as JSON")
	prosePath := fs.String("prose", "", "Prose YAML file with argument descriptions")
	function := fs.String("function", "", "Prose entry to inject (default: the parsed function name)")

	fs.Usage = func() {
		fmt.Fprintf(con.err, `Usage: sigdoc parse [options] <raw>

Description:
  Parse a single generator-produced signature docstring and print it as a
  Google-style docstring. Pass "-" to read the raw docstring from stdin.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(con.err, `
Examples:
  sigdoc parse "scale(factor: float = 1.0) -> None"
  sigdoc parse --json - < raw.txt
  sigdoc parse --prose prose.yaml "voxel_down_sample(input: PointCloud, voxel_size: float) -> PointCloud"
`)
	}

	ok, err := parseCommandFlags(fs, args)
	if !ok {
		return err
	}
	if fs.NArg() != 1 {
		return errors.NewInputError(
			"Invalid arguments",
			"The parse command requires exactly one raw docstring",
			`Quote the docstring, or pass "-" and pipe it on stdin`,
		)
	}

	raw := fs.Arg(0)
	if raw == "-" {
		data, err := io.ReadAll(con.in)
		if err != nil {
			return errors.NewInputError("Cannot read stdin", err.Error(), "Pipe the raw docstring into 'sigdoc parse -'")
		}
		raw = strings.TrimRight(string(data), "\n")
	}

	doc := sigparse.Parse(raw)
	if doc.Empty() {
		return errors.NewInputError(
			"Not a signature docstring",
			"The input does not start with a function name followed by '('",
			"Pass the docstring exactly as emitted by the binding generator",
		)
	}

	var injected docstring.InjectResult
	if *prosePath != "" {
		prose, err := catalog.LoadProse(*prosePath)
		if err != nil {
			return errors.NewSourceError(
				"Cannot load prose file",
				err.Error(),
				"Check that the file exists and is valid YAML",
				err,
			)
		}
		name := *function
		if name == "" {
			name = doc.Name
		}
		injected = docstring.InjectProse(&doc, prose.ProseFor(name))
	}

	rendered := docstring.Render(&doc)

	if *jsonOutput || globals.JSON {
		return output.JSONTo(con.out, output.NewParseResult(&doc, rendered, injected))
	}

	fmt.Fprint(con.out, rendered)
	if len(injected.Unmatched) > 0 && !globals.Quiet {
		ui.Warningf(con.err, "Prose keys without a matching argument: %s", strings.Join(injected.Unmatched, ", "))
	}
	return nil
}
