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

// Package ui provides terminal output helpers for the sigdoc CLI.
//
// Every helper writes to an explicit io.Writer so commands can direct
// human output to stdout while logs go to stderr. Colors respect the
// --no-color flag and the NO_COLOR environment variable.
//
// Color usage:
//   - Red: failed installs, errors
//   - Yellow: skipped functions, unmatched prose keys
//   - Green: formatted functions
//   - Cyan: counts and neutral info
//   - Bold: headers and labels
//   - Dim: paths and function names in lists
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Pre-configured color instances. They respect the global color.NoColor
// setting when called.
var (
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Green  = color.New(color.FgGreen)
	Cyan   = color.New(color.FgCyan)
	Bold   = color.New(color.Bold)
	Dim    = color.New(color.Faint)
)

// InitColors configures global color output. Call it once after flag
// parsing.
func InitColors(noColor bool) {
	color.NoColor = noColor
}

// Success writes a green message with a checkmark prefix.
//
// Example output: "✓ Formatted 42 docstrings"
func Success(w io.Writer, msg string) {
	_, _ = Green.Fprintln(w, "✓ "+msg)
}

// Successf is the formatted variant of Success.
func Successf(w io.Writer, format string, args ...any) {
	_, _ = Green.Fprintf(w, "✓ "+format+"\n", args...)
}

// Warningf writes a yellow message with a warning prefix.
//
// Example output: "⚠ Skipped 3 functions without a signature"
func Warningf(w io.Writer, format string, args ...any) {
	_, _ = Yellow.Fprintf(w, "⚠ "+format+"\n", args...)
}

// Errorf writes a red message with an X prefix.
func Errorf(w io.Writer, format string, args ...any) {
	_, _ = Red.Fprintf(w, "✗ "+format+"\n", args...)
}

// Infof writes a cyan message with an info prefix.
func Infof(w io.Writer, format string, args ...any) {
	_, _ = Cyan.Fprintf(w, "ℹ "+format+"\n", args...)
}

// Header writes a bold header with an underline separator.
//
//	Format Summary
//	==============
func Header(w io.Writer, text string) {
	_, _ = Bold.Fprintln(w, text)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len(text)))
}

// Stat writes an aligned "label: count" line.
func Stat(w io.Writer, label string, count int) {
	_, _ = fmt.Fprintf(w, "  %-12s %s\n", label+":", CountText(count))
}

// List writes items as dimmed bullets, truncated to limit entries.
// A limit of zero or less writes every item.
func List(w io.Writer, items []string, limit int) {
	shown := items
	if limit > 0 && len(items) > limit {
		shown = items[:limit]
	}
	for _, item := range shown {
		_, _ = fmt.Fprintf(w, "    - %s\n", DimText(item))
	}
	if rest := len(items) - len(shown); rest > 0 {
		_, _ = fmt.Fprintf(w, "    ... and %d more\n", rest)
	}
}

// Label returns a bold-formatted label string for inline use.
func Label(text string) string {
	return Bold.Sprint(text)
}

// DimText returns a dim-formatted string for less important text.
func DimText(text string) string {
	return Dim.Sprint(text)
}

// CountText returns a cyan-formatted count value.
func CountText(count int) string {
	return Cyan.Sprint(count)
}
