// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output provides the machine-readable shapes printed by sigdoc
// commands in --json mode.
//
// It complements the ui package (human-readable output) and the errors
// package (error reporting).
//
// # Usage
//
//	result := output.NewParseResult(doc, rendered, injected)
//	if err := output.JSON(result); err != nil {
//	    errors.FatalError(err, true)
//	}
package output

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kraklabs/sigdoc/internal/errors"
	"github.com/kraklabs/sigdoc/pkg/docstring"
	"github.com/kraklabs/sigdoc/pkg/sigparse"
)

// JSON writes data as pretty-printed JSON to stdout.
func JSON(data any) error {
	return JSONTo(os.Stdout, data)
}

// JSONTo writes data as pretty-printed JSON with 2-space indentation.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// ErrorJSON represents an error in JSON format for machine consumption.
type ErrorJSON struct {
	Error    string `json:"error"`
	ExitCode int    `json:"exit_code,omitempty"`
}

// JSONErrorTo writes err as JSON. A UserError anywhere in the chain
// contributes its exit code.
func JSONErrorTo(w io.Writer, err error) error {
	errObj := ErrorJSON{Error: err.Error()}
	var ue *errors.UserError
	if stderrors.As(err, &ue) {
		errObj.ExitCode = ue.ExitCode
	}
	if encErr := JSONTo(w, errObj); encErr != nil {
		return fmt.Errorf("JSON error encoding failed: %w", encErr)
	}
	return nil
}

// ParseResult is the --json shape of "sigdoc parse".
type ParseResult struct {
	Document  sigparse.FunctionDocument `json:"document"`
	Rendered  string                    `json:"rendered"`
	Injected  int                       `json:"injected"`
	Unmatched []string                  `json:"unmatched,omitempty"`
}

// NewParseResult builds the parse output for doc and its rendering.
func NewParseResult(doc *sigparse.FunctionDocument, rendered string, inject docstring.InjectResult) ParseResult {
	return ParseResult{
		Document:  *doc,
		Rendered:  rendered,
		Injected:  inject.Injected,
		Unmatched: inject.Unmatched,
	}
}

// FormatSummary is the --json shape of "sigdoc format".
type FormatSummary struct {
	ProjectID  string              `json:"project_id"`
	Output     string              `json:"output,omitempty"`
	Total      int                 `json:"total"`
	Formatted  int                 `json:"formatted"`
	Skipped    []string            `json:"skipped"`
	Failed     []docstring.Failure `json:"failed,omitempty"`
	DurationMS int64               `json:"duration_ms"`
}

// NewFormatSummary condenses a formatter report.
func NewFormatSummary(projectID, outputPath string, report *docstring.Report, elapsed time.Duration) FormatSummary {
	skipped := report.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	return FormatSummary{
		ProjectID:  projectID,
		Output:     outputPath,
		Total:      len(report.Formatted) + len(report.Skipped) + len(report.Failed),
		Formatted:  len(report.Formatted),
		Skipped:    skipped,
		Failed:     report.Failed,
		DurationMS: elapsed.Milliseconds(),
	}
}
