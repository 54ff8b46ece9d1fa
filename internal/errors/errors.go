// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package errors provides structured error handling for the sigdoc CLI.
//
// UserError carries what went wrong, why it happened, and how to fix it,
// together with the exit code the process should use.
//
// # Usage Example
//
//	err := errors.NewSourceError(
//	    "Cannot load docstring catalog",
//	    "docstrings.yaml is not valid YAML",
//	    "Fix the catalog file or regenerate it from the bindings",
//	    underlyingErr,
//	)
//	errors.FatalError(err, false)
//
// # Formatted Output
//
//	fmt.Fprint(os.Stderr, err.Format(false))
//	// Error: Cannot load docstring catalog
//	// Cause: docstrings.yaml is not valid YAML
//	// Fix:   Fix the catalog file or regenerate it from the bindings
//
// For JSON output:
//
//	json.NewEncoder(os.Stderr).Encode(err.ToJSON())
//	// {"error": "Cannot load docstring catalog", ..., "exit_code": 2}
//
// # Exit Codes
//
//   - ExitSuccess (0): Successful execution
//   - ExitConfig (1): Configuration errors (missing/invalid project.yaml)
//   - ExitSource (2): A catalog, prose or stub file could not be read or parsed
//   - ExitInstall (3): One or more docstrings could not be installed
//   - ExitInput (4): Invalid user input (bad arguments, validation errors)
//   - ExitPermission (5): Permission denied (file access, etc.)
//   - ExitNotFound (6): Resource not found (function, file, etc.)
//   - ExitInternal (10): Internal errors (bugs, panics)
//   - ExitInterrupted (130): Run canceled by SIGINT or SIGTERM
package errors

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConfig indicates configuration errors (missing/invalid config files).
	ExitConfig = 1

	// ExitSource indicates a docstring source that could not be loaded.
	ExitSource = 2

	// ExitInstall indicates that formatting finished but some functions
	// could not receive their rendered docstring.
	ExitInstall = 3

	// ExitInput indicates invalid user input (bad arguments, validation errors).
	ExitInput = 4

	// ExitPermission indicates permission denied errors (file access, etc.).
	ExitPermission = 5

	// ExitNotFound indicates resource not found errors (function, file, etc.).
	ExitNotFound = 6

	// ExitInternal indicates internal errors (bugs, unexpected panics).
	// Exit code 10 signals "this is a bug that should be reported".
	ExitInternal = 10

	// ExitInterrupted follows the shell convention of 128 + SIGINT.
	ExitInterrupted = 130
)

// UserError represents an error with structured context for end users.
//
// It provides three levels of information:
//   - Message: What went wrong (user-facing error description)
//   - Cause: Why it happened (diagnostic information)
//   - Fix: How to fix it (actionable suggestion)
type UserError struct {
	// Message describes what went wrong in user-friendly language.
	Message string

	// Cause explains why the error occurred (diagnostic information).
	Cause string

	// Fix provides an actionable suggestion on how to resolve the error.
	Fix string

	// ExitCode is the exit code that should be used when exiting due to this error.
	ExitCode int

	// Err is the underlying error that caused this error (optional).
	Err error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *UserError) Unwrap() error {
	return e.Err
}

func newUserError(code int, msg, cause, fix string, err error) *UserError {
	return &UserError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: code,
		Err:      err,
	}
}

// NewConfigError creates a configuration error with exit code ExitConfig.
//
// Example:
//
//	return NewConfigError(
//	    "Cannot load sigdoc configuration",
//	    ".sigdoc/project.yaml is missing",
//	    "Run 'sigdoc init' to create a new configuration",
//	    nil,
//	)
func NewConfigError(msg, cause, fix string, err error) *UserError {
	return newUserError(ExitConfig, msg, cause, fix, err)
}

// NewSourceError creates an error with exit code ExitSource for catalog,
// prose and stub files that cannot be read or decoded.
func NewSourceError(msg, cause, fix string, err error) *UserError {
	return newUserError(ExitSource, msg, cause, fix, err)
}

// NewInstallError creates an error with exit code ExitInstall.
func NewInstallError(msg, cause, fix string, err error) *UserError {
	return newUserError(ExitInstall, msg, cause, fix, err)
}

// NewInputError creates an input validation error with exit code ExitInput.
// Input errors do not wrap an underlying error.
func NewInputError(msg, cause, fix string) *UserError {
	return newUserError(ExitInput, msg, cause, fix, nil)
}

// NewPermissionError creates a permission denied error with exit code ExitPermission.
func NewPermissionError(msg, cause, fix string, err error) *UserError {
	return newUserError(ExitPermission, msg, cause, fix, err)
}

// NewNotFoundError creates a resource not found error with exit code ExitNotFound.
//
// Example:
//
//	return NewNotFoundError(
//	    "Function not found",
//	    "The catalog has no function named 'voxel_down_sample'",
//	    "Check the function name or regenerate the catalog",
//	)
func NewNotFoundError(msg, cause, fix string) *UserError {
	return newUserError(ExitNotFound, msg, cause, fix, nil)
}

// NewInternalError creates an internal error with exit code ExitInternal.
// Internal errors indicate bugs and should be reported to the maintainers.
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return newUserError(ExitInternal, msg, cause, fix, err)
}

// NewInterruptedError creates an error with exit code ExitInterrupted for
// runs stopped by a signal.
func NewInterruptedError(msg, fix string, err error) *UserError {
	return newUserError(ExitInterrupted, msg, "The run was canceled before it finished", fix, err)
}

// Color definitions for error formatting.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format returns a formatted error message for terminal display.
//
// Error is red and bold, Cause yellow and Fix green. Color output respects
// the NO_COLOR environment variable and can be disabled with noColor.
// Empty Cause or Fix fields are omitted from the output.
//
// Note: This method temporarily modifies the global color.NoColor state
// and restores it after formatting.
func (e *UserError) Format(noColor bool) string {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}

// FatalError prints the error and exits with the appropriate code.
//
// A UserError is printed with Format() or ToJSON() in JSON mode. Any other
// error is printed as a plain message and exits with ExitInternal.
//
// This function never returns for a non-nil error.
func FatalError(err error, jsonOutput bool) {
	if err == nil {
		return
	}

	if ue, ok := err.(*UserError); ok {
		if jsonOutput {
			enc := json.NewEncoder(os.Stderr)
			enc.SetIndent("", "  ")
			// We are about to exit; the exit code still carries the category.
			_ = enc.Encode(ue.ToJSON())
		} else {
			fmt.Fprint(os.Stderr, ue.Format(false))
		}
		os.Exit(ue.ExitCode)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(ExitInternal)
}
