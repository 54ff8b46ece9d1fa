// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUserError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want string
	}{
		{
			name: "with underlying error",
			err:  &UserError{Message: "Cannot load catalog", Err: fmt.Errorf("yaml: line 3")},
			want: "Cannot load catalog: yaml: line 3",
		},
		{
			name: "without underlying error",
			err:  &UserError{Message: "Invalid input"},
			want: "Invalid input",
		},
		{
			name: "empty message with underlying error",
			err:  &UserError{Err: fmt.Errorf("some error")},
			want: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UserError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCodes_Uniqueness(t *testing.T) {
	codes := []int{
		ExitSuccess,
		ExitConfig,
		ExitSource,
		ExitInstall,
		ExitInput,
		ExitPermission,
		ExitNotFound,
		ExitInternal,
		ExitInterrupted,
	}

	seen := make(map[int]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate exit code found: %d", code)
		}
		seen[code] = true
	}
}

func TestConstructors(t *testing.T) {
	underlying := fmt.Errorf("underlying error")

	tests := []struct {
		name         string
		got          *UserError
		wantExitCode int
		wantHasErr   bool
	}{
		{"NewConfigError", NewConfigError("msg", "cause", "fix", underlying), ExitConfig, true},
		{"NewSourceError", NewSourceError("msg", "cause", "fix", underlying), ExitSource, true},
		{"NewInstallError", NewInstallError("msg", "cause", "fix", underlying), ExitInstall, true},
		{"NewInputError", NewInputError("msg", "cause", "fix"), ExitInput, false},
		{"NewPermissionError", NewPermissionError("msg", "cause", "fix", underlying), ExitPermission, true},
		{"NewNotFoundError", NewNotFoundError("msg", "cause", "fix"), ExitNotFound, false},
		{"NewInternalError", NewInternalError("msg", "cause", "fix", nil), ExitInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Message != "msg" || tt.got.Cause != "cause" || tt.got.Fix != "fix" {
				t.Errorf("fields = %q/%q/%q, want msg/cause/fix", tt.got.Message, tt.got.Cause, tt.got.Fix)
			}
			if tt.got.ExitCode != tt.wantExitCode {
				t.Errorf("ExitCode = %d, want %d", tt.got.ExitCode, tt.wantExitCode)
			}
			if hasErr := tt.got.Err != nil; hasErr != tt.wantHasErr {
				t.Errorf("has underlying error = %v, want %v", hasErr, tt.wantHasErr)
			}
		})
	}
}

func TestNewInterruptedError(t *testing.T) {
	err := NewInterruptedError("Formatting interrupted", "Run it again", fmt.Errorf("context canceled"))

	if err.ExitCode != ExitInterrupted {
		t.Errorf("ExitCode = %d, want %d", err.ExitCode, ExitInterrupted)
	}
	if err.Cause == "" {
		t.Error("Cause should explain the cancellation")
	}
	if err.Fix != "Run it again" {
		t.Errorf("Fix = %q, want %q", err.Fix, "Run it again")
	}
}

func TestErrorChain(t *testing.T) {
	t.Run("errors.Is finds wrapped sentinel", func(t *testing.T) {
		sentinel := fmt.Errorf("sentinel error")
		userErr := NewInstallError("install failed", "cause", "fix", fmt.Errorf("wrapped: %w", sentinel))

		if !errors.Is(userErr, sentinel) {
			t.Error("errors.Is should find sentinel error in chain")
		}
	})

	t.Run("errors.As returns the outer UserError", func(t *testing.T) {
		inner := NewConfigError("config error", "cause", "fix", nil)
		outer := NewSourceError("source error", "cause", "fix", inner)

		var target *UserError
		if !errors.As(outer, &target) {
			t.Fatal("errors.As should extract UserError")
		}
		if target.ExitCode != ExitSource {
			t.Errorf("ExitCode = %d, want %d", target.ExitCode, ExitSource)
		}

		var cfgErr *UserError
		if !errors.As(target.Err, &cfgErr) || cfgErr.ExitCode != ExitConfig {
			t.Error("errors.As should extract the nested config error")
		}
	})
}

func TestUserError_Format(t *testing.T) {
	tests := []struct {
		name    string
		err     *UserError
		want    []string
		notWant []string
	}{
		{
			name: "full error",
			err: &UserError{
				Message: "Cannot load docstring catalog",
				Cause:   "docstrings.yaml is not valid YAML",
				Fix:     "Regenerate the catalog",
			},
			want: []string{
				"Error: Cannot load docstring catalog",
				"Cause: docstrings.yaml is not valid YAML",
				"Fix:   Regenerate the catalog",
			},
		},
		{
			name:    "without cause",
			err:     &UserError{Message: "Invalid input", Fix: "Use valid format"},
			want:    []string{"Error: Invalid input", "Fix:   Use valid format"},
			notWant: []string{"Cause:"},
		},
		{
			name:    "message only",
			err:     &UserError{Message: "Something failed"},
			want:    []string{"Error: Something failed"},
			notWant: []string{"Cause:", "Fix:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Format(true)
			for _, substr := range tt.want {
				if !strings.Contains(got, substr) {
					t.Errorf("Format() output missing %q\nGot: %s", substr, got)
				}
			}
			for _, substr := range tt.notWant {
				if strings.Contains(got, substr) {
					t.Errorf("Format() output should not contain %q\nGot: %s", substr, got)
				}
			}
		})
	}
}

func TestUserError_Format_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	err := &UserError{Message: "Test error", Cause: "Test cause", Fix: "Test fix"}
	if output := err.Format(false); strings.Contains(output, "\x1b[") {
		t.Error("Format() output contains ANSI codes despite NO_COLOR being set")
	}
}

func TestUserError_ToJSON(t *testing.T) {
	err := NewNotFoundError("Function not found", "No entry named 'foo'", "Check the catalog")
	got := err.ToJSON()

	want := ErrorJSON{
		Error:    "Function not found",
		Cause:    "No entry named 'foo'",
		Fix:      "Check the catalog",
		ExitCode: ExitNotFound,
	}
	if got != want {
		t.Errorf("ToJSON() = %+v, want %+v", got, want)
	}
}

func TestFatalError_Nil(t *testing.T) {
	// Must return without exiting.
	FatalError(nil, false)
}
