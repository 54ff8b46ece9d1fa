// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package contract

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultMaxDocBytes is the baseline limit for a single raw docstring.
	DefaultMaxDocBytes = 64 << 10 // 64 KiB

	// FunctionNameMaxBytes is the maximum length accepted for a function name.
	FunctionNameMaxBytes = 256
)

// MaxDocBytes returns the effective raw docstring size limit.
// Controlled via env SIGDOC_MAX_DOC_BYTES; falls back to DefaultMaxDocBytes.
func MaxDocBytes() int {
	if v := os.Getenv("SIGDOC_MAX_DOC_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxDocBytes
}

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	OK      bool
	Message string
}

// ValidateRawDoc checks a raw docstring against the size limit.
func ValidateRawDoc(raw string) *ValidationResult {
	if limit := MaxDocBytes(); len(raw) > limit {
		return &ValidationResult{
			OK:      false,
			Message: fmt.Sprintf("raw docstring is %d bytes, limit is %d", len(raw), limit),
		}
	}
	return &ValidationResult{OK: true}
}

// ValidateFunctionName checks that name is usable as a catalog key.
func ValidateFunctionName(name string) *ValidationResult {
	switch {
	case name == "":
		return &ValidationResult{OK: false, Message: "function name is empty"}
	case len(name) > FunctionNameMaxBytes:
		return &ValidationResult{OK: false, Message: "function name exceeds limit"}
	}
	return &ValidationResult{OK: true}
}
