// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxDocBytes(t *testing.T) {
	t.Setenv("SIGDOC_MAX_DOC_BYTES", "")
	assert.Equal(t, DefaultMaxDocBytes, MaxDocBytes())

	t.Setenv("SIGDOC_MAX_DOC_BYTES", "128")
	assert.Equal(t, 128, MaxDocBytes())

	t.Setenv("SIGDOC_MAX_DOC_BYTES", "-5")
	assert.Equal(t, DefaultMaxDocBytes, MaxDocBytes())

	t.Setenv("SIGDOC_MAX_DOC_BYTES", "lots")
	assert.Equal(t, DefaultMaxDocBytes, MaxDocBytes())
}

func TestValidateRawDoc(t *testing.T) {
	t.Setenv("SIGDOC_MAX_DOC_BYTES", "16")

	assert.True(t, ValidateRawDoc("foo() -> None").OK)

	res := ValidateRawDoc(strings.Repeat("x", 17))
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "17 bytes")
}

func TestValidateFunctionName(t *testing.T) {
	assert.True(t, ValidateFunctionName("read_point_cloud").OK)
	assert.False(t, ValidateFunctionName("").OK)
	assert.False(t, ValidateFunctionName(strings.Repeat("a", FunctionNameMaxBytes+1)).OK)
}
