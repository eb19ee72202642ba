// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataURI_Valid(t *testing.T) {
	mime, data, err := ParseDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, "aGVsbG8=", data)
}

func TestParseDataURI_MissingPrefix(t *testing.T) {
	_, _, err := ParseDataURI("image/png;base64,aGVsbG8=")
	require.Error(t, err)
	var invalid *ErrInvalidDataURI
	assert.ErrorAs(t, err, &invalid)
}

func TestParseDataURI_MissingComma(t *testing.T) {
	_, _, err := ParseDataURI("data:image/png;base64")
	require.Error(t, err)
	var invalid *ErrInvalidDataURI
	assert.ErrorAs(t, err, &invalid)
}

func TestParseDataURI_NotBase64(t *testing.T) {
	_, _, err := ParseDataURI("data:image/png,aGVsbG8=")
	require.Error(t, err)
	var invalid *ErrInvalidDataURI
	assert.ErrorAs(t, err, &invalid)
}

func TestParseDataURI_MissingMIME(t *testing.T) {
	_, _, err := ParseDataURI("data:;base64,aGVsbG8=")
	require.Error(t, err)
	var invalid *ErrInvalidDataURI
	assert.ErrorAs(t, err, &invalid)
}
