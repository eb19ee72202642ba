// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-keeper/models"
)

func TestEncryptDecrypt_PlainText_PassesThrough(t *testing.T) {
	svc := NewService()

	content, err := svc.Encrypt("hello world", "", models.AlgorithmNone)
	require.NoError(t, err)
	assert.Equal(t, models.ContentPlain, content.Kind)

	text, err := svc.Decrypt(content, "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestEncryptDecrypt_ClassicalAlgorithms_RoundTrip(t *testing.T) {
	svc := NewService()

	algorithms := []models.EncryptionAlgorithm{
		models.AlgorithmAES256GCM,
		models.AlgorithmChaCha20Poly1305,
		models.AlgorithmXChaCha20Poly1305,
	}

	for _, algorithm := range algorithms {
		content, err := svc.Encrypt("a secret message", "correct horse", algorithm)
		require.NoErrorf(t, err, "algorithm=%s", algorithm)
		assert.Equalf(t, models.ContentEncrypted, content.Kind, "algorithm=%s", algorithm)

		text, err := svc.Decrypt(content, "correct horse")
		require.NoErrorf(t, err, "algorithm=%s", algorithm)
		assert.Equalf(t, "a secret message", text, "algorithm=%s", algorithm)
	}
}

func TestDecrypt_WrongKey_ReturnsErrInvalidKey(t *testing.T) {
	svc := NewService()

	content, err := svc.Encrypt("a secret message", "correct horse", models.AlgorithmAES256GCM)
	require.NoError(t, err)

	_, err = svc.Decrypt(content, "wrong horse")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestDecrypt_MissingKey_ReturnsErrMissingKey(t *testing.T) {
	svc := NewService()

	content, err := svc.Encrypt("a secret message", "correct horse", models.AlgorithmAES256GCM)
	require.NoError(t, err)

	_, err = svc.Decrypt(content, "")
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestEncrypt_UnsupportedAlgorithm(t *testing.T) {
	svc := NewService()

	_, err := svc.Encrypt("x", "key", models.EncryptionAlgorithm("not-a-real-algorithm"))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestEncrypt_ProducesFreshNonceAndSaltEachTime(t *testing.T) {
	svc := NewService()

	a, err := svc.Encrypt("same text", "same key", models.AlgorithmAES256GCM)
	require.NoError(t, err)
	b, err := svc.Encrypt("same text", "same key", models.AlgorithmAES256GCM)
	require.NoError(t, err)

	assert.NotEqual(t, a.Nonce, b.Nonce)
	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)
}
