// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/gate"
	"github.com/MKhiriev/go-pass-keeper/internal/pastestore"
	"github.com/MKhiriev/go-pass-keeper/internal/persistence"
	"github.com/MKhiriev/go-pass-keeper/internal/stego"
	"github.com/MKhiriev/go-pass-keeper/internal/webhook"
	"github.com/MKhiriev/go-pass-keeper/models"
)

func newTestEngine() (*Engine, *pastestore.Store) {
	store := pastestore.New(persistence.NewMemory(), nil)
	return New(store, crypto.NewService(), webhook.New(nil), gate.TorConfig{}, nil), store
}

func TestBuildContent_PlainText(t *testing.T) {
	eng, _ := newTestEngine()

	content, err := eng.BuildContent("hello", "", models.AlgorithmNone, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ContentPlain, content.Kind)
	assert.Equal(t, "hello", content.Text)
}

func TestBuildContent_EncryptedAlgorithms(t *testing.T) {
	eng, _ := newTestEngine()

	algorithms := []models.EncryptionAlgorithm{
		models.AlgorithmAES256GCM,
		models.AlgorithmChaCha20Poly1305,
		models.AlgorithmXChaCha20Poly1305,
		models.AlgorithmKyberHybridAes256GCM,
	}

	for _, algorithm := range algorithms {
		content, err := eng.BuildContent("secret text", "passphrase", algorithm, nil)
		require.NoErrorf(t, err, "algorithm=%s", algorithm)
		assert.Equalf(t, models.ContentEncrypted, content.Kind, "algorithm=%s", algorithm)
		assert.NotEmptyf(t, content.Ciphertext, "algorithm=%s", algorithm)
	}
}

func TestBuildContent_WithStegoCarrier(t *testing.T) {
	eng, _ := newTestEngine()

	carrier := &stego.CarrierSource{BuiltIn: "aurora"}
	content, err := eng.BuildContent("hidden", "passphrase", models.AlgorithmAES256GCM, carrier)
	require.NoError(t, err)
	assert.Equal(t, models.ContentStego, content.Kind)
	assert.NotEmpty(t, content.CarrierImage)
	assert.NotEmpty(t, content.PayloadDigest)
}

func TestReadPaste_PlainRoundTrip(t *testing.T) {
	eng, store := newTestEngine()

	id, err := store.Create(context.Background(), models.Paste{Content: models.PlainContent("hi there")})
	require.NoError(t, err)

	result, err := eng.ReadPaste(context.Background(), id, ReadRequest{})
	require.NoError(t, err)
	assert.Equal(t, "hi there", result.Text)
	assert.False(t, result.Consumed)
}

func TestReadPaste_EncryptedRoundTrip(t *testing.T) {
	eng, store := newTestEngine()

	content, err := eng.BuildContent("classified", "passphrase", models.AlgorithmAES256GCM, nil)
	require.NoError(t, err)

	id, err := store.Create(context.Background(), models.Paste{Content: content})
	require.NoError(t, err)

	result, err := eng.ReadPaste(context.Background(), id, ReadRequest{Key: "passphrase"})
	require.NoError(t, err)
	assert.Equal(t, "classified", result.Text)
}

func TestReadPaste_StegoRoundTrip(t *testing.T) {
	eng, store := newTestEngine()

	carrier := &stego.CarrierSource{BuiltIn: "aurora"}
	content, err := eng.BuildContent("hidden message", "passphrase", models.AlgorithmChaCha20Poly1305, carrier)
	require.NoError(t, err)

	id, err := store.Create(context.Background(), models.Paste{Content: content})
	require.NoError(t, err)

	result, err := eng.ReadPaste(context.Background(), id, ReadRequest{Key: "passphrase"})
	require.NoError(t, err)
	assert.Equal(t, "hidden message", result.Text)
}

func TestReadPaste_GateFailurePropagates(t *testing.T) {
	eng, store := newTestEngine()

	id, err := store.Create(context.Background(), models.Paste{
		Content:  models.PlainContent("gated"),
		Metadata: models.Metadata{TorAccessOnly: true},
	})
	require.NoError(t, err)

	_, err = eng.ReadPaste(context.Background(), id, ReadRequest{Host: "example.com"})
	assert.ErrorIs(t, err, gate.ErrTorScope)
}

func TestReadPaste_NotFound(t *testing.T) {
	eng, _ := newTestEngine()

	_, err := eng.ReadPaste(context.Background(), "missing", ReadRequest{})
	assert.ErrorIs(t, err, pastestore.ErrNotFound)
}

func TestReadPaste_IncrementsAccessCount(t *testing.T) {
	eng, store := newTestEngine()

	id, err := store.Create(context.Background(), models.Paste{Content: models.PlainContent("x")})
	require.NoError(t, err)

	_, err = eng.ReadPaste(context.Background(), id, ReadRequest{})
	require.NoError(t, err)

	got, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Metadata.AccessCount)
}

func TestReadPaste_BurnAfterReading_DeletesOnRead(t *testing.T) {
	eng, store := newTestEngine()

	id, err := store.Create(context.Background(), models.Paste{
		Content:          models.PlainContent("one time"),
		BurnAfterReading: true,
	})
	require.NoError(t, err)

	result, err := eng.ReadPaste(context.Background(), id, ReadRequest{})
	require.NoError(t, err)
	assert.True(t, result.Consumed)

	_, err = store.Get(context.Background(), id)
	assert.ErrorIs(t, err, pastestore.ErrNotFound)
}
