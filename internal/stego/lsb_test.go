// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedExtract_RoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")

	result, err := EmbedPayload(CarrierSource{BuiltIn: "aurora"}, payload)
	require.NoError(t, err)
	assert.Equal(t, "image/png", result.MIME)

	extracted, err := ExtractPayload(result.ImageData)
	require.NoError(t, err)
	assert.Equal(t, payload, extracted)
}

func TestEmbedExtract_EmptyPayload(t *testing.T) {
	result, err := EmbedPayload(CarrierSource{BuiltIn: "horizon"}, nil)
	require.NoError(t, err)

	extracted, err := ExtractPayload(result.ImageData)
	require.NoError(t, err)
	assert.Empty(t, extracted)
}

func TestEmbedPayload_UnknownBuiltinFallsBackToAurora(t *testing.T) {
	known, err := EmbedPayload(CarrierSource{BuiltIn: "aurora"}, []byte("x"))
	require.NoError(t, err)

	unknown, err := EmbedPayload(CarrierSource{BuiltIn: "not-a-real-carrier"}, []byte("x"))
	require.NoError(t, err)

	assert.Equal(t, known.ImageData, unknown.ImageData)
}

func TestEmbedPayload_TooLargeForCarrier(t *testing.T) {
	huge := bytes.Repeat([]byte{0xAB}, Capacity(carrierWidth, carrierHeight))

	_, err := EmbedPayload(CarrierSource{BuiltIn: "aurora"}, huge)
	require.Error(t, err)
	var tooLarge *ErrPayloadTooLarge
	assert.ErrorAs(t, err, &tooLarge)
}

func TestEmbedPayload_UploadedCarrier(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	payload := []byte("hi")
	result, err := EmbedPayload(CarrierSource{UploadedMIME: "image/png", UploadedData: buf.Bytes()}, payload)
	require.NoError(t, err)

	extracted, err := ExtractPayload(result.ImageData)
	require.NoError(t, err)
	assert.Equal(t, payload, extracted)
}

func TestEmbedPayload_UploadedCarrier_UnsupportedFormat(t *testing.T) {
	_, err := EmbedPayload(CarrierSource{UploadedMIME: "image/jpeg", UploadedData: []byte("not png")}, []byte("x"))
	require.Error(t, err)
	var unsupported *ErrUnsupportedFormat
	assert.ErrorAs(t, err, &unsupported)
}

func TestExtractPayload_InvalidPNG(t *testing.T) {
	_, err := ExtractPayload([]byte("not a png"))
	require.Error(t, err)
	var decodeErr *ErrDecodeCarrier
	assert.ErrorAs(t, err, &decodeErr)
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, (640*360*3)/8, Capacity(640, 360))
}
