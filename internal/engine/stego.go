// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/MKhiriev/go-pass-keeper/internal/stego"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// wrapStego embeds an already-encrypted content's ciphertext into a
// carrier image, producing a ContentStego record that carries the same
// algorithm/nonce/salt fields plus the carrier image and a digest of the
// embedded bytes.
func wrapStego(encrypted models.Content, source stego.CarrierSource) (models.Content, error) {
	payload, err := base64.StdEncoding.DecodeString(encrypted.Ciphertext)
	if err != nil {
		return models.Content{}, err
	}

	result, err := stego.EmbedPayload(source, payload)
	if err != nil {
		return models.Content{}, err
	}

	digest := sha256.Sum256(payload)

	return models.Content{
		Kind:          models.ContentStego,
		Algorithm:     encrypted.Algorithm,
		Nonce:         encrypted.Nonce,
		Salt:          encrypted.Salt,
		CarrierMIME:   result.MIME,
		CarrierImage:  base64.StdEncoding.EncodeToString(result.ImageData),
		PayloadDigest: hex.EncodeToString(digest[:]),
	}, nil
}

// unwrapStego extracts the embedded ciphertext from a ContentStego record
// and rebuilds the plain ContentEncrypted record crypto.Service expects,
// verifying the extracted bytes still match the digest recorded at
// embed time.
func unwrapStego(content models.Content) (models.Content, error) {
	carrierBytes, err := base64.StdEncoding.DecodeString(content.CarrierImage)
	if err != nil {
		return models.Content{}, err
	}

	payload, err := stego.ExtractPayload(carrierBytes)
	if err != nil {
		return models.Content{}, err
	}

	digest := sha256.Sum256(payload)
	if hex.EncodeToString(digest[:]) != content.PayloadDigest {
		return models.Content{}, ErrStegoDigestMismatch
	}

	return models.Content{
		Kind:       models.ContentEncrypted,
		Algorithm:  content.Algorithm,
		Ciphertext: base64.StdEncoding.EncodeToString(payload),
		Nonce:      content.Nonce,
		Salt:       content.Salt,
	}, nil
}
