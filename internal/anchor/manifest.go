// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package anchor

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// BuildManifest projects the durable, hashable parts of a paste into a
// models.AnchorManifest. Field order is fixed by the struct definition, so
// two manifests built from identical input always marshal to identical
// bytes — that stability is what makes the resulting hash meaningful as a
// commitment.
func BuildManifest(paste models.Paste) models.AnchorManifest {
	return models.AnchorManifest{
		ID:               paste.ID,
		Format:           paste.Format,
		CreatedAt:        paste.CreatedAt,
		ExpiresAt:        paste.ExpiresAt,
		BurnAfterReading: paste.BurnAfterReading,
		Content:          paste.Content,
		Metadata:         paste.Metadata,
	}
}

// HashManifest returns the lowercase-hex SHA-256 digest of manifest's
// canonical JSON encoding.
func HashManifest(manifest models.AnchorManifest) (string, error) {
	encoded, err := json.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("anchor: encode manifest: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}

// retentionMap pairs an exact TTL, in minutes, with its retention class.
// A paste whose lifetime does not land on exactly one of these minute
// marks gets no inferred class at all — this table is a direct port of
// the original implementation's RETENTION_MAP, not a general bucketing
// scheme.
var retentionMap = []struct {
	minutes int64
	class   uint8
}{
	{5, 1},
	{60, 2},
	{1440, 3},
	{4320, 4},
	{10_080, 5},
	{20_160, 6},
	{43_200, 7},
	{86_400, 8},
}

// InferRetentionClass derives a retention class from a paste's lifetime
// for callers that did not supply one explicitly. It returns nil when the
// paste has no expiry, the expiry does not postdate creation, or the
// lifetime does not land exactly on one of the named TTL buckets.
func InferRetentionClass(paste models.Paste) *uint8 {
	if paste.ExpiresAt == nil {
		return nil
	}
	ttlSeconds := *paste.ExpiresAt - paste.CreatedAt
	if ttlSeconds <= 0 {
		return nil
	}
	ttlMinutes := ttlSeconds / 60

	for _, entry := range retentionMap {
		if entry.minutes == ttlMinutes {
			class := entry.class
			return &class
		}
	}
	return nil
}

// InferAttestationRef derives a display reference for a paste's
// attestation requirement when the caller did not supply one explicitly:
// a TOTP requirement's issuer (nil when blank), or
// "shared_secret:<hash>" for a shared-secret requirement. A paste with no
// attestation requirement has no inferred reference.
func InferAttestationRef(paste models.Paste) *string {
	req := paste.Metadata.Attestation
	if req == nil {
		return nil
	}

	switch req.Kind {
	case models.AttestationTOTP:
		if req.Issuer == "" {
			return nil
		}
		issuer := req.Issuer
		return &issuer
	case models.AttestationSharedSecret:
		ref := "shared_secret:" + req.Hash
		return &ref
	default:
		return nil
	}
}
