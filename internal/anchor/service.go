// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package anchor

import (
	"context"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// Service builds and submits anchor payloads for pastes.
type Service struct {
	relayer Relayer
}

// NewService constructs a Service. relayer may be NoopRelayer{} when
// external anchoring is disabled.
func NewService(relayer Relayer) *Service {
	return &Service{relayer: relayer}
}

// Anchor builds the manifest and hash for paste, fills in a retention
// class and attestation reference (from req where supplied, otherwise
// inferred), submits the result to the configured relayer, and returns
// the assembled response.
func (s *Service) Anchor(ctx context.Context, paste models.Paste, req models.AnchorRequest) (models.AnchorResponse, error) {
	manifest := BuildManifest(paste)
	hash, err := HashManifest(manifest)
	if err != nil {
		return models.AnchorResponse{}, err
	}

	retentionClass := req.RetentionClass
	if retentionClass == nil {
		retentionClass = InferRetentionClass(paste)
	}

	attestationRef := req.AttestationRef
	if attestationRef == nil {
		attestationRef = InferAttestationRef(paste)
	}

	payload := models.AnchorPayload{
		Manifest:       manifest,
		Hash:           hash,
		RetentionClass: retentionClass,
		AttestationRef: attestationRef,
	}

	receipt, err := s.relayer.Relay(ctx, payload)
	if err != nil {
		return models.AnchorResponse{}, err
	}

	return models.AnchorResponse{
		Hash:           hash,
		RetentionClass: retentionClass,
		AttestationRef: attestationRef,
		Receipt:        &receipt,
	}, nil
}
