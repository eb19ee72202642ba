// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate evaluates, in a fixed order, every precondition a read must
// satisfy before the engine is allowed to decrypt a paste's content:
// tor-scope, then time-lock, then attestation. No gate may be skipped
// based on the outcome of a later one — this ordering is an invariant of
// the system, not an implementation detail.
package gate

import (
	"github.com/MKhiriev/go-pass-keeper/internal/attestation"
	"github.com/MKhiriev/go-pass-keeper/internal/timelock"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// Request carries everything the gate evaluator needs that is not already
// present on the paste's metadata: the resolved request host (for the
// tor-scope gate) and the caller-supplied attestation proof.
type Request struct {
	Host              string
	AttestationCode   string
	AttestationSecret string
}

// Evaluate runs the tor-scope, time-lock, and attestation gates against
// metadata in that fixed order, returning the first failure encountered.
// A nil error means every gate passed and the caller may proceed to
// decryption.
func Evaluate(metadata models.Metadata, req Request, torCfg TorConfig, now int64) error {
	if metadata.TorAccessOnly && !torCfg.IsOnionHost(req.Host) {
		return ErrTorScope
	}

	switch timelock.Evaluate(metadata.NotBefore, metadata.NotAfter, now) {
	case timelock.TooEarly:
		return ErrTooEarly
	case timelock.TooLate:
		return ErrTooLate
	}

	if metadata.Attestation != nil {
		verdict := attestation.Verify(*metadata.Attestation, req.AttestationCode, req.AttestationSecret, now)
		if !verdict.Granted {
			if verdict.Invalid {
				return ErrAttestationInvalid
			}
			return ErrAttestationRequired
		}
	}

	return nil
}
