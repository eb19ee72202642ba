// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-keeper/models"
)

func TestEvaluate_NoRestrictions_Passes(t *testing.T) {
	err := Evaluate(models.Metadata{}, Request{}, TorConfig{}, 1000)
	assert.NoError(t, err)
}

func TestEvaluate_TorScope_Blocks(t *testing.T) {
	meta := models.Metadata{TorAccessOnly: true}
	err := Evaluate(meta, Request{Host: "example.com"}, TorConfig{}, 1000)
	assert.ErrorIs(t, err, ErrTorScope)
}

func TestEvaluate_TorScope_Passes(t *testing.T) {
	meta := models.Metadata{TorAccessOnly: true}
	err := Evaluate(meta, Request{Host: "abc.onion"}, TorConfig{}, 1000)
	assert.NoError(t, err)
}

func TestEvaluate_TimeLock_RunsBeforeAttestation(t *testing.T) {
	notBefore := int64(2000)
	meta := models.Metadata{
		NotBefore:   &notBefore,
		Attestation: &models.AttestationRequirement{Kind: models.AttestationSharedSecret, Hash: "x"},
	}

	err := Evaluate(meta, Request{}, TorConfig{}, 1000)
	assert.ErrorIs(t, err, ErrTooEarly)
}

func TestEvaluate_Attestation_RequiredWhenMissing(t *testing.T) {
	meta := models.Metadata{Attestation: &models.AttestationRequirement{Kind: models.AttestationSharedSecret, Hash: "x"}}
	err := Evaluate(meta, Request{}, TorConfig{}, 1000)
	assert.ErrorIs(t, err, ErrAttestationRequired)
}

func TestEvaluate_Attestation_InvalidWhenWrong(t *testing.T) {
	meta := models.Metadata{Attestation: &models.AttestationRequirement{Kind: models.AttestationSharedSecret, Hash: "x"}}
	err := Evaluate(meta, Request{AttestationSecret: "wrong"}, TorConfig{}, 1000)
	assert.ErrorIs(t, err, ErrAttestationInvalid)
}

func TestEvaluate_TorScope_RunsFirst(t *testing.T) {
	notBefore := int64(2000)
	meta := models.Metadata{TorAccessOnly: true, NotBefore: &notBefore}

	err := Evaluate(meta, Request{Host: "example.com"}, TorConfig{}, 1000)
	assert.ErrorIs(t, err, ErrTorScope)
}
