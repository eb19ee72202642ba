// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreatePasteRequest is the body of POST / — creates a single paste, or a
// bundle parent plus its children when Bundle is non-empty.
type CreatePasteRequest struct {
	Text             string              `json:"text"`
	Format           PasteFormat         `json:"format,omitempty"`
	RetentionMinutes int64               `json:"retention_minutes,omitempty"`
	BurnAfterReading bool                `json:"burn_after_reading,omitempty"`
	Encryption       EncryptionAlgorithm `json:"encryption,omitempty"`
	Key              string              `json:"key,omitempty"`
	Stego            *StegoRequest       `json:"stego,omitempty"`

	NotBefore   *int64                  `json:"not_before,omitempty"`
	NotAfter    *int64                  `json:"not_after,omitempty"`
	Attestation *AttestationRequirement `json:"attestation,omitempty"`
	Persistence *PersistenceLocator     `json:"persistence,omitempty"`
	Webhook     *WebhookConfig          `json:"webhook,omitempty"`
	TorOnly     bool                    `json:"tor_only,omitempty"`

	Bundle []BundleChildRequest `json:"bundle,omitempty"`
}

// StegoRequest selects the steganographic carrier for a create request.
// Exactly one of BuiltIn or CarrierData (a "data:<mime>;base64,..." URI)
// should be set.
type StegoRequest struct {
	BuiltIn     string `json:"built_in,omitempty"`
	CarrierData string `json:"carrier_data,omitempty"`
}

// BundleChildRequest describes one burn-after-reading share within a
// bundle. Children always inherit the parent's algorithm and key.
type BundleChildRequest struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
}

// PasteViewQuery carries the optional query-string parameters accepted by
// the view and raw-view endpoints: the decryption key, TOTP code, and
// shared-secret attestation value.
type PasteViewQuery struct {
	Key    string `json:"key,omitempty"`
	Code   string `json:"code,omitempty"`
	Attest string `json:"attest,omitempty"`
}

// AnchorRequest is the body of POST /api/pastes/{id}/anchor.
type AnchorRequest struct {
	RetentionClass  *uint8  `json:"retention_class,omitempty"`
	AttestationRef  *string `json:"attestation_ref,omitempty"`
}
