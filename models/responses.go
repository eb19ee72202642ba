// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreatePasteResponse is returned by POST /. Location is the relative path
// to the newly created paste, matching the original's "/{id}" convention.
type CreatePasteResponse struct {
	ID       string `json:"id"`
	Location string `json:"location"`
}

// PasteViewResponse is returned by GET /api/pastes/{id} once every gate has
// passed and the content has been decrypted.
type PasteViewResponse struct {
	ID        string          `json:"id"`
	Text      string          `json:"text"`
	Format    PasteFormat     `json:"format"`
	CreatedAt int64           `json:"created_at"`
	ExpiresAt *int64          `json:"expires_at,omitempty"`
	Bundle    *BundleOverview `json:"bundle,omitempty"`
}

// BundleOverview summarizes a bundle parent's children for display,
// without exposing their (still encrypted) content.
type BundleOverview struct {
	Children []BundleChildStatus `json:"children"`
}

// BundleChildStatus is the derived lifecycle state of one bundle child.
type BundleChildStatus struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Status string `json:"status"` // "available" | "expired" | "consumed"
}

// AnchorManifest is the canonical, hash-stable projection of a paste used
// for external anchoring. Field set and order are fixed by contract —
// internal/anchor must not reorder or add fields without also updating the
// stability test.
type AnchorManifest struct {
	ID               string   `json:"id"`
	Format           PasteFormat `json:"format"`
	CreatedAt        int64    `json:"createdAt"`
	ExpiresAt        *int64   `json:"expiresAt,omitempty"`
	BurnAfterReading bool     `json:"burnAfterReading"`
	Content          Content  `json:"content"`
	Metadata         Metadata `json:"metadata"`
}

// AnchorPayload is the outbound envelope submitted to an AnchorRelayer.
type AnchorPayload struct {
	Manifest       AnchorManifest `json:"manifest"`
	Hash           string         `json:"hash"`
	RetentionClass *uint8         `json:"retentionClass,omitempty"`
	AttestationRef *string        `json:"attestationRef,omitempty"`
}

// AnchorReceipt is returned by a successful relayer submission.
type AnchorReceipt struct {
	TransactionID *string `json:"transactionId,omitempty"`
}

// AnchorResponse is the JSON body of POST /api/pastes/{id}/anchor.
type AnchorResponse struct {
	Hash           string         `json:"hash"`
	RetentionClass *uint8         `json:"retentionClass,omitempty"`
	AttestationRef *string        `json:"attestationRef,omitempty"`
	Receipt        *AnchorReceipt `json:"receipt,omitempty"`
}

// StatsSummaryResponse is the JSON body of GET /api/stats/summary.
type StatsSummaryResponse struct {
	Stats StoreStats `json:"stats"`
}
