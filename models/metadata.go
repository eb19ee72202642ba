// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AttestationKind discriminates the AttestationRequirement tagged union.
type AttestationKind string

const (
	AttestationTOTP          AttestationKind = "totp"
	AttestationSharedSecret  AttestationKind = "shared_secret"
)

// AttestationRequirement names the proof a reader must present before the
// gate evaluator will proceed to decryption. Exactly one of the field
// groups below is populated, selected by Kind.
type AttestationRequirement struct {
	Kind AttestationKind `json:"kind"`

	// TOTP fields.
	Secret       string `json:"secret,omitempty"`
	Digits       int    `json:"digits,omitempty"`
	StepSeconds  int    `json:"step_seconds,omitempty"`
	AllowedDrift int    `json:"allowed_drift,omitempty"`
	Issuer       string `json:"issuer,omitempty"`

	// SharedSecret field: base64(SHA-256(secret)), never the raw secret.
	Hash string `json:"hash,omitempty"`
}

// PersistenceKind discriminates the PersistenceLocator tagged union.
type PersistenceKind string

const (
	PersistenceMemory PersistenceKind = "memory"
	PersistenceVault  PersistenceKind = "vault"
	PersistenceRedis  PersistenceKind = "redis"
	PersistenceS3     PersistenceKind = "s3"
)

// PersistenceLocator records which backing adapter a particular paste names.
// It is stored with the paste's metadata only: the paste store does not
// consult it, and every paste is shadowed by the process-wide adapter
// chosen via configuration.
type PersistenceLocator struct {
	Kind PersistenceKind `json:"kind"`

	// KeyPath is used by PersistenceVault as the logical secret path.
	KeyPath string `json:"key_path,omitempty"`

	// Bucket/Prefix are used by PersistenceS3.
	Bucket string `json:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty"`
}

// WebhookProvider names the outbound webhook flavour. All providers share
// the same {"text": "..."} payload shape; the distinction exists only so
// operators can document which service a URL points at.
type WebhookProvider string

const (
	WebhookSlack   WebhookProvider = "slack"
	WebhookTeams   WebhookProvider = "teams"
	WebhookGeneric WebhookProvider = "generic"
)

// WebhookConfig describes where and how to notify an external system when a
// paste is viewed or consumed.
type WebhookConfig struct {
	URL           string          `json:"url"`
	Provider      WebhookProvider `json:"provider,omitempty"`
	ViewTemplate  string          `json:"view_template,omitempty"`
	BurnTemplate  string          `json:"burn_template,omitempty"`
}

// BundlePointer references one child paste that belongs to a bundle.
type BundlePointer struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// BundleMetadata lists the children of a bundle parent paste.
type BundleMetadata struct {
	Children []BundlePointer `json:"children"`
}

// Metadata carries every optional behavioural knob attached to a paste:
// bundle membership, the time-lock window, the attestation requirement, a
// per-paste persistence override, webhook configuration, tor-only access,
// and bookkeeping fields.
type Metadata struct {
	// Bundle is populated on a bundle parent after all of its children have
	// been created. Nil on a plain paste or on a bundle child.
	Bundle *BundleMetadata `json:"bundle,omitempty"`

	// BundleParent is the parent paste's id, set only on bundle children.
	BundleParent string `json:"bundle_parent,omitempty"`

	// BundleLabel is the human-readable name of a bundle child, as supplied
	// by the bundle creator.
	BundleLabel string `json:"bundle_label,omitempty"`

	// NotBefore/NotAfter bound the time-lock window. Both are optional Unix
	// timestamps; either, both, or neither may be set.
	NotBefore *int64 `json:"not_before,omitempty"`
	NotAfter  *int64 `json:"not_after,omitempty"`

	Attestation *AttestationRequirement `json:"attestation,omitempty"`
	Persistence *PersistenceLocator     `json:"persistence,omitempty"`
	Webhook     *WebhookConfig          `json:"webhook,omitempty"`

	// TorAccessOnly, when true, restricts reads to requests whose resolved
	// host is the configured onion host or any ".onion" host. Omitted from
	// JSON when false,
	// matching the original's skip_serializing_if behaviour.
	TorAccessOnly bool `json:"tor_access_only,omitempty"`

	// OwnerPubkeyHash optionally binds a paste to an owner identity, purely
	// informational — no signature verification is performed by this core.
	OwnerPubkeyHash string `json:"owner_pubkey_hash,omitempty"`

	// AccessCount is incremented by the engine on every successful read.
	AccessCount int64 `json:"access_count"`
}
