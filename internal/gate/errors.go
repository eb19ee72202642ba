// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import "errors"

// Sentinel errors returned by Evaluate, in the order the gates run.
var (
	// ErrTorScope is returned when a paste is tor_access_only and the
	// resolved request host is neither the configured onion host nor a
	// ".onion" host (see TorConfig.IsOnionHost).
	ErrTorScope = errors.New("gate: access restricted to the configured onion host")

	// ErrTooEarly is returned when now is before the paste's not_before.
	ErrTooEarly = errors.New("gate: paste is not yet readable")

	// ErrTooLate is returned when now is after the paste's not_after.
	ErrTooLate = errors.New("gate: paste is no longer readable")

	// ErrAttestationRequired is returned when the caller supplied no proof
	// at all (empty code / empty shared-secret value). Distinguished from
	// ErrAttestationInvalid so callers can prompt rather than reject.
	ErrAttestationRequired = errors.New("gate: attestation required")

	// ErrAttestationInvalid is returned when the caller supplied a proof
	// that does not verify.
	ErrAttestationInvalid = errors.New("gate: attestation invalid")
)
