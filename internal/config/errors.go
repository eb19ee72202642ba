// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrUnknownPersistenceBackend indicates an unrecognized
	// COPYPASTE_PERSISTENCE_BACKEND value.
	ErrUnknownPersistenceBackend = errors.New("unknown persistence backend")

	// ErrInvalidPersistenceConfig indicates the selected persistence
	// backend is missing a required credential or endpoint.
	ErrInvalidPersistenceConfig = errors.New("invalid persistence configuration")
)
