// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pastestore

import "errors"

var (
	// ErrNotFound is returned when no paste with the requested id exists,
	// either in memory or in the backing adapter.
	ErrNotFound = errors.New("pastestore: paste not found")

	// ErrExpired is returned when a paste exists but its TTL has elapsed.
	// The entry is evicted from the in-memory map as a side effect of
	// returning this error.
	ErrExpired = errors.New("pastestore: paste has expired")
)
