// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package persistence provides the write-through backends a PasteStore may
// shadow its in-memory map onto. Every backend implements the same small
// Adapter contract; callers never see the differences between them beyond
// configuration.
package persistence

import "context"

// Adapter is implemented by every persistence backend: an in-memory noop,
// a HashiCorp Vault KV-v2 mount, an Upstash-flavoured Redis REST endpoint,
// an S3-compatible object store, and a Postgres table.
type Adapter interface {
	// Save durably stores the JSON-encoded paste under id. ttlSeconds, when
	// positive, asks the backend to expire the record after that many
	// seconds; zero or negative means no backend-enforced TTL.
	Save(ctx context.Context, id string, payload []byte, ttlSeconds int64) error

	// Load returns the stored payload for id, (nil, nil) if no record
	// exists, or a non-nil error for anything else.
	Load(ctx context.Context, id string) ([]byte, error)

	// Delete removes the record for id. Deleting a record that does not
	// exist is not an error.
	Delete(ctx context.Context, id string) error
}
