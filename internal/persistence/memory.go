// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package persistence

import "context"

// Memory is a no-op Adapter: every write is discarded and every read
// reports no record found. It is the default backend, used when no known
// backend is configured; the other backends' constructors return an error
// rather than falling back to it when their required settings are missing.
type Memory struct{}

// NewMemory returns a ready-to-use Memory adapter.
func NewMemory() *Memory { return &Memory{} }

func (*Memory) Save(ctx context.Context, id string, payload []byte, ttlSeconds int64) error {
	return nil
}

func (*Memory) Load(ctx context.Context, id string) ([]byte, error) {
	return nil, nil
}

func (*Memory) Delete(ctx context.Context, id string) error {
	return nil
}
