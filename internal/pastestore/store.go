// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pastestore implements the single in-memory paste map every
// request ultimately reads from and writes to. A [Store] optionally
// shadows its writes onto a [persistence.Adapter]; adapter errors are
// logged and discarded rather than surfaced, matching the original
// implementation's MemoryPasteStore exactly.
package pastestore

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/persistence"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// Store is a single sync.RWMutex-guarded map of paste id to [models.Paste],
// optionally write-through to a persistence adapter. The zero value is not
// usable; construct one with [New].
type Store struct {
	mu      sync.RWMutex
	entries map[string]models.Paste

	adapter persistence.Adapter
	logger  *logger.Logger
	now     func() int64
}

// New constructs a Store backed by adapter (may be persistence.NewMemory()
// for no backing store) and logging through log.
func New(adapter persistence.Adapter, log *logger.Logger) *Store {
	return &Store{
		entries: make(map[string]models.Paste),
		adapter: adapter,
		logger:  log,
		now:     func() int64 { return time.Now().Unix() },
	}
}

// Create assigns paste a fresh id, stores it, and write-throughs to the
// adapter. Adapter errors are logged and swallowed: the create still
// succeeds from the caller's point of view, matching the original's
// "call adapter.save and discard the error" behaviour.
func (s *Store) Create(ctx context.Context, paste models.Paste) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := generateID(func(candidate string) bool {
		_, exists := s.entries[candidate]
		return exists
	})
	if err != nil {
		return "", err
	}
	paste.ID = id
	s.entries[id] = paste

	s.writeThrough(ctx, id, paste)

	return id, nil
}

// Get returns the paste stored under id. It takes the write lock even on
// the read path because a lookup can mutate the map: an expired entry is
// evicted, and a successful adapter fallback load is written back into
// memory.
func (s *Store) Get(ctx context.Context, id string) (models.Paste, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if paste, ok := s.entries[id]; ok {
		if paste.IsExpired(s.now()) {
			delete(s.entries, id)
			return models.Paste{}, ErrExpired
		}
		return paste, nil
	}

	if s.adapter == nil {
		return models.Paste{}, ErrNotFound
	}

	payload, err := s.adapter.Load(ctx, id)
	if err != nil || payload == nil {
		if err != nil {
			s.logErr(err, "adapter load failed")
		}
		return models.Paste{}, ErrNotFound
	}

	var paste models.Paste
	if err := json.Unmarshal(payload, &paste); err != nil {
		s.logErr(err, "adapter payload decode failed")
		return models.Paste{}, ErrNotFound
	}

	if paste.IsExpired(s.now()) {
		return models.Paste{}, ErrExpired
	}

	s.entries[id] = paste
	return paste, nil
}

// Update applies mutate to the paste stored under id and write-throughs
// the result, returning ErrNotFound if id is not currently resident in
// memory. It exists for bookkeeping mutations (access-count increments)
// that must not race with a concurrent Get/Delete.
func (s *Store) Update(ctx context.Context, id string, mutate func(*models.Paste)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	paste, ok := s.entries[id]
	if !ok {
		return ErrNotFound
	}

	mutate(&paste)
	s.entries[id] = paste
	s.writeThrough(ctx, id, paste)

	return nil
}

// Delete removes id from the map and the adapter, returning whether an
// entry actually existed in memory.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.entries[id]
	delete(s.entries, id)

	if err := s.adapter.Delete(ctx, id); err != nil {
		s.logErr(err, "adapter delete failed")
	}

	return existed
}

// AllIDs returns every id currently held in memory. It does not include
// ids that exist only in the backing adapter.
func (s *Store) AllIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids
}

func (s *Store) writeThrough(ctx context.Context, id string, paste models.Paste) {
	payload, err := json.Marshal(paste)
	if err != nil {
		s.logErr(err, "adapter payload encode failed")
		return
	}

	var ttlSeconds int64
	if paste.ExpiresAt != nil {
		if d := *paste.ExpiresAt - s.now(); d > 0 {
			ttlSeconds = d
		}
	}

	if err := s.adapter.Save(ctx, id, payload, ttlSeconds); err != nil {
		s.logErr(err, "adapter save failed")
	}
}

func (s *Store) logErr(err error, msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Err(err).Str("func", "pastestore.Store").Msg(msg)
}
