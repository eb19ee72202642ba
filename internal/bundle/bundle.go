// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bundle orchestrates bundle creation (a parent paste plus a set of
// burn-after-reading children sharing its key) and derives each child's
// current lifecycle status for display on the parent. Creation is
// deliberately not atomic: children are created one at a time before the
// parent, exactly as the original implementation does it, and a failure
// partway through leaves already-created children orphaned. See
// DESIGN.md's Open Question #3.
package bundle

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/pastestore"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// Orchestrator creates bundle children and derives their display status.
type Orchestrator struct {
	store  *pastestore.Store
	crypto *crypto.Service
}

// New constructs an Orchestrator.
func New(store *pastestore.Store, cryptoSvc *crypto.Service) *Orchestrator {
	return &Orchestrator{store: store, crypto: cryptoSvc}
}

// CreateChildren creates one child paste per request in children, encrypted
// with parentAlgorithm/parentKey and stamped with parentMetadata (minus any
// bundle field), sharing the parent's format, creation time, and expiry. It
// returns the pointers to record on the parent. It requires a non-None
// parentAlgorithm; callers must validate that before calling, per
// ErrEncryptionRequired.
func (o *Orchestrator) CreateChildren(ctx context.Context, parentAlgorithm models.EncryptionAlgorithm, parentKey string, parentMetadata models.Metadata, parentFormat models.PasteFormat, createdAt int64, expiresAt *int64, children []models.BundleChildRequest) ([]models.BundlePointer, error) {
	if len(children) == 0 {
		return nil, nil
	}
	if parentAlgorithm == models.AlgorithmNone || parentAlgorithm == "" || parentKey == "" {
		return nil, ErrEncryptionRequired
	}

	pointers := make([]models.BundlePointer, 0, len(children))

	for _, child := range children {
		content, err := o.crypto.Encrypt(child.Text, parentKey, parentAlgorithm)
		if err != nil {
			return pointers, err
		}

		childMetadata := parentMetadata
		childMetadata.Bundle = nil
		childMetadata.BundleLabel = child.Label

		childPaste := models.Paste{
			Content:          content,
			Format:           parentFormat,
			CreatedAt:        createdAt,
			ExpiresAt:        expiresAt,
			BurnAfterReading: true,
			Metadata:         childMetadata,
		}

		id, err := o.store.Create(ctx, childPaste)
		if err != nil {
			return pointers, err
		}

		pointers = append(pointers, models.BundlePointer{ID: id, Label: child.Label})
	}

	return pointers, nil
}

// ChildStatus derives a bundle child's display status by probing the
// store: a successful read means it is still available, ErrExpired maps
// to "expired", and ErrNotFound (already burned) maps to "consumed".
func (o *Orchestrator) ChildStatus(ctx context.Context, childID string) string {
	_, err := o.store.Get(ctx, childID)
	switch {
	case err == nil:
		return "available"
	case errors.Is(err, pastestore.ErrExpired):
		return "expired"
	default:
		return "consumed"
	}
}

// Overview builds a models.BundleOverview for a parent's bundle metadata.
func (o *Orchestrator) Overview(ctx context.Context, meta *models.BundleMetadata) *models.BundleOverview {
	if meta == nil {
		return nil
	}

	children := make([]models.BundleChildStatus, 0, len(meta.Children))
	for _, child := range meta.Children {
		children = append(children, models.BundleChildStatus{
			ID:     child.ID,
			Label:  child.Label,
			Status: o.ChildStatus(ctx, child.ID),
		})
	}

	return &models.BundleOverview{Children: children}
}
