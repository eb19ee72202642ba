// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/pastestore"
	"github.com/MKhiriev/go-pass-keeper/internal/persistence"
	"github.com/MKhiriev/go-pass-keeper/models"
)

func newTestOrchestrator() (*Orchestrator, *pastestore.Store) {
	store := pastestore.New(persistence.NewMemory(), nil)
	return New(store, crypto.NewService()), store
}

func TestCreateChildren_NoChildren_ReturnsNil(t *testing.T) {
	o, _ := newTestOrchestrator()

	pointers, err := o.CreateChildren(context.Background(), models.AlgorithmAES256GCM, "key", models.Metadata{}, models.FormatPlainText, 1000, nil, nil)

	require.NoError(t, err)
	assert.Nil(t, pointers)
}

func TestCreateChildren_RequiresEncryption(t *testing.T) {
	o, _ := newTestOrchestrator()
	children := []models.BundleChildRequest{{Text: "secret", Label: "a"}}

	_, err := o.CreateChildren(context.Background(), models.AlgorithmNone, "key", models.Metadata{}, models.FormatPlainText, 1000, nil, children)
	assert.ErrorIs(t, err, ErrEncryptionRequired)

	_, err = o.CreateChildren(context.Background(), models.AlgorithmAES256GCM, "", models.Metadata{}, models.FormatPlainText, 1000, nil, children)
	assert.ErrorIs(t, err, ErrEncryptionRequired)
}

func TestCreateChildren_CreatesOnePastePerChild(t *testing.T) {
	o, store := newTestOrchestrator()
	expiresAt := int64(5000)
	children := []models.BundleChildRequest{
		{Text: "first secret", Label: "alpha"},
		{Text: "second secret", Label: "beta"},
	}

	pointers, err := o.CreateChildren(context.Background(), models.AlgorithmAES256GCM, "shared-key", models.Metadata{}, models.FormatPlainText, 1000, &expiresAt, children)

	require.NoError(t, err)
	require.Len(t, pointers, 2)
	assert.Equal(t, "alpha", pointers[0].Label)
	assert.Equal(t, "beta", pointers[1].Label)

	for i, pointer := range pointers {
		stored, err := store.Get(context.Background(), pointer.ID)
		require.NoError(t, err)

		assert.True(t, stored.BurnAfterReading)
		assert.Equal(t, int64(1000), stored.CreatedAt)
		require.NotNil(t, stored.ExpiresAt)
		assert.Equal(t, expiresAt, *stored.ExpiresAt)
		assert.Equal(t, children[i].Label, stored.Metadata.BundleLabel)
		assert.Nil(t, stored.Metadata.Bundle)
		assert.Equal(t, models.ContentEncrypted, stored.Content.Kind)
	}
}

func TestCreateChildren_ClearsParentBundleField(t *testing.T) {
	o, store := newTestOrchestrator()
	parentMetadata := models.Metadata{
		Bundle: &models.BundleMetadata{Children: []models.BundlePointer{{ID: "stale", Label: "x"}}},
	}
	children := []models.BundleChildRequest{{Text: "secret", Label: "only"}}

	pointers, err := o.CreateChildren(context.Background(), models.AlgorithmAES256GCM, "key", parentMetadata, models.FormatPlainText, 1000, nil, children)
	require.NoError(t, err)
	require.Len(t, pointers, 1)

	stored, err := store.Get(context.Background(), pointers[0].ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Metadata.Bundle)
}

func TestChildStatus(t *testing.T) {
	o, store := newTestOrchestrator()

	t.Run("available", func(t *testing.T) {
		id, err := store.Create(context.Background(), models.Paste{Content: models.PlainContent("hi")})
		require.NoError(t, err)
		assert.Equal(t, "available", o.ChildStatus(context.Background(), id))
	})

	t.Run("expired", func(t *testing.T) {
		past := int64(1)
		id, err := store.Create(context.Background(), models.Paste{Content: models.PlainContent("hi"), ExpiresAt: &past})
		require.NoError(t, err)
		assert.Equal(t, "expired", o.ChildStatus(context.Background(), id))
	})

	t.Run("consumed", func(t *testing.T) {
		assert.Equal(t, "consumed", o.ChildStatus(context.Background(), "never-existed"))
	})
}

func TestOverview_NilMetadata(t *testing.T) {
	o, _ := newTestOrchestrator()
	assert.Nil(t, o.Overview(context.Background(), nil))
}

func TestOverview_BuildsChildStatuses(t *testing.T) {
	o, store := newTestOrchestrator()
	id, err := store.Create(context.Background(), models.Paste{Content: models.PlainContent("hi")})
	require.NoError(t, err)

	meta := &models.BundleMetadata{Children: []models.BundlePointer{{ID: id, Label: "alpha"}, {ID: "gone", Label: "beta"}}}
	overview := o.Overview(context.Background(), meta)

	require.NotNil(t, overview)
	require.Len(t, overview.Children, 2)
	assert.Equal(t, "alpha", overview.Children[0].Label)
	assert.Equal(t, "available", overview.Children[0].Status)
	assert.Equal(t, "beta", overview.Children[1].Label)
	assert.Equal(t, "consumed", overview.Children[1].Status)
}
