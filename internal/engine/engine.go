// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engine composes the building blocks in internal/crypto,
// internal/stego, internal/gate and internal/pastestore into the two
// pipelines spec.md describes end to end: building a paste's content at
// creation time, and reading one back — tor-scope, time-lock and
// attestation gates, decryption (unwrapping a stego carrier first when
// present), the burn-after-reading webhook/delete sequence, and the
// final webhook notification. Both the JSON view and the raw-body view
// endpoints call ReadPaste; they differ only in how the result is
// rendered.
package engine

import (
	"context"

	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/gate"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/pastestore"
	"github.com/MKhiriev/go-pass-keeper/internal/stego"
	"github.com/MKhiriev/go-pass-keeper/internal/timelock"
	"github.com/MKhiriev/go-pass-keeper/internal/webhook"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// Engine wires the gate, crypto, and store packages into the create and
// read pipelines.
type Engine struct {
	store   *pastestore.Store
	crypto  *crypto.Service
	webhook *webhook.Dispatcher
	torCfg  gate.TorConfig
	logger  *logger.Logger
	now     func() int64
}

// New constructs an Engine.
func New(store *pastestore.Store, cryptoSvc *crypto.Service, webhookDispatcher *webhook.Dispatcher, torCfg gate.TorConfig, log *logger.Logger) *Engine {
	return &Engine{
		store:   store,
		crypto:  cryptoSvc,
		webhook: webhookDispatcher,
		torCfg:  torCfg,
		logger:  log,
		now:     timelock.Now,
	}
}

// BuildContent produces the models.Content to persist for a create
// request: plaintext passthrough for AlgorithmNone, an encrypted blob for
// any other algorithm, and — when carrier is non-nil — that encrypted
// blob embedded into a carrier image instead of stored directly.
func (e *Engine) BuildContent(text, key string, algorithm models.EncryptionAlgorithm, carrier *stego.CarrierSource) (models.Content, error) {
	encrypted, err := e.crypto.Encrypt(text, key, algorithm)
	if err != nil {
		return models.Content{}, err
	}
	if carrier == nil {
		return encrypted, nil
	}
	return wrapStego(encrypted, *carrier)
}

// ReadRequest carries everything a read needs beyond the stored paste
// itself.
type ReadRequest struct {
	Host              string
	Key               string
	AttestationCode   string
	AttestationSecret string
}

// ReadResult is the outcome of a successful ReadPaste call.
type ReadResult struct {
	Paste    models.Paste
	Text     string
	Consumed bool
}

// ReadPaste runs the full read pipeline for id: fetch, gate, decrypt
// (unwrapping a stego carrier first if present). When the paste is
// burn-after-reading, it additionally notifies the configured webhook
// that the paste was viewed, deletes it, and notifies again if the
// delete actually removed it. Non-burning pastes never trigger a webhook
// from a read.
func (e *Engine) ReadPaste(ctx context.Context, id string, req ReadRequest) (ReadResult, error) {
	paste, err := e.store.Get(ctx, id)
	if err != nil {
		return ReadResult{}, err
	}

	now := e.now()

	if err := gate.Evaluate(paste.Metadata, gate.Request{
		Host:              req.Host,
		AttestationCode:   req.AttestationCode,
		AttestationSecret: req.AttestationSecret,
	}, e.torCfg, now); err != nil {
		return ReadResult{}, err
	}

	content := paste.Content
	if content.Kind == models.ContentStego {
		content, err = unwrapStego(content)
		if err != nil {
			return ReadResult{}, err
		}
	}

	text, err := e.crypto.Decrypt(content, req.Key)
	if err != nil {
		return ReadResult{}, err
	}

	if updateErr := e.store.Update(ctx, id, func(p *models.Paste) { p.Metadata.AccessCount++ }); updateErr != nil {
		e.logErr(updateErr, id, "access count update failed")
	}

	label := paste.Metadata.BundleLabel
	result := ReadResult{Paste: paste, Text: text}

	if paste.BurnAfterReading {
		e.webhook.Notify(ctx, paste.Metadata.Webhook, id, label, webhook.EventViewed)
		if e.store.Delete(ctx, id) {
			result.Consumed = true
			e.webhook.Notify(ctx, paste.Metadata.Webhook, id, label, webhook.EventConsumed)
		}
	}

	return result, nil
}

func (e *Engine) logErr(err error, id, msg string) {
	if e.logger == nil {
		return
	}
	e.logger.Err(err).Str("func", "engine.Engine").Str("paste_id", id).Msg(msg)
}
