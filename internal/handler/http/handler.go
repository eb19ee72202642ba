// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-pass-keeper/internal/anchor"
	"github.com/MKhiriev/go-pass-keeper/internal/bundle"
	"github.com/MKhiriev/go-pass-keeper/internal/engine"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/pastestore"
	"github.com/MKhiriev/go-pass-keeper/internal/verifier"
)

// Handler is the root HTTP handler that wires together all route groups
// and middleware chains for the paste API.
//
// It holds references to the application's core components — the paste
// store, the read engine, the bundle orchestrator, and the anchor
// manifest builder — plus a structured logger, so that every sub-handler
// and middleware can reach business logic and emit consistent,
// context-enriched log entries.
//
// Handler is constructed once at application startup via [NewHandler] and
// its routes are registered by [Handler.Init]. It is not safe to copy a
// Handler after construction.
type Handler struct {
	store    *pastestore.Store
	engine   *engine.Engine
	bundle   *bundle.Orchestrator
	anchor   *anchor.Service
	verifier *verifier.Client

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided core components and
// logger, and returns a pointer to the initialised instance.
func NewHandler(store *pastestore.Store, eng *engine.Engine, bnd *bundle.Orchestrator, anc *anchor.Service, vrf *verifier.Client, log *logger.Logger) *Handler {
	log.Debug().Msg("http handler created")
	return &Handler{
		store:    store,
		engine:   eng,
		bundle:   bnd,
		anchor:   anc,
		verifier: vrf,
		logger:   log,
	}
}
