// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-keeper/internal/engine"
	"github.com/MKhiriev/go-pass-keeper/internal/gate"
	"github.com/MKhiriev/go-pass-keeper/internal/logger"
	"github.com/MKhiriev/go-pass-keeper/internal/stego"
	"github.com/MKhiriev/go-pass-keeper/internal/timelock"
	"github.com/MKhiriev/go-pass-keeper/internal/utils"
	"github.com/MKhiriev/go-pass-keeper/models"
)

// create handles POST /: it builds a single paste's content, and when the
// request carries bundle children, encrypts and stores each of them under
// the parent before the parent itself is created — mirroring the original
// implementation's non-atomic, children-then-parent sequence.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.CreatePasteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.create").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	now := timelock.Now()

	var expiresAt *int64
	if body.RetentionMinutes > 0 {
		ts := now + body.RetentionMinutes*60
		expiresAt = &ts
	}

	metadata := models.Metadata{
		Attestation: body.Attestation,
		Persistence: body.Persistence,
		Webhook:     body.Webhook,
		TorAccessOnly: body.TorOnly,
	}

	if body.NotBefore != nil || body.NotAfter != nil {
		if body.NotBefore != nil && body.NotAfter != nil && *body.NotAfter <= *body.NotBefore {
			http.Error(w, "time_lock not_after must be greater than not_before", http.StatusBadRequest)
			return
		}
		metadata.NotBefore = body.NotBefore
		metadata.NotAfter = body.NotAfter
	}

	var carrier *stego.CarrierSource
	if body.Stego != nil {
		src, err := carrierSourceFromRequest(*body.Stego)
		if err != nil {
			resp := responseFromError(err)
			http.Error(w, resp.message, resp.status)
			return
		}
		carrier = src
	}

	content, err := h.engine.BuildContent(body.Text, body.Key, body.Encryption, carrier)
	if err != nil {
		resp := responseFromError(err)
		log.Err(err).Str("func", "*Handler.create").Msg("failed to build paste content")
		http.Error(w, resp.message, resp.status)
		return
	}

	if len(body.Bundle) > 0 {
		pointers, err := h.bundle.CreateChildren(r.Context(), body.Encryption, body.Key, metadata, body.Format, now, expiresAt, body.Bundle)
		if err != nil {
			resp := responseFromError(err)
			log.Err(err).Str("func", "*Handler.create").Msg("failed to create bundle children")
			http.Error(w, resp.message, resp.status)
			return
		}
		metadata.Bundle = &models.BundleMetadata{Children: pointers}
	}

	paste := models.Paste{
		Content:          content,
		Format:           body.Format,
		CreatedAt:        now,
		ExpiresAt:        expiresAt,
		BurnAfterReading: body.BurnAfterReading,
		Metadata:         metadata,
	}

	id, err := h.store.Create(r.Context(), paste)
	if err != nil {
		log.Err(err).Str("func", "*Handler.create").Msg("failed to create paste")
		http.Error(w, "failed to create paste", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.CreatePasteResponse{ID: id, Location: "/" + id}, http.StatusCreated)
}

// carrierSourceFromRequest resolves a StegoRequest into a stego.CarrierSource,
// preferring an uploaded carrier over a built-in name when CarrierData is
// set.
func carrierSourceFromRequest(req models.StegoRequest) (*stego.CarrierSource, error) {
	if req.CarrierData == "" {
		return &stego.CarrierSource{BuiltIn: req.BuiltIn}, nil
	}

	mime, encoded, err := stego.ParseDataURI(req.CarrierData)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &stego.ErrInvalidDataURI{Detail: "payload is not valid base64"}
	}

	return &stego.CarrierSource{UploadedMIME: mime, UploadedData: data}, nil
}

// readRequestFromQuery resolves an engine.ReadRequest from r, running the
// forwarded-host resolution the tor-scope gate depends on.
func readRequestFromQuery(r *http.Request) engine.ReadRequest {
	var query models.PasteViewQuery
	q := r.URL.Query()
	query.Key = q.Get("key")
	query.Code = q.Get("code")
	query.Attest = q.Get("attest")

	host := gate.RequestHost(r.Header.Get("X-Forwarded-Host"), r.Host)

	return engine.ReadRequest{
		Host:              host,
		Key:               query.Key,
		AttestationCode:   query.Code,
		AttestationSecret: query.Attest,
	}
}

// showRaw handles GET /raw/{id}: it runs the full read pipeline and writes
// the decrypted body back as plain text, with no JSON envelope.
func (h *Handler) showRaw(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	result, err := h.engine.ReadPaste(r.Context(), id, readRequestFromQuery(r))
	if err != nil {
		resp := responseFromError(err)
		log.Err(err).Str("func", "*Handler.showRaw").Str("paste_id", id).Msg("failed to read paste")
		http.Error(w, resp.message, resp.status)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Text))
}

// show handles GET /api/pastes/{id}: it runs the full read pipeline and
// returns the decrypted body as JSON, including a bundle overview when the
// paste is a bundle parent.
func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	result, err := h.engine.ReadPaste(r.Context(), id, readRequestFromQuery(r))
	if err != nil {
		resp := responseFromError(err)
		log.Err(err).Str("func", "*Handler.show").Str("paste_id", id).Msg("failed to read paste")
		http.Error(w, resp.message, resp.status)
		return
	}

	response := models.PasteViewResponse{
		ID:        id,
		Text:      result.Text,
		Format:    result.Paste.Format,
		CreatedAt: result.Paste.CreatedAt,
		ExpiresAt: result.Paste.ExpiresAt,
		Bundle:    h.bundle.Overview(r.Context(), result.Paste.Metadata.Bundle),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// anchorPaste handles POST /api/pastes/{id}/anchor: it fetches the paste
// without running the read gates (anchoring only needs the stored
// metadata, not a successful decrypt) and submits its manifest to the
// configured relayer.
func (h *Handler) anchorPaste(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var body models.AnchorRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Err(err).Str("func", "*Handler.anchorPaste").Msg("invalid JSON was passed")
			http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}

	paste, err := h.store.Get(r.Context(), id)
	if err != nil {
		resp := responseFromError(err)
		log.Err(err).Str("func", "*Handler.anchorPaste").Str("paste_id", id).Msg("paste not found")
		http.Error(w, resp.message, resp.status)
		return
	}

	response, err := h.anchor.Anchor(r.Context(), paste, body)
	if err != nil {
		resp := responseFromError(err)
		log.Err(err).Str("func", "*Handler.anchorPaste").Str("paste_id", id).Msg("failed to anchor paste")
		http.Error(w, resp.message, resp.status)
		return
	}

	h.verifier.VerifyHash(r.Context(), response.Hash)

	utils.WriteJSON(w, response, http.StatusOK)
}

// statsSummary handles GET /api/stats/summary.
func (h *Handler) statsSummary(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()
	utils.WriteJSON(w, models.StatsSummaryResponse{Stats: stats}, http.StatusOK)
}
