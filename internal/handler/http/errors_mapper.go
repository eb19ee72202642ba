// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-keeper/internal/anchor"
	"github.com/MKhiriev/go-pass-keeper/internal/bundle"
	"github.com/MKhiriev/go-pass-keeper/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper/internal/engine"
	"github.com/MKhiriev/go-pass-keeper/internal/gate"
	"github.com/MKhiriev/go-pass-keeper/internal/pastestore"
	"github.com/MKhiriev/go-pass-keeper/internal/stego"
)

// errorResponse is the {message, status} pair a sentinel error maps to on
// the wire.
type errorResponse struct {
	message string
	status  int
}

// errorStatusMap implements spec.md §7's HTTP mapping table: NotFound →
// 404, Expired → 410, MissingKey → 401, InvalidKey → 403, time-lock on raw
// → 423, tor-scope → 403, bad request → 400. Bundle and stego errors are
// supplemented the same way: surfaced as 400 at request time, matching
// "Stego and attestation validation errors surface as 400". The engine's
// stego digest mismatch surfaces as 409 and an anchor relay failure as 502.
var errorStatusMap = map[error]errorResponse{
	pastestore.ErrNotFound: {message: "paste not found", status: http.StatusNotFound},
	pastestore.ErrExpired:  {message: "paste has expired", status: http.StatusGone},

	crypto.ErrMissingKey:           {message: "key required to decrypt this content", status: http.StatusUnauthorized},
	crypto.ErrInvalidKey:           {message: "key does not decrypt this content", status: http.StatusForbidden},
	crypto.ErrUnsupportedAlgorithm: {message: "unsupported encryption algorithm", status: http.StatusBadRequest},

	gate.ErrTorScope:            {message: "access restricted to the configured onion host", status: http.StatusForbidden},
	gate.ErrTooEarly:            {message: "paste is not yet readable", status: http.StatusLocked},
	gate.ErrTooLate:             {message: "paste is no longer readable", status: http.StatusLocked},
	gate.ErrAttestationRequired: {message: "attestation required", status: http.StatusUnauthorized},
	gate.ErrAttestationInvalid:  {message: "attestation invalid", status: http.StatusForbidden},

	bundle.ErrEncryptionRequired: {message: "bundle creation requires an encryption key", status: http.StatusBadRequest},

	engine.ErrStegoDigestMismatch: {message: "stego payload does not match its recorded digest", status: http.StatusConflict},

	anchor.ErrRelayFailed: {message: "anchor relay request failed", status: http.StatusBadGateway},

	ErrBadRequest: {message: "bad request", status: http.StatusBadRequest},
}

// responseFromError maps err to the errorResponse its sentinel chain
// matches, falling back to 500 for anything unrecognized.
//
// internal/stego's errors are distinct struct types rather than package
// sentinels (each carries per-call detail), so they cannot live in
// errorStatusMap; isStegoError classifies them by type instead.
func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}

	if msg, ok := isStegoError(err); ok {
		return errorResponse{message: msg, status: http.StatusBadRequest}
	}

	return errorResponse{message: "internal server error", status: http.StatusInternalServerError}
}

// isStegoError reports whether err is one of internal/stego's request-time
// validation errors, returning its message for the response body.
func isStegoError(err error) (string, bool) {
	var invalidDataURI *stego.ErrInvalidDataURI
	var unsupportedFormat *stego.ErrUnsupportedFormat
	var decodeCarrier *stego.ErrDecodeCarrier
	var payloadTooLarge *stego.ErrPayloadTooLarge
	var encodeFailure *stego.ErrEncodeFailure

	switch {
	case errors.As(err, &invalidDataURI):
		return invalidDataURI.Error(), true
	case errors.As(err, &unsupportedFormat):
		return unsupportedFormat.Error(), true
	case errors.As(err, &decodeCarrier):
		return decodeCarrier.Error(), true
	case errors.As(err, &payloadTooLarge):
		return payloadTooLarge.Error(), true
	case errors.As(err, &encodeFailure):
		return encodeFailure.Error(), true
	default:
		return "", false
	}
}
