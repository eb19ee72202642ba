// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package verifier submits anchor hashes to an optional, independent
// cryptographic verification service. It is strictly best-effort: a
// verifier that is unreachable or slow must never affect the outcome of
// a paste read or anchor request.
package verifier

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-keeper/internal/logger"
)

// Client posts anchor hashes to a configured verification service.
type Client struct {
	client *resty.Client
	url    string
	logger *logger.Logger
}

// New constructs a Client. An empty url produces a Client whose
// VerifyHash calls are silent no-ops, so callers can construct one
// unconditionally.
func New(url string, log *logger.Logger) *Client {
	return &Client{
		client: resty.New().SetTimeout(5 * time.Second),
		url:    url,
		logger: log,
	}
}

type verifyRequestBody struct {
	Hash string `json:"hash"`
}

// VerifyHash posts hash to the configured verifier in the background and
// returns immediately; delivery outcome is logged, never returned.
func (c *Client) VerifyHash(ctx context.Context, hash string) {
	if c.url == "" {
		return
	}

	go func() {
		detached := context.WithoutCancel(ctx)
		detached, cancel := context.WithTimeout(detached, 5*time.Second)
		defer cancel()

		_, err := c.client.R().
			SetContext(detached).
			SetBody(verifyRequestBody{Hash: hash}).
			Post(c.url)
		if err != nil && c.logger != nil {
			c.logger.Err(err).Str("func", "verifier.Client").Msg("verifier submission failed")
		}
	}()
}
