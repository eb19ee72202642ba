// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// APIConfig configures an API client.
type APIConfig struct {
	// BaseURL is the root address of a running copypaste server, e.g.
	// "http://127.0.0.1:8080".
	BaseURL string
	Timeout time.Duration
}

// API is a thin resty wrapper over the copypaste HTTP surface: create,
// view, anchor, and stats-summary.
type API struct {
	client  *resty.Client
	baseURL string
}

// NewAPI constructs an API client. BaseURL is required.
func NewAPI(cfg APIConfig) (*API, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client: api requires a base url")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &API{
		client:  resty.New().SetTimeout(cfg.Timeout).SetBaseURL(cfg.BaseURL),
		baseURL: cfg.BaseURL,
	}, nil
}

// Create submits a new paste (or bundle) and returns its assigned id.
func (a *API) Create(ctx context.Context, req models.CreatePasteRequest) (*models.CreatePasteResponse, error) {
	var body models.CreatePasteResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		Post("/")
	if err != nil {
		return nil, fmt.Errorf("client: create paste: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("client: create paste: server returned %d: %s", resp.StatusCode(), resp.String())
	}

	return &body, nil
}

// Show fetches and decrypts a paste by id, running every gate the server
// enforces (tor scope, time lock, attestation).
func (a *API) Show(ctx context.Context, id string, query models.PasteViewQuery) (*models.PasteViewResponse, error) {
	var body models.PasteViewResponse

	req := a.client.R().SetContext(ctx).SetResult(&body)
	if query.Key != "" {
		req.SetQueryParam("key", query.Key)
	}
	if query.Code != "" {
		req.SetQueryParam("code", query.Code)
	}
	if query.Attest != "" {
		req.SetQueryParam("attest", query.Attest)
	}

	resp, err := req.Get("/api/pastes/" + id)
	if err != nil {
		return nil, fmt.Errorf("client: show paste: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("client: show paste: server returned %d: %s", resp.StatusCode(), resp.String())
	}

	return &body, nil
}

// Anchor submits an anchor request for an already-created paste.
func (a *API) Anchor(ctx context.Context, id string, req models.AnchorRequest) (*models.AnchorResponse, error) {
	var body models.AnchorResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		Post("/api/pastes/" + id + "/anchor")
	if err != nil {
		return nil, fmt.Errorf("client: anchor paste: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("client: anchor paste: server returned %d: %s", resp.StatusCode(), resp.String())
	}

	return &body, nil
}

// StatsSummary fetches store-wide statistics.
func (a *API) StatsSummary(ctx context.Context) (*models.StatsSummaryResponse, error) {
	var body models.StatsSummaryResponse

	resp, err := a.client.R().SetContext(ctx).SetResult(&body).Get("/api/stats/summary")
	if err != nil {
		return nil, fmt.Errorf("client: stats summary: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("client: stats summary: server returned %d: %s", resp.StatusCode(), resp.String())
	}

	return &body, nil
}
