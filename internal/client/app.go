// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pass-keeper/internal/tui"
)

// App wires the API client into the interactive TUI and exposes the
// process lifecycle entry point.
type App struct {
	api *API
	ui  *tui.TUI
}

// NewApp constructs an App against a running copypaste server at
// baseURL.
func NewApp(baseURL string) (*App, error) {
	api, err := NewAPI(APIConfig{BaseURL: baseURL})
	if err != nil {
		return nil, err
	}

	return &App{api: api, ui: tui.New(api)}, nil
}

// Run starts the TUI and blocks until the user quits.
func (a *App) Run() error {
	return a.ui.Run(context.Background())
}
