// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface for the copypaste
// client.
//
// The package is built on top of the Bubble Tea framework
// (github.com/charmbracelet/bubbletea) and follows the Elm architecture:
// a single root model carries the current screen (list, create, detail)
// and dispatches Update/View to it. There is no login flow — pastes are
// anonymous — so the entry point is a single [TUI.Run] call that blocks
// until the user quits.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the facade of the package. It holds a reference to the API
// client and exposes a single entry point for the record-browsing loop.
type TUI struct {
	api pasteAPI
}

// New creates and returns a new TUI instance. api must implement Create
// and Show against a running copypaste server.
func New(api pasteAPI) *TUI {
	return &TUI{api: api}
}

// Run launches the interactive TUI in alternate-screen mode and blocks
// until the user quits (q / Ctrl+C).
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.api)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
