// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-pass-keeper/models"

// pasteCreatedMsg reports the outcome of a create request.
type pasteCreatedMsg struct {
	entry pasteEntry
	err   error
}

// pasteLoadedMsg reports the outcome of a view (show) request.
type pasteLoadedMsg struct {
	resp *models.PasteViewResponse
	err  error
}

// copiedMsg reports a successful clipboard write.
type copiedMsg struct{}

// clearStatusMsg clears a transient status line a few seconds after it was
// set.
type clearStatusMsg struct{}
