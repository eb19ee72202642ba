// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// pasteEntry is the session-local record of a paste this client created.
// The server exposes no list-all endpoint for anonymous pastes (by
// design — nothing ties a paste to an owner), so the list screen only
// ever shows what this run of the client has itself created or opened.
type pasteEntry struct {
	ID        string
	Label     string
	Format    models.PasteFormat
	Key       string
	CreatedAt int64
}

type listModel struct {
	items  []pasteEntry
	idx    int
	status string
	err    error
}

func newListModel() listModel {
	return listModel{}
}

func (m listModel) current() (pasteEntry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return pasteEntry{}, false
	}
	return m.items[m.idx], true
}

func (m listModel) View() string {
	out := titleStyle.Render("copypaste") + "\n\n"

	if len(m.items) == 0 {
		out += "Нет созданных паст в этой сессии\n"
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			label := item.Label
			if label == "" {
				label = item.ID
			}
			out += fmt.Sprintf("%s%s  %s  %s\n", cursor, item.ID, label, time.Unix(item.CreatedAt, 0).Format("15:04:05"))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.err != nil {
		out += "\n" + errorStyle.Render(m.err.Error()) + "\n"
	}

	out += "\n" + helpStyle.Render("n новая паста  enter открыть  q выход")
	return out
}
