// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-keeper/models"
)

type detailModel struct {
	entry   pasteEntry
	resp    *models.PasteViewResponse
	loading bool
	status  string
	err     error
}

func (m detailModel) View() string {
	out := fmt.Sprintf("%s  [%s]\n\n", m.entry.ID, m.entry.Label)

	switch {
	case m.loading:
		out += "Загрузка...\n"
	case m.err != nil:
		out += errorStyle.Render(m.err.Error()) + "\n"
	case m.resp != nil:
		out += fmt.Sprintf("Формат:   %s\n", m.resp.Format)
		out += fmt.Sprintf("Создано:  %s\n", time.Unix(m.resp.CreatedAt, 0).Format(time.RFC3339))
		if m.resp.ExpiresAt != nil {
			out += fmt.Sprintf("Истекает: %s\n", time.Unix(*m.resp.ExpiresAt, 0).Format(time.RFC3339))
		}
		out += "\n" + m.resp.Text + "\n"
		if m.resp.Bundle != nil {
			out += "\nСвязка:\n"
			for _, child := range m.resp.Bundle.Children {
				out += fmt.Sprintf("  - %s [%s] %s\n", child.ID, child.Status, child.Label)
			}
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c копировать текст  esc назад")
	return out
}
