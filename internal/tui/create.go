// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-pass-keeper/models"
)

var cyclableFormats = []models.PasteFormat{
	models.FormatPlainText, models.FormatMarkdown, models.FormatCode,
	models.FormatJSON, models.FormatGo, models.FormatPython, models.FormatBash,
}

var cyclableAlgorithms = []models.EncryptionAlgorithm{
	models.AlgorithmNone, models.AlgorithmAES256GCM,
	models.AlgorithmChaCha20Poly1305, models.AlgorithmXChaCha20Poly1305,
	models.AlgorithmKyberHybridAes256GCM,
}

type createModel struct {
	inputs      []textinput.Model // 0: label, 1: text, 2: retention minutes, 3: key
	focus       int
	formatIdx   int
	algIdx      int
	burnAfter   bool
	submitting  bool
}

func newCreateModel() createModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
	}
	inputs[0].Placeholder = "label (optional)"
	inputs[1].Placeholder = "paste text"
	inputs[2].Placeholder = "retention minutes (0 = forever)"
	inputs[3].Placeholder = "passphrase (required unless encryption is none)"
	inputs[0].Focus()

	return createModel{inputs: inputs}
}

func (m createModel) format() models.PasteFormat {
	return cyclableFormats[m.formatIdx]
}

func (m createModel) algorithm() models.EncryptionAlgorithm {
	return cyclableAlgorithms[m.algIdx]
}

func (m createModel) View() string {
	out := titleStyle.Render("Новая паста") + "\n\n"
	out += "Метка:      [" + m.inputs[0].View() + "]\n"
	out += "Текст:      [" + m.inputs[1].View() + "]\n"
	out += "Хранение:   [" + m.inputs[2].View() + "] мин.\n"
	out += "Пароль:     [" + m.inputs[3].View() + "]\n\n"
	out += "Формат:       " + string(m.format()) + "  (f переключить)\n"
	out += "Шифрование:   " + string(m.algorithm()) + "  (a переключить)\n"
	out += "Сжечь после прочтения: "
	if m.burnAfter {
		out += "да"
	} else {
		out += "нет"
	}
	out += "  (b переключить)\n\n"

	if m.submitting {
		out += "Отправка...\n\n"
	}

	out += helpStyle.Render("esc отмена  tab следующее поле  enter создать")
	return out
}
