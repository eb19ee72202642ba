// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-keeper/models"
)

// pasteAPI is the subset of internal/client.API the TUI depends on. It is
// declared here, not imported from internal/client, so that internal/client
// can in turn import internal/tui without a cycle.
type pasteAPI interface {
	Create(ctx context.Context, req models.CreatePasteRequest) (*models.CreatePasteResponse, error)
	Show(ctx context.Context, id string, query models.PasteViewQuery) (*models.PasteViewResponse, error)
}

type screen int

const (
	screenList screen = iota
	screenCreate
	screenDetail
)

type appModel struct {
	ctx context.Context
	api pasteAPI

	currentScreen screen
	list          listModel
	create        createModel
	detail        detailModel
}

func newAppModel(ctx context.Context, api pasteAPI) appModel {
	return appModel{
		ctx:           ctx,
		api:           api,
		currentScreen: screenList,
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pasteCreatedMsg:
		m.create.submitting = false
		if msg.err != nil {
			m.list.err = msg.err
			return m, nil
		}
		m.list.err = nil
		m.list.items = append(m.list.items, msg.entry)
		m.list.idx = len(m.list.items) - 1
		m.currentScreen = screenList
		return m, nil
	case pasteLoadedMsg:
		m.detail.loading = false
		if msg.err != nil {
			m.detail.err = msg.err
			return m, nil
		}
		m.detail.err = nil
		m.detail.resp = msg.resp
		return m, nil
	case copiedMsg:
		m.detail.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenCreate:
		return m.updateCreate(msg)
	case screenDetail:
		return m.updateDetail(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenCreate:
		body = m.create.View()
	case screenDetail:
		body = m.detail.View()
	}
	return appStyle.Render(body)
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{entry: entry, loading: true}
		m.currentScreen = screenDetail
		return m, m.cmdLoad(entry)
	case key.Matches(keyMsg, keys.newItem):
		m.create = newCreateModel()
		m.currentScreen = screenCreate
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.create = focusNextCreate(m.create)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.create = focusPrevCreate(m.create)
			return m, nil
		case key.Matches(keyMsg, keys.cycleFmt):
			m.create.formatIdx = (m.create.formatIdx + 1) % len(cyclableFormats)
			return m, nil
		case key.Matches(keyMsg, keys.cycleAlg):
			m.create.algIdx = (m.create.algIdx + 1) % len(cyclableAlgorithms)
			return m, nil
		case key.Matches(keyMsg, keys.burn):
			m.create.burnAfter = !m.create.burnAfter
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.create.inputs[1].Value() == "" {
				return m, nil
			}
			m.create.submitting = true
			return m, m.cmdCreate(m.create)
		}
	}

	var cmd tea.Cmd
	m.create.inputs[m.create.focus], cmd = m.create.inputs[m.create.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		if m.detail.resp == nil {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.resp.Text)
	}
	return m, nil
}

func (m appModel) cmdCreate(c createModel) tea.Cmd {
	ctx := m.ctx
	api := m.api
	label := c.inputs[0].Value()
	text := c.inputs[1].Value()
	key := c.inputs[3].Value()
	retentionMinutes := int64(0)
	if v, err := strconv.ParseInt(c.inputs[2].Value(), 10, 64); err == nil {
		retentionMinutes = v
	}
	format := c.format()
	algorithm := c.algorithm()
	burnAfter := c.burnAfter

	return func() tea.Msg {
		resp, err := api.Create(ctx, models.CreatePasteRequest{
			Text:             text,
			Format:           format,
			RetentionMinutes: retentionMinutes,
			BurnAfterReading: burnAfter,
			Encryption:       algorithm,
			Key:              key,
		})
		if err != nil {
			return pasteCreatedMsg{err: err}
		}
		return pasteCreatedMsg{entry: pasteEntry{
			ID:        resp.ID,
			Label:     label,
			Format:    format,
			Key:       key,
			CreatedAt: time.Now().Unix(),
		}}
	}
}

func (m appModel) cmdLoad(entry pasteEntry) tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		resp, err := api.Show(ctx, entry.ID, models.PasteViewQuery{Key: entry.Key})
		return pasteLoadedMsg{resp: resp, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return pasteLoadedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextCreate(m createModel) createModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevCreate(m createModel) createModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
