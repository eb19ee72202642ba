// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	newItem key.Binding
	copy    key.Binding
	burn    key.Binding
	cycleFmt key.Binding
	cycleAlg key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	copy:     key.NewBinding(key.WithKeys("c")),
	burn:     key.NewBinding(key.WithKeys("b")),
	cycleFmt: key.NewBinding(key.WithKeys("f")),
	cycleAlg: key.NewBinding(key.WithKeys("a")),
}
