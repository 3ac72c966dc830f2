// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wm

import (
	"github.com/x-z7a/skyscript/host"
)

// MaxHotkeys is the number of menu items reachable from the keyboard, bound
// to F1 through F12 in the order they were appended.
const MaxHotkeys = 12

// Menu is a host menu. The desktop host has no menu bar; items are selected
// with function keys.
type Menu struct {
	m       *WM
	name    string
	handler func(ref host.Refcon)
	items   []string
}

type hotkey struct {
	menu *Menu
	ref  host.Refcon
	name string
}

// Hotkey describes an item bound to a function key.
type Hotkey struct {
	Key  host.VirtualKey
	Menu string
	Item string
}

func (m *WM) CreateMenu(name string, handler func(ref host.Refcon)) host.Menu {
	mu := &Menu{m: m, name: name, handler: handler}
	m.menus = append(m.menus, mu)
	return mu
}

func (mu *Menu) AppendItem(name string, ref host.Refcon) int {
	mu.items = append(mu.items, name)
	if len(mu.m.hotkeys) < MaxHotkeys {
		mu.m.hotkeys = append(mu.m.hotkeys, hotkey{menu: mu, ref: ref, name: name})
	}
	return len(mu.items) - 1
}

// Hotkeys lists the bound items.
func (m *WM) Hotkeys() []Hotkey {
	hs := make([]Hotkey, len(m.hotkeys))
	for i, h := range m.hotkeys {
		hs[i] = Hotkey{Key: host.VKF1 + host.VirtualKey(i), Menu: h.menu.name, Item: h.name}
	}
	return hs
}

func (m *WM) selectHotkey(i int) {
	if i < 0 || i >= len(m.hotkeys) {
		return
	}
	h := m.hotkeys[i]
	if h.menu.handler != nil {
		h.menu.handler(h.ref)
	}
}
