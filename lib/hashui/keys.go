// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package hashui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the hashview shell.
type KeyMap struct {
	// Submit hashes the entered path (path focus) or re-hashes the
	// current one (result focus).
	Submit key.Binding

	// Cancel requests cancellation of the running attempt.
	Cancel key.Binding

	// FocusToggle moves between the path input and the result pane.
	FocusToggle key.Binding

	// Result-pane commands.
	CopyHex    key.Binding
	CopyBase64 key.Binding
	Uppercase  key.Binding
	AutoHash   key.Binding
	Clear      key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "hash"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	CopyHex: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy hex"),
	),
	CopyBase64: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "copy base64"),
	),
	Uppercase: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "uppercase"),
	),
	AutoHash: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "auto-hash"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
