// Copyright 2026 The Hashview Authors
// SPDX-License-Identifier: Apache-2.0

package hashui

import "github.com/charmbracelet/lipgloss"

// Styles defines the shell's visual properties. All colors use ANSI
// 256-color codes for broad terminal compatibility.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Digest     lipgloss.Style
	Faint      lipgloss.Style
	Error      lipgloss.Style
	Notice     lipgloss.Style
	Help       lipgloss.Style
	PanelFocus lipgloss.Style
	PanelBlur  lipgloss.Style
}

// DefaultStyles returns the built-in dark palette.
func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Digest:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Faint:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PanelFocus: lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("39")).Padding(0, 1),
		PanelBlur:  lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	}
}
