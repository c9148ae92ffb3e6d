// Package ui holds the contracts shared by the picker's Bubble Tea widgets.
package ui

import tea "github.com/charmbracelet/bubbletea/v2"

// Component is a widget the app routes messages to and lays out.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable is a Component that takes keyboard input.
type Focusable interface {
	Component
	Focus() tea.Cmd
}
