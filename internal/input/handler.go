// Package input translates keyboard and mouse events into desktop
// operations. It is registered with the app package at startup via
// app.SetInputHandler, which keeps the dependency one-directional.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/deskfolio/deskfolio/internal/app"
)

// HandleInput is the entry point for all input messages.
func HandleInput(msg tea.Msg, d *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return handleKey(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	}
	return d, nil
}
