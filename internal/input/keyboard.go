package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/deskfolio/deskfolio/internal/app"
	"github.com/deskfolio/deskfolio/internal/apps"
)

// handleKey routes a key press. The lock screen and overlays eat keys
// first, then the focused application gets a chance, then the desktop
// shortcuts apply. Letting the app go first is what makes typing "q"
// into the terminal possible at all.
func handleKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()

	if d.Locked {
		if key == "enter" {
			d.Locked = false
		}
		return d, nil
	}

	if d.ShowHelp || d.ShowLogs {
		d.ShowHelp = false
		d.ShowLogs = false
		return d, nil
	}

	if key == "ctrl+c" {
		return d, tea.Quit
	}

	if a := d.FrontApp(); a != nil && a.HandleKey(key) {
		return d, nil
	}

	switch key {
	case "q":
		return d, tea.Quit
	case "?":
		d.ShowHelp = true
	case "l":
		d.ShowLogs = true
	case "shift+l", "L":
		d.Locked = true
	case "tab":
		d.CycleFocus()
	case "t":
		d.WM.Open(apps.TerminalWindow)
	case "f":
		d.WM.Open(apps.FilesWindow)
	case "s":
		d.WM.Open(apps.StatsWindow)
	case "a":
		d.WM.Open(apps.AboutWindow)
	case "n":
		d.WM.Open(apps.ThoughtsWindow)
	case "w":
		if w := d.WM.FrontWindow(); w != nil {
			d.WM.Close(w.ID)
		}
	case "m":
		if w := d.WM.FrontWindow(); w != nil {
			d.WM.Minimize(w.ID)
		}
	case "enter":
		if w := d.WM.FrontWindow(); w != nil {
			d.WM.ToggleMaximize(w.ID)
		}
	}
	return d, nil
}
