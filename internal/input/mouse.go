package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/deskfolio/deskfolio/internal/app"
	"github.com/deskfolio/deskfolio/internal/wm"
)

// windowAt hit-tests the open windows at their drawn rectangles and
// returns the topmost hit. Ties at the baseline rank go to the window
// opened last, matching what the canvas draws on top.
func windowAt(d *app.Desktop, x, y int) *wm.Window {
	var hit *wm.Window
	bestZ := -1
	for _, id := range d.WM.OpenIDs() {
		w, ok := d.WM.Window(id)
		if !ok {
			continue
		}
		rect := d.WindowRect(w)
		if x >= rect.Left && x < rect.Left+rect.Width &&
			y >= rect.Top && y < rect.Top+rect.Height && w.Z >= bestZ {
			hit = w
			bestZ = w.Z
		}
	}
	return hit
}

func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return d, nil
	}

	// A click on the lock screen unlocks, same as enter, and is
	// swallowed so it cannot also activate whatever sits under it.
	if d.Locked {
		d.Locked = false
		return d, nil
	}

	if d.ShowHelp || d.ShowLogs {
		d.ShowHelp = false
		d.ShowLogs = false
		return d, nil
	}

	if id, ok := d.DockItemAt(mouse.X, mouse.Y); ok {
		d.ActivateLauncher(id)
		return d, nil
	}

	w := windowAt(d, mouse.X, mouse.Y)
	if w == nil {
		return d, nil
	}

	// Any click in a window brings it to the front before the click is
	// interpreted further.
	d.WM.Promote(w.ID)

	rect := d.WindowRect(w)
	switch app.TitleBarButtonAt(rect, mouse.X, mouse.Y) {
	case "close":
		d.WM.Close(w.ID)
		return d, nil
	case "maximize":
		d.WM.ToggleMaximize(w.ID)
		return d, nil
	case "minimize":
		d.WM.Minimize(w.ID)
		return d, nil
	}

	// The rest of the title bar is the drag handle.
	if mouse.Y == rect.Top {
		d.Drag.Start(w.ID, mouse.X, mouse.Y)
	}
	return d, nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if d.Drag.Active() {
		mouse := msg.Mouse()
		d.Drag.Move(mouse.X, mouse.Y)
	}
	return d, nil
}

// handleMouseRelease ends any drag, wherever the pointer is.
func handleMouseRelease(_ tea.MouseReleaseMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.Drag.Stop()
	return d, nil
}
