// Package app implements the desktop shell: the bubbletea model that
// owns the window manager, the simulated applications, the dock, the
// menu bar, and the overlay surfaces drawn above them. All state lives
// on the Desktop struct; the input package mutates it through exported
// methods and the renderer projects it onto a lipgloss canvas each
// frame.
package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deskfolio/deskfolio/internal/apps"
	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/wm"
)

// Notification is a transient toast drawn above everything else.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "warning" or "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage is one entry in the in-memory log ring shown by the log
// overlay.
type LogMessage struct {
	Timestamp time.Time
	Level     string
	Message   string
}

// Desktop is the top-level bubbletea model for one session.
type Desktop struct {
	WM   *wm.Manager
	Drag *wm.Drag
	Dock *wm.Dock

	// Apps maps window ids to the simulated application rendered inside
	// that window. AppOrder fixes the dock and cycling order.
	Apps     map[string]apps.App
	AppOrder []string
	Stats    *apps.Stats

	Config *config.UserConfig

	Width  int
	Height int

	Locked   bool
	ShowHelp bool
	ShowLogs bool

	Notifications []Notification
	LogMessages   []LogMessage

	lastSample time.Time
	reloads    <-chan *config.UserConfig
}

// NewDesktop creates a desktop for the given configuration. The
// viewport starts at zero size and is set by the first WindowSizeMsg.
// reloads may be nil; when set, configuration updates pushed on it are
// applied live.
func NewDesktop(cfg *config.UserConfig, reloads <-chan *config.UserConfig) *Desktop {
	manager := wm.NewManager(wm.Config{Margins: wm.Margins{
		Top:      config.MenuBarHeight,
		VisibleX: config.MinVisibleCols,
		VisibleY: config.MinVisibleRows,
	}})

	d := &Desktop{
		WM:      manager,
		Drag:    wm.NewDrag(manager),
		Apps:    make(map[string]apps.App),
		Stats:   apps.NewStats(),
		Config:  cfg,
		Locked:  cfg.Desktop.LockOnStart,
		reloads: reloads,
	}

	owner := cfg.Desktop.Owner
	for _, a := range []apps.App{
		apps.NewTerminal(manager, owner),
		apps.NewFiles(),
		apps.NewThoughts(),
		d.Stats,
		apps.NewAbout(owner, cfg.Desktop.Tagline),
	} {
		d.Apps[a.ID()] = a
		d.AppOrder = append(d.AppOrder, a.ID())
		manager.Register(a.ID(), a.Title(), a.Icon())
	}

	items := make([]wm.Item, 0, len(d.AppOrder))
	for _, id := range d.AppOrder {
		a := d.Apps[id]
		items = append(items, wm.Item{WindowID: id, Label: a.Title(), Icon: a.Icon()})
	}
	d.Dock = wm.NewDock(items...)
	manager.Subscribe(d.Dock)

	return d
}

// ActivateLauncher implements the dock click contract: open the window
// when it is closed, minimize it when it is open.
func (d *Desktop) ActivateLauncher(id string) {
	if d.WM.IsOpen(id) {
		d.WM.Minimize(id)
		return
	}
	d.WM.Open(id)
}

// FrontApp returns the application inside the frontmost window, or nil
// when the desktop is empty.
func (d *Desktop) FrontApp() apps.App {
	w := d.WM.FrontWindow()
	if w == nil {
		return nil
	}
	return d.Apps[w.ID]
}

// CycleFocus promotes the next open window after the frontmost one, in
// opening order. A single open window stays put.
func (d *Desktop) CycleFocus() {
	open := d.WM.OpenIDs()
	if len(open) < 2 {
		return
	}
	front := d.WM.Frontmost()
	for i, id := range open {
		if id == front {
			d.WM.Promote(open[(i+1)%len(open)])
			return
		}
	}
	d.WM.Promote(open[0])
}

// CanvasTop is the first row below the persistent top chrome.
func (d *Desktop) CanvasTop() int {
	if d.Config.Appearance.DockPosition == "top" {
		return config.MenuBarHeight + config.DockHeight
	}
	return config.MenuBarHeight
}

// CanvasHeight is the number of rows between the top chrome and the
// dock, the area a maximized window fills.
func (d *Desktop) CanvasHeight() int {
	h := d.Height - config.MenuBarHeight - config.DockHeight
	if h < 0 {
		return 0
	}
	return h
}

// WindowRect returns where the window is drawn this frame. Maximized
// windows fill the canvas between the chrome bars; their stored
// geometry stays untouched so restore puts them back exactly.
func (d *Desktop) WindowRect(w *wm.Window) wm.Geometry {
	if w.Maximized() {
		return wm.Geometry{
			Left:   0,
			Top:    d.CanvasTop(),
			Width:  d.Width,
			Height: d.CanvasHeight(),
		}
	}
	return w.Geometry
}

// ShowNotification queues a toast and mirrors it into the log ring.
func (d *Desktop) ShowNotification(message, notifType string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		d.LogError("%s", message)
	case "warning":
		d.LogWarn("%s", message)
	default:
		d.LogInfo("%s", message)
	}
}

// CleanupNotifications drops expired toasts.
func (d *Desktop) CleanupNotifications() {
	now := time.Now()
	active := d.Notifications[:0]
	for _, n := range d.Notifications {
		if now.Sub(n.StartTime) < n.Duration {
			active = append(active, n)
		}
	}
	d.Notifications = active
}

// LogInfo appends an info entry to the log ring.
func (d *Desktop) LogInfo(format string, args ...any) { d.log("info", format, args...) }

// LogWarn appends a warning entry to the log ring.
func (d *Desktop) LogWarn(format string, args ...any) { d.log("warn", format, args...) }

// LogError appends an error entry to the log ring.
func (d *Desktop) LogError(format string, args ...any) { d.log("error", format, args...) }

func (d *Desktop) log(level, format string, args ...any) {
	d.LogMessages = append(d.LogMessages, LogMessage{
		Timestamp: time.Now(),
		Level:     level,
		Message:   fmt.Sprintf(format, args...),
	})
	if len(d.LogMessages) > config.MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-config.MaxLogMessages:]
	}
}
