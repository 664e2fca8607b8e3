package app

import (
	"testing"
	"time"

	"github.com/deskfolio/deskfolio/internal/apps"
	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/wm"
)

func newDesktop(t *testing.T) *Desktop {
	t.Helper()
	d := NewDesktop(config.DefaultConfig(), nil)
	d.Locked = false
	d.Width, d.Height = 120, 40
	d.applyViewport()
	return d
}

func TestActivateLauncherOpensThenMinimizes(t *testing.T) {
	d := newDesktop(t)

	d.ActivateLauncher(apps.TerminalWindow)
	if !d.WM.IsOpen(apps.TerminalWindow) {
		t.Fatal("launcher click did not open the window")
	}

	d.ActivateLauncher(apps.TerminalWindow)
	if d.WM.IsOpen(apps.TerminalWindow) {
		t.Fatal("second launcher click did not minimize the window")
	}
	w, _ := d.WM.Window(apps.TerminalWindow)
	if w.MinimizedAt.IsZero() {
		t.Error("minimize timestamp not recorded")
	}
}

func TestTitleBarButtonAt(t *testing.T) {
	rect := wm.Geometry{Top: 5, Left: 10, Width: 40, Height: 12}
	// rightEdge is 50: close spans 46-48, maximize 43-45, minimize 40-42.
	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"close left edge", 46, 5, "close"},
		{"close right edge", 48, 5, "close"},
		{"maximize center", 44, 5, "maximize"},
		{"minimize center", 41, 5, "minimize"},
		{"between title and buttons", 39, 5, ""},
		{"corner rune", 49, 5, ""},
		{"below the title bar", 46, 6, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TitleBarButtonAt(rect, tt.x, tt.y); got != tt.want {
				t.Errorf("TitleBarButtonAt(%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDockItemAtCoversEveryLauncher(t *testing.T) {
	d := newDesktop(t)
	row := d.dockItemsRow()

	var seen []string
	for x := range d.Width {
		id, ok := d.DockItemAt(x, row)
		if !ok {
			continue
		}
		if len(seen) == 0 || seen[len(seen)-1] != id {
			seen = append(seen, id)
		}
	}
	if len(seen) != len(d.AppOrder) {
		t.Fatalf("dock row exposes %d launchers, want %d", len(seen), len(d.AppOrder))
	}
	for i, id := range d.AppOrder {
		if seen[i] != id {
			t.Errorf("launcher %d = %q, want %q", i, seen[i], id)
		}
	}

	if _, ok := d.DockItemAt(d.Width/2, row-1); ok {
		t.Error("hit above the launcher row")
	}
}

func TestWindowRectMaximizedFillsCanvas(t *testing.T) {
	d := newDesktop(t)
	d.WM.Open(apps.FilesWindow)
	w, _ := d.WM.Window(apps.FilesWindow)
	placed := w.Geometry

	d.WM.ToggleMaximize(apps.FilesWindow)
	want := wm.Geometry{Left: 0, Top: d.CanvasTop(), Width: d.Width, Height: d.CanvasHeight()}
	if got := d.WindowRect(w); got != want {
		t.Errorf("maximized rect = %+v, want %+v", got, want)
	}
	if w.Geometry != placed {
		t.Errorf("stored geometry changed to %+v while maximized", w.Geometry)
	}

	d.WM.ToggleMaximize(apps.FilesWindow)
	if got := d.WindowRect(w); got != placed {
		t.Errorf("restored rect = %+v, want %+v", got, placed)
	}
}

func TestCanvasTopFollowsDockPosition(t *testing.T) {
	d := newDesktop(t)
	if got := d.CanvasTop(); got != config.MenuBarHeight {
		t.Errorf("bottom dock: canvas top = %d, want %d", got, config.MenuBarHeight)
	}
	d.Config.Appearance.DockPosition = "top"
	if got := d.CanvasTop(); got != config.MenuBarHeight+config.DockHeight {
		t.Errorf("top dock: canvas top = %d, want %d", got, config.MenuBarHeight+config.DockHeight)
	}
}

func TestCycleFocusWalksOpeningOrder(t *testing.T) {
	d := newDesktop(t)
	d.WM.Open(apps.TerminalWindow)
	d.WM.Open(apps.FilesWindow)
	d.WM.Open(apps.StatsWindow)

	d.CycleFocus()
	if got := d.WM.Frontmost(); got != apps.TerminalWindow {
		t.Errorf("front after cycle = %q, want %q", got, apps.TerminalWindow)
	}
	d.CycleFocus()
	if got := d.WM.Frontmost(); got != apps.FilesWindow {
		t.Errorf("front after second cycle = %q, want %q", got, apps.FilesWindow)
	}
}

func TestNotificationsExpireAndLog(t *testing.T) {
	d := newDesktop(t)
	d.ShowNotification("hello", "warning", 0)
	if len(d.LogMessages) != 1 || d.LogMessages[0].Level != "warn" {
		t.Fatalf("log ring = %+v, want one warn entry", d.LogMessages)
	}
	d.CleanupNotifications()
	if len(d.Notifications) != 0 {
		t.Error("expired notification survived cleanup")
	}

	d.ShowNotification("sticky", "info", time.Minute)
	d.CleanupNotifications()
	if len(d.Notifications) != 1 {
		t.Error("live notification was dropped")
	}
}

func TestLogRingStaysBounded(t *testing.T) {
	d := newDesktop(t)
	for i := range config.MaxLogMessages + 25 {
		d.LogInfo("entry %d", i)
	}
	if len(d.LogMessages) != config.MaxLogMessages {
		t.Fatalf("log ring holds %d entries, want %d", len(d.LogMessages), config.MaxLogMessages)
	}
	if d.LogMessages[0].Message != "entry 25" {
		t.Errorf("oldest entry = %q, want entry 25", d.LogMessages[0].Message)
	}
}
