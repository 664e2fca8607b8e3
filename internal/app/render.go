package app

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/theme"
	"github.com/deskfolio/deskfolio/internal/wm"
)

// Title bar control buttons, right-aligned inside the top border:
// minimize, maximize, close, three cells each.
const (
	buttonMinimize = " — "
	buttonMaximize = " □ "
	buttonClose    = " ✕ "
	buttonRowWidth = 9
)

// dockItemGap is the spacing between dock launchers.
const dockItemGap = 1

// TitleBarButtonAt reports which control button sits at the given
// pointer cell for a window drawn at rect, or "" for none. The zones
// must mirror renderTitleBar exactly or clicks land on the wrong
// control.
func TitleBarButtonAt(rect wm.Geometry, x, y int) string {
	if y != rect.Top {
		return ""
	}
	rightEdge := rect.Left + rect.Width
	switch {
	case x >= rightEdge-4 && x <= rightEdge-2:
		return "close"
	case x >= rightEdge-7 && x <= rightEdge-5:
		return "maximize"
	case x >= rightEdge-10 && x <= rightEdge-8:
		return "minimize"
	}
	return ""
}

// View renders the whole desktop. Terminal modes live here rather than
// in Init as of bubbletea v2.
func (d *Desktop) View() tea.View {
	var view tea.View
	if d.Width == 0 || d.Height == 0 {
		view.SetContent("")
		return view
	}
	view.SetContent(lipgloss.Sprint(d.GetCanvas().Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	return view
}

// GetCanvas composes the frame: wallpaper at the bottom, then windows
// in their stacking band, then dock and menu bar, then overlays and
// toasts. When the desktop is locked only the lock screen is drawn.
func (d *Desktop) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(d.Width, d.Height)

	if d.Locked {
		canvas.Compose(lipgloss.NewCompositor(d.renderLockScreen()))
		return canvas
	}

	layers := []*lipgloss.Layer{d.renderWallpaper()}

	front := d.WM.Frontmost()
	for _, id := range d.WM.OpenIDs() {
		w, ok := d.WM.Window(id)
		if !ok {
			continue
		}
		layers = append(layers, d.renderWindow(w, id == front))
	}

	layers = append(layers, d.renderMenuBar(), d.renderDock())

	if d.ShowHelp {
		layers = append(layers, d.renderHelpOverlay())
	} else if d.ShowLogs {
		layers = append(layers, d.renderLogOverlay())
	}

	layers = append(layers, d.renderNotifications()...)

	canvas.Compose(lipgloss.NewCompositor(layers...))
	return canvas
}

func (d *Desktop) renderWallpaper() *lipgloss.Layer {
	wallpaper := lipgloss.NewStyle().
		Background(theme.Background()).
		Foreground(theme.Muted()).
		Width(d.Width).
		Height(d.Height)

	hint := ""
	if d.WM.OpenCount() == 0 {
		hint = "click a dock item or press ? for help"
	}
	content := lipgloss.Place(d.Width, d.Height, lipgloss.Center, lipgloss.Center, hint)

	return lipgloss.NewLayer(wallpaper.Render(content)).X(0).Y(0).Z(0).ID("wallpaper")
}

func (d *Desktop) renderMenuBar() *lipgloss.Layer {
	bar := lipgloss.NewStyle().Background(theme.Background())
	logo := bar.Foreground(theme.Accent()).Bold(true).Render(" ⌘ deskfolio ")
	owner := bar.Foreground(theme.Muted()).Render(d.Config.Desktop.Owner)
	clock := bar.Foreground(theme.Foreground()).Render(time.Now().Format("Mon Jan 2 15:04 "))

	gap := d.Width - lipgloss.Width(logo) - lipgloss.Width(owner) - lipgloss.Width(clock)
	if gap < 0 {
		gap = 0
	}
	content := logo + owner + bar.Render(strings.Repeat(" ", gap)) + clock

	return lipgloss.NewLayer(content).X(0).Y(0).Z(config.ZIndexDock).ID("menubar")
}

func (d *Desktop) renderWindow(w *wm.Window, focused bool) *lipgloss.Layer {
	rect := d.WindowRect(w)
	innerW := max(rect.Width-2, 1)
	innerH := max(rect.Height-2, 1)

	borderColor := theme.Muted()
	if focused {
		borderColor = theme.Accent()
	}
	border := config.GetBorderForStyle(d.Config.Appearance.BorderStyle)

	content := ""
	if a, ok := d.Apps[w.ID]; ok {
		content = a.View(innerW, innerH)
	}

	box := lipgloss.NewStyle().
		Align(lipgloss.Left).
		AlignVertical(lipgloss.Top).
		Foreground(theme.Foreground()).
		Background(theme.Background()).
		Border(border).
		BorderTop(false).
		BorderForeground(borderColor).
		Width(innerW).
		Height(innerH).
		Render(content)

	bar := d.renderTitleBar(w, innerW, border, borderColor)

	return lipgloss.NewLayer(bar + "\n" + box).
		X(rect.Left).
		Y(rect.Top).
		Z(config.ZIndexWindowBase + w.Z).
		ID(w.ID)
}

// renderTitleBar draws the top border row: the corner runes, a title
// pill on the left, and the three control buttons on the right. Button
// placement is what TitleBarButtonAt hit-tests against.
func (d *Desktop) renderTitleBar(w *wm.Window, innerW int, border lipgloss.Border, borderColor color.Color) string {
	frame := lipgloss.NewStyle().Foreground(borderColor)
	pill := lipgloss.NewStyle().Foreground(theme.Background()).Background(borderColor)

	buttons := pill.Render(buttonMinimize) + pill.Render(buttonMaximize) + pill.Render(buttonClose)

	title := " " + w.Icon + " " + w.Title + " "
	titleW := lipgloss.Width(title)
	fill := innerW - titleW - buttonRowWidth
	if fill < 0 {
		title, titleW = "", 0
		fill = max(innerW-buttonRowWidth, 0)
	}

	return frame.Render(border.TopLeft) +
		pill.Render(title) +
		frame.Render(strings.Repeat(border.Top, fill)) +
		buttons +
		frame.Render(border.TopRight)
}

// dockItemText is the unstyled launcher text. Hit-testing and
// rendering both measure it, so their widths can never diverge.
func dockItemText(it wm.Item) string {
	return " " + it.Icon + " " + it.Label + " "
}

// dockTop is the row of the dock's first line.
func (d *Desktop) dockTop() int {
	if d.Config.Appearance.DockPosition == "top" {
		return config.MenuBarHeight
	}
	return d.Height - config.DockHeight
}

// dockItemsRow is the row launchers are drawn on, and therefore the
// only row dock clicks land on.
func (d *Desktop) dockItemsRow() int {
	if d.Config.Appearance.DockPosition == "top" {
		return d.dockTop()
	}
	return d.dockTop() + config.DockHeight - 1
}

func (d *Desktop) dockStartX() int {
	items := d.Dock.Items()
	total := 0
	for i, it := range items {
		total += lipgloss.Width(dockItemText(it))
		if i < len(items)-1 {
			total += dockItemGap
		}
	}
	start := (d.Width - total) / 2
	if start < 0 {
		start = 0
	}
	return start
}

// DockItemAt returns the window id of the launcher under the pointer.
func (d *Desktop) DockItemAt(x, y int) (string, bool) {
	if y != d.dockItemsRow() {
		return "", false
	}
	pos := d.dockStartX()
	for _, it := range d.Dock.Items() {
		w := lipgloss.Width(dockItemText(it))
		if x >= pos && x < pos+w {
			return it.WindowID, true
		}
		pos += w + dockItemGap
	}
	return "", false
}

func (d *Desktop) renderDock() *lipgloss.Layer {
	base := lipgloss.NewStyle().Background(theme.Background())
	mutedLine := base.Foreground(theme.Muted())

	// Separator row, with the sysinfo readout tucked into its right end.
	sepRow := mutedLine.Render(strings.Repeat("─", max(d.Width, 0)))
	if d.Config.Appearance.ShowSysinfo && d.Stats.CurrentCPU() > 0 {
		readout := fmt.Sprintf(" cpu %.0f%% · ram %.0f%% ", d.Stats.CurrentCPU(), d.Stats.RAMPercent())
		if w := lipgloss.Width(readout); w+2 < d.Width {
			sepRow = mutedLine.Render(strings.Repeat("─", d.Width-w-1)) +
				mutedLine.Render(readout) +
				mutedLine.Render("─")
		}
	}

	// Launcher row. Active launchers get an inverted pill; a freshly
	// minimized one flashes in the highlight color until the timer in
	// MinimizedAt runs out.
	var row strings.Builder
	row.WriteString(base.Render(strings.Repeat(" ", d.dockStartX())))
	items := d.Dock.Items()
	for i, it := range items {
		style := base.Foreground(theme.Muted())
		if w, ok := d.WM.Window(it.WindowID); ok &&
			time.Since(w.MinimizedAt) < config.MinimizeHighlightMillis*time.Millisecond {
			style = lipgloss.NewStyle().Foreground(theme.Background()).Background(theme.Good())
		} else if it.Active {
			style = lipgloss.NewStyle().Foreground(theme.Background()).Background(theme.Accent()).Bold(true)
		}
		row.WriteString(style.Render(dockItemText(it)))
		if i < len(items)-1 {
			row.WriteString(base.Render(strings.Repeat(" ", dockItemGap)))
		}
	}

	var content string
	if d.Config.Appearance.DockPosition == "top" {
		content = row.String() + "\n" + sepRow
	} else {
		content = sepRow + "\n" + row.String()
	}

	return lipgloss.NewLayer(content).X(0).Y(d.dockTop()).Z(config.ZIndexDock).ID("dock")
}

func (d *Desktop) renderLockScreen() *lipgloss.Layer {
	name := lipgloss.NewStyle().Foreground(theme.Accent()).Bold(true).
		Render(d.Config.Desktop.Owner)
	tagline := lipgloss.NewStyle().Foreground(theme.Muted()).Italic(true).
		Render(d.Config.Desktop.Tagline)
	clock := lipgloss.NewStyle().Foreground(theme.Foreground()).
		Render(time.Now().Format("15:04"))
	hint := lipgloss.NewStyle().Foreground(theme.Warning()).
		Render("press enter to unlock")

	body := strings.Join([]string{clock, "", name, tagline, "", hint}, "\n")
	content := lipgloss.NewStyle().
		Background(theme.Background()).
		Width(d.Width).
		Height(d.Height).
		Render(lipgloss.Place(d.Width, d.Height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Align(lipgloss.Center).Render(body)))

	return lipgloss.NewLayer(content).X(0).Y(0).Z(config.ZIndexOverlay).ID("lockscreen")
}

func (d *Desktop) overlayBox(title string, lines []string) *lipgloss.Layer {
	heading := lipgloss.NewStyle().Foreground(theme.Accent()).Bold(true).Render(title)
	body := lipgloss.NewStyle().Foreground(theme.Foreground()).
		Render(strings.Join(lines, "\n"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent()).
		Background(theme.Background()).
		Padding(1, 2).
		Render(heading + "\n\n" + body)

	x := max((d.Width-lipgloss.Width(box))/2, 0)
	y := max((d.Height-lipgloss.Height(box))/2, 0)
	return lipgloss.NewLayer(box).X(x).Y(y).Z(config.ZIndexOverlay).ID("overlay")
}

func (d *Desktop) renderHelpOverlay() *lipgloss.Layer {
	return d.overlayBox("deskfolio", []string{
		"t/f/s/a/n   open terminal / files / stats / about / thoughts",
		"tab         cycle focused window",
		"w           close focused window",
		"m           minimize focused window",
		"enter       maximize / restore focused window",
		"l           show the session log",
		"L           lock the desktop",
		"?           toggle this help",
		"q           quit",
		"",
		"drag a title bar to move a window;",
		"the dock buttons open and minimize.",
	})
}

func (d *Desktop) renderLogOverlay() *lipgloss.Layer {
	start := max(len(d.LogMessages)-15, 0)
	lines := make([]string, 0, 16)
	for _, m := range d.LogMessages[start:] {
		lines = append(lines, fmt.Sprintf("%s %-5s %s",
			m.Timestamp.Format("15:04:05"), m.Level, m.Message))
	}
	if len(lines) == 0 {
		lines = append(lines, "nothing logged yet")
	}
	return d.overlayBox("session log", lines)
}

func (d *Desktop) renderNotifications() []*lipgloss.Layer {
	layers := make([]*lipgloss.Layer, 0, len(d.Notifications))
	y := config.MenuBarHeight + 1
	for _, n := range d.Notifications {
		accent := theme.Accent()
		switch n.Type {
		case "warning":
			accent = theme.Warning()
		case "error":
			accent = theme.Bad()
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Background(theme.Background()).
			Foreground(theme.Foreground()).
			Padding(0, 1).
			Render(n.Message)

		x := max(d.Width-lipgloss.Width(box)-1, 0)
		layers = append(layers, lipgloss.NewLayer(box).
			X(x).Y(y).Z(config.ZIndexNotifications).ID(n.ID))
		y += lipgloss.Height(box)
	}
	return layers
}
