package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/deskfolio/deskfolio/internal/apps"
	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/theme"
	"github.com/deskfolio/deskfolio/internal/wm"
)

// TickerMsg is the periodic frame tick.
type TickerMsg time.Time

// ConfigReloadedMsg carries a configuration freshly reread from disk.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
}

// InputHandler handles input messages on behalf of Update. Registering
// it from the outside lets the input package depend on app without a
// cycle.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler function. This must be
// called during initialization, before the update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// TickCmd generates tick messages at the normal refresh rate.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// ListenForReloads waits for the next configuration pushed by the file
// watcher and converts it to a message.
func ListenForReloads(reloads <-chan *config.UserConfig) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-reloads
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

// Init starts the tick timer and, when a watcher is attached, the
// config reload listener.
func (d *Desktop) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd()}
	if d.reloads != nil {
		cmds = append(cmds, ListenForReloads(d.reloads))
	}
	return tea.Batch(cmds...)
}

// Update handles all incoming messages. Housekeeping messages are
// handled here; keyboard and mouse input is delegated to the registered
// input handler.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		d.CleanupNotifications()
		d.sampleStats()
		return d, TickCmd()

	case ConfigReloadedMsg:
		d.ApplyConfig(msg.Config)
		d.ShowNotification("configuration reloaded", "info",
			config.NotificationMillis*time.Millisecond)
		return d, ListenForReloads(d.reloads)

	case tea.WindowSizeMsg:
		d.Resize(msg.Width, msg.Height)
		return d, nil
	}

	if inputHandler != nil {
		return inputHandler(msg, d)
	}
	return d, nil
}

// ApplyConfig swaps in a new configuration and re-derives everything
// that hangs off it: the active tint and the drag margins.
func (d *Desktop) ApplyConfig(cfg *config.UserConfig) {
	d.Config = cfg
	theme.Initialize(cfg.Appearance.Theme)
	d.applyViewport()
}

// Resize sets the viewport size. bubbletea also delivers sizes through
// WindowSizeMsg; this is for hosts that know the size up front, like
// the SSH server's PTY handshake.
func (d *Desktop) Resize(width, height int) {
	d.Width = width
	d.Height = height
	d.applyViewport()
}

// sampleStats takes a throttled gopsutil reading whenever anything on
// screen shows system numbers.
func (d *Desktop) sampleStats() {
	if !d.WM.IsOpen(apps.StatsWindow) && !d.Config.Appearance.ShowSysinfo {
		return
	}
	if time.Since(d.lastSample) < config.SysinfoIntervalMillis*time.Millisecond {
		return
	}
	d.Stats.Sample()
	d.lastSample = time.Now()
}

// applyViewport pushes the current size and chrome layout into the
// window manager. Windows may slide under the dock while dragging; the
// margins only keep them below the top chrome and partly on-canvas.
func (d *Desktop) applyViewport() {
	d.WM.SetViewport(d.Width, d.Height)
	d.WM.SetMargins(wm.Margins{
		Top:      d.CanvasTop(),
		VisibleX: config.MinVisibleCols,
		VisibleY: config.MinVisibleRows,
	})
}
