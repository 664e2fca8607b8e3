package config

import "charm.land/lipgloss/v2"

const (
	// MenuBarHeight is the height of the top menu bar.
	MenuBarHeight = 1
	// DockHeight is the height of the dock, separator included.
	DockHeight = 2

	// MinVisibleCols is how many window columns must stay reachable at
	// the right edge while dragging.
	MinVisibleCols = 12
	// MinVisibleRows is how many window rows must stay reachable at
	// the bottom edge while dragging.
	MinVisibleRows = 2

	// MinimizeHighlightMillis is how long a freshly minimized window's
	// dock item stays highlighted. Purely cosmetic; the open set is
	// already updated when the highlight starts.
	MinimizeHighlightMillis = 300
	// NotificationMillis is the default notification lifetime.
	NotificationMillis = 1500
	// SysinfoIntervalMillis is the sampling interval for the stats
	// panel and dock readout.
	SysinfoIntervalMillis = 500

	// ZIndexWindowBase is the layer band for windows; a window's wm
	// rank is added on top of it.
	ZIndexWindowBase = 10
	// ZIndexDock is the z-index for the dock and menu bar.
	ZIndexDock = 1000
	// ZIndexOverlay is the z-index for help/log overlays.
	ZIndexOverlay = 1500
	// ZIndexNotifications is the z-index for notifications.
	ZIndexNotifications = 2000

	// NormalFPS is the refresh rate.
	NormalFPS = 60

	// MaxLogMessages is the maximum number of log messages kept.
	MaxLogMessages = 100
)

// GetBorderForStyle maps a configured border style name to a lipgloss
// border. Unknown names fall back to rounded.
func GetBorderForStyle(style string) lipgloss.Border {
	switch style {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "ascii":
		return lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		}
	default:
		return lipgloss.RoundedBorder()
	}
}
