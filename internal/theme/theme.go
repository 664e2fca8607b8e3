// Package theme provides color themes and styling for the deskfolio
// desktop.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup, and again whenever the config
// reloads. An empty name disables theming and falls back to standard
// terminal colors; an unknown name falls back to the default tint.
func Initialize(themeName string) {
	if themeName == "" {
		enabled = false
		return
	}

	enabled = true
	tint.NewDefaultRegistry()
	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
	}
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme, or nil when theming is
// disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Background is the desktop wallpaper base color.
func Background() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#10101a")
	}
	return t.Bg
}

// Foreground is the default text color.
func Foreground() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// Accent is used for the frontmost window border, dock indicators and
// highlighted chrome.
func Accent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// Muted is used for unfocused window borders and secondary text.
func Muted() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#808090")
	}
	return t.BrightBlack
}

// Warning is used for the lock screen hint and warning toasts.
func Warning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffff00")
	}
	return t.Yellow
}

// Good is used for success toasts and the fresh-minimize highlight.
func Good() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#66ff66")
	}
	return t.BrightGreen
}

// Bad is used for error toasts and the close button.
func Bad() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff5555")
	}
	return t.Red
}

// Prompt is the fake terminal's prompt color.
func Prompt() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AAFFAA")
	}
	return t.BrightGreen
}
