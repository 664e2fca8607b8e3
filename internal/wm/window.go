// Package wm implements the desktop's window management core: the
// registry of application windows, their open/close/minimize/maximize
// lifecycle, cascade placement, z-ordering, and interactive dragging.
// The package is presentation-agnostic; the app layer projects its
// state onto the screen each frame.
package wm

import "time"

// State is a window's lifecycle state.
type State int

const (
	// StateClosed means the window is not part of the visible desktop.
	StateClosed State = iota
	// StateRestored means the window is open at its own geometry.
	StateRestored
	// StateMaximized means the window is open and occupies the full
	// canvas. Its stored geometry is left untouched; maximization is a
	// rendering convention, not a geometry value.
	StateMaximized
)

// String returns a string representation of the window state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateRestored:
		return "restored"
	case StateMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// Geometry is a window's position and size in viewport units.
type Geometry struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Window represents one simulated application surface. Each application
// has exactly one window, registered once and reused across open/close
// cycles, so geometry survives a close and a reopened window comes back
// where it was last placed by the allocator.
type Window struct {
	ID    string
	Title string
	Icon  string
	State State
	Geometry
	// Z is the stacking rank among open windows. Only two tiers exist:
	// every open window sits at the baseline except the frontmost.
	Z int
	// MinimizedAt is when the window last left the desktop through
	// Minimize. The dock uses it to briefly highlight the launcher.
	MinimizedAt time.Time

	saved *Geometry
}

// Maximized reports whether the window is open and maximized.
func (w *Window) Maximized() bool {
	return w.State == StateMaximized
}

// snapshotGeometry records the current geometry for a later restore.
// Written once per maximize transition.
func (w *Window) snapshotGeometry() {
	g := w.Geometry
	w.saved = &g
}

// restoreGeometry puts back the snapshot taken on maximize, if any,
// and clears it.
func (w *Window) restoreGeometry() {
	if w.saved == nil {
		return
	}
	w.Geometry = *w.saved
	w.saved = nil
}
