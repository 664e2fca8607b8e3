package wm

import (
	"slices"
	"time"
)

// Stacking tiers. Every open window sits at zBase except the frontmost
// at zFront. This flat two-tier scheme is intentional: the desktop has
// no stacking history, only "the window on top" and "everything else".
const (
	zBase  = 0
	zFront = 1
)

// Margins bound interactive window moves so a dragged window can never
// be pushed fully under the persistent chrome or off the far edges.
type Margins struct {
	Left     int // units reserved at the left edge for chrome
	Top      int // units reserved at the top edge for chrome
	VisibleX int // units of the window kept reachable at the right edge
	VisibleY int // units of the window kept reachable at the bottom edge
}

// DefaultMargins reserves room for the stock chrome: a 70-unit launcher
// rail and a 28-unit top bar, with 100x50 units of any window always
// kept on-canvas.
func DefaultMargins() Margins {
	return Margins{Left: 70, Top: 28, VisibleX: 100, VisibleY: 50}
}

// Config holds configuration for a window manager instance.
type Config struct {
	// Width and Height are the viewport size in abstract units; the
	// front end decides whether a unit is a pixel or a terminal cell.
	Width  int
	Height int
	// Margins bound dragging. The zero value means DefaultMargins.
	Margins Margins
}

// Observer is notified after every lifecycle transition. The dock
// registers itself here so its indicators can never go stale.
type Observer interface {
	WindowsChanged(m *Manager)
}

// Manager owns all window state: the registry of known windows, the
// set of currently open ones, the cascade counter, and the frontmost
// window. It is a plain single-threaded state machine; all operations
// run to completion inside one event-handler invocation, so there is
// no locking. Operations on unknown ids are silent no-ops: the UI
// layer may reference launchers for windows that were never registered
// and must never trip over them.
type Manager struct {
	windows map[string]*Window
	order   []string // registration order, for deterministic iteration
	open    []string // open window ids, oldest open first
	front   string   // id of the frontmost window, "" when none

	// cascade counts first-time opens since the desktop was last
	// empty; it resets to zero when a window opens onto an empty
	// desktop.
	cascade int

	width, height int
	margins       Margins

	observers []Observer
}

// NewManager creates a window manager for the given viewport.
func NewManager(cfg Config) *Manager {
	margins := cfg.Margins
	if margins == (Margins{}) {
		margins = DefaultMargins()
	}
	return &Manager{
		windows: make(map[string]*Window),
		width:   cfg.Width,
		height:  cfg.Height,
		margins: margins,
	}
}

// Register adds a window to the registry in the closed state and
// returns it. Registering an existing id returns the existing window
// unchanged; there is exactly one window per application.
func (m *Manager) Register(id, title, icon string) *Window {
	if w, ok := m.windows[id]; ok {
		return w
	}
	w := &Window{ID: id, Title: title, Icon: icon, State: StateClosed}
	m.windows[id] = w
	m.order = append(m.order, id)
	return w
}

// Window returns the window with the given id, if registered.
func (m *Manager) Window(id string) (*Window, bool) {
	w, ok := m.windows[id]
	return w, ok
}

// Windows returns all registered windows in registration order.
func (m *Manager) Windows() []*Window {
	ws := make([]*Window, 0, len(m.order))
	for _, id := range m.order {
		ws = append(ws, m.windows[id])
	}
	return ws
}

// Open makes the window visible. Opening an already-open window only
// promotes it and resyncs the dock; it never moves the window or
// advances the cascade. Opening onto an empty desktop resets the
// cascade so the first window always lands at the cascade origin. A
// window that went away maximized always comes back restored.
func (m *Manager) Open(id string) {
	w, ok := m.windows[id]
	if !ok {
		return
	}
	if !m.IsOpen(id) {
		if len(m.open) == 0 {
			m.cascade = 0
		}
		w.Geometry = m.placement(m.cascade)
		m.cascade++
		m.open = append(m.open, id)
		w.State = StateRestored
	}
	m.Promote(id)
	m.notify()
}

// Close removes the window from the desktop. Geometry and any maximize
// snapshot survive, so state carries across a close/reopen cycle.
func (m *Manager) Close(id string) {
	w, ok := m.windows[id]
	if !ok || !m.IsOpen(id) {
		return
	}
	m.removeOpen(id)
	w.State = StateClosed
	if m.front == id {
		m.promoteLastOpen()
	}
	m.notify()
}

// Minimize hides the window and drops it from the open set, so the
// dock indicator clears immediately. For state tracking this is a
// close; the caller's intent is that a later Open brings the window
// back. Minimizing a window that is not open does nothing, which makes
// a double minimize idempotent.
func (m *Manager) Minimize(id string) {
	w, ok := m.windows[id]
	if !ok || !m.IsOpen(id) {
		return
	}
	m.removeOpen(id)
	w.State = StateClosed
	w.MinimizedAt = time.Now()
	if m.front == id {
		m.promoteLastOpen()
	}
	m.notify()
}

// ToggleMaximize flips the window between restored and maximized. The
// maximize transition snapshots geometry; the restore transition puts
// the snapshot back, so a maximize/restore pair round-trips exactly.
// Closed and unknown ids are no-ops.
func (m *Manager) ToggleMaximize(id string) {
	w, ok := m.windows[id]
	if !ok || !m.IsOpen(id) {
		return
	}
	switch w.State {
	case StateMaximized:
		w.restoreGeometry()
		w.State = StateRestored
	case StateRestored:
		w.snapshotGeometry()
		w.State = StateMaximized
	}
	m.notify()
}

// Promote makes the window frontmost: every open window drops to the
// baseline rank and the target alone is raised above it. Called on
// open, on click/focus, and on drag start.
func (m *Manager) Promote(id string) {
	w, ok := m.windows[id]
	if !ok || !m.IsOpen(id) {
		return
	}
	for _, openID := range m.open {
		m.windows[openID].Z = zBase
	}
	w.Z = zFront
	m.front = id
}

// IsOpen reports whether the window is currently on the desktop.
func (m *Manager) IsOpen(id string) bool {
	return slices.Contains(m.open, id)
}

// OpenIDs returns the open window ids, oldest open first.
func (m *Manager) OpenIDs() []string {
	return slices.Clone(m.open)
}

// OpenCount returns the number of open windows.
func (m *Manager) OpenCount() int {
	return len(m.open)
}

// CascadeCount returns the cascade counter: first-time opens since the
// desktop was last empty.
func (m *Manager) CascadeCount() int {
	return m.cascade
}

// Frontmost returns the id of the frontmost window, or "" when the
// desktop is empty.
func (m *Manager) Frontmost() string {
	return m.front
}

// FrontWindow returns the frontmost window, or nil when the desktop is
// empty.
func (m *Manager) FrontWindow() *Window {
	if m.front == "" {
		return nil
	}
	return m.windows[m.front]
}

// SetViewport updates the viewport size. Existing windows keep their
// geometry; only future placements and drag clamps see the new size.
func (m *Manager) SetViewport(width, height int) {
	m.width = width
	m.height = height
}

// Viewport returns the current viewport size.
func (m *Manager) Viewport() (width, height int) {
	return m.width, m.height
}

// SetMargins replaces the drag margins. The front end calls this when
// its chrome moves, for example when the dock switches edges.
func (m *Manager) SetMargins(margins Margins) {
	m.margins = margins
}

// Subscribe registers an observer and syncs it immediately.
func (m *Manager) Subscribe(o Observer) {
	m.observers = append(m.observers, o)
	o.WindowsChanged(m)
}

func (m *Manager) notify() {
	for _, o := range m.observers {
		o.WindowsChanged(m)
	}
}

func (m *Manager) removeOpen(id string) {
	if i := slices.Index(m.open, id); i >= 0 {
		m.open = slices.Delete(m.open, i, i+1)
	}
}

// promoteLastOpen hands the front slot to the most recently opened
// window left on the desktop, if any.
func (m *Manager) promoteLastOpen() {
	if len(m.open) == 0 {
		m.front = ""
		return
	}
	m.Promote(m.open[len(m.open)-1])
}
