package wm

// Drag is the pointer-driven move operation. It has exactly two
// states, idle and dragging, and is driven synchronously by the
// pointer handlers: down starts it, every motion repositions the
// target, up ends it unconditionally.
type Drag struct {
	m        *Manager
	targetID string
	offsetX  int
	offsetY  int
	active   bool
}

// NewDrag creates a drag controller bound to a manager.
func NewDrag(m *Manager) *Drag {
	return &Drag{m: m}
}

// Start begins dragging the window under the pointer, capturing the
// grab offset between the pointer and the window's top-left corner and
// promoting the window to front. The caller is responsible for only
// starting drags from the draggable header region; the title-bar
// control buttons must not reach here. Unknown or closed ids are
// ignored.
func (d *Drag) Start(id string, x, y int) {
	w, ok := d.m.Window(id)
	if !ok || !d.m.IsOpen(id) {
		return
	}
	d.active = true
	d.targetID = id
	d.offsetX = x - w.Left
	d.offsetY = y - w.Top
	d.m.Promote(id)
}

// Move repositions the target window so it stays under the grab point,
// clamped to the manager's margins. Maximized windows never move; the
// motion is swallowed. Idle moves are ignored, and a target that left
// the open set mid-drag (minimized or closed from the keyboard) ends
// the drag instead of dragging a ghost.
func (d *Drag) Move(x, y int) {
	if !d.active {
		return
	}
	w, ok := d.m.Window(d.targetID)
	if !ok || !d.m.IsOpen(d.targetID) {
		d.Stop()
		return
	}
	if w.Maximized() {
		return
	}

	mg := d.m.margins
	left := x - d.offsetX
	top := y - d.offsetY

	// Upper bounds first so the chrome margins win on tiny viewports.
	if maxLeft := d.m.width - mg.VisibleX; left > maxLeft {
		left = maxLeft
	}
	if maxTop := d.m.height - mg.VisibleY; top > maxTop {
		top = maxTop
	}
	if left < mg.Left {
		left = mg.Left
	}
	if top < mg.Top {
		top = mg.Top
	}

	w.Left = left
	w.Top = top
}

// Stop ends the drag regardless of pointer position.
func (d *Drag) Stop() {
	d.active = false
	d.targetID = ""
	d.offsetX = 0
	d.offsetY = 0
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// TargetID returns the id of the window being dragged, or "" when
// idle.
func (d *Drag) TargetID() string {
	return d.targetID
}
