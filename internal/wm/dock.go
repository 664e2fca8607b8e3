package wm

// Item is one launcher slot in the dock. Active mirrors whether the
// launcher's window is currently open.
type Item struct {
	WindowID string
	Label    string
	Icon     string
	Active   bool
}

// Dock mirrors the open-window set onto launcher indicators. It keeps
// no state of its own beyond the item list; indicators are recomputed
// from the manager wholesale on every change rather than patched
// incrementally, so they can never drift.
type Dock struct {
	items []Item
}

// NewDock creates a dock with the given launcher items.
func NewDock(items ...Item) *Dock {
	return &Dock{items: items}
}

// WindowsChanged recomputes every indicator: clear them all, then mark
// the ones whose window is in the open set.
func (d *Dock) WindowsChanged(m *Manager) {
	for i := range d.items {
		d.items[i].Active = false
	}
	for i := range d.items {
		if m.IsOpen(d.items[i].WindowID) {
			d.items[i].Active = true
		}
	}
}

// Items returns the launcher slots in dock order.
func (d *Dock) Items() []Item {
	return d.items
}

// Len returns the number of launcher slots.
func (d *Dock) Len() int {
	return len(d.items)
}
