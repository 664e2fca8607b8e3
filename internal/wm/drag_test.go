package wm

import "testing"

func newDragManager() (*Manager, *Drag) {
	m := NewManager(Config{Width: 1000, Height: 800})
	m.Register("filesWindow", "Files", "")
	m.Register("statsWindow", "Stats", "")
	return m, NewDrag(m)
}

func TestDragMovesWindowUnderGrabPoint(t *testing.T) {
	m, d := newDragManager()
	m.Open("filesWindow")
	w, _ := m.Window("filesWindow")
	// Placed at (200,80); grab 10 units into the title bar.
	d.Start("filesWindow", w.Left+10, w.Top+2)

	if !d.Active() {
		t.Fatal("drag did not start")
	}
	if d.TargetID() != "filesWindow" {
		t.Fatalf("target = %q, want filesWindow", d.TargetID())
	}

	d.Move(510, 302)
	if w.Left != 500 || w.Top != 300 {
		t.Errorf("position = (%d,%d), want (500,300)", w.Left, w.Top)
	}

	d.Stop()
	if d.Active() || d.TargetID() != "" {
		t.Error("drag still active after stop")
	}

	// Motion after stop must not move anything.
	d.Move(0, 0)
	if w.Left != 500 || w.Top != 300 {
		t.Errorf("idle motion moved window to (%d,%d)", w.Left, w.Top)
	}
}

func TestDragStartPromotesTarget(t *testing.T) {
	m, d := newDragManager()
	m.Open("filesWindow")
	m.Open("statsWindow")

	files, _ := m.Window("filesWindow")
	d.Start("filesWindow", files.Left+1, files.Top)

	if m.Frontmost() != "filesWindow" {
		t.Errorf("frontmost = %q, want filesWindow", m.Frontmost())
	}
}

func TestDragClampsToMargins(t *testing.T) {
	tests := []struct {
		name     string
		pointerX int
		pointerY int
		wantLeft int
		wantTop  int
	}{
		{"pointer at origin", 0, 0, 70, 28},
		{"negative pointer", -40, -40, 70, 28},
		{"past right edge", 5000, 100, 900, 100},  // width - VisibleX
		{"past bottom edge", 100, 5000, 100, 750}, // height - VisibleY
		{"far corner", 5000, 5000, 900, 750},
		{"inside bounds", 400, 300, 400, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, d := newDragManager()
			m.Open("filesWindow")
			w, _ := m.Window("filesWindow")

			// Grab exactly at the corner so grab offset is (0,0).
			d.Start("filesWindow", w.Left, w.Top)
			d.Move(tt.pointerX, tt.pointerY)

			if w.Left != tt.wantLeft || w.Top != tt.wantTop {
				t.Errorf("position = (%d,%d), want (%d,%d)",
					w.Left, w.Top, tt.wantLeft, tt.wantTop)
			}
		})
	}
}

func TestDragIgnoresMaximizedWindow(t *testing.T) {
	m, d := newDragManager()
	m.Open("statsWindow")
	w, _ := m.Window("statsWindow")
	before := w.Geometry

	m.ToggleMaximize("statsWindow")
	d.Start("statsWindow", w.Left, w.Top)
	d.Move(500, 500)

	if w.Geometry != before {
		t.Errorf("maximized window moved: %+v -> %+v", before, w.Geometry)
	}

	// Restore afterwards: geometry is exactly the pre-maximize value.
	m.ToggleMaximize("statsWindow")
	if w.Geometry != before {
		t.Errorf("restore lost geometry: %+v, want %+v", w.Geometry, before)
	}
}

func TestDragOnClosedOrUnknownWindowIsNoop(t *testing.T) {
	m, d := newDragManager()
	m.Open("filesWindow")
	m.Close("filesWindow")

	d.Start("filesWindow", 0, 0)
	if d.Active() {
		t.Error("drag started on closed window")
	}

	d.Start("bogus", 0, 0)
	if d.Active() {
		t.Error("drag started on unknown window")
	}
}

func TestDragEndsWhenTargetLeavesOpenSet(t *testing.T) {
	m, d := newDragManager()
	m.Open("filesWindow")
	w, _ := m.Window("filesWindow")

	d.Start("filesWindow", w.Left, w.Top)
	m.Minimize("filesWindow")
	before := w.Geometry

	// The target went away mid-drag; motion must end the drag instead
	// of steering a window that is no longer on the desktop.
	d.Move(500, 300)
	if d.Active() {
		t.Error("drag still active after target was minimized")
	}
	if w.Geometry != before {
		t.Errorf("minimized window moved: %+v -> %+v", before, w.Geometry)
	}
}

func TestCustomMarginsBoundDrag(t *testing.T) {
	m := NewManager(Config{
		Width:   120,
		Height:  40,
		Margins: Margins{Left: 0, Top: 1, VisibleX: 10, VisibleY: 2},
	})
	m.Register("filesWindow", "Files", "")
	m.Open("filesWindow")
	w, _ := m.Window("filesWindow")
	d := NewDrag(m)

	d.Start("filesWindow", w.Left, w.Top)
	d.Move(-50, -50)
	if w.Left != 0 || w.Top != 1 {
		t.Errorf("position = (%d,%d), want (0,1)", w.Left, w.Top)
	}

	d.Move(500, 500)
	if w.Left != 110 || w.Top != 38 {
		t.Errorf("position = (%d,%d), want (110,38)", w.Left, w.Top)
	}
}
