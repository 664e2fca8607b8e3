package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/deskfolio/deskfolio/internal/app"
	"github.com/deskfolio/deskfolio/internal/config"
)

// newLockedDesktop builds a desktop with the stock config, which locks
// on start.
func newLockedDesktop(t *testing.T) *app.Desktop {
	t.Helper()
	d := app.NewDesktop(config.DefaultConfig(), nil)
	d.Resize(120, 40)
	if !d.Locked {
		t.Fatal("desktop did not start locked")
	}
	return d
}

func TestLockScreenUnlocksOnEnter(t *testing.T) {
	d := newLockedDesktop(t)
	handleKey(tea.KeyPressMsg{Code: tea.KeyEnter}, d)
	if d.Locked {
		t.Error("enter did not unlock the desktop")
	}
}

func TestLockScreenUnlocksOnClick(t *testing.T) {
	d := newLockedDesktop(t)
	handleMouseClick(tea.MouseClickMsg{X: 10, Y: 10, Button: tea.MouseLeft}, d)
	if d.Locked {
		t.Fatal("click did not unlock the desktop")
	}
	// The unlocking click is swallowed; it must not reach whatever sits
	// under the lock screen.
	if d.WM.OpenCount() != 0 {
		t.Errorf("unlock click opened %d windows", d.WM.OpenCount())
	}
}

func TestLockScreenIgnoresOtherInput(t *testing.T) {
	d := newLockedDesktop(t)

	handleKey(tea.KeyPressMsg{Code: 'q', Text: "q"}, d)
	if !d.Locked {
		t.Error("letter key unlocked the desktop")
	}

	handleMouseClick(tea.MouseClickMsg{X: 10, Y: 10, Button: tea.MouseRight}, d)
	if !d.Locked {
		t.Error("right click unlocked the desktop")
	}
}
