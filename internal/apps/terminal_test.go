package apps

import (
	"strings"
	"testing"

	"github.com/deskfolio/deskfolio/internal/wm"
)

func newShell(t *testing.T) (*wm.Manager, *Terminal) {
	t.Helper()
	m := wm.NewManager(wm.Config{Width: 1000, Height: 800})
	m.Register(TerminalWindow, "terminal", "")
	m.Open(TerminalWindow)
	return m, NewTerminal(m, "guest")
}

func typeLine(term *Terminal, line string) {
	for _, r := range line {
		term.HandleKey(string(r))
	}
	term.HandleKey("enter")
}

func TestTerminalCommands(t *testing.T) {
	tests := []struct {
		cmd  string
		want string // substring expected somewhere in the scrollback
	}{
		{"help", "available commands"},
		{"about", "simulated in your terminal"},
		{"whoami", "guest"},
		{"projects", "deskfolio"},
		{"skills", "go"},
		{"contact", "hello@deskfolio.dev"},
		{"neofetch", "guest@deskfolio"},
		{"blorp", "command not found: blorp"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			_, term := newShell(t)
			typeLine(term, tt.cmd)
			got := strings.Join(term.lines, "\n")
			if !strings.Contains(got, tt.want) {
				t.Errorf("scrollback after %q missing %q:\n%s", tt.cmd, tt.want, got)
			}
		})
	}
}

func TestTerminalClearWipesScrollback(t *testing.T) {
	_, term := newShell(t)
	typeLine(term, "help")
	typeLine(term, "clear")
	if len(term.lines) != 0 {
		t.Errorf("scrollback has %d lines after clear, want 0", len(term.lines))
	}
}

func TestTerminalExitClosesOwnWindow(t *testing.T) {
	m, term := newShell(t)
	typeLine(term, "exit")
	if m.IsOpen(TerminalWindow) {
		t.Error("terminal window still open after exit")
	}
}

func TestTerminalBackspace(t *testing.T) {
	_, term := newShell(t)
	term.HandleKey("h")
	term.HandleKey("j")
	term.HandleKey("backspace")
	term.HandleKey("e")
	term.HandleKey("l")
	term.HandleKey("p")
	if term.input != "help" {
		t.Errorf("input = %q, want help", term.input)
	}
	// Backspacing an empty line stays empty.
	term.HandleKey("enter")
	term.HandleKey("backspace")
	if term.input != "" {
		t.Errorf("input = %q, want empty", term.input)
	}
}

func TestThoughtsShuffleNeverRepeats(t *testing.T) {
	th := NewThoughts()
	for range 50 {
		before := th.Current()
		th.Shuffle()
		if th.Current() == before {
			t.Fatal("shuffle served the same thought twice in a row")
		}
	}
}

func TestFilesSelectionStaysInBounds(t *testing.T) {
	f := NewFiles()
	for range 20 {
		f.HandleKey("up")
	}
	if f.Selected() != "readme.md" {
		t.Errorf("selected = %q, want readme.md at the top", f.Selected())
	}
	for range 20 {
		f.HandleKey("down")
	}
	last := f.Selected()
	f.HandleKey("j")
	if f.Selected() != last {
		t.Error("selection moved past the last entry")
	}
}
