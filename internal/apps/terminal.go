package apps

import (
	"fmt"
	"runtime"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/deskfolio/deskfolio/internal/theme"
	"github.com/deskfolio/deskfolio/internal/wm"
)

// Terminal is the fake shell. It knows a fixed command table and keeps
// a scrollback of plain strings; there is no PTY and no process behind
// it. The only window operation it performs is closing its own window
// on exit.
type Terminal struct {
	manager *wm.Manager
	owner   string
	lines   []string
	input   string
}

// NewTerminal creates the fake shell for the given portfolio owner.
func NewTerminal(manager *wm.Manager, owner string) *Terminal {
	t := &Terminal{manager: manager, owner: owner}
	t.lines = []string{
		fmt.Sprintf("deskfolio sh — welcome, %s", owner),
		`type "help" for the command list`,
		"",
	}
	return t
}

func (t *Terminal) ID() string    { return TerminalWindow }
func (t *Terminal) Title() string { return "terminal" }
func (t *Terminal) Icon() string  { return ">_" }

// HandleKey implements line editing: printable runes append, backspace
// deletes, enter runs the command.
func (t *Terminal) HandleKey(key string) bool {
	switch key {
	case "enter":
		t.run(strings.TrimSpace(t.input))
		t.input = ""
		return true
	case "backspace":
		if t.input != "" {
			t.input = t.input[:len(t.input)-1]
		}
		return true
	case "space":
		t.input += " "
		return true
	default:
		// Single printable runes only; navigation chords fall through
		// to the desktop.
		if len([]rune(key)) == 1 {
			t.input += key
			return true
		}
	}
	return false
}

func (t *Terminal) echo(lines ...string) {
	t.lines = append(t.lines, lines...)
}

func (t *Terminal) run(cmd string) {
	t.echo(t.prompt() + cmd)
	switch cmd {
	case "":
	case "help":
		t.echo(
			"available commands:",
			"  help       this list",
			"  about      a few words about this desktop",
			"  whoami     who owns this desktop",
			"  projects   selected work",
			"  skills     tools of the trade",
			"  contact    where to find me",
			"  neofetch   obligatory system card",
			"  clear      wipe the scrollback",
			"  exit       close this window",
			"",
		)
	case "about":
		t.echo(
			t.owner+"'s desktop, simulated in your terminal.",
			"windows drag, the dock works, nothing is real.",
			"",
		)
	case "whoami":
		t.echo(t.owner, "")
	case "projects":
		t.echo(
			"deskfolio     this desktop, the one you're poking at",
			"driftqueue    at-least-once job queue on plain files",
			"hexgrid       tiny hex-map pathfinding library",
			"",
		)
	case "skills":
		t.echo(
			"go, typescript, sql, a dangerous amount of shell",
			"distributed plumbing, terminals, build tooling",
			"",
		)
	case "contact":
		t.echo(
			"mail   hello@deskfolio.dev",
			"git    github.com/deskfolio",
			"",
		)
	case "neofetch":
		t.echo(
			"        ___        "+t.owner+"@deskfolio",
			"       (.. |       ---------------",
			"       (<> |       os: deskfolio (simulated)",
			"      / __  \\      host: "+runtime.GOOS+"/"+runtime.GOARCH,
			"     ( /  \\ /|     shell: deskfolio sh",
			"    _/\\ __)/_)     wm: deskfolio wm (floating)",
			"    \\/-____\\/      terminal: yes, it would appear so",
			"",
		)
	case "clear":
		t.lines = t.lines[:0]
	case "exit":
		t.manager.Close(TerminalWindow)
	default:
		t.echo(fmt.Sprintf("sh: command not found: %s", cmd), "")
	}
}

func (t *Terminal) prompt() string {
	return t.owner + "@deskfolio:~$ "
}

// View renders the scrollback plus the live prompt line, clipped to
// the content area from the bottom like a real terminal.
func (t *Terminal) View(width, height int) string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Prompt())
	live := promptStyle.Render(t.prompt()) + t.input + "█"

	lines := make([]string, 0, len(t.lines)+1)
	for _, l := range t.lines {
		if lipgloss.Width(l) > width {
			l = lipgloss.NewStyle().MaxWidth(width).Render(l)
		}
		lines = append(lines, l)
	}
	lines = append(lines, live)
	return strings.Join(clampLines(lines, height), "\n")
}
