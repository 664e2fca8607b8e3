// Package apps holds the desktop's content applications: the fake
// terminal, the file browser, the thought generator, the stats panel
// and the about page. Apps only render strings and react to keys; all
// window state lives in the window manager, which apps reach solely
// through its public operations.
package apps

// App renders the content of one window.
type App interface {
	// ID is the window id this app renders into.
	ID() string
	Title() string
	Icon() string
	// View renders the app's content for a width x height content area.
	View(width, height int) string
	// HandleKey lets the frontmost app consume a key press. It returns
	// true when the key was consumed.
	HandleKey(key string) bool
}

// Window ids. One per application type; the window manager enforces a
// single instance of each.
const (
	TerminalWindow = "terminalWindow"
	FilesWindow    = "filesWindow"
	ThoughtsWindow = "thoughtsWindow"
	StatsWindow    = "statsWindow"
	AboutWindow    = "aboutWindow"
)

// clampLines cuts a slice of rendered lines down to the last height
// entries, the usual scroll-to-bottom behavior for terminal-like
// content.
func clampLines(lines []string, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) > height {
		return lines[len(lines)-height:]
	}
	return lines
}
