package apps

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/deskfolio/deskfolio/internal/theme"
)

// fileEntry is one item in the browser: a name and the panel shown
// when it is selected. Content is static by design; this is a
// portfolio shelf, not a filesystem.
type fileEntry struct {
	name    string
	content []string
}

// Files is the two-pane portfolio browser: entries on the left, the
// selected entry's panel on the right.
type Files struct {
	entries  []fileEntry
	selected int
}

// NewFiles creates the browser with the stock portfolio shelf.
func NewFiles() *Files {
	return &Files{entries: []fileEntry{
		{
			name: "readme.md",
			content: []string{
				"# hello",
				"",
				"this machine is a portfolio pretending to be",
				"an operating system. everything is draggable,",
				"closable and mostly harmless.",
				"",
				"use j/k or the arrow keys to browse.",
			},
		},
		{
			name: "projects/",
			content: []string{
				"deskfolio/   the desktop you are using right now",
				"driftqueue/  file-backed job queue, at-least-once",
				"hexgrid/     pathfinding over hexagonal maps",
				"attic/       everything that seemed clever at 2am",
			},
		},
		{
			name: "resume.txt",
			content: []string{
				"software engineer, systems side of the menu.",
				"",
				"likes: boring tech, fast feedback loops,",
				"deleting code.",
				"dislikes: untested state machines (see wm/).",
			},
		},
		{
			name: "wallpapers/",
			content: []string{
				"gradient-01.png     (in use)",
				"gradient-02.png",
				"definitely-not-a-rickroll.png",
			},
		},
	}}
}

func (f *Files) ID() string    { return FilesWindow }
func (f *Files) Title() string { return "files" }
func (f *Files) Icon() string  { return "🗁" }

// HandleKey moves the sidebar selection.
func (f *Files) HandleKey(key string) bool {
	switch key {
	case "up", "k":
		if f.selected > 0 {
			f.selected--
		}
		return true
	case "down", "j":
		if f.selected < len(f.entries)-1 {
			f.selected++
		}
		return true
	}
	return false
}

// Selected returns the name of the selected entry.
func (f *Files) Selected() string {
	return f.entries[f.selected].name
}

// View renders the sidebar and the selected content panel side by
// side.
func (f *Files) View(width, height int) string {
	sidebarWidth := 16
	if width < sidebarWidth+8 {
		sidebarWidth = width / 2
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(theme.Background()).
		Background(theme.Accent()).
		Width(sidebarWidth - 1)
	plainStyle := lipgloss.NewStyle().
		Foreground(theme.Foreground()).
		Width(sidebarWidth - 1)

	var side []string
	for i, e := range f.entries {
		if i == f.selected {
			side = append(side, selectedStyle.Render(" "+e.name))
		} else {
			side = append(side, plainStyle.Render(" "+e.name))
		}
	}
	sidebar := lipgloss.NewStyle().
		Height(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Muted()).
		Render(strings.Join(side, "\n"))

	content := lipgloss.NewStyle().
		Padding(0, 1).
		Width(width - sidebarWidth).
		Render(strings.Join(clampLines(f.entries[f.selected].content, height), "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
}
