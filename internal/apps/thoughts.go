package apps

import (
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/deskfolio/deskfolio/internal/theme"
)

var stockThoughts = []string{
	"every sufficiently draggable div is indistinguishable from a window manager",
	"the cascade walks off-screen after five windows. this is called ambition",
	"z-index is just a popularity contest with two contestants",
	"a minimized window is a closed window with good intentions",
	"naming things is hard, so this window is called thoughtsWindow",
	"all state machines dream of being left in a consistent state",
	"the terminal in this desktop has never run a real process and never will",
	"somewhere a browser renders this same desktop with 400 divs",
	"uptime is a love letter you write to nobody",
	"the dock dot is the only honest status indicator in computing",
}

// Thoughts serves one random thought at a time.
type Thoughts struct {
	thoughts []string
	current  int
}

// NewThoughts creates the generator with the stock thought list.
func NewThoughts() *Thoughts {
	return &Thoughts{
		thoughts: stockThoughts,
		current:  rand.IntN(len(stockThoughts)),
	}
}

func (th *Thoughts) ID() string    { return ThoughtsWindow }
func (th *Thoughts) Title() string { return "thoughts" }
func (th *Thoughts) Icon() string  { return "☁" }

// HandleKey reshuffles on the usual "give me another" keys.
func (th *Thoughts) HandleKey(key string) bool {
	switch key {
	case "enter", "space", "r", "n":
		th.Shuffle()
		return true
	}
	return false
}

// Shuffle picks a different thought; serving the same one twice in a
// row would look broken even when the dice were fair.
func (th *Thoughts) Shuffle() {
	if len(th.thoughts) < 2 {
		return
	}
	next := rand.IntN(len(th.thoughts) - 1)
	if next >= th.current {
		next++
	}
	th.current = next
}

// Current returns the thought on display.
func (th *Thoughts) Current() string {
	return th.thoughts[th.current]
}

// View centers the current thought with a refresh hint underneath.
func (th *Thoughts) View(width, height int) string {
	thought := lipgloss.NewStyle().
		Foreground(theme.Foreground()).
		Italic(true).
		Width(width - 4).
		Align(lipgloss.Center).
		Render("“" + th.Current() + "”")

	hint := lipgloss.NewStyle().
		Foreground(theme.Muted()).
		Width(width - 4).
		Align(lipgloss.Center).
		Render("r · another one")

	body := strings.Join([]string{thought, "", hint}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
