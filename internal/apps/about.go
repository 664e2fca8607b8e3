package apps

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/deskfolio/deskfolio/internal/theme"
)

// About is the static bio panel.
type About struct {
	owner   string
	tagline string
}

// NewAbout creates the bio panel for the configured owner.
func NewAbout(owner, tagline string) *About {
	return &About{owner: owner, tagline: tagline}
}

func (a *About) ID() string    { return AboutWindow }
func (a *About) Title() string { return "about" }
func (a *About) Icon() string  { return "☻" }

func (a *About) HandleKey(string) bool { return false }

// View renders the bio.
func (a *About) View(width, height int) string {
	name := lipgloss.NewStyle().
		Foreground(theme.Accent()).
		Bold(true).
		Render(a.owner)
	tagline := lipgloss.NewStyle().
		Foreground(theme.Muted()).
		Italic(true).
		Render(a.tagline)

	body := strings.Join([]string{
		name,
		tagline,
		"",
		"I build small, stubborn systems and the tools",
		"around them. This desktop is what happens when",
		"a portfolio page reads too many window manager",
		"papers.",
		"",
		"Open the terminal and type help to look around.",
	}, "\n")

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(width).Render(body)
}
