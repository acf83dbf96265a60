package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/ui/theme"
)

// ChoiceList is a selector over a challenge's answer options. It only
// tracks selection; grading happens elsewhere, and the result is shown
// by calling Reveal.
type ChoiceList struct {
	Options  []curriculum.Option
	Selected int

	revealed  bool
	chosenID  string
	correctID string
}

// NewChoiceList creates a selector over the given options.
func NewChoiceList(options []curriculum.Option) ChoiceList {
	return ChoiceList{Options: options}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Selection freezes after Reveal.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// SelectedID returns the ID of the currently highlighted option, or ""
// when there are no options.
func (c ChoiceList) SelectedID() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected].ID
}

// Reveal freezes the selector and marks which option was correct.
func (c *ChoiceList) Reveal(chosenID, correctID string) {
	c.revealed = true
	c.chosenID = chosenID
	c.correctID = correctID
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, opt.ID, opt.Text)

		switch {
		case c.revealed && opt.ID == c.correctID:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case c.revealed && opt.ID == c.chosenID:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case c.revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
