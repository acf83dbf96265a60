package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/ui/theme"
)

// BlankInputs is a row of text inputs, one per blank in a fill-blank
// challenge. Tab and shift+tab move focus between blanks.
type BlankInputs struct {
	inputs  []textinput.Model
	focused int

	revealed bool
	correct  bool
}

// NewBlankInputs creates n focused-in-order text inputs.
func NewBlankInputs(n int) BlankInputs {
	inputs := make([]textinput.Model, n)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = "…"
		ti.CharLimit = 64
		inputs[i] = ti
	}
	b := BlankInputs{inputs: inputs}
	if n > 0 {
		b.inputs[0].Focus()
	}
	return b
}

// Init focuses the first blank.
func (b BlankInputs) Init() tea.Cmd {
	if len(b.inputs) == 0 {
		return nil
	}
	return b.inputs[0].Focus()
}

// Update handles focus movement and forwards typing to the focused blank.
func (b BlankInputs) Update(msg tea.Msg) (BlankInputs, tea.Cmd) {
	if b.revealed || len(b.inputs) == 0 {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			return b.focusIndex((b.focused + 1) % len(b.inputs)), nil
		case "shift+tab":
			return b.focusIndex((b.focused - 1 + len(b.inputs)) % len(b.inputs)), nil
		}
	}

	var cmd tea.Cmd
	b.inputs[b.focused], cmd = b.inputs[b.focused].Update(msg)
	return b, cmd
}

func (b BlankInputs) focusIndex(i int) BlankInputs {
	b.inputs[b.focused].Blur()
	b.focused = i
	b.inputs[b.focused].Focus()
	return b
}

// Values returns the current text of every blank, in order.
func (b BlankInputs) Values() []string {
	vals := make([]string, len(b.inputs))
	for i, ti := range b.inputs {
		vals[i] = ti.Value()
	}
	return vals
}

// Filled reports whether every blank has non-whitespace content.
func (b BlankInputs) Filled() bool {
	for _, ti := range b.inputs {
		if strings.TrimSpace(ti.Value()) == "" {
			return false
		}
	}
	return len(b.inputs) > 0
}

// Reveal freezes the inputs and records the grading result for display.
func (b *BlankInputs) Reveal(correct bool) {
	b.revealed = true
	b.correct = correct
	for i := range b.inputs {
		b.inputs[i].Blur()
	}
}

// View renders the blanks side by side.
func (b BlankInputs) View() string {
	parts := make([]string, 0, len(b.inputs))
	for _, ti := range b.inputs {
		parts = append(parts, ti.View())
	}
	view := strings.Join(parts, "   ")

	if b.revealed {
		if b.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}
