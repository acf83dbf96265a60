package lesson

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/i18n"
	sess "github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.finished {
		return ""
	}
	if s.state.ContentErr != nil {
		return s.renderContentError(width)
	}
	if s.state.Status != sess.StatusUnanswered {
		return s.renderFeedback(width)
	}
	return s.renderChallenge(width)
}

// renderChallenge renders the active challenge with the progress bar.
func (s *LessonScreen) renderChallenge(width int) string {
	cur, ok := s.state.Queue.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	bar := components.NewProgressBar("", sess.Percent(s.state), true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if cur.IsRetry {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("↻ one more try"))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(cur.Question))
	b.WriteString("\n\n")

	switch cur.Type {
	case curriculum.TypeFillBlank:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.blanks.View()))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	}

	return b.String()
}

// renderFeedback renders the result overlay after a graded submission.
func (s *LessonScreen) renderFeedback(width int) string {
	cur, _ := s.state.Queue.Current()

	var b strings.Builder
	b.WriteString("\n\n")

	if s.state.Status == sess.StatusCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(i18n.T("lesson.correct")))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(i18n.T("lesson.incorrect")))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(i18n.Td("lesson.correct_answer_was", map[string]any{
				"Answer": displayAnswer(cur),
			})))
	}
	b.WriteString("\n\n")

	// Answered input, frozen with the reveal highlight.
	switch cur.Type {
	case curriculum.TypeFillBlank:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.blanks.View()))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	}
	b.WriteString("\n")

	if cur.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(cur.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderContentError renders the skip prompt for a malformed challenge.
func (s *LessonScreen) renderContentError(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(i18n.T("lesson.content_error")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[S] " + i18n.T("lesson.skip")))

	return b.String()
}

// renderQuitConfirm renders the leave-lesson dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(i18n.T("lesson.quit_confirm")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Keep going"))

	return b.String()
}

// displayAnswer renders the authored key in a human-readable form.
func displayAnswer(c curriculum.Challenge) string {
	if c.Type == curriculum.TypeFillBlank {
		return strings.Join(c.AnswerKey(), ", ")
	}
	for _, opt := range c.Options {
		if opt.ID == c.CorrectAnswer || opt.Text == c.CorrectAnswer {
			return opt.Text
		}
	}
	return c.CorrectAnswer
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
