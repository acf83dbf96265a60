package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/i18n"
	"github.com/abhisek/lingo/internal/progress"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/store"
	"github.com/abhisek/lingo/internal/ui/theme"
)

const recentLimit = 5

// statsLoadedMsg carries the event-log aggregates once loaded.
type statsLoadedMsg struct {
	Total   int
	Correct int
	Recent  []store.CompletionRecord
	Err     error
}

// StatsScreen displays lifetime learner statistics.
type StatsScreen struct {
	events store.EventRepo
	prog   *progress.UserProgress

	loaded  bool
	total   int
	correct int
	recent  []store.CompletionRecord
	errMsg  string
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(events store.EventRepo, prog *progress.UserProgress) *StatsScreen {
	return &StatsScreen{events: events, prog: prog}
}

func (s *StatsScreen) Init() tea.Cmd {
	if s.events == nil {
		return func() tea.Msg { return statsLoadedMsg{} }
	}
	return func() tea.Msg {
		ctx := context.Background()
		total, correct, err := s.events.AnswerStats(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		recent, err := s.events.RecentCompletions(ctx, recentLimit)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Total: total, Correct: correct, Recent: recent}
	}
}

func (s *StatsScreen) Title() string {
	return i18n.T("home.stats")
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		s.loaded = true
		if m.Err != nil {
			s.errMsg = m.Err.Error()
			return s, nil
		}
		s.total = m.Total
		s.correct = m.Correct
		s.recent = m.Recent
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	rows := []struct {
		label string
		value string
	}{
		{i18n.T("stats.xp"), fmt.Sprintf("%d", s.prog.XP)},
		{i18n.T("stats.hearts"), fmt.Sprintf("%d", s.prog.Hearts)},
		{i18n.T("stats.streak"), fmt.Sprintf("%d", s.prog.Streak)},
		{i18n.T("stats.lessons_completed"), fmt.Sprintf("%d", s.prog.CompletedCount())},
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("stats unavailable: " + s.errMsg))
		b.WriteString("\n\n")
	} else if s.loaded {
		rows = append(rows, struct {
			label string
			value string
		}{i18n.T("stats.answers"), fmt.Sprintf("%d", s.total)})
		if s.total > 0 {
			rows = append(rows, struct {
				label string
				value string
			}{i18n.T("stats.accuracy"), fmt.Sprintf("%.0f%%", float64(s.correct)/float64(s.total)*100)})
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	for _, r := range rows {
		line := fmt.Sprintf("%s  %s",
			labelStyle.Render(fmt.Sprintf("%24s", r.label)),
			valueStyle.Render(r.value))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if len(s.recent) > 0 {
		b.WriteString("\n")
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 50)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, rec := range s.recent {
			title := rec.LessonID
			if l, err := curriculum.LessonByID(rec.LessonID); err == nil {
				title = l.Title
			}
			line := fmt.Sprintf("  %s  %s  +%d xp",
				rec.Timestamp.Format("Jan 02 15:04"), title, rec.XPDelta)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				labelStyle.Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
