package coursemap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/feedback"
	"github.com/abhisek/lingo/internal/i18n"
	"github.com/abhisek/lingo/internal/progress"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	lessonscreen "github.com/abhisek/lingo/internal/screens/lesson"
	"github.com/abhisek/lingo/internal/store"
	"github.com/abhisek/lingo/internal/ui/layout"
	"github.com/abhisek/lingo/internal/ui/theme"
)

type rowKind int

const (
	rowUnitHeader rowKind = iota
	rowLesson
)

type row struct {
	kind   rowKind
	unit   curriculum.Unit
	lesson curriculum.Lesson
}

// CourseMapScreen displays the course organized by unit, with lock and
// completion markers derived from learner progress.
type CourseMapScreen struct {
	rows         []row
	cursor       int
	scrollOffset int

	events  store.EventRepo
	snaps   store.SnapshotRepo
	prog    *progress.UserProgress
	emitter feedback.Emitter
}

var _ screen.Screen = (*CourseMapScreen)(nil)
var _ screen.KeyHintProvider = (*CourseMapScreen)(nil)

// New creates a CourseMapScreen from the embedded course and the
// learner's completed set.
func New(events store.EventRepo, snaps store.SnapshotRepo, prog *progress.UserProgress, emitter feedback.Emitter) *CourseMapScreen {
	units := curriculum.Recompute(curriculum.Units(), prog.CompletedLessonIDs)

	var rows []row
	for _, u := range units {
		rows = append(rows, row{kind: rowUnitHeader, unit: u})
		for _, l := range u.Lessons {
			rows = append(rows, row{kind: rowLesson, unit: u, lesson: l})
		}
	}

	s := &CourseMapScreen{
		rows:    rows,
		events:  events,
		snaps:   snaps,
		prog:    prog,
		emitter: emitter,
	}

	// Start the cursor on the first unlocked, uncompleted lesson.
	for i, r := range s.rows {
		if r.kind == rowLesson && !r.lesson.Locked && !r.lesson.Completed {
			s.cursor = i
			return s
		}
	}
	for i, r := range s.rows {
		if r.kind == rowLesson {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *CourseMapScreen) Init() tea.Cmd {
	return nil
}

func (s *CourseMapScreen) Title() string {
	return curriculum.Title()
}

func (s *CourseMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CourseMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.startLesson()
		}
	}
	return s, nil
}

func (s *CourseMapScreen) moveCursor(delta int) {
	i := s.cursor + delta
	for i >= 0 && i < len(s.rows) {
		if s.rows[i].kind == rowLesson {
			s.cursor = i
			return
		}
		i += delta
	}
}

// startLesson pushes the lesson screen for the selected row. Locked
// lessons are not startable.
func (s *CourseMapScreen) startLesson() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	r := s.rows[s.cursor]
	if r.kind != rowLesson || r.lesson.Locked {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: lessonscreen.New(r.lesson, s.events, s.snaps, s.prog, s.emitter),
		}
	}
}

func (s *CourseMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowUnitHeader:
			lines = append(lines, renderUnitHeader(r.unit, width))
		case rowLesson:
			lines = append(lines, renderLessonRow(r.lesson, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *CourseMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func renderUnitHeader(u curriculum.Unit, width int) string {
	label := "  " + strings.ToUpper(u.Title) + " "
	rule := strings.Repeat("─", max(width-lipgloss.Width(label)-4, 0))
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(label) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(rule)
}

func renderLessonRow(l curriculum.Lesson, selected bool, width int) string {
	var marker string
	var style lipgloss.Style

	switch {
	case l.Completed:
		marker = "●"
		style = lipgloss.NewStyle().Foreground(theme.Success)
	case l.Locked:
		marker = "🔒"
		style = theme.Locked
	default:
		marker = "○"
		style = lipgloss.NewStyle().Foreground(theme.Text)
	}

	prefix := "    "
	if selected {
		prefix = "  ▸ "
		style = style.Bold(true)
		if !l.Locked {
			style = style.Foreground(theme.Primary)
		}
	}

	line := fmt.Sprintf("%s%s %s", prefix, marker, l.Title)
	if l.Completed {
		line += "  " + i18n.T("map.completed")
	} else if l.Locked {
		line += "  " + i18n.T("map.locked")
	}
	return style.Render(line)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
