package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/feedback"
	"github.com/abhisek/lingo/internal/i18n"
	"github.com/abhisek/lingo/internal/progress"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/screens/coursemap"
	lessonscreen "github.com/abhisek/lingo/internal/screens/lesson"
	"github.com/abhisek/lingo/internal/screens/stats"
	"github.com/abhisek/lingo/internal/store"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
	prog *progress.UserProgress
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(events store.EventRepo, snaps store.SnapshotRepo, prog *progress.UserProgress, emitter feedback.Emitter) *HomeScreen {
	items := []components.MenuItem{
		{Label: i18n.T("home.learn"), Action: func() tea.Cmd {
			units := curriculum.Recompute(curriculum.Units(), prog.CompletedLessonIDs)
			next, ok := curriculum.NextLesson(units, prog.CompletedLessonIDs)
			if !ok {
				// Everything completed: fall back to the map for replays.
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: coursemap.New(events, snaps, prog, emitter),
					}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: lessonscreen.New(next, events, snaps, prog, emitter),
				}
			}
		}},
		{Label: i18n.T("home.map"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: coursemap.New(events, snaps, prog, emitter),
				}
			}
		}},
		{Label: i18n.T("home.stats"), Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(events, prog)}
			}
		}},
		{Label: i18n.T("home.quit"), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		prog: prog,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(curriculum.Title()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(i18n.T("home.tagline")))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
