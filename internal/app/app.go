package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/feedback"
	"github.com/abhisek/lingo/internal/i18n"
	"github.com/abhisek/lingo/internal/progress"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/screens/home"
	"github.com/abhisek/lingo/internal/screens/lesson"
	"github.com/abhisek/lingo/internal/store"
	"github.com/abhisek/lingo/internal/ui/layout"
)

// Options configures a Run.
type Options struct {
	// DBPath is the SQLite file backing the event log. Empty means
	// store.DefaultDBPath.
	DBPath string

	// UILang selects the interface language. Empty means English.
	UILang string

	// AutoStart opens the next unlocked lesson immediately instead of
	// landing on the home menu.
	AutoStart bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	prog    *progress.UserProgress
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen. With
// autoStart, the next unlocked lesson is pushed on top of it.
func newAppModel(events store.EventRepo, snaps store.SnapshotRepo, prog *progress.UserProgress, emitter feedback.Emitter, autoStart bool) AppModel {
	homeScreen := home.New(events, snaps, prog, emitter)
	m := AppModel{
		router: router.New(homeScreen),
		prog:   prog,
	}

	if autoStart {
		units := curriculum.Recompute(curriculum.Units(), prog.CompletedLessonIDs)
		if next, ok := curriculum.NextLesson(units, prog.CompletedLessonIDs); ok {
			m.initCmd = m.router.Push(lesson.New(next, events, snaps, prog, emitter))
		}
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// The lesson screen intercepts esc for its quit confirm;
			// everywhere else it navigates back.
			if m.router.Depth() > 1 && !activeHandlesEsc(m.router.Active()) {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escHandler is implemented by screens that consume esc themselves.
type escHandler interface {
	HandlesEsc() bool
}

func activeHandlesEsc(s screen.Screen) bool {
	if h, ok := s.(escHandler); ok {
		return h.HandlesEsc()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := layout.HeaderStats{
		XP:     m.prog.XP,
		Hearts: m.prog.Hearts,
		Streak: m.prog.Streak,
	}
	header := layout.RenderHeader(title, stats, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run loads content and learner state, then starts the Bubble Tea
// program.
func Run(opts Options) error {
	if err := curriculum.Load(); err != nil {
		return fmt.Errorf("load course: %w", err)
	}

	lang := opts.UILang
	if lang == "" {
		lang = "en"
	}
	if err := i18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()
	snaps := st.SnapshotRepo()

	prog := restoreProgress(snaps)
	emitter := feedback.NewTerminalEmitter(os.Stdout)

	p := tea.NewProgram(newAppModel(events, snaps, prog, emitter, opts.AutoStart))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// restoreProgress loads the latest snapshot, falling back to a fresh
// learner when none exists or the read fails.
func restoreProgress(snaps store.SnapshotRepo) *progress.UserProgress {
	snap, err := snaps.Latest(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load snapshot failed: %v\n", err)
		return progress.New()
	}
	if snap == nil {
		return progress.New()
	}
	return progress.FromData(snap.Data.Progress)
}
