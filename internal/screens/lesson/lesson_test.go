package lesson

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/feedback"
	"github.com/abhisek/lingo/internal/progress"
	"github.com/abhisek/lingo/internal/screen"
	sess "github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answers     []store.AnswerEventData
	completions []store.CompletionEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) AppendCompletion(_ context.Context, data store.CompletionEventData) error {
	m.completions = append(m.completions, data)
	return nil
}
func (m *mockEventRepo) AnswerStats(_ context.Context) (int, int, error) {
	return len(m.answers), 0, nil
}
func (m *mockEventRepo) RecentCompletions(_ context.Context, _ int) ([]store.CompletionRecord, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	saved []store.SnapshotData
}

func (m *mockSnapshotRepo) Save(_ context.Context, data store.SnapshotData) error {
	m.saved = append(m.saved, data)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return nil, nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLesson() curriculum.Lesson {
	return curriculum.Lesson{
		ID:    "lesson-test",
		Title: "Test lesson",
		Challenges: []curriculum.Challenge{
			{
				ID:       "c1",
				Type:     curriculum.TypeMultipleChoice,
				Question: "How do you say hello?",
				Options: []curriculum.Option{
					{ID: "a", Text: "hola"},
					{ID: "b", Text: "adiós"},
				},
				CorrectAnswer: "a",
			},
		},
	}
}

func testLessonScreen() (*LessonScreen, *mockEventRepo, *mockSnapshotRepo) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	s := New(testLesson(), events, snaps, progress.New(), feedback.Nop{})
	s.Init()
	return s, events, snaps
}

// drain executes a command tree, feeding resulting messages back into
// the screen until no commands remain.
func drain(t *testing.T, scr screen.Screen, cmd tea.Cmd) screen.Screen {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return scr
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				scr = drain(t, scr, c)
			}
			return scr
		}
		scr, cmd = scr.Update(msg)
	}
	return scr
}

func TestTitle(t *testing.T) {
	s, _, _ := testLessonScreen()
	if s.Title() != "Test lesson" {
		t.Errorf("Title = %q, want %q", s.Title(), "Test lesson")
	}
}

func TestQuitConfirmDismiss(t *testing.T) {
	s, _, _ := testLessonScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ls := scr.(*LessonScreen)
	if !ls.showingQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = ls.Update(keyPress('n'))
	ls = scr.(*LessonScreen)
	if ls.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestQuitConfirmLeave(t *testing.T) {
	s, _, _ := testLessonScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	s, events, _ := testLessonScreen()

	// Default selection is the first option, which is correct.
	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ls := scr.(*LessonScreen)

	if ls.state.Status != sess.StatusCorrect {
		t.Errorf("status = %v, want correct", ls.state.Status)
	}

	drain(t, ls, cmd)
	if len(events.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answers))
	}
	if !events.answers[0].Correct {
		t.Error("expected answer event marked correct")
	}
	if events.answers[0].Submission != "a" {
		t.Errorf("submission = %q, want %q", events.answers[0].Submission, "a")
	}
}

func TestSubmitWrongAnswerQueuesRetry(t *testing.T) {
	s, _, _ := testLessonScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j')) // move to wrong option
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ls := scr.(*LessonScreen)

	if ls.state.Status != sess.StatusIncorrect {
		t.Fatalf("status = %v, want incorrect", ls.state.Status)
	}

	// Dismiss feedback: the missed challenge re-queues.
	scr, _ = ls.Update(keyPress(' '))
	ls = scr.(*LessonScreen)

	if ls.state.Completed {
		t.Error("session should not complete with a pending retry")
	}
	cur, ok := ls.state.Queue.Current()
	if !ok {
		t.Fatal("expected a current challenge after advance")
	}
	if !cur.IsRetry {
		t.Error("expected the retry copy to be served")
	}
}

func TestCompletionFlow(t *testing.T) {
	s, events, snaps := testLessonScreen()

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr = drain(t, scr, cmd)

	// Dismiss feedback; the one-challenge lesson is exhausted.
	scr, cmd = scr.Update(keyPress(' '))
	scr = drain(t, scr, cmd)
	ls := scr.(*LessonScreen)

	if !ls.state.Completed {
		t.Fatal("expected completed session")
	}
	if ls.prog.XP != sess.XPReward {
		t.Errorf("xp = %d, want %d", ls.prog.XP, sess.XPReward)
	}
	if !ls.prog.Completed("lesson-test") {
		t.Error("expected lesson recorded as completed")
	}
	if len(events.completions) != 1 {
		t.Errorf("completion events = %d, want 1", len(events.completions))
	}
	if len(snaps.saved) != 1 {
		t.Fatalf("snapshots saved = %d, want 1", len(snaps.saved))
	}
	if snaps.saved[0].Progress.XP != sess.XPReward {
		t.Errorf("snapshot xp = %d, want %d", snaps.saved[0].Progress.XP, sess.XPReward)
	}
}

func TestViewNonEmpty(t *testing.T) {
	s, _, _ := testLessonScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty challenge view")
	}
}
