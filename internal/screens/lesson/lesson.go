package lesson

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/text/language"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/feedback"
	"github.com/abhisek/lingo/internal/grader"
	"github.com/abhisek/lingo/internal/i18n"
	"github.com/abhisek/lingo/internal/progress"
	"github.com/abhisek/lingo/internal/router"
	"github.com/abhisek/lingo/internal/screen"
	"github.com/abhisek/lingo/internal/screens/summary"
	sess "github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/store"
	"github.com/abhisek/lingo/internal/ui/components"
	"github.com/abhisek/lingo/internal/ui/layout"
)

// snapshotsToKeep bounds the snapshot table; older rows are pruned
// after each save.
const snapshotsToKeep = 20

// LessonScreen drives one lesson attempt from first challenge to the
// summary handoff.
type LessonScreen struct {
	lesson  curriculum.Lesson
	state   *sess.State
	events  store.EventRepo
	snaps   store.SnapshotRepo
	prog    *progress.UserProgress
	emitter feedback.Emitter

	choice components.ChoiceList
	blanks components.BlankInputs

	challengeStart     time.Time
	showingQuitConfirm bool
	finished           bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for the given lesson.
func New(lesson curriculum.Lesson, events store.EventRepo, snaps store.SnapshotRepo, prog *progress.UserProgress, emitter feedback.Emitter) *LessonScreen {
	tag, err := language.Parse(curriculum.Lang())
	if err != nil {
		tag = language.English
	}

	return &LessonScreen{
		lesson:  lesson,
		state:   sess.New(lesson, grader.DefaultSynonyms(tag)),
		events:  events,
		snaps:   snaps,
		prog:    prog,
		emitter: emitter,
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	if s.state.Completed {
		// Lesson with no challenges completes on open.
		return s.finish()
	}
	return s.setupChallenge()
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

// HandlesEsc tells the app shell not to treat esc as back navigation;
// the lesson shows its own quit confirmation instead.
func (s *LessonScreen) HandlesEsc() bool {
	return true
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Stay"},
		}
	case s.state.ContentErr != nil:
		return []layout.KeyHint{
			{Key: "S", Description: i18n.T("lesson.skip")},
			{Key: "Esc", Description: "Quit"},
		}
	case s.state.Status != sess.StatusUnanswered:
		return []layout.KeyHint{
			{Key: "any key", Description: i18n.T("lesson.continue")},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: i18n.T("lesson.check")},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case completionMsg:
		return s.handleCompletion(msg)

	case persistFailedMsg:
		fmt.Fprintf(os.Stderr, "warning: event write failed: %v\n", msg.Err)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.finished {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	// Feedback overlay — any key advances.
	if s.state.Status != sess.StatusUnanswered {
		if sess.Advance(s.state) {
			return s, s.finish()
		}
		return s, s.setupChallenge()
	}

	// Unanswerable challenge — skip is the only way forward.
	if s.state.ContentErr != nil {
		switch key {
		case "s", "S", "enter":
			if sess.Skip(s.state) {
				return s, s.finish()
			}
			return s, s.setupChallenge()
		case "esc":
			s.showingQuitConfirm = true
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	}

	return s.forwardToInput(msg)
}

// forwardToInput routes a message to the active answer component.
func (s *LessonScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.finished || s.state.Status != sess.StatusUnanswered || s.state.ContentErr != nil {
		return s, nil
	}
	cur, ok := s.state.Queue.Current()
	if !ok {
		return s, nil
	}

	var cmd tea.Cmd
	switch cur.Type {
	case curriculum.TypeFillBlank:
		s.blanks, cmd = s.blanks.Update(msg)
	default:
		s.choice, cmd = s.choice.Update(msg)
	}
	return s, cmd
}

// submit grades the current input. A submission that is incomplete for
// its challenge type is ignored.
func (s *LessonScreen) submit() (screen.Screen, tea.Cmd) {
	cur, ok := s.state.Queue.Current()
	if !ok {
		return s, nil
	}

	sub := s.buildSubmission(cur)
	status := sess.Submit(s.state, sub)
	if status == sess.StatusUnanswered {
		return s, nil
	}

	timeMs := int(time.Since(s.challengeStart).Milliseconds())

	// Reveal the grading result on the input component.
	switch cur.Type {
	case curriculum.TypeFillBlank:
		s.blanks.Reveal(status == sess.StatusCorrect)
	default:
		s.choice.Reveal(sub.OptionID, s.correctOptionID(cur))
	}

	if status == sess.StatusCorrect {
		s.emitter.Emit(feedback.Correct)
	} else {
		s.emitter.Emit(feedback.Incorrect)
	}

	return s, s.appendAnswer(cur, sub, status == sess.StatusCorrect, timeMs)
}

func (s *LessonScreen) buildSubmission(cur curriculum.Challenge) grader.Submission {
	if cur.Type == curriculum.TypeFillBlank {
		return grader.Submission{Blanks: s.blanks.Values()}
	}
	return grader.Submission{OptionID: s.choice.SelectedID()}
}

// correctOptionID finds the option the grader would accept, for the
// reveal highlight. Empty when the key matches no option.
func (s *LessonScreen) correctOptionID(cur curriculum.Challenge) string {
	for _, opt := range cur.Options {
		if grader.IsCorrect(cur, grader.Submission{OptionID: opt.ID}, s.state.Synonyms) {
			return opt.ID
		}
	}
	return ""
}

// setupChallenge prepares the input component for the current challenge.
func (s *LessonScreen) setupChallenge() tea.Cmd {
	cur, ok := s.state.Queue.Current()
	if !ok {
		return nil
	}
	s.challengeStart = time.Now()

	switch cur.Type {
	case curriculum.TypeFillBlank:
		s.blanks = components.NewBlankInputs(cur.BlankCount())
		return s.blanks.Init()
	default:
		s.choice = components.NewChoiceList(cur.Options)
		return s.choice.Init()
	}
}

// appendAnswer writes the graded submission to the event log without
// blocking the UI.
func (s *LessonScreen) appendAnswer(cur curriculum.Challenge, sub grader.Submission, correct bool, timeMs int) tea.Cmd {
	if s.events == nil {
		return nil
	}
	data := store.AnswerEventData{
		SessionID:     s.state.SessionID,
		LessonID:      s.state.LessonID,
		ChallengeID:   cur.ID,
		ChallengeType: string(cur.Type),
		Submission:    submissionText(cur, sub),
		Correct:       correct,
		IsRetry:       cur.IsRetry,
		TimeMs:        timeMs,
	}
	return func() tea.Msg {
		if err := s.events.AppendAnswer(context.Background(), data); err != nil {
			return persistFailedMsg{Err: err}
		}
		return nil
	}
}

// submissionText flattens a submission for the event log.
func submissionText(cur curriculum.Challenge, sub grader.Submission) string {
	if cur.Type == curriculum.TypeFillBlank {
		return strings.Join(sub.Blanks, curriculum.BlankDelimiter)
	}
	return sub.OptionID
}

// finish fires the one-shot completion flow.
func (s *LessonScreen) finish() tea.Cmd {
	ev, ok := sess.Completion(s.state, time.Now())
	if !ok {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.finished = true
	return func() tea.Msg { return completionMsg{Event: ev} }
}

func (s *LessonScreen) handleCompletion(msg completionMsg) (screen.Screen, tea.Cmd) {
	ev := msg.Event

	s.prog.Apply(ev)
	s.emitter.Emit(feedback.Complete)

	persist := s.persistCompletion(ev)
	sum := sess.BuildSummary(s.state, ev.CompletedAt)
	handoff := func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
	return s, tea.Batch(persist, handoff)
}

// persistCompletion records the completion event and a fresh progress
// snapshot. Both writes are best-effort.
func (s *LessonScreen) persistCompletion(ev sess.CompletionEvent) tea.Cmd {
	if s.events == nil || s.snaps == nil {
		return nil
	}
	data := store.CompletionEventData{
		SessionID:    ev.SessionID,
		LessonID:     ev.LessonID,
		XPDelta:      ev.XPDelta,
		HeartsDelta:  ev.HeartsDelta,
		DurationSecs: int(ev.Duration.Seconds()),
	}
	snap := store.SnapshotData{
		Version:  store.SnapshotVersion,
		Progress: s.prog.Snapshot(),
	}
	return func() tea.Msg {
		ctx := context.Background()
		if err := s.events.AppendCompletion(ctx, data); err != nil {
			return persistFailedMsg{Err: err}
		}
		if err := s.snaps.Save(ctx, snap); err != nil {
			return persistFailedMsg{Err: err}
		}
		if err := s.snaps.Prune(ctx, snapshotsToKeep); err != nil {
			return persistFailedMsg{Err: err}
		}
		return nil
	}
}
